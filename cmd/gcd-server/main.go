package main

import "github.com/alextanhongpin/gcd/cli"

func main() {
	cli.ExecuteServer()
}
