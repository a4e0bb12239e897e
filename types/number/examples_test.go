package number_test

import (
	"fmt"

	"github.com/alextanhongpin/gcd/types/number"
)

func ExampleGCD() {
	fmt.Println(number.GCD[uint64](2310, 1001))
	fmt.Println(number.GCD[uint64](17, 4))

	// Output:
	// 77
	// 1
}

func ExampleGCDList() {
	g, ok := number.GCDList[uint64](2, 4, 6, 8)
	fmt.Println(g, ok)

	_, ok = number.GCDList[uint64]()
	fmt.Println(ok)

	// Output:
	// 2 true
	// false
}

func ExampleParseUint64s() {
	ns, err := number.ParseUint64s([]string{"2", "4", "6", "8"})
	fmt.Println(number.FormatList(ns), err)

	_, err = number.ParseUint64s([]string{"dog", "1"})
	fmt.Println(err)

	// Output:
	// [2, 4, 6, 8] <nil>
	// error parsing "dog"
}
