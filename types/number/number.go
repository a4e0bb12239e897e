// Package number provides the greatest common divisor over unsigned integers,
// together with the parsing and rendering of the number lists it reduces.
package number

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrZeroOperand is the panic value of GCD when either operand is zero.
var ErrZeroOperand = errors.New("number: gcd operand must be positive")

// GCD returns the greatest common divisor of n and m using Euclid's
// algorithm by remainder.
//
// Both operands must be positive. A zero operand is a programmer error and
// GCD panics with ErrZeroOperand.
//
// Example:
//
//	number.GCD[uint64](2310, 1001) // 77
func GCD[T constraints.Unsigned](n, m T) T {
	if n == 0 || m == 0 {
		panic(ErrZeroOperand)
	}

	// 0 < n <= m holds at the top of the loop after the first swap.
	for m != 0 {
		if m < n {
			n, m = m, n
		}
		m %= n
	}

	return n
}

// GCDList returns the greatest common divisor of ns, folding GCD from the
// first element over the rest. It reports false when ns is empty.
//
// The result does not depend on the order of ns.
//
// Example:
//
//	g, ok := number.GCDList[uint64](2, 4, 6, 8) // 2, true
//	_, ok = number.GCDList[uint64]()            // 0, false
func GCDList[T constraints.Unsigned](ns ...T) (T, bool) {
	if len(ns) == 0 {
		var zero T
		return zero, false
	}

	// Seeding with ns[0] and folding over every element checks the
	// precondition on singletons too: gcd(x, x) = x.
	g := ns[0]
	for _, n := range ns {
		g = GCD(g, n)
	}

	return g, true
}
