package number_test

import (
	"math"
	"math/rand"
	"testing"
	"testing/quick"

	"github.com/alextanhongpin/gcd/types/number"
	"github.com/stretchr/testify/assert"
)

func positive(n uint64) uint64 {
	if n == 0 {
		return 1
	}
	return n
}

func TestGCD(t *testing.T) {
	tests := []struct {
		name string
		n, m uint64
		want uint64
	}{
		{"coprime", 2 * 5 * 11 * 17, 3 * 7 * 13 * 19, 1},
		{"common factors", 2 * 3 * 5 * 11 * 17, 3 * 7 * 11 * 13 * 19, 3 * 11},
		{"n greater than m", 2310, 1001, 77},
		{"n less than m", 1001, 2310, 77},
		{"equal", 42, 42, 42},
		{"one", 1, 99, 1},
		{"divides", 6, 18, 6},
		{"max uint64", math.MaxUint64, math.MaxUint64, math.MaxUint64},
		{"max uint64 and three", math.MaxUint64, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, number.GCD(tt.n, tt.m))
		})
	}
}

func TestGCD_ZeroOperand(t *testing.T) {
	is := assert.New(t)
	is.PanicsWithValue(number.ErrZeroOperand, func() {
		number.GCD[uint64](0, 4)
	})
	is.PanicsWithValue(number.ErrZeroOperand, func() {
		number.GCD[uint64](4, 0)
	})
}

func TestGCD_OtherWidths(t *testing.T) {
	is := assert.New(t)
	is.Equal(uint8(12), number.GCD[uint8](36, 240))
	is.Equal(uint32(77), number.GCD[uint32](2310, 1001))
	is.Equal(uint(5), number.GCD[uint](25, 15))
}

func TestGCD_Greatest(t *testing.T) {
	for a := uint64(1); a <= 60; a++ {
		for b := uint64(1); b <= 60; b++ {
			var want uint64
			for d := uint64(1); d <= min(a, b); d++ {
				if a%d == 0 && b%d == 0 {
					want = d
				}
			}

			if got := number.GCD(a, b); got != want {
				t.Fatalf("GCD(%d, %d) = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestGCD_Commutative(t *testing.T) {
	f := func(a, b uint64) bool {
		a, b = positive(a), positive(b)
		return number.GCD(a, b) == number.GCD(b, a)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestGCD_Idempotent(t *testing.T) {
	f := func(a uint64) bool {
		a = positive(a)
		return number.GCD(a, a) == a
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestGCD_DividesBoth(t *testing.T) {
	f := func(a, b uint64) bool {
		a, b = positive(a), positive(b)
		g := number.GCD(a, b)
		return g >= 1 && a%g == 0 && b%g == 0
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestGCD_Associative(t *testing.T) {
	f := func(a, b, c uint64) bool {
		a, b, c = positive(a), positive(b), positive(c)
		return number.GCD(number.GCD(a, b), c) == number.GCD(a, number.GCD(b, c))
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestGCDList(t *testing.T) {
	data := []uint64{4, 2, 6, 8}

	t.Run("empty", func(t *testing.T) {
		_, ok := number.GCDList(data[:0]...)
		assert.False(t, ok)
	})

	t.Run("nil", func(t *testing.T) {
		_, ok := number.GCDList[uint64]()
		assert.False(t, ok)
	})

	t.Run("singleton", func(t *testing.T) {
		g, ok := number.GCDList(data[:1]...)
		assert.True(t, ok)
		assert.Equal(t, uint64(4), g)
	})

	t.Run("many", func(t *testing.T) {
		g, ok := number.GCDList(data...)
		assert.True(t, ok)
		assert.Equal(t, uint64(2), g)
	})

	t.Run("contains one", func(t *testing.T) {
		g, ok := number.GCDList[uint64](300, 1, 600)
		assert.True(t, ok)
		assert.Equal(t, uint64(1), g)
	})

	t.Run("zero", func(t *testing.T) {
		assert.PanicsWithValue(t, number.ErrZeroOperand, func() {
			number.GCDList[uint64](0, 4)
		})
		assert.PanicsWithValue(t, number.ErrZeroOperand, func() {
			number.GCDList[uint64](0)
		})
	})
}

func TestGCDList_DividesEveryElement(t *testing.T) {
	f := func(head uint64, tail []uint64) bool {
		ns := []uint64{positive(head)}
		for _, n := range tail {
			ns = append(ns, positive(n))
		}

		g, ok := number.GCDList(ns...)
		if !ok || g < 1 {
			return false
		}
		for _, n := range ns {
			if n%g != 0 {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestGCDList_PermutationInvariant(t *testing.T) {
	f := func(head uint64, tail []uint64, seed int64) bool {
		// Scale by a shared factor so the result is not almost always 1.
		ns := []uint64{positive(head%1_000_000) * 6}
		for _, n := range tail {
			ns = append(ns, positive(n%1_000_000)*6)
		}

		want, _ := number.GCDList(ns...)

		shuffled := append([]uint64(nil), ns...)
		r := rand.New(rand.NewSource(seed))
		r.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		got, ok := number.GCDList(shuffled...)
		return ok && got == want
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}
