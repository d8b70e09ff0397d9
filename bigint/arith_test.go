package bigint

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddWWCarry(t *testing.T) {
	c, z := addWW(Mask, 1, 0)
	require.Equal(t, Digit(1), c)
	require.Equal(t, Digit(0), z)
}

func TestSubWWBorrow(t *testing.T) {
	b, z := subWW(0, 1, 0)
	require.Equal(t, Digit(1), b)
	require.Equal(t, Mask, z)
}

func TestMulWWFullWidth(t *testing.T) {
	hi, lo := mulWW(Mask, Mask)
	wantHi, wantLo := bits.Mul64(uint64(Mask), uint64(Mask))
	require.Equal(t, wantLo, hi<<DigitBits|lo)
	require.Equal(t, wantHi, hi>>(64-DigitBits))
	require.Less(t, hi, Digit(1)<<DigitBits)
}

func TestDivWWRoundTrip(t *testing.T) {
	// u1 < v is the precondition; build (u1,u0) from a known product.
	v := Digit(0x0FED_CBA9_8765_4321 & Mask)
	q := Digit(12345)
	u0 := Digit(999)
	hi, lo := mulAddWWW(q, v, u0)
	gotQ, gotR := divWW(hi, lo, v)
	require.Equal(t, q, gotQ)
	require.Equal(t, u0, gotR)
}

func TestDivWVWReconstructsDividend(t *testing.T) {
	x := []Digit{111, 222, 333}
	y := Digit(7)
	z := make([]Digit, len(x))
	r := divWVW(z, 0, x, y)

	// Reconstruct the low 64 bits of the dividend and of the quotient and
	// check q*y+r == dividend modulo 2^64.
	var dividend uint64
	for i := len(x) - 1; i >= 0; i-- {
		dividend = dividend<<DigitBits | uint64(x[i])
	}
	var quotient uint64
	for i := len(z) - 1; i >= 0; i-- {
		quotient = quotient<<DigitBits | uint64(z[i])
	}
	require.Equal(t, dividend, quotient*uint64(y)+uint64(r))
}

func TestBitLenDigit(t *testing.T) {
	require.Equal(t, 0, bitLen(0))
	require.Equal(t, 1, bitLen(1))
	require.Equal(t, 4, bitLen(0b1000))
	require.Equal(t, DigitBits, bitLen(Mask))
}

func TestTrailingZeroBits(t *testing.T) {
	require.Equal(t, DigitBits, trailingZeroBits(0))
	require.Equal(t, 0, trailingZeroBits(1))
	require.Equal(t, 5, trailingZeroBits(1<<5))
}

func TestIsPowerOfTwo(t *testing.T) {
	require.True(t, isPowerOfTwo(1))
	require.True(t, isPowerOfTwo(1<<10))
	require.False(t, isPowerOfTwo(0))
	require.False(t, isPowerOfTwo(6))
}

func TestShlVU1KnownValue(t *testing.T) {
	// x represents (1<<DigitBits | 3): digit[0]=3, digit[1]=1.
	x := []Digit{3, 1}
	z := make([]Digit, len(x))
	c := shlVU1(z, x)
	require.Equal(t, Digit(0), c)
	require.Equal(t, Digit(6), z[0])
	require.Equal(t, Digit(2), z[1])
}

func TestShrVU1KnownValue(t *testing.T) {
	x := []Digit{6, 2}
	z := make([]Digit, len(x))
	c := shrVU1(z, x)
	require.Equal(t, Digit(0), c)
	require.Equal(t, Digit(3), z[0])
	require.Equal(t, Digit(1), z[1])
}
