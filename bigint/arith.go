package bigint

// This file provides the digit-vector arithmetic primitives the rest of
// the kernel is built from: word-pair add/sub/multiply (the "carry
// fits in the high half of a wider word" idiom) lifted to digit
// vectors. It generalizes the teacher's arith.go (addWW_g/subWW_g/
// mulWW_g/addVV_g/subVV_g/shlVU_g/shrVU_g/mulAddVWW_g/addMulVVW_g/
// divWW_g/divWVW_g) from full-Word arithmetic with an external carry to
// MASK-bounded DigitBits-wide digits with in-word carry headroom, using
// math/bits' 64x64->128 primitives in place of the teacher's hand-split
// Hacker's Delight routines (those exist to avoid a wide-multiply
// instruction the standard library now exposes directly).

import "math/bits"

// addWW computes x + y + c as a (carry, digit) pair, c and the carry
// both in {0, 1}.
func addWW(x, y, c Digit) (carry, z Digit) {
	s := x + y + c
	return s >> DigitBits, s & Mask
}

// subWW computes x - y - b as a (borrow, digit) pair, b and the borrow
// both in {0, 1}. The borrow is read off the top of the 64-bit word the
// subtraction wraps into, mirroring the teacher's subWW_g.
func subWW(x, y, b Digit) (borrow, z Digit) {
	d := x - y - b
	return (d >> 63) & 1, d & Mask
}

// mulWW computes x*y as a (hi, lo) digit pair with hi < 2^DigitBits,
// via the full 128-bit product from math/bits.Mul64.
func mulWW(x, y Digit) (hi, lo Digit) {
	h, l := bits.Mul64(uint64(x), uint64(y))
	lo = l & Mask
	hi = h<<(64-DigitBits) | l>>DigitBits
	return
}

// mulAddWWW computes x*y + c as a (hi, lo) digit pair.
func mulAddWWW(x, y, c Digit) (hi, lo Digit) {
	hi, lo = mulWW(x, y)
	sum := lo + c
	lo = sum & Mask
	hi += sum >> DigitBits
	return
}

// addVV sets z = x + y over equal-length slices and returns the final
// carry out of the top digit.
func addVV(z, x, y []Digit) (c Digit) {
	for i := range z {
		c, z[i] = addWW(x[i], y[i], c)
	}
	return
}

// subVV sets z = x - y over equal-length slices, assuming x >= y, and
// returns the final borrow (0 when that assumption held).
func subVV(z, x, y []Digit) (c Digit) {
	for i := range z {
		c, z[i] = subWW(x[i], y[i], c)
	}
	return
}

// addVW sets z = x + y for a single-digit y and returns the carry out.
func addVW(z, x []Digit, y Digit) (c Digit) {
	c = y
	for i := range z {
		c, z[i] = addWW(x[i], c, 0)
	}
	return
}

// subVW sets z = x - y for a single-digit y, assuming x >= y, and
// returns the borrow out.
func subVW(z, x []Digit, y Digit) (c Digit) {
	c = y
	for i := range z {
		c, z[i] = subWW(x[i], c, 0)
	}
	return
}

// shlVU1 shifts x left by one bit into z (same length) and returns the
// bit shifted out of the top digit.
func shlVU1(z, x []Digit) (c Digit) {
	for i := range z {
		w := x[i]
		nc := w >> (DigitBits - 1)
		z[i] = (w<<1 | c) & Mask
		c = nc
	}
	return
}

// shrVU1 shifts x right by one bit into z (same length) and returns the
// bit shifted out of the bottom digit.
func shrVU1(z, x []Digit) (c Digit) {
	for i := len(z) - 1; i >= 0; i-- {
		w := x[i]
		nc := w & 1
		z[i] = w>>1 | c<<(DigitBits-1)
		c = nc
	}
	return
}

// mulAddVWW sets z = x*y + r (r a single starting digit) and returns
// the carry out of the top digit.
func mulAddVWW(z, x []Digit, y, r Digit) (c Digit) {
	c = r
	for i := range z {
		c, z[i] = mulAddWWW(x[i], y, c)
	}
	return
}

// addMulVVW adds x*y into z in place (z += x*y for a single-digit y)
// and returns the carry out of the top digit. It is the column
// operation schoolbook multiplication uses for each row of the
// multiplier.
func addMulVVW(z, x []Digit, y Digit) (c Digit) {
	for i := range z {
		hi, lo := mulAddWWW(x[i], y, z[i])
		var c2 Digit
		c2, z[i] = addWW(lo, c, 0)
		c = hi + c2
	}
	return
}

// wordShift is how much further than DigitBits a native 64-bit word
// extends; it is the "headroom" divWW uses to assemble the 128-bit
// dividend u1*2^DigitBits+u0 into the hi:lo pair math/bits.Div64 wants.
const wordShift = 64 - DigitBits

// divWW computes (u1*2^DigitBits + u0) / v and its remainder, given
// u1 < v so the quotient fits in one digit. The teacher's divWW_g
// ported a half-word Hacker's Delight routine to work around the lack
// of a 64x64->128 divide; math/bits.Div64 now exposes exactly that
// operation directly, so this assembles u1:u0 into the 128-bit hi:lo
// pair Div64 expects (base 2^DigitBits rather than base 2^64) and lets
// it do the division instead of re-deriving the correction loop.
func divWW(u1, u0, v Digit) (q, r Digit) {
	hi := u1 >> wordShift
	lo := (u1&(1<<wordShift-1))<<DigitBits | u0
	quo, rem := bits.Div64(hi, lo, uint64(v))
	return Digit(quo), Digit(rem)
}

// divWVW divides the digit vector (xn, x[len(x)-1], ..., x[0]) by the
// single digit y, writing the quotient digits into z (same length as
// x) and returning the final remainder.
func divWVW(z []Digit, xn Digit, x []Digit, y Digit) (r Digit) {
	r = xn
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = divWW(r, x[i], y)
	}
	return
}

// bitLen returns the number of bits needed to represent x, 0 for x==0.
func bitLen(x Digit) int {
	return bits.Len64(uint64(x))
}

// trailingZeroBits returns the number of trailing zero bits in x,
// DigitBits if x==0. Shared by mulDigit and divmodDigit's
// power-of-two shortcuts (§4.6, §4.9).
func trailingZeroBits(x Digit) int {
	if x == 0 {
		return DigitBits
	}
	return bits.TrailingZeros64(uint64(x))
}

// isPowerOfTwo reports whether x is a positive power of two.
func isPowerOfTwo(x Digit) bool {
	return x != 0 && x&(x-1) == 0
}
