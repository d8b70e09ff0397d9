package bigint

import (
	"math/big"
)

// toBig converts z to a math/big.Int for cross-checking results against
// the standard library's arbitrary-precision arithmetic, independent of
// this package's own digit representation.
func toBig(z *BigInt) *big.Int {
	out := new(big.Int)
	base := new(big.Int).Lsh(big.NewInt(1), DigitBits)
	for i := z.used - 1; i >= 0; i-- {
		out.Mul(out, base)
		out.Add(out, big.NewInt(int64(z.digit[i])))
	}
	if z.sign == Negative {
		out.Neg(out)
	}
	return out
}

// fromBig sets z to the value of x (used to build test fixtures too
// large for SetUint64/SetInt64).
func fromBig(z *BigInt, x *big.Int) error {
	mag := new(big.Int).Abs(x)
	base := new(big.Int).Lsh(big.NewInt(1), DigitBits)
	mask := new(big.Int).Sub(base, big.NewInt(1))
	var digits []Digit
	rem := new(big.Int).Set(mag)
	tmp := new(big.Int)
	for rem.Sign() != 0 {
		tmp.And(rem, mask)
		digits = append(digits, Digit(tmp.Uint64()))
		rem.Rsh(rem, DigitBits)
	}
	old := z.used
	if err := z.grow(len(digits)); err != nil {
		return err
	}
	copy(z.digit, digits)
	z.used = len(digits)
	if x.Sign() < 0 {
		z.sign = Negative
	} else {
		z.sign = Positive
	}
	z.zeroUnused(old)
	z.clamp()
	return nil
}
