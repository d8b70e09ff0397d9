package bigint

// BitLen returns the number of bits in |z|'s magnitude, 0 for z == 0.
// Division normalization (§4.8) already needs a per-digit version of
// this (bitLen in arith.go); this is the public, whole-value form the
// spec's §6 radix-I/O collaborator and higher layers read digit/used
// to approximate today.
func (z *BigInt) BitLen() int {
	if z.used == 0 {
		return 0
	}
	return (z.used-1)*DigitBits + bitLen(z.digit[z.used-1])
}

// ShiftLeft sets z to src shifted left by n bits (n >= 0).
// It is built from whole-digit shifts plus a single shl1-style
// sub-digit shift, the same decomposition the teacher's Int.Lsh uses
// over shlVU — a direct generalization of §4.5's shift-by-one, not a
// new primitive.
func (z *BigInt) ShiftLeft(src *BigInt, n int) error {
	if n < 0 {
		return wrap(ErrInvalidArgument, "ShiftLeft: negative shift")
	}
	if src.used == 0 || n == 0 {
		_, err := z.Copy(src)
		return err
	}
	wholeDigits := n / DigitBits
	bits := uint(n % DigitBits)

	old := z.used
	newUsed := src.used + wholeDigits + 1
	if err := z.grow(newUsed); err != nil {
		return err
	}

	sn := src.used
	if bits == 0 {
		// Pure whole-digit shift: copy high to low so it's safe even
		// when z aliases src.
		for i := sn - 1; i >= 0; i-- {
			z.digit[i+wholeDigits] = src.digit[i]
		}
		z.digit[sn+wholeDigits] = 0
	} else {
		// Same high-to-low, carry-the-next-lower-digit's-spillover
		// shape as the teacher's shlVU_g, offset by wholeDigits and
		// masked to DigitBits instead of the full word.
		z.digit[sn+wholeDigits] = src.digit[sn-1] >> (DigitBits - bits)
		for i := sn - 1; i > 0; i-- {
			z.digit[i+wholeDigits] = (src.digit[i]<<bits)&Mask | src.digit[i-1]>>(DigitBits-bits)
		}
		z.digit[wholeDigits] = (src.digit[0] << bits) & Mask
	}
	for i := 0; i < wholeDigits; i++ {
		z.digit[i] = 0
	}
	z.used = newUsed
	z.sign = src.sign
	z.zeroUnused(old)
	z.clamp()
	return nil
}

// ShiftRight sets z to src shifted right by n bits (n >= 0, truncating
// toward zero in magnitude).
func (z *BigInt) ShiftRight(src *BigInt, n int) error {
	if n < 0 {
		return wrap(ErrInvalidArgument, "ShiftRight: negative shift")
	}
	if src.used == 0 {
		_, err := z.Copy(src)
		return err
	}
	wholeDigits := n / DigitBits
	bits := uint(n % DigitBits)

	if wholeDigits >= src.used {
		return z.SetZero()
	}

	old := z.used
	newUsed := src.used - wholeDigits
	if err := z.grow(newUsed); err != nil {
		return err
	}

	if bits == 0 {
		for i := 0; i < newUsed; i++ {
			z.digit[i] = src.digit[i+wholeDigits]
		}
	} else {
		for i := 0; i < newUsed; i++ {
			lo := src.digit[i+wholeDigits] >> bits
			var hi Digit
			if i+wholeDigits+1 < src.used {
				hi = (src.digit[i+wholeDigits+1] << (DigitBits - bits)) & Mask
			}
			z.digit[i] = lo | hi
		}
	}
	z.used = newUsed
	z.sign = src.sign
	z.zeroUnused(old)
	z.clamp()
	return nil
}

// shiftLeftBits is the unsigned (magnitude-only, sign-preserving)
// helper MulDigit's power-of-two shortcut reuses.
func (z *BigInt) shiftLeftBits(src *BigInt, n int) error {
	return z.ShiftLeft(src, n)
}

// shiftRightBits is divmodDigit's power-of-two shortcut counterpart.
func (z *BigInt) shiftRightBits(src *BigInt, n int) error {
	return z.ShiftRight(src, n)
}

// Cmp returns -1, 0, +1 as z < x, z == x, z > x, accounting for sign.
func (z *BigInt) Cmp(x *BigInt) int {
	zNeg := z.sign == Negative && z.used > 0
	xNeg := x.sign == Negative && x.used > 0
	switch {
	case zNeg && !xNeg:
		return -1
	case !zNeg && xNeg:
		return 1
	case !zNeg:
		return cmpMagnitude(z, x)
	default:
		return -cmpMagnitude(z, x)
	}
}

// CmpMagnitude returns -1, 0, +1 as |z| < |x|, |z| == |x|, |z| > |x|.
func (z *BigInt) CmpMagnitude(x *BigInt) int {
	return cmpMagnitude(z, x)
}
