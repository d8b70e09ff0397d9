package bigint

// Add sets z to a + b and returns z's own error, if any (§4.3). When a
// and b carry the same sign the magnitudes add and the sign is kept;
// when they differ the smaller magnitude is subtracted from the larger
// and the result takes the larger operand's sign, matching the
// teacher's Int.Add dispatch over nat.add/nat.sub. z may alias a or b.
func (z *BigInt) Add(a, b *BigInt) error {
	if a.sign == b.sign {
		if err := z.addUnsigned(a, b); err != nil {
			return err
		}
		if z.used > 0 {
			z.sign = a.sign
		}
		return nil
	}
	switch cmpMagnitude(a, b) {
	case 0:
		return z.SetZero()
	case 1:
		if err := z.subUnsigned(a, b); err != nil {
			return err
		}
		if z.used > 0 {
			z.sign = a.sign
		}
		return nil
	default:
		if err := z.subUnsigned(b, a); err != nil {
			return err
		}
		if z.used > 0 {
			z.sign = b.sign
		}
		return nil
	}
}

// Sub sets z to a - b (§4.3). It is Add with b's sign flipped, the same
// reduction the teacher's Int.Sub uses over Int.Add.
func (z *BigInt) Sub(a, b *BigInt) error {
	flipped := *b
	flipped.sign = b.sign.Flip()
	return z.Add(a, &flipped)
}

// AddDigit sets z to a + d for a single non-negative digit d (§4.4). For
// a nonnegative operand this takes the addVW fast path directly, storing
// any carry out of the top digit as a new top digit; a negative a
// reduces to the general multi-digit Add.
func (z *BigInt) AddDigit(a *BigInt, d Digit) error {
	if a.sign == Positive {
		if a.used == 0 {
			_, err := z.SetUint64(uint64(d))
			return err
		}
		old := z.used
		if err := z.grow(a.used + 1); err != nil {
			return err
		}
		ad := a.digit
		c := addVW(z.digit[:a.used], ad[:a.used], d)
		if c == 0 {
			z.used = a.used
			z.sign = Positive
			z.zeroUnused(old)
			z.clamp()
			return nil
		}
		z.digit[a.used] = c
		z.used = a.used + 1
		z.sign = Positive
		z.zeroUnused(old)
		z.clamp()
		return nil
	}
	var dd BigInt
	if _, err := dd.SetUint64(uint64(d)); err != nil {
		return err
	}
	return z.Add(a, &dd)
}

// SubDigit sets z to a - d for a single non-negative digit d (§4.4),
// the AddDigit-style fast path's subtraction counterpart.
func (z *BigInt) SubDigit(a *BigInt, d Digit) error {
	if a.sign == Positive && a.used > 0 && (a.used > 1 || a.digit[0] >= d) {
		old := z.used
		if err := z.grow(a.used); err != nil {
			return err
		}
		ad := a.digit
		subVW(z.digit[:a.used], ad[:a.used], d)
		z.used = a.used
		z.sign = Positive
		z.zeroUnused(old)
		z.clamp()
		return nil
	}
	var dd BigInt
	if _, err := dd.SetUint64(uint64(d)); err != nil {
		return err
	}
	return z.Sub(a, &dd)
}

// Neg sets z to -a and returns z's own error, if any. Zero stays
// Positive per the canonical-form invariant (§3.2).
func (z *BigInt) Neg(a *BigInt) error {
	if _, err := z.Copy(a); err != nil {
		return err
	}
	if z.used > 0 {
		z.sign = z.sign.Flip()
	}
	return nil
}

// Abs sets z to |a|.
func (z *BigInt) Abs(a *BigInt) error {
	if _, err := z.Copy(a); err != nil {
		return err
	}
	z.sign = Positive
	return nil
}
