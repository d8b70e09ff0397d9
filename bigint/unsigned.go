package bigint

// addUnsigned sets z to |a| + |b| (§4.2); it does not touch z.sign —
// callers (signed dispatch, §4.3) set that themselves. z may alias a
// or b.
func (z *BigInt) addUnsigned(a, b *BigInt) error {
	x, y := a, b
	if x.used < y.used {
		x, y = y, x
	}
	old := z.used
	if err := z.grow(x.used + 1); err != nil {
		return err
	}
	// Snapshot operand digits before writing z in case z aliases x or y:
	// growing z may have reallocated, but x/y's own buffers are
	// untouched by grow, so reading x[i]/y[i] right before writing
	// z[i] (rather than bulk-copying first) is enough to make every
	// aliasing combination safe.
	xd, yd := x.digit, y.digit
	c := addVV(z.digit[:y.used], xd[:y.used], yd[:y.used])
	if x.used > y.used {
		c = addVW(z.digit[y.used:x.used], xd[y.used:x.used], c)
	}
	z.digit[x.used] = c
	z.used = x.used + 1
	z.zeroUnused(old)
	z.clamp()
	return nil
}

// subUnsigned sets z to |x| - |y|, assuming |x| >= |y| (§4.2). z may
// alias x or y.
func (z *BigInt) subUnsigned(x, y *BigInt) error {
	old := z.used
	if err := z.grow(x.used); err != nil {
		return err
	}
	xd, yd := x.digit, y.digit
	c := subVV(z.digit[:y.used], xd[:y.used], yd[:y.used])
	if x.used > y.used {
		c = subVW(z.digit[y.used:x.used], xd[y.used:x.used], c)
	}
	z.used = x.used
	z.zeroUnused(old)
	z.clamp()
	return nil
}

// cmpMagnitude returns -1, 0, +1 as |a| is less than, equal to, or
// greater than |b|, comparing lengths first and then digits from the
// top down, same as the teacher's nat.cmp.
func cmpMagnitude(a, b *BigInt) int {
	switch {
	case a.used != b.used:
		if a.used < b.used {
			return -1
		}
		return 1
	}
	for i := a.used - 1; i >= 0; i-- {
		if a.digit[i] != b.digit[i] {
			if a.digit[i] < b.digit[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// shl1 sets z to src shifted left by one bit (§4.5). z may alias src.
func (z *BigInt) shl1(src *BigInt) error {
	old := z.used
	if err := z.grow(src.used + 1); err != nil {
		return err
	}
	c := shlVU1(z.digit[:src.used], src.digit[:src.used])
	z.digit[src.used] = c
	z.used = src.used + 1
	z.sign = src.sign
	z.zeroUnused(old)
	z.clamp()
	return nil
}

// shr1 sets z to src shifted right by one bit (§4.5). z may alias src.
func (z *BigInt) shr1(src *BigInt) error {
	old := z.used
	if err := z.grow(src.used); err != nil {
		return err
	}
	shrVU1(z.digit[:src.used], src.digit[:src.used])
	z.used = src.used
	z.sign = src.sign
	z.zeroUnused(old)
	z.clamp()
	return nil
}
