package bigint

// DivMod sets *q (if non-nil) to the truncating quotient n/d and *r (if
// non-nil) to the truncating remainder n%d (§4.8). At least one of q, r
// must be non-nil. Either may alias n or d; internally a scratch BigInt
// is used so the caller-visible aliasing rules are never exposed to the
// digit-level division loop.
func DivMod(q, r *BigInt, n, d *BigInt) error {
	if q == nil && r == nil {
		return wrap(ErrInvalidArgument, "DivMod: q and r both nil")
	}
	if d.used == 0 {
		return ErrDivisionByZero
	}

	if cmpMagnitude(n, d) < 0 {
		if r != nil {
			if _, err := r.Copy(n); err != nil {
				return err
			}
		}
		if q != nil {
			if err := q.SetZero(); err != nil {
				return err
			}
		}
		return nil
	}

	qNeg := n.sign != d.sign
	rSign := n.sign

	var qMag, rMag BigInt
	qMag.alloc = DefaultAllocator
	rMag.alloc = DefaultAllocator
	defer qMag.Release()
	defer rMag.Release()

	if d.used == 1 {
		rem, err := divmodDigit(&qMag, n, d.digit[0])
		if err != nil {
			return err
		}
		if _, err := rMag.SetUint64(rem); err != nil {
			return err
		}
	} else {
		if err := divLarge(&qMag, &rMag, n, d); err != nil {
			return err
		}
	}

	if q != nil {
		if _, err := q.Copy(&qMag); err != nil {
			return err
		}
		if q.used > 0 && qNeg {
			q.sign = Negative
		} else {
			q.sign = Positive
		}
	}
	if r != nil {
		if _, err := r.Copy(&rMag); err != nil {
			return err
		}
		if r.used > 0 {
			r.sign = rSign
		} else {
			r.sign = Positive
		}
	}
	return nil
}

// divmodDigit divides n by the single non-negative digit d, writing the
// quotient's magnitude into q (if non-nil) and returning the remainder
// digit (§4.9).
func divmodDigit(q *BigInt, n *BigInt, d Digit) (Digit, error) {
	if d == 0 {
		return 0, ErrDivisionByZero
	}
	if n.used == 0 {
		if q != nil {
			if err := q.SetZero(); err != nil {
				return 0, err
			}
		}
		return 0, nil
	}
	if d == 1 {
		if q != nil {
			old := q.used
			if err := q.grow(n.used); err != nil {
				return 0, err
			}
			copy(q.digit, n.digit[:n.used])
			q.used = n.used
			q.zeroUnused(old)
			q.clamp()
		}
		return 0, nil
	}
	if isPowerOfTwo(d) {
		shift := trailingZeroBits(d)
		r := n.digit[0] & (d - 1)
		if q != nil {
			if err := q.shiftRightBits(n, shift); err != nil {
				return 0, err
			}
		}
		return r, nil
	}

	qDigits := make([]Digit, n.used)
	r := divWVW(qDigits, 0, n.digit[:n.used], d)
	if q != nil {
		old := q.used
		if err := q.grow(n.used); err != nil {
			return 0, err
		}
		copy(q.digit, qDigits)
		q.used = n.used
		q.zeroUnused(old)
		q.clamp()
	}
	return r, nil
}

// cmpPair orders the digit-base-2^DigitBits pairs (hi1,lo1) and
// (hi2,lo2) as plain unsigned 2-digit numbers (lo components need not
// themselves be canonical single digits).
func cmpPair(hi1, lo1, hi2, lo2 Digit) int {
	if hi1 != hi2 {
		if hi1 < hi2 {
			return -1
		}
		return 1
	}
	switch {
	case lo1 < lo2:
		return -1
	case lo1 > lo2:
		return 1
	default:
		return 0
	}
}

// mulSubVVW sets z -= x*y (a single-digit y) in place over equal-length
// slices and returns the amount still owed to the next-higher digit
// (the combination of the multiply's carry-out and the subtraction's
// borrow-out) — the multiply/subtract combined step the schoolbook
// division loop uses once per quotient-digit estimate (§4.8).
func mulSubVVW(z, x []Digit, y Digit) Digit {
	var mulCarry, subBorrow Digit
	for i := range z {
		hi, lo := mulAddWWW(x[i], y, mulCarry)
		mulCarry = hi
		var b Digit
		b, z[i] = subWW(z[i], lo, subBorrow)
		subBorrow = b
	}
	return mulCarry + subBorrow
}

// divLarge implements schoolbook division for a divisor of two or more
// digits (Knuth's Algorithm D, as adapted by Hacker's Delight ch. 9):
// normalize so the divisor's leading digit has its top bit set,
// estimate one quotient digit per step from the remainder's top two
// digits and the divisor's leading digit, refine the estimate against
// the divisor's second digit, subtract, and correct by adding the
// divisor back at most once if the estimate was one too high (§4.8).
// Preconditions: d.used >= 2, |n| >= |d|.
func divLarge(q, r *BigInt, n, d *BigInt) error {
	t := d.used
	shift := DigitBits - bitLen(d.digit[t-1])

	var nShift, dShift BigInt
	nShift.alloc, dShift.alloc = DefaultAllocator, DefaultAllocator
	defer nShift.Release()
	defer dShift.Release()
	if err := nShift.ShiftLeft(n, shift); err != nil {
		return err
	}
	if err := dShift.ShiftLeft(d, shift); err != nil {
		return err
	}

	m := nShift.used
	vDigits := dShift.digit[:t]
	loopCount := m - t

	// u is the working remainder buffer, one digit wider than nShift
	// so the top "virtual" digit u[m] used by the estimate at j==loopCount
	// is always present and zero unless the shift produced it.
	u := make([]Digit, m+1)
	copy(u, nShift.digit[:m])

	qDigits := make([]Digit, loopCount+1)
	vTop := vDigits[t-1]
	var vTop2 Digit
	if t >= 2 {
		vTop2 = vDigits[t-2]
	}
	base := Digit(1) << DigitBits

	for j := loopCount; j >= 0; j-- {
		uTop := u[j+t]
		uTop2 := u[j+t-1]

		var qhat, rhat Digit
		if uTop == vTop {
			qhat = Mask
			rhat = uTop2 + vTop
		} else {
			qhat, rhat = divWW(uTop, uTop2, vTop)
		}

		var uTop3 Digit
		if j+t-2 >= 0 {
			uTop3 = u[j+t-2]
		}
		for rhat < base {
			hiL, loL := mulWW(qhat, vTop2)
			if cmpPair(hiL, loL, rhat, uTop3) <= 0 {
				break
			}
			qhat--
			rhat += vTop
		}

		topBorrow := mulSubVVW(u[j:j+t], vDigits, qhat)
		if u[j+t] < topBorrow {
			qhat--
			addVV(u[j:j+t], u[j:j+t], vDigits)
			u[j+t] = 0
		} else {
			u[j+t] -= topBorrow
		}
		qDigits[j] = qhat
	}

	if q != nil {
		old := q.used
		if err := q.grow(loopCount + 1); err != nil {
			return err
		}
		copy(q.digit, qDigits)
		q.used = loopCount + 1
		q.zeroUnused(old)
		q.clamp()
	}
	if r != nil {
		old := r.used
		if err := r.grow(t); err != nil {
			return err
		}
		copy(r.digit, u[:t])
		r.used = t
		r.zeroUnused(old)
		r.clamp()
		if err := r.ShiftRight(r, shift); err != nil {
			return err
		}
	}
	return nil
}
