package bigint

// Sqr sets z to a*a and returns the error from the grow it needs
// internally, if any (§4.7). Result sign is always Positive, as required
// by §4.7 regardless of a's sign, since a squared magnitude is never
// negative.
//
// The spec permits substituting general multiplication for the
// doubled-off-diagonal/diagonal-once scheme ("An implementation MAY
// substitute general multiplication"); this does exactly that. Sqr is
// also the one path in §3.3 explicitly called out as safe for
// dest == src, and mulComba/mulSchoolbook already have to tolerate z
// aliasing either multiplicand (for the a*a call itself, a and b below
// are the same BigInt), so routing through them costs nothing and
// avoids maintaining a second, easier-to-get-wrong accumulation scheme
// for what is mathematically the same computation.
func (z *BigInt) Sqr(a *BigInt) error {
	if a.used == 0 {
		return z.SetZero()
	}
	var err error
	digits := 2*a.used + 1
	if digits < WARRAY && a.used <= MaxComba {
		err = z.mulComba(a, a)
	} else {
		err = z.mulSchoolbook(a, a)
	}
	if err != nil {
		return err
	}
	z.sign = Positive
	return nil
}
