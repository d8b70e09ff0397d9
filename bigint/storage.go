package bigint

import "go.uber.org/zap"

// grow ensures z's backing buffer has capacity for at least n digits
// (and at least defaultDigitCount, per §4.1). Existing digits and their
// values are preserved; any newly exposed slots are zero. It never
// shrinks z.used or z.digit's length below what's already there.
func (z *BigInt) grow(n int) error {
	if n < defaultDigitCount {
		n = defaultDigitCount
	}
	if cap(z.digit) >= n {
		if len(z.digit) < n {
			old := len(z.digit)
			z.digit = z.digit[:n]
			for i := old; i < n; i++ {
				z.digit[i] = 0
			}
		}
		return nil
	}
	logger.Debug("bigint: grow", zap.Int("from", cap(z.digit)), zap.Int("to", n))
	buf, err := z.allocator().Realloc(z.digit, n)
	if err != nil {
		return wrapf(ErrOutOfMemory, "grow to %d digits", n)
	}
	z.digit = buf
	return nil
}

// zeroUnused writes zero to digit[z.used:oldUsed). Call it after a
// mutation that may have shrunk used, before clamp, so no stale nonzero
// digit survives beyond the new logical length (§4.1, §3.2 clause 3).
func (z *BigInt) zeroUnused(oldUsed int) {
	end := oldUsed
	if end > len(z.digit) {
		end = len(z.digit)
	}
	for i := z.used; i < end; i++ {
		z.digit[i] = 0
	}
}

// zeroUnusedToCap is zeroUnused with no upper bound supplied: it zeroes
// every slot beyond used out to the buffer's full length.
func (z *BigInt) zeroUnusedToCap() {
	z.zeroUnused(len(z.digit))
}

// clamp restores canonical form by dropping leading-zero digits and, if
// the magnitude collapsed to zero, forcing the canonical non-negative
// zero sign (§3.2 clauses 2 and 5). It is idempotent.
func (z *BigInt) clamp() {
	i := z.used
	for i > 0 && z.digit[i-1] == 0 {
		i--
	}
	z.used = i
	if z.used == 0 {
		z.sign = Positive
	}
}

// ensureUsed grows z to at least n digits and sets used to n, zeroing
// any newly-significant digits first. It's the "I'm about to write n
// digits of output" setup mulSchoolbook uses for its scratch.
func (z *BigInt) ensureUsed(n int) error {
	old := z.used
	if err := z.grow(n); err != nil {
		return err
	}
	if n > old {
		for i := old; i < n; i++ {
			z.digit[i] = 0
		}
	}
	z.used = n
	return nil
}
