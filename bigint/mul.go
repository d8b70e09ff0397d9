package bigint

// Comba/schoolbook thresholds (§4.6). WARRAY bounds the number of
// output columns a Comba pass may produce (each column's accumulator
// is only guaranteed wide enough — see comba below — up to this many
// terms); MaxComba bounds the shorter operand's length so the per
// -column term count never exceeds what the accumulator was sized for.
const (
	WARRAY   = 32
	MaxComba = 16
)

// MulDigit sets z to src * m for a single non-negative digit m (§4.6).
// z may alias src.
func (z *BigInt) MulDigit(src *BigInt, m Digit) error {
	switch {
	case m == 0 || src.used == 0:
		return z.SetZero()
	case m == 1:
		_, err := z.Copy(src)
		return err
	case m == 2:
		return z.shl1(src)
	case isPowerOfTwo(m):
		return z.shiftLeftBits(src, trailingZeroBits(m))
	}

	old := z.used
	if err := z.grow(src.used + 1); err != nil {
		return err
	}
	srcDigits := src.digit[:src.used]
	c := mulAddVWW(z.digit[:src.used], srcDigits, m, 0)
	z.digit[src.used] = c
	z.used = src.used + 1
	z.sign = src.sign
	z.zeroUnused(old)
	z.clamp()
	return nil
}

// SetZero sets z to 0 and returns nil (grow/clamp never fail on
// shrink-only operations, but it returns an error to keep a uniform
// call signature with its siblings).
func (z *BigInt) SetZero() error {
	z.used = 0
	z.zeroUnused(len(z.digit))
	z.sign = Positive
	return nil
}

// Mul sets z to a * b (§4.6). z may alias a or b.
func (z *BigInt) Mul(a, b *BigInt) error {
	if a.used == 0 || b.used == 0 {
		return z.SetZero()
	}
	if a == b {
		return z.Sqr(a)
	}

	neg := a.sign != b.sign
	var err error
	digits := a.used + b.used + 1
	if digits < WARRAY && min(a.used, b.used) <= MaxComba {
		err = z.mulComba(a, b)
	} else {
		err = z.mulSchoolbook(a, b)
	}
	if err != nil {
		return err
	}
	if z.used > 0 && neg {
		z.sign = Negative
	} else {
		z.sign = Positive
	}
	return nil
}

// comba is the word-sized column accumulator Comba multiplication
// flushes one digit at a time. Three 64-bit limbs give 192 bits of
// headroom, comfortably more than the ~2*DigitBits+log2(MaxComba) bits
// a column's worth of partial products can reach under the WARRAY/
// MaxComba bounds above — the reason those two thresholds exist at all
// (§4.6) is to keep that sum from overflowing the accumulator.
type comba struct {
	w0, w1, w2 uint64
}

func (c *comba) addProduct(x, y Digit) {
	hi, lo := mulWW(x, y)
	// mulWW splits the product at DigitBits; the limbs are 64 bits wide.
	lo64 := uint64(lo) | uint64(hi)<<DigitBits
	hi64 := uint64(hi) >> wordShift
	var carry uint64
	c.w0, carry = addOverflow(c.w0, lo64)
	c.w1, carry = addOverflow(c.w1+carry, hi64)
	c.w2 += carry
}

func addOverflow(a, b uint64) (sum, carry uint64) {
	sum = a + b
	if sum < a {
		carry = 1
	}
	return
}

// flushDigit extracts the low DigitBits bits as a digit and shifts the
// remaining accumulator right by DigitBits, the same "shift a multi-limb
// value right by the digit width" move as shrVU1, generalized to three
// limbs instead of one slice.
func (c *comba) flushDigit() Digit {
	d := Digit(c.w0) & Mask
	c.w0 = c.w0>>DigitBits | c.w1<<wordShift
	c.w1 = c.w1>>DigitBits | c.w2<<wordShift
	c.w2 = c.w2 >> DigitBits
	return d
}

// mulComba multiplies a and b column by column, each column's partial
// products accumulated in a single comba accumulator and flushed one
// digit at a time, avoiding the schoolbook path's separate scratch
// BigInt (§4.6).
func (z *BigInt) mulComba(a, b *BigInt) error {
	pa, pb := a.used, b.used
	n := pa + pb
	old := z.used
	// z may alias a or b; read through local slices captured before z
	// is resized, since grow on an aliased buffer may relocate it.
	ad := append([]Digit(nil), a.digit[:pa]...)
	bd := append([]Digit(nil), b.digit[:pb]...)
	if err := z.grow(n); err != nil {
		return err
	}
	var acc comba
	for col := 0; col < n; col++ {
		lo := 0
		if col-pb+1 > 0 {
			lo = col - pb + 1
		}
		hi := col
		if hi > pa-1 {
			hi = pa - 1
		}
		for j := lo; j <= hi; j++ {
			acc.addProduct(ad[j], bd[col-j])
		}
		z.digit[col] = acc.flushDigit()
	}
	z.used = n
	z.zeroUnused(old)
	z.clamp()
	return nil
}

// mulSchoolbook is the doubly-nested grade-school multiply (§4.6). It
// always works through a locally-owned scratch BigInt, released on
// every exit path, so it never has to reason about dest aliasing a or
// b mid-computation.
func (z *BigInt) mulSchoolbook(a, b *BigInt) error {
	scratch := NewWithAllocator(z.allocator())
	defer scratch.Release()
	if err := scratch.ensureUsed(a.used + b.used); err != nil {
		return err
	}

	ad, bd := a.digit[:a.used], b.digit[:b.used]
	for i := 0; i < a.used; i++ {
		if ad[i] == 0 {
			continue
		}
		row := scratch.digit[i : i+b.used]
		c := addMulVVW(row, bd, ad[i])
		k := i + b.used
		for c != 0 {
			var c2 Digit
			c2, scratch.digit[k] = addWW(scratch.digit[k], c, 0)
			c = c2
			k++
		}
	}
	scratch.used = a.used + b.used
	scratch.clamp()
	_, err := z.Copy(scratch)
	return err
}
