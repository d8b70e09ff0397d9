package bigint

// Mod sets z to a mod m, normalized into the canonical residue range
// (§4.10): the truncating remainder from DivMod, nudged by one copy of
// m whenever that remainder is nonzero and disagrees in sign with m,
// so the result always carries m's sign (or is zero). m must be
// nonzero.
func (z *BigInt) Mod(a, m *BigInt) error {
	if m.used == 0 {
		return ErrDivisionByZero
	}
	if z == m {
		// DivMod overwrites z, so keep m's value for the adjustment below.
		var mc BigInt
		defer mc.Release()
		if _, err := mc.Copy(m); err != nil {
			return err
		}
		m = &mc
	}
	if err := DivMod(nil, z, a, m); err != nil {
		return err
	}
	if z.used > 0 && z.sign != m.sign {
		return z.Add(z, m)
	}
	return nil
}

// AddMod sets z to (a + b) mod m (§4.10).
func (z *BigInt) AddMod(a, b, m *BigInt) error {
	var sum BigInt
	sum.alloc = z.allocator()
	defer sum.Release()
	if err := sum.Add(a, b); err != nil {
		return err
	}
	return z.Mod(&sum, m)
}

// SubMod sets z to (a - b) mod m (§4.10).
func (z *BigInt) SubMod(a, b, m *BigInt) error {
	var diff BigInt
	diff.alloc = z.allocator()
	defer diff.Release()
	if err := diff.Sub(a, b); err != nil {
		return err
	}
	return z.Mod(&diff, m)
}

// MulMod sets z to (a * b) mod m (§4.10).
func (z *BigInt) MulMod(a, b, m *BigInt) error {
	var prod BigInt
	prod.alloc = z.allocator()
	defer prod.Release()
	if err := prod.Mul(a, b); err != nil {
		return err
	}
	return z.Mod(&prod, m)
}

// SqrMod sets z to a*a mod m (§4.10).
func (z *BigInt) SqrMod(a, m *BigInt) error {
	var sq BigInt
	sq.alloc = z.allocator()
	defer sq.Release()
	if err := sq.Sqr(a); err != nil {
		return err
	}
	return z.Mod(&sq, m)
}
