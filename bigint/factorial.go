package bigint

import "math/bits"

// FactorialSmallCutoff is the largest n computed by straight iterative
// multiplication; above it Factorial switches to binary splitting
// (§4.11). Every factor below the cutoff fits in a single digit, so
// the iterative path is just a chain of MulDigit calls regardless of
// how large the accumulator itself grows.
const FactorialSmallCutoff = 20

// FactorialBinarySplitMaxRecursions bounds the outer halving loop
// binarySplitFactorial runs. log2 of any uint64 input is at most 64,
// so this is a defensive ceiling rather than a limit expected to bind
// in practice (§4.11, §7 Max_Iterations_Reached).
const FactorialBinarySplitMaxRecursions = 128

// Factorial sets z to n! (§4.11). Small n is computed by direct
// iterative multiplication; larger n uses the binary-splitting
// recurrence
//
//	n! = 2^(n - popcount(n)) * prod_{k>=0} oddProduct(n >> k)
//
// (Legendre's formula for the power of two dividing n!, combined with
// Luschny's observation that the remaining odd part factors the same
// way at every halving of n), with each oddProduct(m) — the product of
// the odd integers in [1, m] — itself computed by balanced binary
// splitting of that range so every multiply works on comparably sized
// operands instead of one huge accumulator against ever-larger single
// terms.
func (z *BigInt) Factorial(n uint64) error {
	if n <= FactorialSmallCutoff {
		result, err := smallFactorial(n)
		if err != nil {
			return err
		}
		_, err = z.Copy(result)
		return err
	}
	result, err := binarySplitFactorial(n)
	if err != nil {
		return err
	}
	_, err = z.Copy(result)
	return err
}

func smallFactorial(n uint64) (*BigInt, error) {
	acc, err := New().SetUint64(1)
	if err != nil {
		return nil, err
	}
	for i := uint64(2); i <= n; i++ {
		if err := acc.MulDigit(acc, Digit(i)); err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func binarySplitFactorial(n uint64) (*BigInt, error) {
	acc, err := New().SetUint64(1)
	if err != nil {
		return nil, err
	}
	iterations := 0
	for m := n; m >= 2; m >>= 1 {
		iterations++
		if iterations > FactorialBinarySplitMaxRecursions {
			return nil, wrap(ErrMaxIterationsReached, "Factorial: binary-split recursion bound exceeded")
		}
		odd, err := oddProductUpTo(m)
		if err != nil {
			return nil, err
		}
		if err := acc.Mul(acc, odd); err != nil {
			return nil, err
		}
	}
	shift := n - uint64(bits.OnesCount64(n))
	if err := acc.ShiftLeft(acc, int(shift)); err != nil {
		return nil, err
	}
	return acc, nil
}

// oddProductUpTo returns the product of all odd integers in [1, m].
func oddProductUpTo(m uint64) (*BigInt, error) {
	if m < 1 {
		return New().SetUint64(1)
	}
	hi := m
	if hi%2 == 0 {
		hi--
	}
	if hi < 1 {
		return New().SetUint64(1)
	}
	return recursiveOddProduct(1, hi)
}

// recursiveOddProduct returns the product of the odd integers in
// [lo, hi] (both inclusive and both odd), splitting the range in half
// at an odd midpoint and recursing — the "_recursive_product" half of
// the binary-splitting scheme, independent of the outer halving-of-n
// loop above.
func recursiveOddProduct(lo, hi uint64) (*BigInt, error) {
	count := (hi-lo)/2 + 1
	switch {
	case count == 1:
		return New().SetUint64(lo)
	case count == 2:
		left, err := New().SetUint64(lo)
		if err != nil {
			return nil, err
		}
		right, err := New().SetUint64(hi)
		if err != nil {
			return nil, err
		}
		result := New()
		if err := result.Mul(left, right); err != nil {
			return nil, err
		}
		return result, nil
	default:
		mid := lo + 2*(count/2)
		left, err := recursiveOddProduct(lo, mid-2)
		if err != nil {
			return nil, err
		}
		right, err := recursiveOddProduct(mid, hi)
		if err != nil {
			return nil, err
		}
		result := New()
		if err := result.Mul(left, right); err != nil {
			return nil, err
		}
		return result, nil
	}
}
