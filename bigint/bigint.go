// Package bigint implements the arbitrary-precision signed-integer
// kernel described by the sign-magnitude data model: a digit vector
// (§3), a storage layer (grow/clamp/zero-unused, §4.1), an unsigned
// arithmetic kernel (§4.2-§4.9), signed dispatch (§4.3-§4.4), modular
// combinators (§4.10), and the binary-split factorial (§4.11).
//
// Every BigInt exclusively owns its backing digit buffer, obtained from
// an Allocator. Operations mutate their destination in place and accept
// the destination aliasing any source operand. No BigInt is safe for
// concurrent mutation; callers serialize access to a shared value
// themselves.
package bigint

// Digit is one fixed-width unsigned unit of magnitude. Only the low
// DigitBits bits are ever significant; the bits above that are
// transient carry headroom cleared by Mask before a value is stored.
type Digit = uint64

// DigitBits is the number of payload bits per digit. 60 leaves 4 bits
// of headroom above the digit payload inside a 64-bit Word, enough for
// the carry/borrow bit produced by add/sub, and lines up with the
// word-pair technique arith.go uses for multiply (a 60-bit-digit
// product fits in two Digit-sized limbs with bits to spare).
const DigitBits = 60

// Mask keeps a digit's contents within [0, 2^DigitBits).
const Mask Digit = 1<<DigitBits - 1

// defaultDigitCount is the smallest capacity grow ever allocates.
const defaultDigitCount = 4

// Sign is the sign of a BigInt. The zero value, Positive, is also the
// canonical sign of zero (§3.2 clause 5).
type Sign int8

const (
	Positive Sign = iota
	Negative
)

// Flip returns the opposite sign.
func (s Sign) Flip() Sign {
	if s == Positive {
		return Negative
	}
	return Positive
}

func (s Sign) String() string {
	if s == Negative {
		return "-"
	}
	return "+"
}

// BigInt is a sign-magnitude arbitrary-precision integer (§3.1). The
// zero value represents 0 and is ready to use.
type BigInt struct {
	digit []Digit // little-endian magnitude; len(digit) may exceed used
	used  int     // number of significant digits; used == 0 means zero
	sign  Sign
	alloc Allocator
}

// New returns a BigInt initialized to 0 using the default allocator.
func New() *BigInt {
	return &BigInt{}
}

// NewWithAllocator returns a BigInt initialized to 0 that acquires all
// of its storage through alloc.
func NewWithAllocator(alloc Allocator) *BigInt {
	return &BigInt{alloc: alloc}
}

func (z *BigInt) allocator() Allocator {
	if z.alloc != nil {
		return z.alloc
	}
	return DefaultAllocator
}

// SetAllocator installs alloc as z's storage allocator. It is intended
// to be called once, before z's first mutation; switching allocators
// on a populated BigInt does not migrate its existing buffer.
func (z *BigInt) SetAllocator(alloc Allocator) {
	z.alloc = alloc
}

// Release returns z's backing storage to its allocator and resets z to
// the zero value. Callers that allocate many short-lived BigInts (a
// division's local scratch, a Comba accumulator fallback) should
// Release them on every exit path, including error paths (§3.3, §5).
func (z *BigInt) Release() {
	if z.digit != nil {
		z.allocator().Free(z.digit)
	}
	z.digit = nil
	z.used = 0
	z.sign = Positive
}

// Sign returns -1, 0 or +1 according to whether z is negative, zero or
// positive.
func (z *BigInt) Sign() int {
	if z.used == 0 {
		return 0
	}
	if z.sign == Negative {
		return -1
	}
	return 1
}

// IsZero reports whether z == 0.
func (z *BigInt) IsZero() bool {
	return z.used == 0
}

// SetUint64 sets z to x and returns z.
func (z *BigInt) SetUint64(x uint64) (*BigInt, error) {
	if err := z.grow(2); err != nil {
		return nil, err
	}
	old := z.used
	z.digit[0] = Digit(x) & Mask
	z.digit[1] = Digit(x >> DigitBits)
	z.used = 2
	z.sign = Positive
	z.zeroUnused(old)
	z.clamp()
	return z, nil
}

// SetInt64 sets z to x and returns z.
func (z *BigInt) SetInt64(x int64) (*BigInt, error) {
	neg := x < 0
	u := uint64(x)
	if neg {
		u = uint64(-x)
	}
	if _, err := z.SetUint64(u); err != nil {
		return nil, err
	}
	if z.used > 0 && neg {
		z.sign = Negative
	}
	return z, nil
}

// Uint64 returns the low 64 bits of |z| as a uint64, analogous to
// (*big.Int).Uint64: it is exact only when z fits.
func (z *BigInt) Uint64() uint64 {
	var v uint64
	for i := min(z.used, 2) - 1; i >= 0; i-- {
		v = v<<DigitBits | uint64(z.digit[i])
	}
	return v
}

// Copy sets z to a copy of x's value, with its own backing storage, and
// returns z.
func (z *BigInt) Copy(x *BigInt) (*BigInt, error) {
	if z == x {
		return z, nil
	}
	old := z.used
	if err := z.grow(x.used); err != nil {
		return nil, err
	}
	copy(z.digit, x.digit[:x.used])
	z.used = x.used
	z.sign = x.sign
	z.zeroUnused(old)
	z.clamp()
	return z, nil
}
