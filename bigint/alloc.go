package bigint

import "sync"

// Allocator is the caller-supplied storage abstraction for digit
// buffers (§3.3, §6). BigInt never calls make([]Digit, ...) directly;
// every backing buffer is acquired from an Allocator so that a caller
// who wants pooled or arena-backed storage can supply one.
type Allocator interface {
	// Alloc returns a zeroed buffer of length n.
	Alloc(n int) ([]Digit, error)
	// Realloc returns a buffer of length n whose first min(n, len(buf))
	// digits equal buf's, with any new slots zeroed. It may reuse buf's
	// storage or return a fresh buffer; the caller must stop using buf
	// once Realloc returns.
	Realloc(buf []Digit, n int) ([]Digit, error)
	// Free releases buf. Implementations that don't pool may no-op.
	Free(buf []Digit)
}

// heapAllocator is the zero-configuration Allocator: every call goes
// through the Go heap and Free is a no-op, relying on the garbage
// collector. It is what a BigInt uses when no Allocator was supplied.
type heapAllocator struct{}

// DefaultAllocator is the Allocator used by BigInt values created with
// the zero value or New.
var DefaultAllocator Allocator = heapAllocator{}

func (heapAllocator) Alloc(n int) ([]Digit, error) {
	if n < 0 {
		return nil, wrap(ErrInvalidArgument, "alloc: negative size")
	}
	return make([]Digit, n), nil
}

func (heapAllocator) Realloc(buf []Digit, n int) ([]Digit, error) {
	if n < 0 {
		return nil, wrap(ErrInvalidArgument, "realloc: negative size")
	}
	if n <= cap(buf) {
		out := buf[:n]
		for i := len(buf); i < n; i++ {
			out[i] = 0
		}
		return out, nil
	}
	out := make([]Digit, n)
	copy(out, buf)
	return out, nil
}

func (heapAllocator) Free([]Digit) {}

// sizeClassPool pools digit buffers by power-of-two size class. It is
// the Allocator NewPoolAllocator returns, giving long-running callers
// real buffer reuse instead of churning the GC on every scratch BigInt.
type sizeClassPool struct {
	mu    sync.Mutex
	pools map[int]*sync.Pool
}

// NewPoolAllocator returns an Allocator that pools digit buffers across
// BigInt lifetimes. Free
// returns the buffer's backing array to its size class; a subsequent
// Alloc/Realloc of a compatible size reuses it instead of allocating.
// It is safe for concurrent use by multiple goroutines even though a
// single BigInt is not (§5): the pool only ever hands out buffers, it
// never reads or writes a caller's digits.
func NewPoolAllocator() Allocator {
	return &sizeClassPool{pools: make(map[int]*sync.Pool)}
}

func sizeClass(n int) int {
	c := defaultDigitCount
	for c < n {
		c <<= 1
	}
	return c
}

func (p *sizeClassPool) poolFor(class int) *sync.Pool {
	p.mu.Lock()
	defer p.mu.Unlock()
	pl, ok := p.pools[class]
	if !ok {
		cls := class
		pl = &sync.Pool{New: func() interface{} {
			buf := make([]Digit, cls)
			return &buf
		}}
		p.pools[class] = pl
	}
	return pl
}

func (p *sizeClassPool) Alloc(n int) ([]Digit, error) {
	if n < 0 {
		return nil, wrap(ErrInvalidArgument, "alloc: negative size")
	}
	class := sizeClass(n)
	bufp := p.poolFor(class).Get().(*[]Digit)
	buf := (*bufp)[:n]
	for i := range buf {
		buf[i] = 0
	}
	return buf, nil
}

func (p *sizeClassPool) Realloc(buf []Digit, n int) ([]Digit, error) {
	if n < 0 {
		return nil, wrap(ErrInvalidArgument, "realloc: negative size")
	}
	if n <= cap(buf) {
		out := buf[:n]
		for i := len(buf); i < n; i++ {
			out[i] = 0
		}
		return out, nil
	}
	out, err := p.Alloc(n)
	if err != nil {
		return nil, err
	}
	copy(out, buf)
	p.Free(buf)
	return out, nil
}

func (p *sizeClassPool) Free(buf []Digit) {
	if cap(buf) == 0 {
		return
	}
	class := sizeClass(cap(buf))
	if class != cap(buf) {
		// not one of our size classes (e.g. grown via plain append
		// elsewhere); nothing to return.
		return
	}
	full := buf[:cap(buf)]
	p.poolFor(class).Put(&full)
}
