package bigint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGrowPreservesDigitsAndZeroesNewSlots(t *testing.T) {
	z := New()
	_, err := z.SetUint64(0xdeadbeef)
	require.NoError(t, err)
	before := append([]Digit(nil), z.digit[:z.used]...)

	require.NoError(t, z.grow(10))
	require.GreaterOrEqual(t, cap(z.digit), 10)
	require.Equal(t, before, z.digit[:len(before)])
	for i := len(before); i < len(z.digit); i++ {
		require.Zero(t, z.digit[i])
	}
}

func TestClampDropsLeadingZeroDigits(t *testing.T) {
	z := New()
	require.NoError(t, z.grow(4))
	z.digit[0] = 5
	z.digit[1] = 0
	z.digit[2] = 0
	z.used = 3
	z.clamp()
	require.Equal(t, 1, z.used)
}

func TestClampForcesPositiveZero(t *testing.T) {
	z := New()
	require.NoError(t, z.grow(2))
	z.used = 1
	z.digit[0] = 0
	z.sign = Negative
	z.clamp()
	require.Equal(t, 0, z.used)
	require.Equal(t, Positive, z.sign)
	require.True(t, z.IsZero())
}

func TestSetLoggerNilRestoresNop(t *testing.T) {
	SetLogger(nil)
	require.NotNil(t, logger)
}

// TestGrowFastPathZeroesExposedTailAfterPoolReuse reproduces the
// stale-tenant scenario PoolAllocator is built for: a class-16 buffer
// carries a previous tenant's nonzero digits in [10,16) because that
// tenant's Free republished it at full class length, and a later
// Alloc(10) only zeroes [0,10). grow's fast path must zero [10,16)
// itself when a subsequent grow extends back into that spare capacity,
// exactly as Realloc already does.
func TestGrowFastPathZeroesExposedTailAfterPoolReuse(t *testing.T) {
	pool := NewPoolAllocator()

	poisoner := NewWithAllocator(pool)
	require.NoError(t, poisoner.grow(16))
	for i := range poisoner.digit {
		poisoner.digit[i] = 0xdead
	}
	poisoner.Release()

	victim := NewWithAllocator(pool)
	require.NoError(t, victim.grow(10))
	require.Equal(t, 10, len(victim.digit))
	if cap(victim.digit) < 16 {
		t.Skip("pool did not reuse the poisoned class-16 buffer")
	}

	require.NoError(t, victim.grow(16))
	for i := 10; i < len(victim.digit); i++ {
		require.Zero(t, victim.digit[i], "index %d leaked a prior tenant's digit via grow's fast path", i)
	}
}

func TestPoolAllocatorRoundTrip(t *testing.T) {
	pool := NewPoolAllocator()
	z := NewWithAllocator(pool)
	_, err := z.SetUint64(12345)
	require.NoError(t, err)
	require.Equal(t, uint64(12345), z.Uint64())
	z.Release()
}
