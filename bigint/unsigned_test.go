package bigint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddUnsignedCarriesIntoNewDigit(t *testing.T) {
	a, b := New(), New()
	_, err := a.SetUint64(uint64(Mask))
	require.NoError(t, err)
	_, err = b.SetUint64(1)
	require.NoError(t, err)

	z := New()
	require.NoError(t, z.addUnsigned(a, b))
	require.Equal(t, 2, z.used)
	require.Equal(t, Digit(0), z.digit[0])
	require.Equal(t, Digit(1), z.digit[1])
}

func TestSubUnsignedExact(t *testing.T) {
	a, b := New(), New()
	_, err := a.SetUint64(1000)
	require.NoError(t, err)
	_, err = b.SetUint64(1000)
	require.NoError(t, err)

	z := New()
	require.NoError(t, z.subUnsigned(a, b))
	require.True(t, z.IsZero())
}

func TestCmpMagnitude(t *testing.T) {
	a, b := New(), New()
	_, err := a.SetUint64(5)
	require.NoError(t, err)
	_, err = b.SetUint64(10)
	require.NoError(t, err)
	require.Equal(t, -1, cmpMagnitude(a, b))
	require.Equal(t, 1, cmpMagnitude(b, a))
	require.Equal(t, 0, cmpMagnitude(a, a))
}

func TestAddUnsignedAliasesDest(t *testing.T) {
	a := New()
	_, err := a.SetUint64(41)
	require.NoError(t, err)
	b := New()
	_, err = b.SetUint64(1)
	require.NoError(t, err)

	require.NoError(t, a.addUnsigned(a, b))
	require.Equal(t, uint64(42), a.Uint64())
}

func TestShl1Shr1RoundTrip(t *testing.T) {
	a := New()
	_, err := a.SetUint64(0x1_0000_0001)
	require.NoError(t, err)

	shifted := New()
	require.NoError(t, shifted.shl1(a))
	require.Equal(t, uint64(0x2_0000_0002), shifted.Uint64())

	back := New()
	require.NoError(t, back.shr1(shifted))
	require.Equal(t, a.Uint64(), back.Uint64())
}
