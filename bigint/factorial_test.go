package bigint

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// bigFactorial is a straight-line math/big oracle, independent of this
// package's binary-splitting implementation, used only to cross-check
// larger values in tests.
func bigFactorial(n uint64) *big.Int {
	out := big.NewInt(1)
	for i := uint64(2); i <= n; i++ {
		out.Mul(out, new(big.Int).SetUint64(i))
	}
	return out
}

func TestFactorialSmallValues(t *testing.T) {
	vals := []struct {
		n    uint64
		want uint64
	}{
		{0, 1}, {1, 1}, {2, 2}, {3, 6}, {5, 120}, {10, 3628800},
	}
	for _, v := range vals {
		z := New()
		require.NoError(t, z.Factorial(v.n))
		require.Equal(t, v.want, z.Uint64(), "n=%d", v.n)
	}
}

func TestFactorial25(t *testing.T) {
	z := New()
	require.NoError(t, z.Factorial(25))
	want, _ := new(big.Int).SetString("15511210043330985984000000", 10)
	require.Equal(t, want, toBig(z))
}

func TestFactorialBinarySplitAgainstIterative(t *testing.T) {
	for _, n := range []uint64{21, 30, 50, 100, 257} {
		z := New()
		require.NoError(t, z.Factorial(n))
		want := bigFactorial(n)
		require.Equal(t, want.String(), toBig(z).String(), "n=%d", n)
	}
}

func TestFactorialCutoffBoundaryMatchesAcrossPaths(t *testing.T) {
	lo, hi := New(), New()
	require.NoError(t, lo.Factorial(FactorialSmallCutoff))
	require.NoError(t, hi.Factorial(FactorialSmallCutoff+1))

	want := New()
	require.NoError(t, want.MulDigit(lo, FactorialSmallCutoff+1))
	require.Equal(t, toBig(want), toBig(hi))
}

func TestOddProductUpToSmall(t *testing.T) {
	z, err := oddProductUpTo(11)
	require.NoError(t, err)
	require.Equal(t, uint64(1*3*5*7*9*11), z.Uint64())
}
