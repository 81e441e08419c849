// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numc/matrix"
)

// TestDifferential_AgainstOracle runs every operation on random inputs through
// each engine and through the naive oracle and compares the results.
func TestDifferential_AgainstOracle(t *testing.T) {
	t.Parallel()
	for _, n := range []int{2, 17, 100, 1000} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			if n >= 1000 && testing.Short() {
				t.Skip("large differential run skipped in -short mode")
			}
			t.Parallel()

			a := mustRandom(t, n, n, int64(n))
			b := mustRandom(t, n, n, int64(n)+1)
			oa, ob := toOracle(t, a), toOracle(t, b)

			wantAdd, err := oa.Add(ob)
			require.NoError(t, err)
			wantSub, err := oa.Sub(ob)
			require.NoError(t, err)
			wantMul, err := oa.Mul(ob)
			require.NoError(t, err)
			wantNeg, wantAbs := oa.Neg(), oa.Abs()

			for name, e := range engines() {
				if n >= 1000 && name == "reference" {
					continue // the oracle already is a scalar triple loop
				}
				got, err := e.Add(a, b)
				require.NoError(t, err)
				requireEqual(t, wantAdd, got, "%s add", name)

				got, err = e.Sub(a, b)
				require.NoError(t, err)
				requireEqual(t, wantSub, got, "%s sub", name)

				got, err = e.Neg(a)
				require.NoError(t, err)
				requireEqual(t, wantNeg, got, "%s neg", name)

				got, err = e.Abs(a)
				require.NoError(t, err)
				requireEqual(t, wantAbs, got, "%s abs", name)

				got, err = e.Mul(a, b)
				require.NoError(t, err)
				requireClose(t, wantMul, got, "%s mul", name)
			}
		})
	}
}

func TestDifferential_PowAgainstOracle(t *testing.T) {
	t.Parallel()
	for _, n := range []int{2, 9, 100} {
		a, err := matrix.NewRandom(n, n, int64(n), -1/float64(n), 1/float64(n))
		require.NoError(t, err)
		oa := toOracle(t, a)

		for _, p := range []int{0, 1, 2, 7, 10} {
			want, err := oa.Pow(p)
			require.NoError(t, err)
			for name, e := range engines() {
				got, err := e.Pow(a, p)
				require.NoError(t, err)
				requireClose(t, want, got, "%s n=%d p=%d", name, n, p)
			}
		}
	}
}

func TestDifferential_RectangularMul(t *testing.T) {
	t.Parallel()
	for _, sh := range [][3]int{{1, 1, 1}, {1, 9, 1}, {3, 1, 5}, {7, 13, 2}, {33, 5, 17}} {
		m, k, n := sh[0], sh[1], sh[2]
		a := mustRandom(t, m, k, int64(m*100+k))
		b := mustRandom(t, k, n, int64(k*100+n))
		want, err := toOracle(t, a).Mul(toOracle(t, b))
		require.NoError(t, err)
		for name, e := range engines() {
			got, err := e.Mul(a, b)
			require.NoError(t, err)
			requireClose(t, want, got, "%s %v", name, sh)
		}
	}
}

func TestAllClose_FastPathMatchesFallback(t *testing.T) {
	t.Parallel()
	a := mustRandom(t, 4, 4, 1)
	b, _ := a.Clone()
	require.NoError(t, b.Set(2, 3, 1e-3))

	fast, err := matrix.AllClose(a, b, 0, 1e-6)
	require.NoError(t, err)
	slow, err := matrix.AllClose(hide{a}, hide{b}, 0, 1e-6)
	require.NoError(t, err)
	require.Equal(t, fast, slow)

	ok, err := matrix.AllClose(a, a, 0, 0)
	require.NoError(t, err)
	require.True(t, ok)
	ok, _ = matrix.AllClose(hide{a}, a, 0, 0)
	require.True(t, ok)

	_, err = matrix.AllClose(a, mustSeq(t, 2, 2), 1, 1)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = matrix.AllClose(a, nil, 1, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	// A released handle behind a wrapper is caught by At, not read as zeros.
	gone, _ := matrix.NewZeros(4, 4)
	gone.Release()
	zero, _ := matrix.NewZeros(4, 4)
	ok, err = matrix.AllClose(hide{gone}, zero, 0, 0)
	require.ErrorIs(t, err, matrix.ErrReleased)
	require.False(t, ok)
	ok, err = matrix.Equal(zero, hide{gone})
	require.ErrorIs(t, err, matrix.ErrReleased)
	require.False(t, ok)
}
