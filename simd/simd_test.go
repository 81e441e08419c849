// SPDX-License-Identifier: MIT

package simd

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// maxLen covers several full registers plus every remainder for 8 lanes.
const maxLen = 33

func randVec(rng *rand.Rand, n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.Float64()*200 - 100
	}

	return v
}

type variant struct {
	name string
	set  impl
}

// runnable lists the vector variants this build has and this CPU can execute.
func runnable() []variant {
	var out []variant
	host := hostLevel()
	for _, l := range []Level{LevelAVX2, LevelAVX512} {
		if l > host {
			continue
		}
		if vi, ok := vectorImpl(l); ok {
			out = append(out, variant{l.String(), vi})
		}
	}

	return out
}

func TestVectorVariants_ElementwiseMatchScalar(t *testing.T) {
	t.Parallel()
	vs := runnable()
	if len(vs) == 0 {
		t.Skip("no vector kernels in this build or on this CPU")
	}
	rng := rand.New(rand.NewSource(7))

	for _, w := range vs {
		for n := 0; n <= maxLen; n++ {
			a, b := randVec(rng, n), randVec(rng, n)
			want, got := make([]float64, n), make([]float64, n)

			scalarImpl.add(want, a, b)
			w.set.add(got, a, b)
			require.Equal(t, want, got, "%s add n=%d", w.name, n)

			scalarImpl.sub(want, a, b)
			w.set.sub(got, a, b)
			require.Equal(t, want, got, "%s sub n=%d", w.name, n)

			scalarImpl.neg(want, a)
			w.set.neg(got, a)
			require.Equal(t, want, got, "%s neg n=%d", w.name, n)

			scalarImpl.abs(want, a)
			w.set.abs(got, a)
			require.Equal(t, want, got, "%s abs n=%d", w.name, n)

			scalarImpl.fill(want, 3.5)
			w.set.fill(got, 3.5)
			require.Equal(t, want, got, "%s fill n=%d", w.name, n)
		}
	}
}

func TestVectorVariants_DotWithinTolerance(t *testing.T) {
	t.Parallel()
	vs := runnable()
	if len(vs) == 0 {
		t.Skip("no vector kernels in this build or on this CPU")
	}
	rng := rand.New(rand.NewSource(11))

	for _, w := range vs {
		for n := 0; n <= maxLen; n++ {
			a := randVec(rng, n)
			b0, b1, b2, b3 := randVec(rng, n), randVec(rng, n), randVec(rng, n), randVec(rng, n)

			require.InDelta(t, scalarImpl.dot(a, b0), w.set.dot(a, b0), 1e-9, "%s dot n=%d", w.name, n)

			e0, e1, e2, e3 := scalarImpl.dot4(a, b0, b1, b2, b3)
			g0, g1, g2, g3 := w.set.dot4(a, b0, b1, b2, b3)
			require.InDelta(t, e0, g0, 1e-9, "%s dot4[0] n=%d", w.name, n)
			require.InDelta(t, e1, g1, 1e-9, "%s dot4[1] n=%d", w.name, n)
			require.InDelta(t, e2, g2, 1e-9, "%s dot4[2] n=%d", w.name, n)
			require.InDelta(t, e3, g3, 1e-9, "%s dot4[3] n=%d", w.name, n)
		}
	}
}

func TestVectorVariants_SignBitOps(t *testing.T) {
	t.Parallel()
	src := []float64{math.Inf(-1), math.Copysign(0, -1), math.NaN(), -2, 0, math.Inf(1), 7, -1e-300, 5}
	for _, w := range append([]variant{{"scalar", scalarImpl}}, runnable()...) {
		abs := make([]float64, len(src))
		neg := make([]float64, len(src))
		w.set.abs(abs, src)
		w.set.neg(neg, src)
		for i, x := range src {
			assert.Equal(t, math.Float64bits(math.Abs(x)), math.Float64bits(abs[i]), "%s abs[%d]", w.name, i)
			assert.Equal(t, math.Float64bits(-x), math.Float64bits(neg[i]), "%s neg[%d]", w.name, i)
		}
	}
}

func TestDot_ExactOnIntegers(t *testing.T) {
	t.Parallel()
	a := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	b := []float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 2}
	for _, w := range append([]variant{{"scalar", scalarImpl}}, runnable()...) {
		assert.Equal(t, 77.0, w.set.dot(a, b), w.name)
	}
	assert.Equal(t, 77.0, Dot(a, b))
}

func TestAbsBlock_IEEE(t *testing.T) {
	t.Parallel()
	src := []float64{math.Inf(-1), math.Copysign(0, -1), math.NaN(), -2}
	dst := make([]float64, len(src))
	AbsBlock(dst, src)

	assert.True(t, math.IsInf(dst[0], 1))
	assert.False(t, math.Signbit(dst[1]))
	assert.True(t, math.IsNaN(dst[2]))
	assert.Equal(t, 2.0, dst[3])
}

func TestPrimitives_LengthMismatchPanics(t *testing.T) {
	t.Parallel()
	short, long := make([]float64, 3), make([]float64, 4)

	require.PanicsWithValue(t, panicLenMismatch, func() { AddBlock(long, long, short) })
	require.PanicsWithValue(t, panicLenMismatch, func() { SubBlock(short, long, long) })
	require.PanicsWithValue(t, panicLenMismatch, func() { NegBlock(short, long) })
	require.PanicsWithValue(t, panicLenMismatch, func() { AbsBlock(long, short) })
	require.PanicsWithValue(t, panicLenMismatch, func() { Dot(short, long) })
	require.PanicsWithValue(t, panicLenMismatch, func() { Dot4(long, long, long, short, long) })
}

func TestLevel_Metadata(t *testing.T) {
	t.Parallel()
	tests := []struct {
		level Level
		name  string
		lanes int
	}{
		{LevelScalar, "scalar", 1},
		{LevelAVX2, "avx2", 4},
		{LevelAVX512, "avx512", 8},
		{Level(99), "unknown", 1},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.name, tc.level.String())
		assert.Equal(t, tc.lanes, tc.level.Lanes(), tc.name)
	}
	assert.Equal(t, CurrentLevel().Lanes(), Lanes())
	assert.Equal(t, CurrentLevel().String(), CurrentName())
	assert.NotEmpty(t, HostName())
}

// The bound level must always have kernels behind it: a vector name is never
// reported for scalar code.
func TestCurrentLevel_HasKernels(t *testing.T) {
	t.Parallel()
	if CurrentLevel() == LevelScalar {
		return
	}
	_, ok := vectorImpl(CurrentLevel())
	require.True(t, ok, "level %s reported without vector kernels", CurrentName())
	require.LessOrEqual(t, CurrentLevel(), hostLevel())
}

func TestSetLevel_FallsBackWithoutKernels(t *testing.T) {
	saved := currentLevel
	t.Cleanup(func() { setLevel(saved) })

	for _, l := range []Level{LevelScalar, LevelAVX2, LevelAVX512, Level(99)} {
		got := setLevel(l)
		if _, ok := vectorImpl(l); ok {
			assert.Equal(t, l, got)
		} else {
			assert.Equal(t, LevelScalar, got, "level %d", l)
			assert.Equal(t, "scalar", CurrentName())
		}
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := map[string]bool{
		"":      false,
		"0":     false,
		"false": false,
		"1":     true,
		"true":  true,
		"yes":   true,
	}
	for val, want := range tests {
		t.Setenv(NoSimdEnvVar, val)
		assert.Equal(t, want, NoSimdEnv(), "value %q", val)
	}
}

func BenchmarkDot(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	x, y := randVec(rng, 1024), randVec(rng, 1024)
	var sink float64
	for _, w := range append([]variant{{"scalar", scalarImpl}}, runnable()...) {
		b.Run(w.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sink = w.set.dot(x, y)
			}
		})
	}
	_ = sink
}
