// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numc/matrix"
)

// TestDefaultOptions_Documented verifies that the resolved defaults equal the
// documented constants. Not parallel: it pins NUMC_VARIANT.
func TestDefaultOptions_Documented(t *testing.T) {
	t.Setenv(matrix.VariantEnvVar, "")
	o := matrix.GatherOptionsSnapshot_TestOnly()

	assert.Equal(t, matrix.DefaultVariant, o.Variant)
	assert.Equal(t, matrix.DefaultWorkers, o.Workers)
	assert.Equal(t, matrix.DefaultParallelThreshold, o.ParallelThreshold)
	assert.Equal(t, matrix.DefaultMulParallelThreshold, o.MulParallelThreshold)
	assert.Equal(t, matrix.DefaultMulPanel, o.MulPanel)
}

// TestOptions_LastWriterWins ensures each Option toggles exactly its field.
func TestOptions_LastWriterWins(t *testing.T) {
	t.Parallel()
	o := matrix.GatherOptionsSnapshot_TestOnly(
		matrix.WithVariant(matrix.VariantReference),
		matrix.WithVariant(matrix.VariantOptimized),
		matrix.WithWorkers(3),
		matrix.WithParallelThreshold(10),
		matrix.WithMulParallelThreshold(20),
		matrix.WithMulPanel(5),
		nil,
	)
	assert.Equal(t, matrix.VariantOptimized, o.Variant)
	assert.Equal(t, 3, o.Workers)
	assert.Equal(t, 10, o.ParallelThreshold)
	assert.Equal(t, 20, o.MulParallelThreshold)
	assert.Equal(t, 5, o.MulPanel)
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	t.Parallel()
	require.PanicsWithValue(t, matrix.PanicVariantInvalid_TestOnly, func() { matrix.WithVariant(matrix.Variant(7)) })
	require.PanicsWithValue(t, matrix.PanicWorkersInvalid_TestOnly, func() { matrix.WithWorkers(-1) })
	require.PanicsWithValue(t, matrix.PanicThresholdInvalid_TestOnly, func() { matrix.WithParallelThreshold(0) })
	require.PanicsWithValue(t, matrix.PanicMulThresholdInvalid_TestOnly, func() { matrix.WithMulParallelThreshold(0) })
	require.PanicsWithValue(t, matrix.PanicMulPanelInvalid_TestOnly, func() { matrix.WithMulPanel(0) })
}

func TestParseVariant(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want matrix.Variant
		ok   bool
	}{
		{"optimized", matrix.VariantOptimized, true},
		{" SIMD ", matrix.VariantOptimized, true},
		{"Reference", matrix.VariantReference, true},
		{"naive", matrix.VariantReference, true},
		{"gpu", 0, false},
		{"", 0, false},
	}
	for _, tc := range tests {
		got, ok := matrix.ParseVariant(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		if tc.ok {
			assert.Equal(t, tc.want, got, tc.in)
		}
	}
	assert.Equal(t, "optimized", matrix.VariantOptimized.String())
	assert.Equal(t, "reference", matrix.VariantReference.String())
	assert.Equal(t, "unknown", matrix.Variant(9).String())
}

// Not parallel: mutates the process environment.
func TestVariantFromEnv(t *testing.T) {
	t.Setenv(matrix.VariantEnvVar, "reference")
	assert.Equal(t, matrix.VariantReference, matrix.VariantFromEnv())
	assert.Equal(t, "reference", matrix.NewEngine().Name())

	// An explicit option beats the environment.
	assert.Equal(t, matrix.VariantOptimized,
		matrix.NewEngine(matrix.WithVariant(matrix.VariantOptimized)).Variant())

	t.Setenv(matrix.VariantEnvVar, "bogus")
	assert.Equal(t, matrix.DefaultVariant, matrix.VariantFromEnv())
}
