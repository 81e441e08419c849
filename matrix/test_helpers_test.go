// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for engine tests.
//   • Build matching Dense/oracle pairs for differential checks.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numc/matrix"
	"github.com/katalvlaran/numc/oracle"
)

// Tolerances for results whose summation order differs between kernels.
const (
	rtol = 1e-9
	atol = 1e-12
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic At-based paths of AllClose/Equal.
type hide struct{ matrix.Matrix }

// mustRows builds a Dense from literal rows or fails the test.
func mustRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(tb, err)

	return m
}

// mustSeq builds a rows×cols Dense holding 0, 1, 2, ... in row-major order.
func mustSeq(tb testing.TB, rows, cols int) *matrix.Dense {
	tb.Helper()
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = float64(i)
	}
	m, err := matrix.NewFromSlice(rows, cols, data)
	require.NoError(tb, err)

	return m
}

// mustRandom builds a seeded rows×cols Dense with values in [-1, 1).
func mustRandom(tb testing.TB, rows, cols int, seed int64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewRandom(rows, cols, seed, -1, 1)
	require.NoError(tb, err)

	return m
}

// toOracle copies a Dense into an oracle.Matrix.
func toOracle(tb testing.TB, m *matrix.Dense) *oracle.Matrix {
	tb.Helper()
	rows, err := m.ToRows()
	require.NoError(tb, err)
	o, err := oracle.FromRows(rows)
	require.NoError(tb, err)

	return o
}

// requireClose fails unless got and want agree within rtol/atol.
func requireClose(tb testing.TB, want, got matrix.Matrix, msgAndArgs ...interface{}) {
	tb.Helper()
	ok, err := matrix.AllClose(got, want, rtol, atol)
	require.NoError(tb, err)
	require.True(tb, ok, msgAndArgs...)
}

// requireEqual fails unless got and want are element-wise identical.
func requireEqual(tb testing.TB, want, got matrix.Matrix, msgAndArgs ...interface{}) {
	tb.Helper()
	ok, err := matrix.Equal(got, want)
	require.NoError(tb, err)
	require.True(tb, ok, msgAndArgs...)
}

// engines returns the configurations every engine test runs against.
func engines() map[string]*matrix.Engine {
	return map[string]*matrix.Engine{
		"reference": matrix.NewEngine(matrix.WithVariant(matrix.VariantReference)),
		"optimized": matrix.NewEngine(matrix.WithVariant(matrix.VariantOptimized)),
		"optimized/forced-parallel": matrix.NewEngine(
			matrix.WithVariant(matrix.VariantOptimized),
			matrix.WithWorkers(3),
			matrix.WithParallelThreshold(1),
			matrix.WithMulParallelThreshold(1),
			matrix.WithMulPanel(2),
		),
	}
}
