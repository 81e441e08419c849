// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Engine. This file defines:
//   - Variant (kernel selection) and its environment override,
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: the only global input is NUMC_VARIANT, read when
//     an Engine is built without WithVariant.
//   - No dead switches: each option reaches the kernel and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"os"
	"strings"

	"github.com/katalvlaran/numc/kernel"
)

// Variant selects the kernel family used by an Engine.
type Variant int

const (
	// VariantOptimized uses lane-blocked, packed and parallel kernels.
	VariantOptimized Variant = iota

	// VariantReference uses plain scalar loops.
	VariantReference
)

// String returns "optimized", "reference" or "unknown".
func (v Variant) String() string {
	switch v {
	case VariantOptimized:
		return "optimized"
	case VariantReference:
		return "reference"
	default:
		return "unknown"
	}
}

// ParseVariant maps a case-insensitive name to a Variant.
// Accepts "optimized"/"opt"/"simd" and "reference"/"ref"/"naive".
func ParseVariant(s string) (Variant, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "optimized", "opt", "simd":
		return VariantOptimized, true
	case "reference", "ref", "naive":
		return VariantReference, true
	default:
		return 0, false
	}
}

// VariantEnvVar names the environment variable that selects the variant of
// engines built without WithVariant.
const VariantEnvVar = "NUMC_VARIANT"

// VariantFromEnv returns the variant named by NUMC_VARIANT, or DefaultVariant
// when it is unset or unrecognised.
func VariantFromEnv() Variant {
	if v, ok := ParseVariant(os.Getenv(VariantEnvVar)); ok {
		return v
	}

	return DefaultVariant
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultVariant is used when neither WithVariant nor NUMC_VARIANT decide.
	DefaultVariant = VariantOptimized

	// DefaultWorkers of 0 bounds each parallel call by GOMAXPROCS.
	DefaultWorkers = 0

	// DefaultParallelThreshold is the element count from which element-wise
	// kernels run in parallel.
	DefaultParallelThreshold = kernel.DefaultParallelThreshold

	// DefaultMulParallelThreshold is the m*n*k estimate from which Mul runs
	// in parallel.
	DefaultMulParallelThreshold = kernel.DefaultMulParallelThreshold

	// DefaultMulPanel is the number of packed columns Mul processes per panel.
	DefaultMulPanel = kernel.DefaultMulPanel

	// DefaultEpsilon is the tolerance used by examples and tests for AllClose.
	DefaultEpsilon = 1e-9
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicVariantInvalid      = "matrix: WithVariant: unknown variant"
	panicWorkersInvalid      = "matrix: WithWorkers: n must be >= 0"
	panicThresholdInvalid    = "matrix: WithParallelThreshold: elems must be >= 1"
	panicMulThresholdInvalid = "matrix: WithMulParallelThreshold: work must be >= 1"
	panicMulPanelInvalid     = "matrix: WithMulPanel: cols must be >= 1"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Later options override earlier ones.
type Option func(*Options)

// Options stores the effective Engine configuration after applying Option
// setters. Fields are unexported; read them through the Engine.
type Options struct {
	variant              Variant
	workers              int
	parallelThreshold    int
	mulParallelThreshold int
	mulPanel             int
}

// WithVariant selects the kernel family. Panics on an unknown Variant.
func WithVariant(v Variant) Option {
	if v != VariantOptimized && v != VariantReference {
		panic(panicVariantInvalid)
	}

	return func(o *Options) { o.variant = v }
}

// WithWorkers bounds the goroutines of one parallel kernel call.
// n == 0 means GOMAXPROCS. Panics when n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithParallelThreshold sets the element count from which element-wise
// kernels split rows across goroutines. 1 forces parallel execution.
// Panics when elems < 1.
func WithParallelThreshold(elems int) Option {
	if elems < 1 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.parallelThreshold = elems }
}

// WithMulParallelThreshold sets the m*n*k estimate from which Mul splits
// output rows across goroutines. Panics when work < 1.
func WithMulParallelThreshold(work int) Option {
	if work < 1 {
		panic(panicMulThresholdInvalid)
	}

	return func(o *Options) { o.mulParallelThreshold = work }
}

// WithMulPanel sets how many packed columns Mul processes per panel.
// Panics when cols < 1.
func WithMulPanel(cols int) Option {
	if cols < 1 {
		panic(panicMulPanelInvalid)
	}

	return func(o *Options) { o.mulPanel = cols }
}

// defaultOptions returns the documented defaults, variant taken from the
// environment.
func defaultOptions() Options {
	return Options{
		variant:              VariantFromEnv(),
		workers:              DefaultWorkers,
		parallelThreshold:    DefaultParallelThreshold,
		mulParallelThreshold: DefaultMulParallelThreshold,
		mulPanel:             DefaultMulPanel,
	}
}

// gatherOptions applies opts over the defaults in order; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// kernelConfig converts the options into the optimized kernel's Config.
func (o Options) kernelConfig() kernel.Config {
	return kernel.Config{
		Workers:              o.workers,
		ParallelThreshold:    o.parallelThreshold,
		MulParallelThreshold: o.mulParallelThreshold,
		MulPanel:             o.mulPanel,
	}
}
