// SPDX-License-Identifier: MIT

package simd

import (
	"os"
	"strconv"

	"github.com/ajroetker/go-highway/hwy"
)

// Level identifies the instruction set the primitives are bound to.
type Level int

const (
	// LevelScalar means plain loops, one float64 per operation.
	LevelScalar Level = iota

	// LevelAVX2 uses 256-bit registers (4 float64 lanes).
	LevelAVX2

	// LevelAVX512 uses 512-bit registers (8 float64 lanes).
	LevelAVX512
)

// NoSimdEnvVar names the environment variable that forces LevelScalar.
// HWY_NO_SIMD has the same effect through hwy's own detection.
const NoSimdEnvVar = "NUMC_NO_SIMD"

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	default:
		return "unknown"
	}
}

// Lanes returns how many float64 values one operation of the level handles.
func (l Level) Lanes() int {
	switch l {
	case LevelAVX512:
		return 8
	case LevelAVX2:
		return 4
	default:
		return 1
	}
}

// currentLevel is the level bound by init; never a level without kernels.
var currentLevel = LevelScalar

// CurrentLevel returns the level the primitives are bound to.
func CurrentLevel() Level { return currentLevel }

// CurrentName returns the name of the bound level ("avx2", "scalar", ...).
func CurrentName() string { return currentLevel.String() }

// Lanes returns the float64 lane count of the bound level.
func Lanes() int { return currentLevel.Lanes() }

// HostName returns the instruction set hwy detected on this CPU, e.g.
// "avx512" or "neon". It may name a set numc has no kernels for; the bound
// level is CurrentName.
func HostName() string { return hwy.CurrentName() }

// NoSimdEnv reports whether NUMC_NO_SIMD requests the scalar variant.
// Any non-empty value that does not parse as a boolean counts as true.
func NoSimdEnv() bool {
	val := os.Getenv(NoSimdEnvVar)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}

	return true
}

// impl is one complete set of primitives for a single level.
type impl struct {
	add  func(dst, a, b []float64)
	sub  func(dst, a, b []float64)
	neg  func(dst, a []float64)
	abs  func(dst, a []float64)
	fill func(dst []float64, v float64)
	dot  func(a, b []float64) float64
	dot4 func(a, b0, b1, b2, b3 []float64) (float64, float64, float64, float64)
}

// bound is the primitive set selected by setLevel.
var bound = scalarImpl

// setLevel binds the kernels of l, or the scalar ones when this build has no
// kernels for l. It returns the level actually bound.
func setLevel(l Level) Level {
	if vi, ok := vectorImpl(l); ok {
		currentLevel, bound = l, vi
	} else {
		currentLevel, bound = LevelScalar, scalarImpl
	}

	return currentLevel
}

func init() {
	if NoSimdEnv() {
		setLevel(LevelScalar)
		return
	}
	setLevel(hostLevel())
}
