// SPDX-License-Identifier: MIT

//go:build !(amd64 && goexperiment.simd)

package simd

// Without GOEXPERIMENT=simd on amd64 there are no vector kernels; hwy reports
// the same on amd64 and its NEON paths are assembly numc does not bind.

func hostLevel() Level { return LevelScalar }

func vectorImpl(Level) (impl, bool) { return impl{}, false }
