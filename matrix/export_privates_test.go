// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for internal options and storage state.
//
// Purpose:
//   - Expose the resolved Options and the Storage buffer length to matrix_test
//     without widening the production API.

// OptionsSnapshot is a read-only copy of the resolved Options.
type OptionsSnapshot struct {
	Variant              Variant
	Workers              int
	ParallelThreshold    int
	MulParallelThreshold int
	MulPanel             int
}

// GatherOptionsSnapshot_TestOnly resolves opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		Variant:              o.variant,
		Workers:              o.workers,
		ParallelThreshold:    o.parallelThreshold,
		MulParallelThreshold: o.mulParallelThreshold,
		MulPanel:             o.mulPanel,
	}
}

// StorageLen_TestOnly returns the element count of m's buffer (0 once dropped).
func StorageLen_TestOnly(m *Dense) int { return m.storage.Len() }

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicVariantInvalid_TestOnly      = panicVariantInvalid
	PanicWorkersInvalid_TestOnly      = panicWorkersInvalid
	PanicThresholdInvalid_TestOnly    = panicThresholdInvalid
	PanicMulThresholdInvalid_TestOnly = panicMulThresholdInvalid
	PanicMulPanelInvalid_TestOnly     = panicMulPanelInvalid
)
