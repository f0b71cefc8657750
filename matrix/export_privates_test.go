// SPDX-License-Identifier: MIT
// Test-only bridge: exposes private panic messages and micro-kernels to the
// external matrix_test package without widening the public API.

package matrix

const (
	PanicEpsilonInvalid_TestOnly     = panicEpsilonInvalid
	PanicToleranceInvalid_TestOnly   = panicToleranceInvalid
	PanicMaxIterInvalid_TestOnly     = panicMaxIterInvalid
	PanicSingularEpsInvalid_TestOnly = panicSingularEpsInvalid
	PanicDeterminantInvalid_TestOnly = panicDeterminantInvalid
)

// LUDet_TestOnly runs the elimination kernel on a raw row-major buffer.
func LUDet_TestOnly(a []float64, n int) float64 { return luDet(a, n) }
