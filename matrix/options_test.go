// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matops/matrix"
)

// TestDefaultOptions_Documented verifies that NewOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.NewOptions()

	assert.Equal(t, matrix.DefaultEpsilon, o.Epsilon())
	assert.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf())
	assert.Equal(t, matrix.DefaultTolerance, o.Tolerance())
	assert.Equal(t, matrix.DefaultMaxIterations, o.MaxIterations())
	assert.Equal(t, matrix.DefaultSingularEpsilon, o.SingularEpsilon())
	assert.Equal(t, matrix.DefaultDeterminant, o.Determinant())
	assert.Equal(t, matrix.DetLU, o.Determinant())
}

// TestNewOptions_LastWriterWins ensures each Option toggles exactly its field
// and later options override earlier ones.
func TestNewOptions_LastWriterWins(t *testing.T) {
	o := matrix.NewOptions(
		matrix.WithNoValidateNaNInf(),
		matrix.WithValidateNaNInf(),
		matrix.WithTolerance(1e-6),
		matrix.WithTolerance(1e-4),
		nil, // nil setters are skipped
		matrix.WithDeterminant(matrix.DetDiagonal),
	)

	assert.True(t, o.ValidateNaNInf())
	assert.Equal(t, 1e-4, o.Tolerance())
	assert.Equal(t, matrix.DetDiagonal, o.Determinant())
	assert.Equal(t, matrix.DefaultEpsilon, o.Epsilon(), "untouched field keeps default")
	assert.Equal(t, matrix.DefaultMaxIterations, o.MaxIterations())

	o = matrix.NewOptions(
		matrix.WithEpsilon(0),
		matrix.WithMaxIterations(7),
		matrix.WithSingularEpsilon(1e-12),
	)
	assert.Zero(t, o.Epsilon())
	assert.Equal(t, 7, o.MaxIterations())
	assert.Equal(t, 1e-12, o.SingularEpsilon())
}

// TestOptionPanics checks that nonsensical values panic with stable messages.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		msg  string
		fn   func()
	}{
		{"EpsNegative", matrix.PanicEpsilonInvalid_TestOnly, func() { matrix.WithEpsilon(-1) }},
		{"EpsNaN", matrix.PanicEpsilonInvalid_TestOnly, func() { matrix.WithEpsilon(math.NaN()) }},
		{"TolZero", matrix.PanicToleranceInvalid_TestOnly, func() { matrix.WithTolerance(0) }},
		{"TolInf", matrix.PanicToleranceInvalid_TestOnly, func() { matrix.WithTolerance(math.Inf(1)) }},
		{"MaxIterZero", matrix.PanicMaxIterInvalid_TestOnly, func() { matrix.WithMaxIterations(0) }},
		{"SingularEpsNegative", matrix.PanicSingularEpsInvalid_TestOnly, func() { matrix.WithSingularEpsilon(-1e-9) }},
		{"UnknownMethod", matrix.PanicDeterminantInvalid_TestOnly, func() { matrix.WithDeterminant(matrix.DeterminantMethod(42)) }},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.PanicsWithValue(t, tc.msg, tc.fn)
		})
	}
}

// TestDeterminantMethodString pins the enum names.
func TestDeterminantMethodString(t *testing.T) {
	assert.Equal(t, "lu", matrix.DetLU.String())
	assert.Equal(t, "diagonal", matrix.DetDiagonal.String())
	assert.Equal(t, "unknown", matrix.DeterminantMethod(-1).String())
}

// TestLUKernelRaw drives the elimination kernel directly on a raw buffer.
func TestLUKernelRaw(t *testing.T) {
	buf := []float64{0, 1, 1, 0} // one swap
	require.Equal(t, -1.0, matrix.LUDet_TestOnly(buf, 2))
	require.Equal(t, []float64{0, 1, 1, 0}, buf, "kernel works on a copy")
	require.Equal(t, 1.0, matrix.LUDet_TestOnly(nil, 0))
}
