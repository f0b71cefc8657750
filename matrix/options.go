// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Functional options for the whole package and their documented defaults.
//   - WithX constructors reject nonsensical values by panicking: a negative
//     tolerance is a programming error, not a runtime condition.
//
// Who reads what:
//   - validateNaNInf: constructors (NewDense, NewDenseFrom, FromRows, ...);
//     the resulting *Dense carries it and kernels pass it to their results.
//   - eps: EqualApprox. Exact Equal never uses a tolerance.
//   - tolerance, maxIterations, singularEps: Inverse.
//   - determinant: Determinant and Inverse.

package matrix

import "math"

// ---------- Defaults ----------

// Numeric policy.
const (
	// DefaultEpsilon is the absolute tolerance used by EqualApprox.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf makes new matrices reject NaN and ±Inf.
	DefaultValidateNaNInf = true
)

// Inverse refinement policy.
const (
	// DefaultTolerance stops the refinement once |det(A·X) − 1| drops below it.
	DefaultTolerance = 1e-3

	// DefaultMaxIterations caps the number of refinement updates. The
	// iteration converges quadratically once the residual is below one, so a
	// well-conditioned input needs a couple of dozen steps at most.
	DefaultMaxIterations = 100

	// DefaultSingularEpsilon is the |det| threshold at or below which a matrix
	// is reported singular. Zero keeps the exact-zero check.
	DefaultSingularEpsilon = 0.0

	// DefaultDeterminant is the determinant algorithm used unless overridden.
	DefaultDeterminant = DetLU
)

// Panic messages of the WithX constructors.
const (
	panicEpsilonInvalid     = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicToleranceInvalid   = "matrix: WithTolerance: tol must be finite, positive"
	panicMaxIterInvalid     = "matrix: WithMaxIterations: n must be positive"
	panicSingularEpsInvalid = "matrix: WithSingularEpsilon: eps must be finite, non-negative"
	panicDeterminantInvalid = "matrix: WithDeterminant: unknown method"
)

// Option adjusts one field of Options. Applying the same Option twice has
// no further effect.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	// numeric policy
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf

	// inverse policy
	tolerance     float64           // > 0; DefaultTolerance
	maxIterations int               // > 0; DefaultMaxIterations
	singularEps   float64           // >= 0; DefaultSingularEpsilon
	determinant   DeterminantMethod // DefaultDeterminant
}

// WithEpsilon sets the absolute tolerance used by EqualApprox.
// Panics unless eps is finite and ≥ 0.
//
// Notes:
//   - eps = 0 makes EqualApprox behave like Equal for finite inputs.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
//
// Notes:
//   - Affects newly created matrices; existing matrices keep their policy.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on newly created matrices.
// Use only when ingesting data whose non-finite cells are handled downstream.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithTolerance sets the stop threshold of the inverse refinement:
// iteration ends once |det(A·X) − 1| < tol.
//
// Errors:
//   - Panics when tol is not finite or not strictly positive.
//
// AI-Hints:
//   - Tighter tolerances cost one extra step per halving of the exponent.
func WithTolerance(tol float64) Option {
	if isNonFinite(tol) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = tol }
}

// WithMaxIterations caps the number of refinement updates in Inverse.
// Exceeding the cap yields ErrNoConvergence.
//
// Errors:
//   - Panics when n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIterations = n }
}

// WithSingularEpsilon treats |det(A)| <= eps as singular in Inverse.
// The default 0 reproduces the exact-zero check; a small positive value
// rejects near-singular inputs before they reach the refinement loop.
//
// Errors:
//   - Panics when eps is not finite or negative.
func WithSingularEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicSingularEpsInvalid)
	}

	return func(o *Options) { o.singularEps = eps }
}

// WithDeterminant selects the determinant algorithm (DetLU or DetDiagonal)
// for Determinant and for the singular/stop checks in Inverse.
//
// Errors:
//   - Panics on an unknown method.
//
// Notes:
//   - DetDiagonal is exact only for 3×3 inputs; Inverse with DetDiagonal on
//     any other size either reports ErrSingular or fails to converge.
func WithDeterminant(method DeterminantMethod) Option {
	if method != DetLU && method != DetDiagonal {
		panic(panicDeterminantInvalid)
	}

	return func(o *Options) { o.determinant = method }
}

// NewOptions resolves option setters against documented defaults
// (last-writer-wins). Exposed for callers that want to inspect an effective
// configuration.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon returns the effective EqualApprox tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether new matrices reject NaN/±Inf.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// Tolerance returns the inverse stop threshold.
func (o Options) Tolerance() float64 { return o.tolerance }

// MaxIterations returns the inverse iteration cap.
func (o Options) MaxIterations() int { return o.maxIterations }

// SingularEpsilon returns the singular-determinant threshold.
func (o Options) SingularEpsilon() float64 { return o.singularEps }

// Determinant returns the selected determinant algorithm.
func (o Options) Determinant() DeterminantMethod { return o.determinant }

// defaultOptions returns the Default* values.
func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
		tolerance:      DefaultTolerance,
		maxIterations:  DefaultMaxIterations,
		singularEps:    DefaultSingularEpsilon,
		determinant:    DefaultDeterminant,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// nil setters are skipped so callers can build option slices conditionally.
// Complexity: Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set == nil {
			continue
		}
		set(&o) // later options override earlier ones
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
