// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/matops/matrix"
)

// InverseSuite exercises Inverse/InverseReport on shared fixtures.
type InverseSuite struct {
	suite.Suite
	a3       *matrix.Dense
	singular *matrix.Dense
}

// SetupTest rebuilds the fixtures before every test.
func (s *InverseSuite) SetupTest() {
	s.a3 = MustRows(s.T(), invertible3)
	s.singular = MustRows(s.T(), zeroColumn3)
}

// requireNearIdentity asserts every cell of a·x is within tol of I.
func (s *InverseSuite) requireNearIdentity(a, x matrix.Matrix, tol float64) {
	ax, err := matrix.Mul(a, x)
	s.Require().NoError(err)
	I, err := matrix.IdentityLike(a)
	s.Require().NoError(err)
	ok, err := matrix.EqualApprox(ax, I, matrix.WithEpsilon(tol))
	s.Require().NoError(err)
	s.Require().True(ok, "A·X is not near I:\n%v", ax)
}

func (s *InverseSuite) TestKnownInverse() {
	inv, err := matrix.Inverse(s.a3)
	s.Require().NoError(err)
	RequireNearRows(s.T(), inverse3, inv, threshold)
	s.requireNearIdentity(s.a3, inv, threshold)

	CompareExact(s.T(), invertible3, s.a3) // input untouched
}

func (s *InverseSuite) TestReport() {
	inv, conv, err := matrix.InverseReport(s.a3)
	s.Require().NoError(err)
	s.Require().NotNil(inv)
	s.Greater(conv.Iterations, 0)
	s.LessOrEqual(conv.Iterations, matrix.DefaultMaxIterations)
	s.Less(conv.Residual, matrix.DefaultTolerance)

	// A tighter tolerance takes at least as many steps and still succeeds.
	_, tight, err := matrix.InverseReport(s.a3, matrix.WithTolerance(1e-10))
	s.Require().NoError(err)
	s.GreaterOrEqual(tight.Iterations, conv.Iterations)
	s.Less(tight.Residual, 1e-10)
}

func (s *InverseSuite) TestDiagonalMethodOn3x3() {
	// For 3×3 the cross-diagonal scheme is exact, so refinement still converges.
	inv, err := matrix.Inverse(s.a3, matrix.WithDeterminant(matrix.DetDiagonal))
	s.Require().NoError(err)
	RequireNearRows(s.T(), inverse3, inv, threshold)
}

func (s *InverseSuite) TestDiagonalMethodOn2x2IsSingular() {
	two := MustRows(s.T(), [][]float64{{2, 1}, {1, 3}})
	_, err := matrix.Inverse(two, matrix.WithDeterminant(matrix.DetDiagonal))
	s.Require().ErrorIs(err, matrix.ErrSingular)

	inv, err := matrix.Inverse(two)
	s.Require().NoError(err)
	s.requireNearIdentity(two, inv, threshold)
}

func (s *InverseSuite) TestSingular() {
	_, err := matrix.Inverse(s.singular)
	s.Require().ErrorIs(err, matrix.ErrSingular)
	s.Require().ErrorContains(err, "Inverse:")
}

func (s *InverseSuite) TestSingularEpsilon() {
	near := MustRows(s.T(), [][]float64{{1e-12, 0}, {0, 1}})
	_, err := matrix.Inverse(near, matrix.WithSingularEpsilon(1e-9))
	s.Require().ErrorIs(err, matrix.ErrSingular)
}

func (s *InverseSuite) TestIterationCap() {
	_, conv, err := matrix.InverseReport(s.a3, matrix.WithMaxIterations(1))
	s.Require().ErrorIs(err, matrix.ErrNoConvergence)
	s.Equal(1, conv.Iterations)
	s.Greater(conv.Residual, matrix.DefaultTolerance)
}

func (s *InverseSuite) TestShapeErrors() {
	_, err := matrix.Inverse(MustRows(s.T(), rect3x4))
	s.Require().ErrorIs(err, matrix.ErrNonSquare)

	_, err = matrix.Inverse(nil)
	s.Require().ErrorIs(err, matrix.ErrNilMatrix)
}

func (s *InverseSuite) TestEmpty() {
	inv, err := matrix.Inverse(MustDense(s.T(), 0, 0))
	s.Require().NoError(err)
	s.Equal(0, inv.Rows())
	s.Equal(0, inv.Cols())
}

func (s *InverseSuite) TestOneByOne() {
	inv, err := matrix.Inverse(MustRows(s.T(), [][]float64{{4}}))
	s.Require().NoError(err)
	s.InDelta(0.25, MustAt(s.T(), inv, 0, 0), threshold)
}

func (s *InverseSuite) TestFallbackMatchesDense() {
	fast, err := matrix.Inverse(s.a3)
	s.Require().NoError(err)
	slow, err := matrix.Inverse(hide{s.a3})
	s.Require().NoError(err)
	s.True(matrix.Equal(fast, slow))
}

func (s *InverseSuite) TestRandomDominant() {
	for seed := uint64(1); seed <= 5; seed++ {
		a := RandDominantDense(s.T(), 5, seed)
		inv, err := matrix.Inverse(a)
		s.Require().NoError(err, "seed %d", seed)
		s.requireNearIdentity(a, inv, threshold)
	}
}

func TestInverseSuite(t *testing.T) {
	suite.Run(t, new(InverseSuite))
}
