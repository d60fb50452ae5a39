// SPDX-License-Identifier: MIT
// Package matop_test: the dense backend — construction, multiply, solve,
// exponential, the constancy/linearity convention and snapshot scaling.

package matop_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/veihola/diffop/matop"
	"github.com/veihola/diffop/operator"
)

var _ operator.Linear = (*matop.MatrixOperator)(nil)

func TestNewMatrixOperator_Validation(t *testing.T) {
	t.Parallel()

	_, err := matop.NewMatrixOperator(nil)
	require.ErrorIs(t, err, matop.ErrNilDense)

	_, err = matop.NewMatrixOperator(&mat.Dense{})
	require.ErrorIs(t, err, matop.ErrBadShape)

	ExpectPanic(t, "WithUpdateFunc(nil)", func() { matop.WithUpdateFunc(nil) })
}

func TestMatrixOperator_MulVec(t *testing.T) {
	t.Parallel()

	a := mustMatrix(t, mat.NewDense(2, 2, []float64{
		1, 2,
		3, 4,
	}))

	got, err := a.MulVec([]float64{1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{3, 7}, got)

	dst := make([]float64, 2)
	require.NoError(t, a.MulVecInPlace(dst, []float64{1, 1}))
	require.Equal(t, got, dst)

	_, err = a.MulVec([]float64{1, 2, 3})
	require.ErrorIs(t, err, operator.ErrDimensionMismatch)
	require.ErrorIs(t, a.MulVecInPlace(make([]float64, 3), []float64{1, 1}),
		operator.ErrDimensionMismatch)
}

func TestMatrixOperator_Solve(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		a := mustMatrix(t, mat.NewDense(2, 2, []float64{
			4, 1,
			1, 3,
		}))
		want := []float64{1, 2}
		b, err := a.MulVec(want)
		require.NoError(t, err)

		x, err := a.Solve(b)
		require.NoError(t, err)
		CompareVecClose(t, want, x, 1e-12)

		dst := make([]float64, 2)
		require.NoError(t, a.SolveInPlace(dst, b))
		CompareVecExact(t, x, dst)
	})

	t.Run("singular system", func(t *testing.T) {
		t.Parallel()
		a := mustMatrix(t, mat.NewDense(2, 2, []float64{
			1, 1,
			1, 1,
		}))
		_, err := a.Solve([]float64{1, 2})
		require.ErrorIs(t, err, operator.ErrSingular)
	})

	t.Run("rectangular operator", func(t *testing.T) {
		t.Parallel()
		a := mustMatrix(t, mat.NewDense(2, 3, []float64{
			1, 0, 0,
			0, 1, 0,
		}))
		_, err := a.Solve([]float64{1, 2})
		require.ErrorIs(t, err, operator.ErrNonSquare)
	})
}

// TestMatrixOperator_Exp: for the nilpotent N = [[0,1],[0,0]] the series
// truncates, exp(t·N) = I + t·N, which pins the result to closed form.
func TestMatrixOperator_Exp(t *testing.T) {
	t.Parallel()

	a := mustMatrix(t, mat.NewDense(2, 2, []float64{
		0, 1,
		0, 0,
	}))
	require.True(t, a.CanExp())

	e, err := a.Exp(2)
	require.NoError(t, err)
	require.True(t, e.IsConstant(), "a materialized exponential is a fixed matrix")

	got, err := e.MulVec([]float64{1, 1})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{3, 1}, got, 1e-12)
}

func TestMatrixOperator_ExpRectangular(t *testing.T) {
	t.Parallel()

	a := mustMatrix(t, mat.NewDense(1, 2, []float64{1, 2}))
	require.False(t, a.CanExp())

	_, err := a.Exp(1)
	require.ErrorIs(t, err, operator.ErrNonSquare)
}

// TestMatrixOperator_UpdateFunc: installing an update makes the operator
// time-varying; the out-of-place update refreshes a copy and leaves the
// receiver alone, the in-place update rewrites the receiver.
func TestMatrixOperator_UpdateFunc(t *testing.T) {
	t.Parallel()

	a := mustMatrix(t,
		mat.NewDense(2, 2, []float64{
			0, 0,
			0, 0,
		}),
		matop.WithUpdateFunc(func(m *mat.Dense, u []float64, p any, t float64) {
			m.Set(0, 0, t)
			m.Set(1, 1, 2*t)
		}),
	)
	require.False(t, a.IsConstant())
	require.False(t, a.IsLinear(), "linearity is only assumed under constancy")

	fresh := a.UpdateCoefficients([]float64{1, 1}, nil, 3)
	require.Zero(t, a.Dense().At(0, 0), "out-of-place update must not touch the receiver")

	got, err := fresh.(operator.Linear).MulVec([]float64{1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{3, 6}, got)

	a.UpdateCoefficientsInPlace([]float64{1, 1}, nil, 5)
	require.Equal(t, 5.0, a.Dense().At(0, 0))
	require.Equal(t, 10.0, a.Dense().At(1, 1))
}

// TestMatrixOperator_ConstantUpdateIsIdentity: without an update the
// out-of-place form hands back the receiver itself.
func TestMatrixOperator_ConstantUpdateIsIdentity(t *testing.T) {
	t.Parallel()

	a := mustMatrix(t, mat.NewDense(2, 2, []float64{1, 0, 0, 1}))
	require.True(t, a.IsConstant())
	require.True(t, a.IsLinear())

	got := a.UpdateCoefficients([]float64{1, 1}, nil, 9)
	require.Same(t, a, got)
}

// TestMatrixOperator_ScaleSnapshot: scaling snapshots the current
// coefficients; later updates to the receiver do not leak into the
// scaled operator.
func TestMatrixOperator_ScaleSnapshot(t *testing.T) {
	t.Parallel()

	a := mustMatrix(t,
		mat.NewDense(2, 2, []float64{
			1, 0,
			0, 1,
		}),
		matop.WithUpdateFunc(func(m *mat.Dense, u []float64, p any, t float64) {
			m.Set(0, 0, t)
		}),
	)

	s := a.Scale(3)
	require.True(t, s.IsConstant(), "a snapshot does not vary with time")

	a.UpdateCoefficientsInPlace(nil, nil, 100)

	got, err := s.MulVec([]float64{1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{3, 3}, got)
}

func TestMatrixOperator_Capabilities(t *testing.T) {
	t.Parallel()

	a := mustMatrix(t, mat.NewDense(2, 2, []float64{1, 0, 0, 1}))

	require.True(t, a.CanMulVec())
	require.True(t, a.CanMulVecInPlace())
	require.True(t, a.CanSolve())
	require.True(t, a.CanSolveInPlace())
	require.True(t, a.CanExp())
	require.False(t, a.CanExpMulVec(), "no specialized exponential action on the dense backend")
	require.False(t, a.CanExpMulVecInPlace())
}
