// SPDX-License-Identifier: MIT

// Package matop: factorization-backed solve-only operator.
// SolveOperator wraps an LU factorization of a square dense system for
// implicit-step workflows where the operator is only ever applied
// inverted. It is the backend that overrides the one true-by-default
// capability: CanMulVec reports false, and multiplies fail.
package matop

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/veihola/diffop/operator"
)

// SolveOperator solves s·A·x = b against a factorization taken once at
// construction. Build it with NewSolveOperator; the zero value is
// unusable.
type SolveOperator struct {
	operator.LinearBase

	lu    *mat.LU
	n     int
	scale float64
}

// NewSolveOperator factorizes m and wraps the factorization. The matrix
// itself is not retained; later mutation of m does not affect the
// operator.
//
// Implementation:
//   - Stage 1: reject nil, empty and rectangular input.
//   - Stage 2: LU-factorize and reject an exactly singular system.
//
// Returns ErrNilDense, ErrBadShape, ErrNonSquare or ErrSingular.
// Complexity: Time O(n³) once, Space O(n²) for the factorization.
func NewSolveOperator(m *mat.Dense) (*SolveOperator, error) {
	if m == nil {
		return nil, backendErrorf(typeSolve, "New", ErrNilDense)
	}

	r, c := m.Dims()
	if r <= 0 || c <= 0 {
		return nil, backendErrorf(typeSolve, "New", ErrBadShape)
	}
	if r != c {
		return nil, backendErrorf(typeSolve, "New", operator.ErrNonSquare)
	}

	var lu mat.LU
	lu.Factorize(m)
	if lu.Det() == 0 {
		return nil, backendErrorf(typeSolve, "New", operator.ErrSingular)
	}

	return &SolveOperator{lu: &lu, n: r, scale: 1}, nil
}

// Size returns (n, n). Complexity: O(1).
func (s *SolveOperator) Size() (rows, cols int) { return s.n, s.n }

// UpdateCoefficients returns the receiver: the factorization is taken once
// and never refreshed.
func (s *SolveOperator) UpdateCoefficients(u []float64, p any, t float64) operator.Operator {
	return s
}

// CanMulVec is overridden off: this backend only solves.
func (s *SolveOperator) CanMulVec() bool { return false }

// CanSolve reports true; solving is the whole point.
func (s *SolveOperator) CanSolve() bool { return true }

// CanSolveInPlace mirrors CanSolve.
func (s *SolveOperator) CanSolveInPlace() bool { return true }

// CanExp is overridden off.
func (s *SolveOperator) CanExp() bool { return false }

// MulVec is unavailable on a solve-only backend.
func (s *SolveOperator) MulVec(u []float64) ([]float64, error) {
	return nil, backendErrorf(typeSolve, "MulVec", operator.ErrUnsupported)
}

// Exp is unavailable on a solve-only backend.
func (s *SolveOperator) Exp(t float64) (operator.Linear, error) {
	return nil, backendErrorf(typeSolve, "Exp", operator.ErrUnsupported)
}

// Solve finds x with s·A·x = b through the stored factorization.
//
// Returns:
//   - ErrDimensionMismatch when len(b) != n.
//   - ErrSingular when the scale factor is zero or gonum reports the
//     system too badly conditioned (gonum's detail stays in the chain).
//
// Complexity: Time O(n²) per solve, Space O(n).
func (s *SolveOperator) Solve(b []float64) ([]float64, error) {
	out, err := s.solve(b)
	if err != nil {
		return nil, backendErrorf(typeSolve, "Solve", err)
	}

	return out, nil
}

// SolveInPlace finds x with s·A·x = b, writing x into dst.
func (s *SolveOperator) SolveInPlace(dst, b []float64) error {
	if err := operator.ValidateVecLen(s.n, dst); err != nil {
		return backendErrorf(typeSolve, "SolveInPlace", err)
	}

	out, err := s.solve(b)
	if err != nil {
		return backendErrorf(typeSolve, "SolveInPlace", err)
	}
	copy(dst, out)

	return nil
}

// solve is the shared kernel behind Solve and SolveInPlace.
func (s *SolveOperator) solve(b []float64) ([]float64, error) {
	if err := operator.ValidateVecLen(s.n, b); err != nil {
		return nil, err
	}
	if s.scale == 0 {
		return nil, operator.ErrSingular
	}

	out := make([]float64, s.n)
	x := mat.NewVecDense(s.n, out)
	if err := s.lu.SolveVecTo(x, false, mat.NewVecDense(s.n, b)); err != nil {
		return nil, fmt.Errorf("%v: %w", err, operator.ErrSingular)
	}
	if s.scale != 1 {
		floats.Scale(1/s.scale, out)
	}

	return out, nil
}

// Scale returns (k·s)·A sharing the same factorization; the factorization
// is read-only after construction, so sharing is safe. Scaling by zero
// yields an operator whose solves fail with ErrSingular.
func (s *SolveOperator) Scale(k float64) operator.Linear {
	return &SolveOperator{lu: s.lu, n: s.n, scale: k * s.scale}
}
