// SPDX-License-Identifier: MIT

// Package matop: dense matrix operator.
// MatrixOperator wraps a gonum *mat.Dense as an operator.Linear with the
// full capability set. A time-varying system installs an UpdateFunc that
// rewrites the coefficients for (u, p, t); without one the operator is
// constant and every update is the protocol's no-op/identity default.
package matop

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/veihola/diffop/operator"
)

// UpdateFunc rewrites a dense coefficient matrix for the given state,
// parameters and time. It mutates m directly.
type UpdateFunc func(m *mat.Dense, u []float64, p any, t float64)

// panicNilUpdate guards WithUpdateFunc against a nil function.
const panicNilUpdate = "matop: WithUpdateFunc: fn must be non-nil"

// MatrixOperator is a dense-backed linear operator. Build it with
// NewMatrixOperator; the zero value is unusable.
type MatrixOperator struct {
	operator.LinearBase

	m      *mat.Dense
	update UpdateFunc
}

// MatrixOption configures a MatrixOperator at construction.
type MatrixOption func(*MatrixOperator)

// WithUpdateFunc installs the coefficient-update function, making the
// operator time-varying: IsConstant and IsLinear both flip to false, per
// the convention that linearity is only assumed under constancy.
// Panics on nil fn (programmer error).
func WithUpdateFunc(fn UpdateFunc) MatrixOption {
	if fn == nil {
		panic(panicNilUpdate)
	}

	return func(a *MatrixOperator) { a.update = fn }
}

// NewMatrixOperator wraps m as a linear operator. The matrix is retained,
// not copied: an installed UpdateFunc mutates it in place, and Dense
// exposes it for inspection.
//
// Returns ErrNilDense on a nil matrix, ErrBadShape on an empty one.
func NewMatrixOperator(m *mat.Dense, opts ...MatrixOption) (*MatrixOperator, error) {
	if m == nil {
		return nil, backendErrorf(typeMatrix, "New", ErrNilDense)
	}
	if r, c := m.Dims(); r <= 0 || c <= 0 {
		return nil, backendErrorf(typeMatrix, "New", ErrBadShape)
	}

	a := &MatrixOperator{m: m}
	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// Dense returns the live coefficient matrix (not a copy).
func (a *MatrixOperator) Dense() *mat.Dense { return a.m }

// Size returns the wrapped matrix's shape. Complexity: O(1).
func (a *MatrixOperator) Size() (rows, cols int) { return a.m.Dims() }

// IsConstant reports true exactly when no UpdateFunc is installed.
func (a *MatrixOperator) IsConstant() bool { return a.update == nil }

// IsLinear mirrors IsConstant (linearity under constancy convention).
func (a *MatrixOperator) IsLinear() bool { return a.IsConstant() }

// UpdateCoefficients returns the receiver when constant; otherwise it
// refreshes a copy for (u, p, t) and returns that, leaving the receiver
// untouched.
func (a *MatrixOperator) UpdateCoefficients(u []float64, p any, t float64) operator.Operator {
	if a.update == nil {
		return a
	}

	clone := mat.DenseCopyOf(a.m)
	a.update(clone, u, p, t)

	return &MatrixOperator{m: clone, update: a.update}
}

// UpdateCoefficientsInPlace rewrites the coefficients for (u, p, t) via the
// installed UpdateFunc; no-op when constant.
func (a *MatrixOperator) UpdateCoefficientsInPlace(u []float64, p any, t float64) {
	if a.update != nil {
		a.update(a.m, u, p, t)
	}
}

// CanMulVecInPlace: dense multiply writes into any right-sized buffer.
func (a *MatrixOperator) CanMulVecInPlace() bool { return true }

// CanSolve: dense systems solve through gonum's LU path.
func (a *MatrixOperator) CanSolve() bool { return true }

// CanSolveInPlace mirrors CanSolve.
func (a *MatrixOperator) CanSolveInPlace() bool { return true }

// CanExp reports true for square matrices only; gonum's Exp is undefined
// otherwise.
func (a *MatrixOperator) CanExp() bool {
	r, c := a.m.Dims()

	return r == c
}

// MulVec computes A·u into a fresh vector.
//
// Inputs: u with len(u) == cols.
// Returns: the product, or ErrDimensionMismatch.
// Complexity: Time O(rows·cols), Space O(rows).
func (a *MatrixOperator) MulVec(u []float64) ([]float64, error) {
	r, c := a.m.Dims()
	if err := operator.ValidateVecLen(c, u); err != nil {
		return nil, backendErrorf(typeMatrix, "MulVec", err)
	}

	out := make([]float64, r)
	y := mat.NewVecDense(r, out)
	y.MulVec(a.m, mat.NewVecDense(c, u))

	return out, nil
}

// MulVecInPlace computes dst = A·u without allocating.
func (a *MatrixOperator) MulVecInPlace(dst, u []float64) error {
	r, c := a.m.Dims()
	if err := operator.ValidateVecLen(r, dst); err != nil {
		return backendErrorf(typeMatrix, "MulVecInPlace", err)
	}
	if err := operator.ValidateVecLen(c, u); err != nil {
		return backendErrorf(typeMatrix, "MulVecInPlace", err)
	}

	y := mat.NewVecDense(r, dst)
	y.MulVec(a.m, mat.NewVecDense(c, u))

	return nil
}

// Solve finds x with A·x = b for a square system.
//
// Returns:
//   - ErrNonSquare for rectangular operators.
//   - ErrDimensionMismatch when len(b) != rows.
//   - ErrSingular when gonum reports the system singular or too badly
//     conditioned to trust (the gonum condition detail stays in the chain).
//
// Complexity: Time O(n³), Space O(n²) for the factorization.
func (a *MatrixOperator) Solve(b []float64) ([]float64, error) {
	out, err := a.solve(b)
	if err != nil {
		return nil, backendErrorf(typeMatrix, "Solve", err)
	}

	return out, nil
}

// SolveInPlace finds x with A·x = b, writing x into dst.
func (a *MatrixOperator) SolveInPlace(dst, b []float64) error {
	n, _ := a.m.Dims()
	if err := operator.ValidateVecLen(n, dst); err != nil {
		return backendErrorf(typeMatrix, "SolveInPlace", err)
	}

	out, err := a.solve(b)
	if err != nil {
		return backendErrorf(typeMatrix, "SolveInPlace", err)
	}
	copy(dst, out)

	return nil
}

// solve is the shared kernel behind Solve and SolveInPlace.
func (a *MatrixOperator) solve(b []float64) ([]float64, error) {
	if err := operator.ValidateSquare(a); err != nil {
		return nil, err
	}

	n, _ := a.m.Dims()
	if err := operator.ValidateVecLen(n, b); err != nil {
		return nil, err
	}

	out := make([]float64, n)
	x := mat.NewVecDense(n, out)
	if err := x.SolveVec(a.m, mat.NewVecDense(n, b)); err != nil {
		return nil, fmt.Errorf("%v: %w", err, operator.ErrSingular)
	}

	return out, nil
}

// Exp materializes exp(t·A) as a fresh constant MatrixOperator.
// Returns ErrNonSquare for rectangular operators.
// Complexity: Time O(n³) per scaling-and-squaring step, Space O(n²).
func (a *MatrixOperator) Exp(t float64) (operator.Linear, error) {
	if err := operator.ValidateSquare(a); err != nil {
		return nil, backendErrorf(typeMatrix, "Exp", err)
	}

	var s, e mat.Dense
	s.Scale(t, a.m)
	e.Exp(&s)

	return &MatrixOperator{m: &e}, nil
}

// Scale returns c·A as a fresh operator. The current coefficients are
// snapshotted: the result is constant even when the receiver is
// time-varying.
func (a *MatrixOperator) Scale(c float64) operator.Linear {
	var s mat.Dense
	s.Scale(c, a.m)

	return &MatrixOperator{m: &s}
}
