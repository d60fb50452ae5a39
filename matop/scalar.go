// SPDX-License-Identifier: MIT

// Package matop: scalar operator.
// ScalarOperator is c·I of a fixed order n. Every operation has a closed
// form, including the exponential action exp(t·c·I)·u = e^(t·c)·u, which it
// provides as a specialized implementation so generic code skips
// materializing an n×n exponential for what is one math.Exp call.
package matop

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/veihola/diffop/operator"
)

// ScalarUpdateFunc produces the refreshed scalar coefficient for
// (u, p, t), given the current one.
type ScalarUpdateFunc func(c float64, u []float64, p any, t float64) float64

// panicNilScalarUpdate guards WithScalarUpdate against a nil function.
const panicNilScalarUpdate = "matop: WithScalarUpdate: fn must be non-nil"

// ScalarOperator acts as c·I on vectors of length n. Build it with
// NewScalarOperator or Identity; the zero value is unusable.
type ScalarOperator struct {
	operator.LinearBase

	c      float64
	n      int
	update ScalarUpdateFunc
}

// ScalarOption configures a ScalarOperator at construction.
type ScalarOption func(*ScalarOperator)

// WithScalarUpdate installs the coefficient-update function, making the
// operator time-varying (IsConstant and IsLinear both report false).
// Panics on nil fn (programmer error).
func WithScalarUpdate(fn ScalarUpdateFunc) ScalarOption {
	if fn == nil {
		panic(panicNilScalarUpdate)
	}

	return func(s *ScalarOperator) { s.update = fn }
}

// NewScalarOperator builds c·I of order n.
// Returns ErrBadShape when n is not positive.
func NewScalarOperator(n int, c float64, opts ...ScalarOption) (*ScalarOperator, error) {
	if n <= 0 {
		return nil, backendErrorf(typeScalar, "New", ErrBadShape)
	}

	s := &ScalarOperator{c: c, n: n}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Identity builds the identity operator of order n (c = 1).
func Identity(n int) (*ScalarOperator, error) {
	return NewScalarOperator(n, 1)
}

// Value returns the current scalar coefficient.
func (s *ScalarOperator) Value() float64 { return s.c }

// Size returns (n, n). Complexity: O(1).
func (s *ScalarOperator) Size() (rows, cols int) { return s.n, s.n }

// IsConstant reports true exactly when no update function is installed.
func (s *ScalarOperator) IsConstant() bool { return s.update == nil }

// IsLinear mirrors IsConstant (linearity under constancy convention).
func (s *ScalarOperator) IsLinear() bool { return s.IsConstant() }

// UpdateCoefficients returns the receiver when constant, otherwise a
// refreshed copy for (u, p, t).
func (s *ScalarOperator) UpdateCoefficients(u []float64, p any, t float64) operator.Operator {
	if s.update == nil {
		return s
	}

	return &ScalarOperator{c: s.update(s.c, u, p, t), n: s.n, update: s.update}
}

// UpdateCoefficientsInPlace refreshes the scalar for (u, p, t); no-op when
// constant.
func (s *ScalarOperator) UpdateCoefficientsInPlace(u []float64, p any, t float64) {
	if s.update != nil {
		s.c = s.update(s.c, u, p, t)
	}
}

// Capability overrides: every closed form below exists.

func (s *ScalarOperator) CanMulVecInPlace() bool { return true }
func (s *ScalarOperator) CanSolve() bool { return true }
func (s *ScalarOperator) CanSolveInPlace() bool { return true }
func (s *ScalarOperator) CanExpMulVec() bool { return true }
func (s *ScalarOperator) CanExpMulVecInPlace() bool { return true }

// MulVec computes c·u into a fresh vector.
// Complexity: Time O(n), Space O(n).
func (s *ScalarOperator) MulVec(u []float64) ([]float64, error) {
	if err := operator.ValidateVecLen(s.n, u); err != nil {
		return nil, backendErrorf(typeScalar, "MulVec", err)
	}

	out := make([]float64, s.n)
	floats.AddScaled(out, s.c, u)

	return out, nil
}

// MulVecInPlace computes dst = c·u without allocating.
func (s *ScalarOperator) MulVecInPlace(dst, u []float64) error {
	if err := operator.ValidateVecLen(s.n, dst); err != nil {
		return backendErrorf(typeScalar, "MulVecInPlace", err)
	}
	if err := operator.ValidateVecLen(s.n, u); err != nil {
		return backendErrorf(typeScalar, "MulVecInPlace", err)
	}

	floats.ScaleTo(dst, s.c, u)

	return nil
}

// Solve computes x = b/c.
// Returns ErrSingular when the current coefficient is zero.
func (s *ScalarOperator) Solve(b []float64) ([]float64, error) {
	if err := operator.ValidateVecLen(s.n, b); err != nil {
		return nil, backendErrorf(typeScalar, "Solve", err)
	}
	if s.c == 0 {
		return nil, backendErrorf(typeScalar, "Solve", operator.ErrSingular)
	}

	out := make([]float64, s.n)
	floats.ScaleTo(out, 1/s.c, b)

	return out, nil
}

// SolveInPlace computes dst = b/c without allocating.
func (s *ScalarOperator) SolveInPlace(dst, b []float64) error {
	if err := operator.ValidateVecLen(s.n, dst); err != nil {
		return backendErrorf(typeScalar, "SolveInPlace", err)
	}
	if err := operator.ValidateVecLen(s.n, b); err != nil {
		return backendErrorf(typeScalar, "SolveInPlace", err)
	}
	if s.c == 0 {
		return backendErrorf(typeScalar, "SolveInPlace", operator.ErrSingular)
	}

	floats.ScaleTo(dst, 1/s.c, b)

	return nil
}

// Exp materializes exp(t·c·I) = e^(t·c)·I as a fresh constant
// ScalarOperator. Complexity: O(1).
func (s *ScalarOperator) Exp(t float64) (operator.Linear, error) {
	return &ScalarOperator{c: math.Exp(t * s.c), n: s.n}, nil
}

// ExpMulVec is the specialized exponential action e^(t·c)·u, using the
// current coefficient. One math.Exp call instead of a materialized n×n
// exponential.
func (s *ScalarOperator) ExpMulVec(u []float64, p any, t float64) ([]float64, error) {
	if err := operator.ValidateVecLen(s.n, u); err != nil {
		return nil, backendErrorf(typeScalar, "ExpMulVec", err)
	}

	out := make([]float64, s.n)
	floats.AddScaled(out, math.Exp(t*s.c), u)

	return out, nil
}

// ExpMulVecInPlace is the in-place specialized exponential action.
func (s *ScalarOperator) ExpMulVecInPlace(dst, u []float64, p any, t float64) error {
	if err := operator.ValidateVecLen(s.n, dst); err != nil {
		return backendErrorf(typeScalar, "ExpMulVecInPlace", err)
	}
	if err := operator.ValidateVecLen(s.n, u); err != nil {
		return backendErrorf(typeScalar, "ExpMulVecInPlace", err)
	}

	floats.ScaleTo(dst, math.Exp(t*s.c), u)

	return nil
}

// Scale returns (k·c)·I as a fresh operator. The current coefficient is
// snapshotted: the result is constant even when the receiver is
// time-varying.
func (s *ScalarOperator) Scale(k float64) operator.Linear {
	return &ScalarOperator{c: k * s.c, n: s.n}
}
