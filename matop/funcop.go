// SPDX-License-Identifier: MIT

// Package matop: matrix-free operator.
// FuncOperator represents A·u as a callable for operators too large or too
// structured to materialize (stencils, FFT-diagonalized systems). It is
// the backend that opts OUT: no exponential (CanExp false, the generic
// exponential action refuses to run) and no solve (the refinement's
// failing defaults stay in force).
package matop

import (
	"gonum.org/v1/gonum/floats"

	"github.com/veihola/diffop/operator"
)

// ApplyFunc computes A·u into a fresh vector of the operator's row count.
type ApplyFunc func(u []float64) ([]float64, error)

// ApplyInPlaceFunc computes dst = A·u without allocating.
type ApplyInPlaceFunc func(dst, u []float64) error

// Panic messages for programmer-error arguments to FuncOperator options.
const (
	panicNilApplyInPlace = "matop: WithApplyInPlace: fn must be non-nil"
	panicNilFuncUpdate   = "matop: WithFuncUpdate: fn must be non-nil"
)

// FuncOperator is a matrix-free linear operator. Build it with
// NewFuncOperator; the zero value is unusable.
type FuncOperator struct {
	operator.LinearBase

	rows, cols int
	fn         ApplyFunc
	fnInPlace  ApplyInPlaceFunc
	update     func(u []float64, p any, t float64)
}

// FuncOption configures a FuncOperator at construction.
type FuncOption func(*FuncOperator)

// WithApplyInPlace installs the non-allocating action, flipping
// CanMulVecInPlace to true. Panics on nil fn (programmer error).
func WithApplyInPlace(fn ApplyInPlaceFunc) FuncOption {
	if fn == nil {
		panic(panicNilApplyInPlace)
	}

	return func(f *FuncOperator) { f.fnInPlace = fn }
}

// WithFuncUpdate installs the coefficient-update hook. The operator's
// coefficients live in whatever state the apply callable captures; the
// hook is how (u, p, t) reaches that state. Installing it makes the
// operator time-varying. Panics on nil fn (programmer error).
func WithFuncUpdate(fn func(u []float64, p any, t float64)) FuncOption {
	if fn == nil {
		panic(panicNilFuncUpdate)
	}

	return func(f *FuncOperator) { f.update = fn }
}

// NewFuncOperator wraps fn as a rows×cols linear operator.
// Returns ErrBadShape for non-positive dimensions, ErrNilFunc for a nil
// callable.
func NewFuncOperator(rows, cols int, fn ApplyFunc, opts ...FuncOption) (*FuncOperator, error) {
	if rows <= 0 || cols <= 0 {
		return nil, backendErrorf(typeFunc, "New", ErrBadShape)
	}
	if fn == nil {
		return nil, backendErrorf(typeFunc, "New", ErrNilFunc)
	}

	f := &FuncOperator{rows: rows, cols: cols, fn: fn}
	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

// Size returns the declared shape. Complexity: O(1).
func (f *FuncOperator) Size() (rows, cols int) { return f.rows, f.cols }

// IsConstant reports true exactly when no update hook is installed.
func (f *FuncOperator) IsConstant() bool { return f.update == nil }

// IsLinear mirrors IsConstant (linearity under constancy convention).
func (f *FuncOperator) IsLinear() bool { return f.IsConstant() }

// UpdateCoefficients returns the receiver unchanged: the wrapper itself
// holds no coefficients — external state behind the callable refreshes
// only through the in-place update hook.
func (f *FuncOperator) UpdateCoefficients(u []float64, p any, t float64) operator.Operator {
	return f
}

// UpdateCoefficientsInPlace runs the installed update hook, if any.
func (f *FuncOperator) UpdateCoefficientsInPlace(u []float64, p any, t float64) {
	if f.update != nil {
		f.update(u, p, t)
	}
}

// CanMulVecInPlace reports whether an in-place action was installed.
func (f *FuncOperator) CanMulVecInPlace() bool { return f.fnInPlace != nil }

// CanExp is overridden off: a matrix-free action cannot materialize its
// exponential, and the generic fallback must not be relied on.
func (f *FuncOperator) CanExp() bool { return false }

// MulVec applies the callable and checks the result's length against the
// declared row count.
func (f *FuncOperator) MulVec(u []float64) ([]float64, error) {
	if err := operator.ValidateVecLen(f.cols, u); err != nil {
		return nil, backendErrorf(typeFunc, "MulVec", err)
	}

	out, err := f.fn(u)
	if err != nil {
		return nil, backendErrorf(typeFunc, "MulVec", err)
	}
	if err = operator.ValidateVecLen(f.rows, out); err != nil {
		return nil, backendErrorf(typeFunc, "MulVec", err)
	}

	return out, nil
}

// MulVecInPlace applies the installed in-place action.
// Returns ErrUnsupported when none was installed.
func (f *FuncOperator) MulVecInPlace(dst, u []float64) error {
	if f.fnInPlace == nil {
		return backendErrorf(typeFunc, "MulVecInPlace", operator.ErrUnsupported)
	}
	if err := operator.ValidateVecLen(f.rows, dst); err != nil {
		return backendErrorf(typeFunc, "MulVecInPlace", err)
	}
	if err := operator.ValidateVecLen(f.cols, u); err != nil {
		return backendErrorf(typeFunc, "MulVecInPlace", err)
	}

	return f.fnInPlace(dst, u)
}

// Exp is unavailable on a matrix-free action.
func (f *FuncOperator) Exp(t float64) (operator.Linear, error) {
	return nil, backendErrorf(typeFunc, "Exp", operator.ErrUnsupported)
}

// Scale returns k·A by wrapping the callables; the update hook is carried
// over, so a time-varying receiver stays time-varying.
func (f *FuncOperator) Scale(k float64) operator.Linear {
	g := &FuncOperator{rows: f.rows, cols: f.cols, update: f.update}

	inner := f.fn
	g.fn = func(u []float64) ([]float64, error) {
		v, err := inner(u)
		if err != nil {
			return nil, err
		}
		floats.Scale(k, v)

		return v, nil
	}

	if f.fnInPlace != nil {
		innerInPlace := f.fnInPlace
		g.fnInPlace = func(dst, u []float64) error {
			if err := innerInPlace(dst, u); err != nil {
				return err
			}
			floats.Scale(k, dst)

			return nil
		}
	}

	return g
}
