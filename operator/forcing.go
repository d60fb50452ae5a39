// SPDX-License-Identifier: MIT

// Package operator: forcing terms.
// A Forcing is one additive term Bⱼ of an Affine composite — either a fixed
// value (vector or scalar broadcast) or a function of time. The closed
// two-case variant keeps dispatch explicit instead of inspecting an open
// value space; the function case additionally tracks whether an in-place
// evaluation exists, because the composite's in-place path never falls back
// to allocating.
package operator

import "gonum.org/v1/gonum/floats"

// Panic messages for programmer-error arguments to Forcing constructors.
const (
	panicNilForcingVec  = "operator: NewConstForcing: b must be non-empty"
	panicNilForcingFunc = "operator: NewFuncForcing: fn must be non-nil"
	panicNilInPlaceFunc = "operator: WithForcingInPlace: fn must be non-nil"
	panicNilUpdateFunc  = "operator: WithForcingUpdate: fn must be non-nil"
)

type forcingKind uint8

const (
	forcingInvalid forcingKind = iota // zero value, rejected at construction
	forcingVector
	forcingScalar
	forcingFunc
)

// Forcing is one additive term of an Affine composite. The zero value is
// invalid; build terms through the constructors below.
type Forcing struct {
	kind      forcingKind
	vec       []float64
	scalar    float64
	fn        func(t float64) ([]float64, error)
	fnInPlace func(dst []float64, t float64) error
	update    func(u []float64, p any, t float64)
}

// ForcingOption configures the function-backed forcing case.
type ForcingOption func(*Forcing)

// WithForcingInPlace installs the in-place evaluation B(dst, t), marking
// the term usable on the composite's in-place path.
// Panics on nil fn (programmer error).
func WithForcingInPlace(fn func(dst []float64, t float64) error) ForcingOption {
	if fn == nil {
		panic(panicNilInPlaceFunc)
	}

	return func(f *Forcing) { f.fnInPlace = fn }
}

// WithForcingUpdate installs the coefficient-update hook run by the
// composite's in-place update pass. Default: no-op.
// Panics on nil fn (programmer error).
func WithForcingUpdate(fn func(u []float64, p any, t float64)) ForcingOption {
	if fn == nil {
		panic(panicNilUpdateFunc)
	}

	return func(f *Forcing) { f.update = fn }
}

// NewConstForcing builds a fixed additive vector term. The slice is copied,
// so later caller mutation cannot break the term's constancy.
// Panics on an empty b (programmer error).
func NewConstForcing(b []float64) Forcing {
	if len(b) == 0 {
		panic(panicNilForcingVec)
	}

	return Forcing{kind: forcingVector, vec: append([]float64(nil), b...)}
}

// NewScalarForcing builds a fixed scalar term, broadcast onto every
// component of the result.
func NewScalarForcing(c float64) Forcing {
	return Forcing{kind: forcingScalar, scalar: c}
}

// NewFuncForcing builds a time-dependent term evaluated as v = fn(t).
// Without WithForcingInPlace the term is out-of-place only and the
// composite's in-place path fails at it with ErrUnsupported.
// Panics on nil fn (programmer error).
func NewFuncForcing(fn func(t float64) ([]float64, error), opts ...ForcingOption) Forcing {
	if fn == nil {
		panic(panicNilForcingFunc)
	}

	f := Forcing{kind: forcingFunc, fn: fn}
	for _, opt := range opts {
		opt(&f)
	}

	return f
}

// IsConstant reports whether the term is a fixed value (vector or scalar).
func (f Forcing) IsConstant() bool {
	return f.kind == forcingVector || f.kind == forcingScalar
}

// CanEvalInPlace reports whether the term works on the composite's
// in-place path: constants always do, functions only with an installed
// in-place evaluation.
func (f Forcing) CanEvalInPlace() bool {
	return f.IsConstant() || f.fnInPlace != nil
}

// valid distinguishes constructor-built terms from the zero value.
func (f Forcing) valid() bool { return f.kind != forcingInvalid }

// updateCoefficientsInPlace runs the installed hook, if any.
func (f Forcing) updateCoefficientsInPlace(u []float64, p any, t float64) {
	if f.update != nil {
		f.update(u, p, t)
	}
}

// accumulate folds the term into acc on the out-of-place path: constants
// are taken as-is, functions are called as v = fn(t). The update hook is
// NOT run here.
func (f Forcing) accumulate(acc []float64, t float64) error {
	switch f.kind {
	case forcingVector:
		if err := ValidateVecLen(len(acc), f.vec); err != nil {
			return operatorErrorf(opForcingEval, err)
		}
		floats.Add(acc, f.vec)
	case forcingScalar:
		floats.AddConst(f.scalar, acc)
	case forcingFunc:
		v, err := f.fn(t)
		if err != nil {
			return operatorErrorf(opForcingEval, err)
		}
		if err = ValidateVecLen(len(acc), v); err != nil {
			return operatorErrorf(opForcingEval, err)
		}
		floats.Add(acc, v)
	default:
		return operatorErrorf(opForcingEval, ErrInvalidForcing)
	}

	return nil
}

// accumulateInPlace folds the term into du using scratch, never
// allocating. A function term without in-place support fails right here,
// not in an up-front scan (fail-fast per term).
func (f Forcing) accumulateInPlace(du, scratch []float64, t float64) error {
	switch f.kind {
	case forcingVector:
		if err := ValidateVecLen(len(du), f.vec); err != nil {
			return operatorErrorf(opForcingEvalInPlace, err)
		}
		floats.Add(du, f.vec)
	case forcingScalar:
		floats.AddConst(f.scalar, du)
	case forcingFunc:
		if f.fnInPlace == nil {
			return operatorErrorf(opForcingEvalInPlace, ErrUnsupported)
		}
		if err := f.fnInPlace(scratch, t); err != nil {
			return operatorErrorf(opForcingEvalInPlace, err)
		}
		floats.Add(du, scratch)
	default:
		return operatorErrorf(opForcingEvalInPlace, ErrInvalidForcing)
	}

	return nil
}
