// SPDX-License-Identifier: MIT

// Package operator: the linear refinement.
// Linear narrows the general protocol for operators that are algebraically
// linear and can absorb a scalar multiplier — solver-internal expressions
// routinely scale operators by step-size constants, so c·L must be an
// operator of the same kind. LinearBase carries the refinement's defaults.
package operator

// Linear is the refinement for algebraically linear operators. It adds the
// numeric surface generic machinery needs: the multiply primitives, the
// factorization solve, the operator exponential, and scalar absorption.
//
// Required methods (no default body exists, every backend supplies them):
// Size, UpdateCoefficients, MulVec, Scale, Exp. A backend that cannot
// materialize its exponential implements Exp as an ErrUnsupported failure
// and overrides CanExp to false; see ExpMulVec for how the generic
// exponential action honors that opt-out.
type Linear interface {
	Operator

	// MulVec computes A·u into a fresh vector.
	// Returns ErrDimensionMismatch when len(u) differs from the column
	// count. Complexity: backend-dependent, O(rows·cols) for dense.
	MulVec(u []float64) ([]float64, error)

	// MulVecInPlace computes dst = A·u without allocating.
	// Default (LinearBase): ErrUnsupported.
	MulVecInPlace(dst, u []float64) error

	// Scale returns c·A as an operator of the same kind. The receiver is
	// not mutated.
	Scale(c float64) Linear

	// Solve finds x with A·x = b. No generic fallback exists: there is no
	// general, correct way to invert an arbitrary linear operator without
	// domain knowledge, so the default (LinearBase) is ErrUnsupported.
	Solve(b []float64) ([]float64, error)

	// SolveInPlace finds x with A·x = b, writing x into dst.
	// Default (LinearBase): ErrUnsupported.
	SolveInPlace(dst, b []float64) error

	// Exp materializes the operator exponential exp(t·A).
	Exp(t float64) (Linear, error)
}

// LinearBase carries the refinement's default answers on top of Base.
// Embed it in linear backends and override what the backend does better.
//
// Constancy convention: linear operators are assumed time-invariant, and
// IsLinear is derived from IsConstant — a "non-constant" linear operator in
// this system is linear in form but time-varying, and the generic
// exponential/affine machinery only assumes true linearity when constancy
// holds. A backend overriding IsConstant must override IsLinear to keep
// IsLinear() == IsConstant(), unless it deliberately decouples them.
type LinearBase struct {
	Base
}

// IsConstant defaults to true for the linear refinement.
func (LinearBase) IsConstant() bool { return true }

// IsLinear mirrors IsConstant under the refinement's default constancy.
func (LinearBase) IsLinear() bool { return true }

// CanExp defaults to true for the linear refinement: exp(t·A) is the
// required primitive the generic exponential action builds on.
func (LinearBase) CanExp() bool { return true }

// MulVecInPlace has no generic implementation.
func (LinearBase) MulVecInPlace(dst, u []float64) error {
	return operatorErrorf(opMulVecInPlace, ErrUnsupported)
}

// Solve has no generic fallback; absence of a backend override means every
// solve fails, never a silently wrong answer.
func (LinearBase) Solve(b []float64) ([]float64, error) {
	return nil, operatorErrorf(opSolve, ErrUnsupported)
}

// SolveInPlace has no generic fallback.
func (LinearBase) SolveInPlace(dst, b []float64) error {
	return operatorErrorf(opSolveInPlace, ErrUnsupported)
}
