// SPDX-License-Identifier: MIT

// Package operator: generic exponential action.
// The fallbacks here express exp(t·A)·u purely in terms of a backend's Exp.
// They live at package level because a default body that needs the outer
// operator cannot sit on an embedded base; backends with a cheaper action
// (Krylov, closed forms) implement the upgrade interfaces below and are
// dispatched to directly.
package operator

// ExpMultiplier is implemented by linear operators with a specialized
// out-of-place exponential action. ExpMulVec prefers it over the generic
// exp-then-multiply route.
type ExpMultiplier interface {
	ExpMulVec(u []float64, p any, t float64) ([]float64, error)
}

// ExpMultiplierInPlace is the in-place counterpart of ExpMultiplier.
type ExpMultiplierInPlace interface {
	ExpMulVecInPlace(dst, u []float64, p any, t float64) error
}

// ExpMulVec computes exp(t·op)·u.
//
// Dispatch order:
//   - Stage 1: op implements ExpMultiplier → use the specialized action.
//   - Stage 2: op.CanExp() false → the backend opted out of exponentiation;
//     relying on the fallback is a programming error, ErrUnsupported.
//   - Stage 3: generic fallback — materialize e := op.Exp(t), return e·u.
//
// Errors: ErrNilOperator, ErrUnsupported, or whatever the backend's Exp and
// multiply propagate (ErrNonSquare, ErrDimensionMismatch).
// Complexity: specialized path is backend-dependent; the fallback pays the
// full cost of materializing the exponential, O(rows²) space for dense.
func ExpMulVec(op Linear, u []float64, p any, t float64) ([]float64, error) {
	if op == nil {
		return nil, operatorErrorf(opExpMulVec, ErrNilOperator)
	}
	if x, ok := op.(ExpMultiplier); ok {
		return x.ExpMulVec(u, p, t)
	}
	if !op.CanExp() {
		return nil, operatorErrorf(opExpMulVec, ErrUnsupported)
	}

	e, err := op.Exp(t)
	if err != nil {
		return nil, operatorErrorf(opExpMulVec, err)
	}

	return e.MulVec(u)
}

// ExpMulVecInPlace computes dst = exp(t·op)·u without allocating beyond
// what the backend's Exp materializes. Same dispatch order as ExpMulVec;
// the fallback is an in-place multiply against the materialized
// exponential, so the exponential itself must support MulVecInPlace.
func ExpMulVecInPlace(dst []float64, op Linear, u []float64, p any, t float64) error {
	if op == nil {
		return operatorErrorf(opExpMulVecInPlace, ErrNilOperator)
	}
	if x, ok := op.(ExpMultiplierInPlace); ok {
		return x.ExpMulVecInPlace(dst, u, p, t)
	}
	if !op.CanExp() {
		return operatorErrorf(opExpMulVecInPlace, ErrUnsupported)
	}

	e, err := op.Exp(t)
	if err != nil {
		return operatorErrorf(opExpMulVecInPlace, err)
	}

	return e.MulVecInPlace(dst, u)
}
