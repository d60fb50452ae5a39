// SPDX-License-Identifier: MIT

// Package operator: the solver-facing calling convention.
// A driver holds some operator value — a leaf backend or the Affine
// composite — and each step refreshes coefficients, then evaluates against
// the state. Evaluator is that pair of entry points; each one sequences
// "update, then compute" internally so callers cannot get the order wrong.
package operator

// Evaluator is the convention drivers use against any operator value:
// out-of-place value = op(u, p, t), in-place op(du, u, p, t).
type Evaluator interface {
	// Evaluate computes the operator's action on u at time t into a fresh
	// vector.
	Evaluate(u []float64, p any, t float64) ([]float64, error)

	// EvaluateInPlace computes the action into du without allocating.
	EvaluateInPlace(du, u []float64, p any, t float64) error
}

// linearEvaluator adapts a Linear backend to the Evaluator convention.
type linearEvaluator struct {
	op Linear
}

// AsEvaluator lifts a linear operator into the driver convention: each
// call runs the in-place coefficient update for (u, p, t) and then
// multiplies. The in-place path needs the backend's MulVecInPlace and
// fails with ErrUnsupported when the backend lacks it.
// Panics on nil op (programmer error).
func AsEvaluator(op Linear) Evaluator {
	if op == nil {
		panic("operator: AsEvaluator: op must be non-nil")
	}

	return &linearEvaluator{op: op}
}

func (e *linearEvaluator) Evaluate(u []float64, p any, t float64) ([]float64, error) {
	e.op.UpdateCoefficientsInPlace(u, p, t)

	return e.op.MulVec(u)
}

func (e *linearEvaluator) EvaluateInPlace(du, u []float64, p any, t float64) error {
	e.op.UpdateCoefficientsInPlace(u, p, t)

	return e.op.MulVecInPlace(du, u)
}
