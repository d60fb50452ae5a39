// SPDX-License-Identifier: MIT
// Package operator: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// operator package, plus the op-tag wrapping helper. All entry points MUST
// return these sentinels and tests MUST check them via errors.Is. No entry
// point panics on caller-triggered conditions; panics are reserved for
// programmer errors caught inside option constructors.

package operator

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "operator: ..." so a wrapped chain greps
// cleanly across logs. Do not %w wrap these sentinels when returning them
// directly; when call-site context helps, wrap once with
// operatorErrorf(tag, ErrX) at the boundary — callers still match with
// errors.Is.

var (
	// ErrSizeMismatch is returned at construction when the linear terms of a
	// composite do not all report the shape of the first term.
	ErrSizeMismatch = errors.New("operator: operator sizes do not agree")

	// ErrUnsupported marks a capability the receiving operator does not
	// declare: in-place evaluation without a scratch buffer, solve without a
	// factorization backend, in-place forcing evaluation on an
	// out-of-place-only term, or the exponential fallback on an operator
	// that opted out. These are programming errors; nothing downgrades them
	// to a different behavior.
	ErrUnsupported = errors.New("operator: unsupported operation")

	// ErrDimensionMismatch indicates a state vector or buffer whose length
	// disagrees with the operator's shape.
	ErrDimensionMismatch = errors.New("operator: dimension mismatch")

	// ErrNilOperator indicates a nil operator (receiver or argument).
	ErrNilOperator = errors.New("operator: nil operator")

	// ErrEmptyTerms is returned when a composite is built without a single
	// linear term; the composite takes its shape from the first one.
	ErrEmptyTerms = errors.New("operator: at least one linear term required")

	// ErrInvalidForcing indicates a zero-value forcing term (one not built
	// through a Forcing constructor).
	ErrInvalidForcing = errors.New("operator: invalid forcing term")

	// ErrNonSquare signals that a square operator was required (Exp, Solve)
	// but the input wasn't.
	ErrNonSquare = errors.New("operator: operator is not square")

	// ErrSingular is returned by solve-capable backends on a singular
	// system.
	ErrSingular = errors.New("operator: singular operator")
)

// Operation tags used by operatorErrorf. Bare entry-point names; the
// sentinel below them already carries the package prefix.
const (
	opNewAffine          = "NewAffine"
	opEvaluate           = "Evaluate"
	opEvaluateInPlace    = "EvaluateInPlace"
	opMulVecInPlace      = "MulVecInPlace"
	opSolve              = "Solve"
	opSolveInPlace       = "SolveInPlace"
	opExpMulVec          = "ExpMulVec"
	opExpMulVecInPlace   = "ExpMulVecInPlace"
	opForcingEval        = "Forcing.eval"
	opForcingEvalInPlace = "Forcing.evalInPlace"
)

// operatorErrorf wraps err with an operation tag, preserving the original
// error via %w so errors.Is keeps matching the sentinel.
func operatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// BACKWARD-COMPATIBILITY ALIASES (kept to avoid breaking current callers).
// Semantically identical sentinels under their historical names.

// ErrNotImplemented historically named the same condition as ErrUnsupported.
// Keep it as an alias so errors.Is(err, ErrNotImplemented) remains true.
var ErrNotImplemented = ErrUnsupported // Deprecated: use ErrUnsupported.

// ErrShapeMismatch historically named the construction-time size check.
var ErrShapeMismatch = ErrSizeMismatch // Deprecated: use ErrSizeMismatch.
