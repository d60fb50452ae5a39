// SPDX-License-Identifier: MIT
// Package matop: sentinel error set.
// Construction failures get their own sentinels here; everything the
// capability protocol already names (dimension mismatches, unsupported
// operations, singular systems, non-square inputs) reuses the operator
// package's sentinels so callers match one taxonomy with errors.Is.

package matop

import (
	"errors"
	"fmt"
)

var (
	// ErrNilDense indicates a nil *mat.Dense handed to a constructor.
	ErrNilDense = errors.New("matop: nil dense matrix")

	// ErrNilFunc indicates a nil apply function handed to NewFuncOperator.
	ErrNilFunc = errors.New("matop: nil apply function")

	// ErrBadShape is returned when a requested shape or order is not
	// positive.
	ErrBadShape = errors.New("matop: shape must be positive")
)

// Backend type tags for backendErrorf.
const (
	typeMatrix = "MatrixOperator"
	typeScalar = "ScalarOperator"
	typeFunc   = "FuncOperator"
	typeSolve  = "SolveOperator"
)

// backendErrorf wraps err with backend type and method context, preserving
// the original error via %w.
func backendErrorf(typ, method string, err error) error {
	return fmt.Errorf("%s.%s: %w", typ, method, err)
}
