// SPDX-License-Identifier: MIT

// Package operator: central validators.
// Single source of truth for the checks every entry point performs before
// touching numbers. Validators return plain sentinels wrapped with their
// own tag; callers add the operation tag at the boundary when useful.
package operator

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateOperator rejects a nil operator value.
// Returns ErrNilOperator; Complexity: O(1).
func ValidateOperator(op Operator) error {
	if op == nil {
		return validatorErrorf("ValidateOperator", ErrNilOperator)
	}

	return nil
}

// ValidateLinearTerms checks the composite construction invariant: no nil
// entries, at least one term, and every term reporting the shape of the
// first. The invariant holds for the composite's lifetime, nothing
// re-checks it later.
//
// Returns:
//   - ErrEmptyTerms when terms is empty.
//   - ErrNilOperator when an entry is nil.
//   - ErrSizeMismatch when shapes disagree.
//
// Complexity: O(n) over the term count.
func ValidateLinearTerms(terms []Linear) error {
	if len(terms) == 0 {
		return validatorErrorf("ValidateLinearTerms", ErrEmptyTerms)
	}
	for i, a := range terms {
		if a == nil {
			return validatorErrorf(fmt.Sprintf("ValidateLinearTerms: term %d", i), ErrNilOperator)
		}
	}

	r0, c0 := terms[0].Size()
	for i := 1; i < len(terms); i++ {
		if r, c := terms[i].Size(); r != r0 || c != c0 {
			return validatorErrorf(fmt.Sprintf("ValidateLinearTerms: term %d", i), ErrSizeMismatch)
		}
	}

	return nil
}

// ValidateVecLen checks that v has exactly want elements.
// Returns ErrDimensionMismatch; Complexity: O(1).
func ValidateVecLen(want int, v []float64) error {
	if len(v) != want {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare requires a square operator (Exp, Solve callers).
// Returns ErrNilOperator or ErrNonSquare; Complexity: O(1).
func ValidateSquare(op Operator) error {
	if err := ValidateOperator(op); err != nil {
		return err
	}
	if r, c := op.Size(); r != c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}
