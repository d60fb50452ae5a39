// SPDX-License-Identifier: MIT

// Package operator: deprecated capability queries.
// Early releases exposed the capability protocol as package-level Has*
// functions; the current surface is the Can* method set on Operator. The
// forwarders below keep old callers compiling and behaving identically.
// NOTE: these aliases are kept for backwards compatibility and may be
// removed in a future major release (see CHANGELOG).
package operator

// HasMulVec reports multiply support.
// Deprecated: Use op.CanMulVec.
func HasMulVec(op Operator) bool { return op.CanMulVec() }

// HasMulVecInPlace reports in-place multiply support.
// Deprecated: Use op.CanMulVecInPlace.
func HasMulVecInPlace(op Operator) bool { return op.CanMulVecInPlace() }

// HasSolve reports factorization-solve support.
// Deprecated: Use op.CanSolve.
func HasSolve(op Operator) bool { return op.CanSolve() }

// HasSolveInPlace reports in-place solve support.
// Deprecated: Use op.CanSolveInPlace.
func HasSolveInPlace(op Operator) bool { return op.CanSolveInPlace() }

// HasExp reports operator-exponential support.
// Deprecated: Use op.CanExp.
func HasExp(op Operator) bool { return op.CanExp() }

// HasExpMulVec reports specialized exponential-action support.
// Deprecated: Use op.CanExpMulVec.
func HasExpMulVec(op Operator) bool { return op.CanExpMulVec() }

// HasExpMulVecInPlace reports specialized in-place exponential-action
// support.
// Deprecated: Use op.CanExpMulVecInPlace.
func HasExpMulVecInPlace(op Operator) bool { return op.CanExpMulVecInPlace() }
