// SPDX-License-Identifier: MIT

// Package operator: the capability protocol.
// This file declares the Operator interface — the minimum contract any
// operator-like value must satisfy to participate in the ecosystem — and
// Base, the embeddable struct carrying every protocol default that does not
// need the outer value. Errors live in errors.go, the linear refinement in
// linear.go, the composite in affine.go.
package operator

// Operator is the minimum contract a time- and state-dependent
// transformation must satisfy. Everything acts on []float64 state vectors;
// the element type is fixed by the package, not queried at runtime.
//
// Capabilities are independent yes/no queries rather than a kind enum:
// real backends mix them orthogonally (a sparse operator may multiply and
// solve yet have no exponential), and an enum would force illegal
// combinations. Generic algorithms branch on the flags instead of
// structurally inspecting the value — a solver picks an
// exponential-integrator path only when CanExp reports true.
//
// Holding an Operator implies no mutation contract: coefficients change
// only through the explicit update calls below.
type Operator interface {
	// Size returns the shape of the operator's action (rows × cols).
	// Complexity: O(1).
	Size() (rows, cols int)

	// UpdateCoefficients returns an operator refreshed for (u, p, t)
	// without mutating the receiver. Pure operators return the receiver
	// unchanged; stateful backends return a refreshed copy.
	UpdateCoefficients(u []float64, p any, t float64) Operator

	// UpdateCoefficientsInPlace refreshes internal coefficients for
	// (u, p, t), mutating the receiver. Default: no-op.
	UpdateCoefficientsInPlace(u []float64, p any, t float64)

	// IsConstant reports whether the operator is time- and state-invariant.
	// Default: false (assume varying unless declared otherwise).
	IsConstant() bool

	// IsLinear reports algebraic linearity. Default: false.
	IsLinear() bool

	// CanMulVec reports whether the operator computes A·u.
	// The one capability presumed: default true.
	CanMulVec() bool

	// CanMulVecInPlace reports in-place multiply support. Default: false.
	CanMulVecInPlace() bool

	// CanSolve reports factorization-solve support. Default: false.
	CanSolve() bool

	// CanSolveInPlace reports in-place solve support. Default: false.
	CanSolveInPlace() bool

	// CanExp reports whether the operator exponential exp(t·A) can be
	// materialized. Default: false.
	CanExp() bool

	// CanExpMulVec reports a specialized exponential action exp(t·A)·u.
	// Default: false; see ExpMulVec for the generic fallback.
	CanExpMulVec() bool

	// CanExpMulVecInPlace reports a specialized in-place exponential
	// action. Default: false.
	CanExpMulVecInPlace() bool
}

// Base carries the protocol's default answers and is meant to be embedded
// by backends, which then override only what they genuinely support.
//
// Two protocol operations are deliberately absent: Size (backend-specific,
// no sensible default) and UpdateCoefficients (its default "return the
// receiver unchanged" needs the outer value, which an embedded struct never
// sees — pure backends write the one-line return-self form themselves).
type Base struct{}

// UpdateCoefficientsInPlace is the default in-place refresh: a no-op.
func (Base) UpdateCoefficientsInPlace(u []float64, p any, t float64) {}

// IsConstant defaults to false: assume time/state-varying.
func (Base) IsConstant() bool { return false }

// IsLinear defaults to false.
func (Base) IsLinear() bool { return false }

// CanMulVec defaults to true: operator-like values are presumed to act.
func (Base) CanMulVec() bool { return true }

// CanMulVecInPlace defaults to false.
func (Base) CanMulVecInPlace() bool { return false }

// CanSolve defaults to false.
func (Base) CanSolve() bool { return false }

// CanSolveInPlace defaults to false.
func (Base) CanSolveInPlace() bool { return false }

// CanExp defaults to false.
func (Base) CanExp() bool { return false }

// CanExpMulVec defaults to false.
func (Base) CanExpMulVec() bool { return false }

// CanExpMulVecInPlace defaults to false.
func (Base) CanExpMulVecInPlace() bool { return false }
