// Package operator defines the operator abstraction consumed by
// differential-equation solvers: a capability protocol every operator value
// answers, a refinement for algebraically linear operators, and the Affine
// composite that sums linear terms and forcing terms behind one calling
// convention.
//
// The operator package provides:
//
//   - Operator, the minimum contract: shape, coefficient updates, constancy
//     and linearity queries, and independent capability flags (Can*).
//   - Linear, the refinement adding the numeric surface (MulVec, Solve, Exp,
//     scalar absorption via Scale) plus generic exponential-action fallbacks
//     (ExpMulVec, ExpMulVecInPlace) built on a backend's Exp.
//   - Affine, the concrete composite u ↦ Σ Aᵢ(t)·u + Σ Bⱼ(t), delegating to
//     heterogeneous children it does not statically know about.
//   - Base and LinearBase, embeddable defaults so a backend overrides only
//     what it genuinely supports.
//
// Unsupported operations fail with ErrUnsupported instead of degrading:
// in-place evaluation never allocates behind the caller's back, and solve
// has no generic fallback. An Affine instance is not safe for concurrent
// in-place evaluation; give each goroutine its own composite or serialize.
//
// See the examples in this package and matop for usage patterns.
package operator
