// Package diffop is an operator abstraction layer for differential-equation
// solvers — one calling convention for dense, scalar, matrix-free and
// composed linear operators, so the stepping code never inspects a backend.
//
// 🚀 What is diffop?
//
//	A small, focused library that brings together:
//		• Capability protocol: constant? linear? multiply/solve/exp — queryable per operator
//		• Linear refinement: scalar absorption + a generic exp(t·A)·u fallback
//		• Affine composite: u ↦ Σ Aᵢ(t)·u + Σ Bⱼ(t) over heterogeneous children
//		• Backends: dense matrix, scalar c·I, matrix-free function, LU solve-only
//
// ✨ Why choose diffop?
//
//   - Solver-friendly – update-then-evaluate is sequenced inside the entry points
//   - Honest failures – unsupported operations error out, never allocate behind your back
//   - Plain float64 – state vectors are []float64, backends lean on gonum/mat
//   - Extensible – any type satisfying operator.Linear plugs into the composite
//
// Under the hood, everything is organized under two subpackages:
//
//	operator/ — the protocol, the linear refinement, the Affine composite & errors
//	matop/    — concrete gonum-backed operators (dense, scalar, func, solve-only)
//
// Quick sketch:
//
//	    du/dt = A₁(t)·u + A₂·u + b(t)
//
//	build each term once, hand them to operator.NewAffine, and evaluate the
//	right-hand side with one call per step.
//
// Dive into README.md for full examples and the capability matrix.
//
//	go get github.com/veihola/diffop
package diffop
