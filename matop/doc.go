// Package matop ships the concrete operator backends: dense matrices,
// scalar multiples of the identity, matrix-free functions, and
// factorization-backed solve-only operators, all built on
// gonum.org/v1/gonum/mat.
//
// The matop package provides:
//
//   - MatrixOperator — a *mat.Dense wrapper with the full capability set
//     (multiply, solve, exponential) and an optional coefficient-update
//     function for time-varying systems.
//   - ScalarOperator — c·I of a fixed order, with closed forms for every
//     operation including the exponential action; Identity(n) is the c = 1
//     convenience.
//   - FuncOperator — a matrix-free action for operators too large or too
//     structured to materialize; opts out of exponentials and solves.
//   - SolveOperator — an LU-backed backend that only solves, for
//     implicit-step workflows where the operator is applied inverted.
//
// Every backend satisfies operator.Linear and plugs into operator.NewAffine
// unchanged. Dense work is delegated to gonum; this package adds shape
// discipline and the capability protocol on top.
//
// See the examples in this package and operator for usage patterns.
package matop
