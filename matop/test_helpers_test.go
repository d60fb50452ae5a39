// SPDX-License-Identifier: MIT
// Package matop_test: shared helpers for the backend tests — Must*
// constructor wrappers, deterministic random data and tiny comparison
// utilities.

package matop_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/veihola/diffop/matop"
	"github.com/veihola/diffop/operator"
)

// hideLinear narrows a backend to exactly the Linear method set, so
// upgrade-interface assertions cannot see the backend's specialized
// methods and generic code paths are forced.
type hideLinear struct{ operator.Linear }

// mustMatrix builds a MatrixOperator or fails the test.
func mustMatrix(tb testing.TB, m *mat.Dense, opts ...matop.MatrixOption) *matop.MatrixOperator {
	tb.Helper()
	a, err := matop.NewMatrixOperator(m, opts...)
	if err != nil {
		tb.Fatalf("NewMatrixOperator: unexpected error: %v", err)
	}

	return a
}

// mustScalar builds a ScalarOperator or fails the test.
func mustScalar(tb testing.TB, n int, c float64, opts ...matop.ScalarOption) *matop.ScalarOperator {
	tb.Helper()
	s, err := matop.NewScalarOperator(n, c, opts...)
	if err != nil {
		tb.Fatalf("NewScalarOperator: unexpected error: %v", err)
	}

	return s
}

// mustFunc builds a FuncOperator or fails the test.
func mustFunc(tb testing.TB, rows, cols int, fn matop.ApplyFunc, opts ...matop.FuncOption) *matop.FuncOperator {
	tb.Helper()
	f, err := matop.NewFuncOperator(rows, cols, fn, opts...)
	if err != nil {
		tb.Fatalf("NewFuncOperator: unexpected error: %v", err)
	}

	return f
}

// mustSolve factorizes m into a SolveOperator or fails the test.
func mustSolve(tb testing.TB, m *mat.Dense) *matop.SolveOperator {
	tb.Helper()
	s, err := matop.NewSolveOperator(m)
	if err != nil {
		tb.Fatalf("NewSolveOperator: unexpected error: %v", err)
	}

	return s
}

// randomVec returns n deterministic pseudo-random values in [-1, 1).
func randomVec(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	v := make([]float64, n)
	var i int
	for i = 0; i < n; i++ {
		v[i] = 2*rng.Float64() - 1
	}

	return v
}

// randomDiagDominant returns a deterministic random n×n matrix with its
// diagonal lifted by n, keeping it comfortably nonsingular.
func randomDiagDominant(n int, seed int64) *mat.Dense {
	rng := rand.New(rand.NewSource(seed))
	m := mat.NewDense(n, n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			m.Set(i, j, 2*rng.Float64()-1)
		}
		m.Set(i, i, m.At(i, i)+float64(n))
	}

	return m
}

// CompareVecExact fails unless got equals want element-for-element.
func CompareVecExact(tb testing.TB, want, got []float64) {
	tb.Helper()
	if len(got) != len(want) {
		tb.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	var i int
	for i = 0; i < len(want); i++ {
		if got[i] != want[i] {
			tb.Fatalf("element %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

// CompareVecClose fails unless got is within tol of want element-wise.
func CompareVecClose(tb testing.TB, want, got []float64, tol float64) {
	tb.Helper()
	if len(got) != len(want) {
		tb.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	var i int
	for i = 0; i < len(want); i++ {
		if math.Abs(got[i]-want[i]) > tol {
			tb.Fatalf("element %d: got %v, want %v (tol %g)", i, got[i], want[i], tol)
		}
	}
}

// AssertErrorIs fails unless errors.Is(err, want).
func AssertErrorIs(tb testing.TB, err, want error) {
	tb.Helper()
	if !errors.Is(err, want) {
		tb.Fatalf("error = %v; want errors.Is(..., %v)", err, want)
	}
}

// ExpectPanic fails unless fn panics.
func ExpectPanic(tb testing.TB, name string, fn func()) {
	tb.Helper()
	defer func() {
		if recover() == nil {
			tb.Fatalf("%s: expected panic, got none", name)
		}
	}()
	fn()
}
