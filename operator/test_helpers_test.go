// SPDX-License-Identifier: MIT
// Package operator_test contains shared test fixtures.
//
// Purpose:
//   • Provide small deterministic Linear fakes so protocol and composite
//     behavior is testable without importing a backend package.
//   • Keep all data finite and well-formed.

package operator_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/veihola/diffop/operator"
)

// diagLin is the workhorse fake: a diagonal n×n linear operator with a
// closed-form exponential.
//
// Behavior highlights:
//   - update installs a coefficient-update function, making the operator
//     time-varying with the derived-linearity convention applied.
//   - updates counts in-place update calls; the composite's two update
//     disciplines are asserted through it.
//   - noExp opts the operator out of exponentiation: CanExp false and Exp
//     failing, the contract the generic fallback must honor.
//
// Determinism:
//   - All operations are elementwise over d; no RNG, no shared state.
type diagLin struct {
	operator.LinearBase

	d       []float64
	update  func(d, u []float64, p any, t float64)
	updates *int
	noExp   bool
}

// newDiag builds a constant diagonal operator from its entries.
func newDiag(d ...float64) *diagLin {
	return &diagLin{d: append([]float64(nil), d...)}
}

func (l *diagLin) Size() (rows, cols int) { return len(l.d), len(l.d) }

func (l *diagLin) IsConstant() bool { return l.update == nil }

func (l *diagLin) IsLinear() bool { return l.IsConstant() }

func (l *diagLin) CanMulVecInPlace() bool { return true }

func (l *diagLin) CanExp() bool { return !l.noExp }

func (l *diagLin) UpdateCoefficients(u []float64, p any, t float64) operator.Operator {
	if l.update == nil {
		return l
	}

	clone := &diagLin{
		d:       append([]float64(nil), l.d...),
		update:  l.update,
		updates: l.updates,
		noExp:   l.noExp,
	}
	clone.update(clone.d, u, p, t)

	return clone
}

func (l *diagLin) UpdateCoefficientsInPlace(u []float64, p any, t float64) {
	if l.updates != nil {
		*l.updates++
	}
	if l.update != nil {
		l.update(l.d, u, p, t)
	}
}

func (l *diagLin) MulVec(u []float64) ([]float64, error) {
	if len(u) != len(l.d) {
		return nil, operator.ErrDimensionMismatch
	}

	out := make([]float64, len(l.d))
	var i int
	for i = 0; i < len(l.d); i++ {
		out[i] = l.d[i] * u[i]
	}

	return out, nil
}

func (l *diagLin) MulVecInPlace(dst, u []float64) error {
	if len(dst) != len(l.d) || len(u) != len(l.d) {
		return operator.ErrDimensionMismatch
	}

	var i int
	for i = 0; i < len(l.d); i++ {
		dst[i] = l.d[i] * u[i]
	}

	return nil
}

func (l *diagLin) Scale(c float64) operator.Linear {
	s := &diagLin{d: make([]float64, len(l.d))}
	var i int
	for i = 0; i < len(l.d); i++ {
		s.d[i] = c * l.d[i]
	}

	return s
}

func (l *diagLin) Exp(t float64) (operator.Linear, error) {
	if l.noExp {
		return nil, operator.ErrUnsupported
	}

	e := &diagLin{d: make([]float64, len(l.d))}
	var i int
	for i = 0; i < len(l.d); i++ {
		e.d[i] = math.Exp(t * l.d[i])
	}

	return e, nil
}

// bareLin is the minimal fake: identity action, everything else left to
// the inherited LinearBase defaults (no in-place multiply, no solve) and
// an explicit exponentiation opt-out. It is how a hasty backend looks.
type bareLin struct {
	operator.LinearBase

	n int
}

func (l *bareLin) Size() (rows, cols int) { return l.n, l.n }

func (l *bareLin) UpdateCoefficients(u []float64, p any, t float64) operator.Operator {
	return l
}

func (l *bareLin) CanExp() bool { return false }

func (l *bareLin) MulVec(u []float64) ([]float64, error) {
	if len(u) != l.n {
		return nil, operator.ErrDimensionMismatch
	}

	return append([]float64(nil), u...), nil
}

func (l *bareLin) Scale(c float64) operator.Linear {
	s := newDiag(make([]float64, l.n)...)
	var i int
	for i = 0; i < l.n; i++ {
		s.d[i] = c
	}

	return s
}

func (l *bareLin) Exp(t float64) (operator.Linear, error) {
	return nil, operator.ErrUnsupported
}

// randomVec returns a deterministic U(-1,1) vector for the given seed.
func randomVec(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	v := make([]float64, n)
	var i int
	for i = 0; i < n; i++ {
		v[i] = rng.Float64()*2 - 1
	}

	return v
}

// CompareVecExact asserts elementwise == (integer-like fixtures only).
func CompareVecExact(t *testing.T, want, got []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("len = %d; want %d", len(got), len(want))
	}
	var i int
	for i = 0; i < len(want); i++ {
		if got[i] != want[i] {
			t.Fatalf("v[%d] = %v; want %v", i, got[i], want[i])
		}
	}
}

// CompareVecClose asserts elementwise |got-want| <= tol.
func CompareVecClose(t *testing.T, want, got []float64, tol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("len = %d; want %d", len(got), len(want))
	}
	var i int
	for i = 0; i < len(want); i++ {
		if math.Abs(got[i]-want[i]) > tol {
			t.Fatalf("v[%d] = %v; want %v (tol %v)", i, got[i], want[i], tol)
		}
	}
}

// AssertErrorIs fails the test unless errors.Is(err, want).
func AssertErrorIs(t *testing.T, err, want error) {
	t.Helper()
	if !errors.Is(err, want) {
		t.Fatalf("error = %v; want errors.Is(..., %v)", err, want)
	}
}

// ExpectPanic runs fn and fails the test unless it panics.
func ExpectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic, got none", name)
		}
	}()
	fn()
}
