// SPDX-License-Identifier: MIT
// Package operator: the Affine composite.
// Affine is the one concrete operator this package ships: an ordered sum of
// linear sub-operators and forcing terms, u ↦ Σ Aᵢ(t)·u + Σ Bⱼ(t),
// evaluated by delegating to children and reducing their outputs. It owns
// no state beyond its term lists and the optional scratch buffer; the
// constructor validates shape agreement once and the term lists never
// resize or reorder afterwards.
//
// Purpose:
//   - One composite over heterogeneous backends, dispatching through the
//     Linear interface only.
//   - Two evaluation entry points with deliberately different update
//     disciplines (lazy per-term fold vs. eager upfront pass, see below).
//
// Notes:
//   - Not safe for concurrent in-place evaluation of one instance: the
//     scratch buffer is unsynchronized. Use one composite per goroutine or
//     serialize externally.
//   - Update+evaluate against one instance is an ordered pair; nothing
//     isolates an interleaved second caller.

package operator

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// panicNilScratch guards WithScratch against a nil buffer.
const panicNilScratch = "operator: WithScratch: buf must be non-nil"

// Affine represents u ↦ (Σᵢ Aᵢ(t)·u) + (Σⱼ Bⱼ(t)). Build it with
// NewAffine; the zero value is unusable.
type Affine struct {
	Base

	linear  []Linear
	forcing []Forcing
	scratch []float64

	rows, cols int
}

// AffineOption configures an Affine at construction.
type AffineOption func(*Affine)

// WithScratch hands the composite the buffer that enables in-place
// evaluation. Without it EvaluateInPlace fails with ErrUnsupported — a
// missing buffer is never papered over by allocation. The buffer length
// must match the operator's row count (checked by NewAffine).
// Panics on nil buf (programmer error).
func WithScratch(buf []float64) AffineOption {
	if buf == nil {
		panic(panicNilScratch)
	}

	return func(l *Affine) { l.scratch = buf }
}

// NewAffine builds the composite from ordered linear terms and forcing
// terms.
//
// Implementation:
//   - Stage 1: ValidateLinearTerms — non-empty, no nils, every term
//     reporting the first term's shape ("operator sizes do not agree" on
//     violation).
//   - Stage 2: forcing terms — constructor-built (no zero values), and a
//     constant vector term must already match the row count. Callable
//     terms can only be length-checked when evaluated.
//   - Stage 3: copy both term slices, apply options, and check a supplied
//     scratch buffer against the row count.
//
// Returns a ready composite, or:
//   - ErrEmptyTerms, ErrNilOperator, ErrSizeMismatch (stage 1, linear).
//   - ErrInvalidForcing for a zero-value forcing entry.
//   - ErrDimensionMismatch for a mis-sized constant forcing vector or
//     scratch buffer.
//
// Complexity: Time O(n+m) over term counts, Space O(n+m) for the copies.
func NewAffine(linear []Linear, forcing []Forcing, opts ...AffineOption) (*Affine, error) {
	if err := ValidateLinearTerms(linear); err != nil {
		return nil, operatorErrorf(opNewAffine, err)
	}

	rows, cols := linear[0].Size()
	for j := range forcing {
		if !forcing[j].valid() {
			return nil, operatorErrorf(opNewAffine, fmt.Errorf("forcing %d: %w", j, ErrInvalidForcing))
		}
		if forcing[j].kind == forcingVector {
			if err := ValidateVecLen(rows, forcing[j].vec); err != nil {
				return nil, operatorErrorf(opNewAffine, fmt.Errorf("forcing %d: %w", j, err))
			}
		}
	}

	l := &Affine{
		linear:  append([]Linear(nil), linear...),
		forcing: append([]Forcing(nil), forcing...),
		rows:    rows,
		cols:    cols,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.scratch != nil {
		if err := ValidateVecLen(rows, l.scratch); err != nil {
			return nil, operatorErrorf(opNewAffine, err)
		}
	}

	return l, nil
}

// Size returns the shape shared by every linear term.
// Complexity: O(1).
func (l *Affine) Size() (rows, cols int) { return l.rows, l.cols }

// CanEvalInPlace reports whether a scratch buffer was supplied, i.e.
// whether EvaluateInPlace is available on this instance.
func (l *Affine) CanEvalInPlace() bool { return l.scratch != nil }

// UpdateCoefficients returns the composite unchanged: the composite itself
// is stateless over its children, and the out-of-place evaluation path
// refreshes each linear term on its own inside the fold.
func (l *Affine) UpdateCoefficients(u []float64, p any, t float64) Operator { return l }

// UpdateCoefficientsInPlace is the eager full pass over all children: each
// linear term's in-place update, then each forcing term's update hook.
// EvaluateInPlace calls this automatically; Evaluate does NOT — it
// refreshes linear terms lazily per term inside its fold and leaves
// forcing hooks untouched. The two disciplines are part of the contract;
// callers driving the composite as a function of t through Evaluate must
// not rely on forcing hooks having run.
func (l *Affine) UpdateCoefficientsInPlace(u []float64, p any, t float64) {
	for _, a := range l.linear {
		a.UpdateCoefficientsInPlace(u, p, t)
	}
	for j := range l.forcing {
		l.forcing[j].updateCoefficientsInPlace(u, p, t)
	}
}

// Evaluate computes Σ Aᵢ(t)·u + Σ Bⱼ(t) into a fresh vector.
//
// Implementation:
//   - Stage 1: validate len(u) against the column count; allocate the
//     accumulator.
//   - Stage 2: fold linear terms — refresh each term's coefficients, then
//     accumulate Aᵢ·u.
//   - Stage 3: fold forcing terms — constants as-is (vector add or scalar
//     broadcast), functions called as v = B(t). Update hooks do not run.
//
// Behavior highlights:
//   - Lazy refresh: each linear term is updated immediately before its
//     multiply, inside the fold, not in a separate upfront pass.
//   - Fail fast: the first child error aborts; no partial result escapes.
//
// Inputs:
//   - u: state vector, len(u) == cols.
//   - p: caller parameters, passed through to child updates opaquely.
//   - t: evaluation time.
//
// Returns:
//   - []float64: freshly allocated result, length rows.
//   - error: validation failures or propagated child errors, wrapped with
//     the Evaluate tag and the failing term's position.
//
// Errors:
//   - ErrNilOperator, ErrDimensionMismatch, ErrInvalidForcing, plus
//     anything a child MulVec or forcing callable returns.
//
// Determinism:
//   - Terms fold in their construction order; floating-point summation
//     order is the natural sequence order, never re-sorted.
//
// Complexity:
//   - Time O(Σ cost(Aᵢ·u) + m·rows), Space O(rows) for the result.
//
// AI-Hints:
//   - Evaluate allocates per call; in step loops prefer EvaluateInPlace
//     with a scratch buffer supplied at construction.
//   - Child updates mutate child state even on this path; do not share
//     term backends across composites evaluated at different times.
func (l *Affine) Evaluate(u []float64, p any, t float64) ([]float64, error) {
	if l == nil {
		return nil, operatorErrorf(opEvaluate, ErrNilOperator)
	}
	if err := ValidateVecLen(l.cols, u); err != nil {
		return nil, operatorErrorf(opEvaluate, err)
	}

	acc := make([]float64, l.rows)
	for i, a := range l.linear {
		a.UpdateCoefficientsInPlace(u, p, t)
		v, err := a.MulVec(u)
		if err != nil {
			return nil, operatorErrorf(opEvaluate, fmt.Errorf("term %d: %w", i, err))
		}
		if err = ValidateVecLen(l.rows, v); err != nil {
			return nil, operatorErrorf(opEvaluate, fmt.Errorf("term %d: %w", i, err))
		}
		floats.Add(acc, v)
	}
	for j := range l.forcing {
		if err := l.forcing[j].accumulate(acc, t); err != nil {
			return nil, operatorErrorf(opEvaluate, fmt.Errorf("forcing %d: %w", j, err))
		}
	}

	return acc, nil
}

// EvaluateInPlace computes du = Σ Aᵢ(t)·u + Σ Bⱼ(t) without allocating.
//
// Implementation:
//   - Stage 1: require the scratch buffer (ErrUnsupported immediately if
//     none was supplied at construction); validate du and u lengths.
//   - Stage 2: one eager UpdateCoefficientsInPlace pass over all children.
//   - Stage 3: zero du; for each linear term multiply into scratch and
//     accumulate du += scratch.
//   - Stage 4: fold forcing terms — constants accumulate directly; a
//     function term must carry in-place support and evaluates into
//     scratch first. A term lacking it fails right where it is reached.
//
// Behavior highlights:
//   - Never allocates: a missing scratch buffer is an error, not a hidden
//     downgrade to the allocating path.
//   - Fail fast per term; du's contents are unspecified after an error.
//
// Inputs:
//   - du: output buffer, len(du) == rows; overwritten.
//   - u: state vector, len(u) == cols; never written.
//   - p, t: as in Evaluate.
//
// Returns:
//   - error: ErrUnsupported (no scratch buffer, or a forcing term without
//     in-place support), ErrDimensionMismatch, or propagated child errors,
//     wrapped with the EvaluateInPlace tag and term position.
//
// Determinism:
//   - Same natural term order as Evaluate; with a scratch buffer the two
//     paths agree within floating-point tolerance.
//
// Complexity:
//   - Time O(Σ cost(Aᵢ·u) + m·rows), Space O(1) beyond the caller's
//     buffers.
//
// AI-Hints:
//   - Size the scratch buffer to the row count once; NewAffine rejects
//     other lengths.
//   - One instance, one caller: concurrent in-place evaluation races on
//     the scratch buffer.
func (l *Affine) EvaluateInPlace(du, u []float64, p any, t float64) error {
	if l == nil {
		return operatorErrorf(opEvaluateInPlace, ErrNilOperator)
	}
	if l.scratch == nil {
		return operatorErrorf(opEvaluateInPlace, ErrUnsupported)
	}
	if err := ValidateVecLen(l.rows, du); err != nil {
		return operatorErrorf(opEvaluateInPlace, err)
	}
	if err := ValidateVecLen(l.cols, u); err != nil {
		return operatorErrorf(opEvaluateInPlace, err)
	}

	l.UpdateCoefficientsInPlace(u, p, t)

	zeroVec(du)
	for i, a := range l.linear {
		if err := a.MulVecInPlace(l.scratch, u); err != nil {
			return operatorErrorf(opEvaluateInPlace, fmt.Errorf("term %d: %w", i, err))
		}
		floats.Add(du, l.scratch)
	}
	for j := range l.forcing {
		if err := l.forcing[j].accumulateInPlace(du, l.scratch, t); err != nil {
			return operatorErrorf(opEvaluateInPlace, fmt.Errorf("forcing %d: %w", j, err))
		}
	}

	return nil
}

// zeroVec clears v in place.
func zeroVec(v []float64) {
	for i := range v {
		v[i] = 0
	}
}
