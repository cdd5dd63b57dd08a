// SPDX-License-Identifier: MIT
// Package tensor: elementwise kernels with broadcasting.
//
// Purpose:
//   - Provide the small set of elementwise operations the ranking code
//     needs (Abs, Sub, Mul, ...) over arbitrary batch shapes.
//
// Determinism & Performance:
//   - Fixed flat 0..n-1 loop order; one output allocation per call.
//   - Binary ops materialize both operands at the broadcast shape first,
//     trading memory for a branch-free inner loop.

package tensor

import "math"

// Op is a binary operator applied elementwise or pairwise.
type Op func(x, y float64) float64

// Stock operators for Elementwise and Pairs.
func OpAdd(x, y float64) float64 { return x + y }
func OpSub(x, y float64) float64 { return x - y }
func OpMul(x, y float64) float64 { return x * y }

// OpFirst ignores its second operand. Useful with Pairs to expand a
// per-item quantity to every pair keyed by the first (row) item.
func OpFirst(x, _ float64) float64 { return x }

// Apply returns f mapped over every element of t.
func Apply(t *Tensor, f func(float64) float64) (*Tensor, error) {
	if t == nil {
		return nil, ErrNilTensor
	}
	if f == nil {
		return nil, ErrNilOp
	}
	out := t.Clone()
	for i, v := range out.data {
		out.data[i] = f(v)
	}

	return out, nil
}

// Abs returns the elementwise absolute value of t.
// NaN stays NaN, ±Inf becomes +Inf.
func Abs(t *Tensor) (*Tensor, error) { return Apply(t, math.Abs) }

// Scale returns t with every element multiplied by c.
func Scale(t *Tensor, c float64) (*Tensor, error) {
	return Apply(t, func(v float64) float64 { return v * c })
}

// Elementwise applies f to a and b under broadcasting and returns the
// result at the broadcast shape. Returns ErrBroadcast when the operand
// shapes are incompatible.
func Elementwise(a, b *Tensor, f Op) (*Tensor, error) {
	if a == nil || b == nil {
		return nil, ErrNilTensor
	}
	if f == nil {
		return nil, ErrNilOp
	}
	shape, err := BroadcastShape(a.shape, b.shape)
	if err != nil {
		return nil, err
	}
	ea, err := BroadcastTo(a, shape)
	if err != nil {
		return nil, err
	}
	eb, err := BroadcastTo(b, shape)
	if err != nil {
		return nil, err
	}
	for i := range ea.data {
		ea.data[i] = f(ea.data[i], eb.data[i])
	}

	return ea, nil
}

// Add returns a + b elementwise under broadcasting.
func Add(a, b *Tensor) (*Tensor, error) { return Elementwise(a, b, OpAdd) }

// Sub returns a - b elementwise under broadcasting.
func Sub(a, b *Tensor) (*Tensor, error) { return Elementwise(a, b, OpSub) }

// Mul returns a * b elementwise under broadcasting.
func Mul(a, b *Tensor) (*Tensor, error) { return Elementwise(a, b, OpMul) }

// Where selects a where mask is true and b where it is false.
// All three operands broadcast to a common shape.
func Where(mask *Bool, a, b *Tensor) (*Tensor, error) {
	if mask == nil || a == nil || b == nil {
		return nil, ErrNilTensor
	}
	shape, err := BroadcastShape(a.shape, b.shape)
	if err != nil {
		return nil, err
	}
	shape, err = BroadcastShape(mask.shape, shape)
	if err != nil {
		return nil, err
	}
	em, err := BroadcastBoolTo(mask, shape)
	if err != nil {
		return nil, err
	}
	ea, err := BroadcastTo(a, shape)
	if err != nil {
		return nil, err
	}
	eb, err := BroadcastTo(b, shape)
	if err != nil {
		return nil, err
	}
	for i := range ea.data {
		if !em.data[i] {
			ea.data[i] = eb.data[i]
		}
	}

	return ea, nil
}
