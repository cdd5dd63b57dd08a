// Package tensor provides a small, dense, batched numeric array type for
// learning-to-rank computations: shape-polymorphic elementwise arithmetic,
// NumPy-style broadcasting, and pairwise combination along the last axis.
//
// 🚀 What is tensor?
//
//	A Tensor is a flat, row-major float64 buffer plus a shape. The last
//	axis is conventionally a "list" (one query's items); every leading
//	axis is an independent batch dimension. All operations treat batch
//	dimensions uniformly — no fixed ranks are special-cased.
//
// ✨ Key features:
//   - constructors with strict shape validation (New, Zeros, Full, FromRows)
//   - NumPy-style broadcasting: BroadcastShape, BroadcastTo, Elementwise
//   - pairwise expansion: Pairs(t, op) maps [..., n] → [..., n, n]
//   - boolean masks via the Bool type and Where(mask, a, b)
//   - gonum bridge: ToDense / FromDense for per-matrix linear algebra
//
// ⚙️ Usage:
//
//	import "github.com/ronakice/ltr/tensor"
//
//	labels, _ := tensor.New([]int{2, 3}, []float64{1, 2, 0, 3, 3, 3})
//	pairs, _ := tensor.Pairs(labels, tensor.OpSub) // shape [2, 3, 3]
//	diffs, _ := tensor.Abs(pairs)
//
// Numeric policy:
//
//	NaN and ±Inf are never rejected; they propagate through every
//	operation per IEEE-754. Shape problems surface as sentinel errors
//	(ErrBadShape, ErrShapeMismatch, ErrBroadcast, ErrOutOfRange)
//	matchable with errors.Is.
//
// Operations are deterministic, allocation-bounded (one output buffer per
// call), and safe for concurrent use: tensors are never mutated by ops.
package tensor
