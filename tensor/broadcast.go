// SPDX-License-Identifier: MIT
// Package tensor: NumPy-style broadcasting over arbitrary leading batch dims.
//
// Rules (trailing alignment):
//   - Align shapes at the last axis; a missing leading axis counts as 1.
//   - Aligned extents must be equal, or one of them must be 1.
//   - The result extent is the larger of the pair.
//
// Determinism & Performance:
//   - BroadcastTo materializes the target: one output buffer, one pass.
//   - Zero-stride axes read the same source element repeatedly; no views
//     or aliasing are ever exposed to callers.

package tensor

import "fmt"

// SameShape reports whether two shapes are identical.
func SameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i, d := range a {
		if d != b[i] {
			return false
		}
	}

	return true
}

// BroadcastShape computes the shape two operands broadcast to, or
// ErrBroadcast when a trailing-aligned dimension pair is incompatible.
func BroadcastShape(a, b []int) ([]int, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, fmt.Errorf("tensor: BroadcastShape: %w", ErrBadShape)
	}
	rank := len(a)
	if len(b) > rank {
		rank = len(b)
	}
	out := make([]int, rank)
	for i := 1; i <= rank; i++ {
		da, db := 1, 1
		if i <= len(a) {
			da = a[len(a)-i]
		}
		if i <= len(b) {
			db = b[len(b)-i]
		}
		switch {
		case da == db:
			out[rank-i] = da
		case da == 1:
			out[rank-i] = db
		case db == 1:
			out[rank-i] = da
		default:
			return nil, fmt.Errorf("tensor: cannot broadcast %v with %v: %w", a, b, ErrBroadcast)
		}
	}

	return out, nil
}

// strides returns row-major strides for shape.
func strides(shape []int) []int {
	s := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		s[i] = acc
		acc *= shape[i]
	}

	return s
}

// broadcastStrides returns per-axis source strides for reading src as if
// it had the target shape: 0 where the source extent is 1 and the target
// extent is larger. Returns ErrBroadcast when src cannot expand to target.
func broadcastStrides(src, target []int) ([]int, error) {
	if len(src) > len(target) {
		return nil, fmt.Errorf("tensor: cannot broadcast %v to %v: %w", src, target, ErrBroadcast)
	}
	base := strides(src)
	out := make([]int, len(target))
	for i := 1; i <= len(target); i++ {
		dt := target[len(target)-i]
		ds := 1
		stride := 0
		if i <= len(src) {
			ds = src[len(src)-i]
			stride = base[len(src)-i]
		}
		switch {
		case ds == dt:
			out[len(target)-i] = stride
		case ds == 1:
			out[len(target)-i] = 0
		default:
			return nil, fmt.Errorf("tensor: cannot broadcast %v to %v: %w", src, target, ErrBroadcast)
		}
	}

	return out, nil
}

// BroadcastTo materializes t expanded to the given shape.
// Returns ErrBroadcast when t's shape cannot expand to shape, ErrBadShape
// when shape itself is invalid.
func BroadcastTo(t *Tensor, shape []int) (*Tensor, error) {
	if t == nil {
		return nil, ErrNilTensor
	}
	size, err := checkShape(shape)
	if err != nil {
		return nil, err
	}
	if SameShape(t.shape, shape) {
		return t.Clone(), nil
	}
	srcStrides, err := broadcastStrides(t.shape, shape)
	if err != nil {
		return nil, err
	}

	out := &Tensor{shape: append([]int(nil), shape...), data: make([]float64, size)}
	idx := make([]int, len(shape))
	for flat := 0; flat < size; flat++ {
		// map the current multi-index through the zero-stride axes
		off := 0
		for d := range idx {
			off += idx[d] * srcStrides[d]
		}
		out.data[flat] = t.data[off]
		// advance the row-major multi-index
		for d := len(idx) - 1; d >= 0; d-- {
			idx[d]++
			if idx[d] < shape[d] {
				break
			}
			idx[d] = 0
		}
	}

	return out, nil
}

// BroadcastBoolTo materializes a Bool mask expanded to the given shape,
// under the same rules as BroadcastTo.
func BroadcastBoolTo(m *Bool, shape []int) (*Bool, error) {
	if m == nil {
		return nil, ErrNilTensor
	}
	size, err := checkShape(shape)
	if err != nil {
		return nil, err
	}
	if SameShape(m.shape, shape) {
		return m.Clone(), nil
	}
	srcStrides, err := broadcastStrides(m.shape, shape)
	if err != nil {
		return nil, err
	}

	out := &Bool{shape: append([]int(nil), shape...), data: make([]bool, size)}
	idx := make([]int, len(shape))
	for flat := 0; flat < size; flat++ {
		off := 0
		for d := range idx {
			off += idx[d] * srcStrides[d]
		}
		out.data[flat] = m.data[off]
		for d := len(idx) - 1; d >= 0; d-- {
			idx[d]++
			if idx[d] < shape[d] {
				break
			}
			idx[d] = 0
		}
	}

	return out, nil
}
