// SPDX-License-Identifier: MIT
// Package tensor: core Tensor type, constructors and accessors.
//
// Purpose:
//   - Hold batched numeric data as a flat row-major buffer plus a shape.
//   - Validate shapes strictly at construction; index safely afterwards.
//
// Determinism & Performance:
//   - Fixed row-major layout; offset math is O(rank) per indexed access.
//   - Constructors copy their inputs once; ops never alias caller slices.

package tensor

import (
	"fmt"
	"math"
)

// Tensor is a dense, batched, row-major numeric array of shape [d0, d1, ..., dk].
// The last axis is conventionally a list of items; leading axes are batch
// dimensions. Operations in this package treat a Tensor as an immutable
// value and always allocate fresh outputs.
type Tensor struct {
	shape []int     // per-axis extents, every entry >= 1
	data  []float64 // flat row-major buffer, len == product(shape)
}

// checkShape validates a shape and returns its total element count.
func checkShape(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, fmt.Errorf("tensor: empty shape: %w", ErrBadShape)
	}
	size := 1
	for _, d := range shape {
		if d < 1 {
			return 0, fmt.Errorf("tensor: dimension %d: %w", d, ErrBadShape)
		}
		size *= d
	}

	return size, nil
}

// New builds a Tensor of the given shape from flat row-major data.
// The shape and data slices are copied; the caller keeps ownership of both.
// Returns ErrBadShape for an invalid shape, ErrShapeMismatch when
// len(data) != product(shape).
func New(shape []int, data []float64) (*Tensor, error) {
	size, err := checkShape(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != size {
		return nil, fmt.Errorf("tensor: New: want %d values, got %d: %w", size, len(data), ErrShapeMismatch)
	}

	return &Tensor{
		shape: append([]int(nil), shape...),
		data:  append([]float64(nil), data...),
	}, nil
}

// Zeros builds a Tensor of the given shape filled with 0.
func Zeros(shape []int) (*Tensor, error) {
	size, err := checkShape(shape)
	if err != nil {
		return nil, err
	}

	return &Tensor{shape: append([]int(nil), shape...), data: make([]float64, size)}, nil
}

// Full builds a Tensor of the given shape with every element set to v.
func Full(shape []int, v float64) (*Tensor, error) {
	t, err := Zeros(shape)
	if err != nil {
		return nil, err
	}
	for i := range t.data {
		t.data[i] = v
	}

	return t, nil
}

// FromSlice builds a rank-1 Tensor (a single list) from values.
// Returns ErrBadShape when values is empty.
func FromSlice(values []float64) (*Tensor, error) {
	return New([]int{len(values)}, values)
}

// FromRows builds a rank-2 Tensor (a batch of equally sized lists).
// Returns ErrBadShape when rows is empty, ErrShapeMismatch when row
// lengths differ.
func FromRows(rows [][]float64) (*Tensor, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("tensor: FromRows: %w", ErrBadShape)
	}
	n := len(rows[0])
	data := make([]float64, 0, len(rows)*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("tensor: FromRows: row %d has %d values, want %d: %w", i, len(row), n, ErrShapeMismatch)
		}
		data = append(data, row...)
	}

	return New([]int{len(rows), n}, data)
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor) Shape() []int { return append([]int(nil), t.shape...) }

// Rank returns the number of axes.
func (t *Tensor) Rank() int { return len(t.shape) }

// Size returns the total number of elements.
func (t *Tensor) Size() int { return len(t.data) }

// ListSize returns the extent of the last axis (the per-list item count).
func (t *Tensor) ListSize() int { return t.shape[len(t.shape)-1] }

// NumLists returns how many last-axis slices the tensor holds
// (the product of all batch dimensions).
func (t *Tensor) NumLists() int { return len(t.data) / t.ListSize() }

// Values returns a copy of the flat row-major buffer.
func (t *Tensor) Values() []float64 { return append([]float64(nil), t.data...) }

// Clone returns a deep copy.
func (t *Tensor) Clone() *Tensor {
	return &Tensor{shape: t.Shape(), data: t.Values()}
}

// offsetOf maps a full multi-index into shape to a flat row-major position.
func offsetOf(shape, idx []int) (int, error) {
	if len(idx) != len(shape) {
		return 0, fmt.Errorf("tensor: got %d indices for rank %d: %w", len(idx), len(shape), ErrShapeMismatch)
	}
	off := 0
	for d, i := range idx {
		if i < 0 || i >= shape[d] {
			return 0, fmt.Errorf("tensor: index %d on axis %d (extent %d): %w", i, d, shape[d], ErrOutOfRange)
		}
		off = off*shape[d] + i
	}

	return off, nil
}

// At returns the element at the given multi-index.
// Returns ErrShapeMismatch when the index count differs from the rank,
// ErrOutOfRange when any index is outside its axis.
func (t *Tensor) At(idx ...int) (float64, error) {
	off, err := offsetOf(t.shape, idx)
	if err != nil {
		return 0, err
	}

	return t.data[off], nil
}

// Set writes the element at the given multi-index. Intended for staged
// construction only; shared tensors should be treated as immutable.
func (t *Tensor) Set(v float64, idx ...int) error {
	off, err := offsetOf(t.shape, idx)
	if err != nil {
		return err
	}
	t.data[off] = v

	return nil
}

// List returns a copy of the b-th last-axis slice, counting row-major
// across all batch dimensions. Returns ErrOutOfRange for an invalid b.
func (t *Tensor) List(b int) ([]float64, error) {
	n := t.ListSize()
	if b < 0 || b >= t.NumLists() {
		return nil, fmt.Errorf("tensor: list %d of %d: %w", b, t.NumLists(), ErrOutOfRange)
	}

	return append([]float64(nil), t.data[b*n:(b+1)*n]...), nil
}

// Equal reports exact equality of shape and every element.
// NaN entries compare unequal, per IEEE-754.
func (t *Tensor) Equal(o *Tensor) bool {
	if o == nil || !SameShape(t.shape, o.shape) {
		return false
	}
	for i, v := range t.data {
		if v != o.data[i] {
			return false
		}
	}

	return true
}

// EqualApprox reports equality of shape and elementwise agreement
// within eps. NaN entries compare unequal.
func (t *Tensor) EqualApprox(o *Tensor, eps float64) bool {
	if o == nil || !SameShape(t.shape, o.shape) {
		return false
	}
	for i, v := range t.data {
		if math.Abs(v-o.data[i]) > eps {
			return false
		}
	}

	return true
}
