// SPDX-License-Identifier: MIT
// Package tensor: Bool mask type.
//
// Purpose:
//   - Carry per-item validity masks (true = valid item, false = padding)
//     with the same shape discipline as Tensor.

package tensor

import "fmt"

// Bool is a dense, batched, row-major boolean array. It shares Tensor's
// shape rules and is used to mark valid vs. padding items in a list.
type Bool struct {
	shape []int
	data  []bool
}

// NewBool builds a Bool of the given shape from flat row-major data.
// Returns ErrBadShape for an invalid shape, ErrShapeMismatch when
// len(data) != product(shape).
func NewBool(shape []int, data []bool) (*Bool, error) {
	size, err := checkShape(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != size {
		return nil, fmt.Errorf("tensor: NewBool: want %d values, got %d: %w", size, len(data), ErrShapeMismatch)
	}

	return &Bool{
		shape: append([]int(nil), shape...),
		data:  append([]bool(nil), data...),
	}, nil
}

// FullBool builds a Bool of the given shape with every element set to v.
func FullBool(shape []int, v bool) (*Bool, error) {
	size, err := checkShape(shape)
	if err != nil {
		return nil, err
	}
	data := make([]bool, size)
	for i := range data {
		data[i] = v
	}

	return &Bool{shape: append([]int(nil), shape...), data: data}, nil
}

// BoolFromSlice builds a rank-1 Bool (a single list) from values.
func BoolFromSlice(values []bool) (*Bool, error) {
	return NewBool([]int{len(values)}, values)
}

// Shape returns a copy of the mask's shape.
func (m *Bool) Shape() []int { return append([]int(nil), m.shape...) }

// Rank returns the number of axes.
func (m *Bool) Rank() int { return len(m.shape) }

// Size returns the total number of elements.
func (m *Bool) Size() int { return len(m.data) }

// ListSize returns the extent of the last axis.
func (m *Bool) ListSize() int { return m.shape[len(m.shape)-1] }

// NumLists returns how many last-axis slices the mask holds.
func (m *Bool) NumLists() int { return len(m.data) / m.ListSize() }

// At returns the element at the given multi-index.
func (m *Bool) At(idx ...int) (bool, error) {
	off, err := offsetOf(m.shape, idx)
	if err != nil {
		return false, err
	}

	return m.data[off], nil
}

// List returns a copy of the b-th last-axis slice.
func (m *Bool) List(b int) ([]bool, error) {
	n := m.ListSize()
	if b < 0 || b >= m.NumLists() {
		return nil, fmt.Errorf("tensor: list %d of %d: %w", b, m.NumLists(), ErrOutOfRange)
	}

	return append([]bool(nil), m.data[b*n:(b+1)*n]...), nil
}

// Clone returns a deep copy.
func (m *Bool) Clone() *Bool {
	return &Bool{shape: m.Shape(), data: append([]bool(nil), m.data...)}
}
