// SPDX-License-Identifier: MIT
// Package tensor: gonum bridge.
//
// Downstream consumers often want real linear algebra (norms, spectra,
// products) on one pairwise matrix at a time. ToDense/FromDense convert
// between a batched tensor's trailing [r, c] block and gonum's mat.Dense
// so those tools apply directly.

package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToDense copies the b-th trailing [r, c] block of t (counting row-major
// across the leading batch dimensions) into a gonum *mat.Dense.
// Returns ErrBadShape when t has rank < 2, ErrOutOfRange for an invalid b.
func ToDense(t *Tensor, b int) (*mat.Dense, error) {
	if t == nil {
		return nil, ErrNilTensor
	}
	if t.Rank() < 2 {
		return nil, fmt.Errorf("tensor: ToDense needs rank >= 2, got %d: %w", t.Rank(), ErrBadShape)
	}
	r := t.shape[len(t.shape)-2]
	c := t.shape[len(t.shape)-1]
	blocks := len(t.data) / (r * c)
	if b < 0 || b >= blocks {
		return nil, fmt.Errorf("tensor: block %d of %d: %w", b, blocks, ErrOutOfRange)
	}
	block := append([]float64(nil), t.data[b*r*c:(b+1)*r*c]...)

	return mat.NewDense(r, c, block), nil
}

// FromDense copies a gonum matrix into a fresh rank-2 Tensor.
func FromDense(d mat.Matrix) (*Tensor, error) {
	if d == nil {
		return nil, ErrNilTensor
	}
	r, c := d.Dims()
	if r < 1 || c < 1 {
		return nil, fmt.Errorf("tensor: FromDense %dx%d: %w", r, c, ErrBadShape)
	}
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data = append(data, d.At(i, j))
		}
	}

	return New([]int{r, c}, data)
}
