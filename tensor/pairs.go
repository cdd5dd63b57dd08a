// SPDX-License-Identifier: MIT
// Package tensor: pairwise combination along the last axis.
//
// Pairs is the workhorse of pairwise ranking losses: it expands one list
// of n items into the n×n matrix of every ordered item pair, applying a
// binary operator to each pair. Batch dimensions pass through untouched.

package tensor

// Pairs expands a [..., n] tensor to [..., n, n] by applying f to every
// ordered pair of last-axis positions:
//
//	out[..., i, j] = f(t[..., i], t[..., j])
//
// Rows index the first item of the pair, columns the second. Each batch
// element is expanded independently.
//
// Time: O(size·n). Space: O(size·n) for the output.
func Pairs(t *Tensor, f Op) (*Tensor, error) {
	if t == nil {
		return nil, ErrNilTensor
	}
	if f == nil {
		return nil, ErrNilOp
	}
	n := t.ListSize()
	outShape := append(t.Shape(), n)
	data := make([]float64, t.NumLists()*n*n)
	for b := 0; b < t.NumLists(); b++ {
		base := b * n
		obase := b * n * n
		for i := 0; i < n; i++ {
			row := obase + i*n
			xi := t.data[base+i]
			for j := 0; j < n; j++ {
				data[row+j] = f(xi, t.data[base+j])
			}
		}
	}

	return &Tensor{shape: outShape, data: data}, nil
}
