package lambdaweight

import (
	"fmt"

	"github.com/ronakice/ltr/tensor"
)

// LabelDiff — absolute label difference lambdaweights.
//
// Description:
//
//	The simplest pair weighting: a pair matters in proportion to how far
//	apart its relevance labels are.
//
//	    λ[i][j] = |labels[i] − labels[j]|
//
// Algorithm Outline:
//  1. Validate that scores and labels broadcast to a common shape
//     (the scores' values are never read — only their shape is checked,
//     so callers get the same shape errors from every scheme).
//  2. Expand labels [..., n] to all ordered pairs [..., n, n] via the
//     subtraction operator.
//  3. Take the elementwise absolute value.
//
// Properties:
//   - symmetric: λ[i][j] == λ[j][i]
//   - zero diagonal: λ[i][i] == 0
//   - NaN labels propagate: any pair touching a NaN label is NaN
//
// Masks and per-item weights in Options are deliberately not consulted:
// a label difference is well defined for every item, padding included.
// Downstream losses apply their own pair validity on top.
//
// Complexity: O(batch·n²) time and space.
type LabelDiff struct{}

// compile-time interface conformance
var _ Func = LabelDiff{}

// PairWeights returns the [..., n, n] matrix of absolute label
// differences. Returns ErrNilInput for nil tensors and
// tensor.ErrBroadcast when scores and labels have incompatible shapes.
func (LabelDiff) PairWeights(scores, labels *tensor.Tensor, _ *Options) (*tensor.Tensor, error) {
	if scores == nil || labels == nil {
		return nil, ErrNilInput
	}
	// Shape conformance only; the score values play no part here.
	if _, err := tensor.BroadcastShape(scores.Shape(), labels.Shape()); err != nil {
		return nil, fmt.Errorf("lambdaweight: LabelDiff: %w", err)
	}

	diffs, err := tensor.Pairs(labels, tensor.OpSub)
	if err != nil {
		return nil, err
	}

	return tensor.Abs(diffs)
}
