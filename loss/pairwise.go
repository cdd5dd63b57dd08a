package loss

import (
	"fmt"
	"math"

	"github.com/ronakice/ltr/lambdaweight"
	"github.com/ronakice/ltr/tensor"
)

// PairwiseLogistic computes the RankNet loss: for every pair with
// labels[i] > labels[j], the penalty log(1 + exp(−(scores[i] − scores[j]))),
// reduced to the mean over valid pairs across the whole batch.
//
// Scores and labels broadcast to a common [..., list_size] shape; see
// Options for masking, item weights and lambdaweighting.
func PairwiseLogistic(scores, labels *tensor.Tensor, opts *Options) (float64, error) {
	return pairwise(scores, labels, opts, logisticPair)
}

// PairwiseHinge computes the pairwise hinge loss: for every pair with
// labels[i] > labels[j], the penalty max(0, 1 − (scores[i] − scores[j])),
// reduced to the mean over valid pairs across the whole batch.
func PairwiseHinge(scores, labels *tensor.Tensor, opts *Options) (float64, error) {
	return pairwise(scores, labels, opts, hingePair)
}

// logisticPair is log(1 + exp(−d)) in the overflow-safe split form
// max(−d, 0) + log1p(exp(−|d|)).
func logisticPair(d float64) float64 {
	return math.Max(-d, 0) + math.Log1p(math.Exp(-math.Abs(d)))
}

func hingePair(d float64) float64 {
	return math.Max(0, 1-d)
}

// pairwise is the shared driver: it resolves shapes and options, asks
// the lambdaweight scheme (if any) for its pair matrix, then walks every
// list accumulating pairLoss over the valid pairs.
//
// A pair (i, j) is valid when labels[i] > labels[j] and, under a mask,
// both items are valid. NaN labels fail every comparison, so pairs
// touching a NaN label are skipped rather than poisoning the mean.
func pairwise(scores, labels *tensor.Tensor, opts *Options, pairLoss func(scoreDiff float64) float64) (float64, error) {
	if scores == nil || labels == nil {
		return 0, ErrNilInput
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	shape, err := tensor.BroadcastShape(scores.Shape(), labels.Shape())
	if err != nil {
		return 0, fmt.Errorf("loss: pairwise: %w", err)
	}
	s, err := tensor.BroadcastTo(scores, shape)
	if err != nil {
		return 0, err
	}
	y, err := tensor.BroadcastTo(labels, shape)
	if err != nil {
		return 0, err
	}
	if o.Where != nil && !tensor.SameShape(o.Where.Shape(), shape) {
		return 0, fmt.Errorf("loss: pairwise: Where shape %v, want %v: %w",
			o.Where.Shape(), shape, tensor.ErrShapeMismatch)
	}
	var weights *tensor.Tensor
	if o.Weights != nil {
		weights, err = tensor.BroadcastTo(o.Weights, shape)
		if err != nil {
			return 0, fmt.Errorf("loss: pairwise: Weights: %w", err)
		}
	}

	// The scheme receives the raw inputs plus the caller's mask/weights;
	// each scheme decides for itself which of those it honors.
	var lw *tensor.Tensor
	if o.Lambdaweight != nil {
		lw, err = o.Lambdaweight.PairWeights(scores, labels, &lambdaweight.Options{
			Where:   o.Where,
			Weights: o.Weights,
		})
		if err != nil {
			return 0, err
		}
		// A scheme may build its matrix from a subset of the inputs
		// (LabelDiff uses labels alone), so its batch dims can be a
		// prefix-broadcast of the common shape. Expand rather than
		// demand exact equality.
		lw, err = tensor.BroadcastTo(lw, append(shape, s.ListSize()))
		if err != nil {
			return 0, fmt.Errorf("loss: pairwise: lambdaweight matrix: %w", err)
		}
	}

	n := s.ListSize()
	var sum float64
	var pairs int
	for b := 0; b < s.NumLists(); b++ {
		ss, err := s.List(b)
		if err != nil {
			return 0, err
		}
		yy, err := y.List(b)
		if err != nil {
			return 0, err
		}
		var valid []bool
		if o.Where != nil {
			if valid, err = o.Where.List(b); err != nil {
				return 0, err
			}
		}
		var ww []float64
		if weights != nil {
			if ww, err = weights.List(b); err != nil {
				return 0, err
			}
		}
		for i := 0; i < n; i++ {
			var lwRow []float64
			if lw != nil {
				// row i of list b in the [..., n, n] matrix
				if lwRow, err = lw.List(b*n + i); err != nil {
					return 0, err
				}
			}
			for j := 0; j < n; j++ {
				if valid != nil && (!valid[i] || !valid[j]) {
					continue
				}
				if !(yy[i] > yy[j]) {
					continue
				}
				p := pairLoss(ss[i] - ss[j])
				if ww != nil {
					p *= ww[i]
				}
				if lwRow != nil {
					p *= lwRow[j]
				}
				sum += p
				pairs++
			}
		}
	}
	if pairs == 0 {
		return 0, nil
	}

	return sum / float64(pairs), nil
}
