package lambdaweight

import (
	"fmt"
	"math"
	"sort"

	"github.com/ronakice/ltr/tensor"
)

// DCG — LambdaRank-style DCG lambdaweights.
//
// Description:
//
//	Weights a pair by how much swapping its two items would change the
//	list's Discounted Cumulative Gain at the current scoring:
//
//	    λ[i][j] = |G(y_i) − G(y_j)| · |D(rank_i) − D(rank_j)|
//
//	where ranks are positions in descending score order (1-based), G is
//	a gain over labels and D a discount over ranks.
//
// Algorithm Outline:
//  1. Broadcast scores and labels to a common [..., n] shape.
//  2. Per list: rank items by score, descending; ties keep their
//     original list order. Items masked out by Options.Where are
//     excluded from ranking entirely.
//  3. gains[i] = G(labels[i]), times Options.Weights[i] when given;
//     0 for masked-out items.
//  4. discounts[i] = D(rank_i); 0 for masked-out items and, when
//     TopN > 0, for items ranked below the cutoff.
//  5. λ[i][j] = |gains[i] − gains[j]| · |discounts[i] − discounts[j]|.
//
// Defaults (zero value is ready to use):
//   - Gain:     G(y) = 2^y − 1
//   - Discount: D(r) = 1 / log2(1 + r)
//   - TopN:     0 (no cutoff)
//
// Complexity: O(batch·(n log n + n²)) time, O(batch·n²) space.
//
// Errors:
//   - ErrNilInput — nil scores or labels.
//   - ErrBadTopN — negative TopN.
//   - tensor.ErrBroadcast — incompatible scores/labels shapes.
//   - tensor.ErrShapeMismatch — Where not matching the broadcast shape.
type DCG struct {
	// Gain maps a relevance label to a gain. Nil means DefaultGain.
	Gain func(label float64) float64

	// Discount maps a 1-based rank to a discount. Nil means DefaultDiscount.
	Discount func(rank int) float64

	// TopN zeroes the discount of items ranked below the cutoff.
	// Zero disables the cutoff.
	TopN int
}

var _ Func = DCG{}

// DefaultGain is the exponential gain G(y) = 2^y − 1 commonly used for
// graded relevance labels.
func DefaultGain(label float64) float64 { return math.Exp2(label) - 1 }

// DefaultDiscount is the logarithmic discount D(r) = 1 / log2(1 + r).
func DefaultDiscount(rank int) float64 { return 1 / math.Log2(1+float64(rank)) }

// PairWeights returns the [..., n, n] matrix of |ΔG|·|ΔD| weights.
func (d DCG) PairWeights(scores, labels *tensor.Tensor, opts *Options) (*tensor.Tensor, error) {
	if scores == nil || labels == nil {
		return nil, ErrNilInput
	}
	if d.TopN < 0 {
		return nil, ErrBadTopN
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	gain := d.Gain
	if gain == nil {
		gain = DefaultGain
	}
	discount := d.Discount
	if discount == nil {
		discount = DefaultDiscount
	}

	shape, err := tensor.BroadcastShape(scores.Shape(), labels.Shape())
	if err != nil {
		return nil, fmt.Errorf("lambdaweight: DCG: %w", err)
	}
	s, err := tensor.BroadcastTo(scores, shape)
	if err != nil {
		return nil, err
	}
	y, err := tensor.BroadcastTo(labels, shape)
	if err != nil {
		return nil, err
	}
	var mask *tensor.Bool
	if o.Where != nil {
		if !tensor.SameShape(o.Where.Shape(), shape) {
			return nil, fmt.Errorf("lambdaweight: DCG: Where shape %v, want %v: %w",
				o.Where.Shape(), shape, tensor.ErrShapeMismatch)
		}
		mask = o.Where
	}
	var weights *tensor.Tensor
	if o.Weights != nil {
		weights, err = tensor.BroadcastTo(o.Weights, shape)
		if err != nil {
			return nil, fmt.Errorf("lambdaweight: DCG: Weights: %w", err)
		}
	}

	n := s.ListSize()
	lists := s.NumLists()
	out := make([]float64, lists*n*n)
	for b := 0; b < lists; b++ {
		ss, err := s.List(b)
		if err != nil {
			return nil, err
		}
		yy, err := y.List(b)
		if err != nil {
			return nil, err
		}
		var valid []bool
		if mask != nil {
			if valid, err = mask.List(b); err != nil {
				return nil, err
			}
		}
		var ww []float64
		if weights != nil {
			if ww, err = weights.List(b); err != nil {
				return nil, err
			}
		}

		gains := make([]float64, n)
		discounts := make([]float64, n)
		for i, rank := range scoreRanks(ss, valid) {
			if rank == 0 {
				continue // masked out: gain and discount stay 0
			}
			gains[i] = gain(yy[i])
			if ww != nil {
				gains[i] *= ww[i]
			}
			if d.TopN > 0 && rank > d.TopN {
				continue
			}
			discounts[i] = discount(rank)
		}

		obase := b * n * n
		for i := 0; i < n; i++ {
			row := obase + i*n
			for j := 0; j < n; j++ {
				out[row+j] = math.Abs(gains[i]-gains[j]) * math.Abs(discounts[i]-discounts[j])
			}
		}
	}

	return tensor.New(append(shape, n), out)
}

// scoreRanks assigns 1-based ranks by descending score, ties broken by
// original position. Items with valid[i] == false (when valid is
// non-nil) are excluded and get rank 0.
func scoreRanks(scores []float64, valid []bool) []int {
	order := make([]int, 0, len(scores))
	for i := range scores {
		if valid == nil || valid[i] {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(a, b int) bool { return scores[order[a]] > scores[order[b]] })

	ranks := make([]int, len(scores))
	for r, i := range order {
		ranks[i] = r + 1
	}

	return ranks
}
