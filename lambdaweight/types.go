// Package lambdaweight defines the shared contract all weighting schemes obey.
package lambdaweight

import "github.com/ronakice/ltr/tensor"

// Func is the common contract for every lambdaweight scheme.
//
// PairWeights maps per-item scores and labels of shape [..., list_size]
// to a per-pair weight matrix of shape [..., list_size, list_size], where
// entry [..., i, j] weights the ordered pair (item i, item j). Scores and
// labels must be broadcast-compatible; the result takes their broadcast
// shape plus the trailing pair axis.
//
// Each scheme is free to ignore inputs it does not need — LabelDiff uses
// labels only — but every scheme accepts the full signature so callers
// can swap schemes without rewiring.
type Func interface {
	PairWeights(scores, labels *tensor.Tensor, opts *Options) (*tensor.Tensor, error)
}

// Options carries the optional per-item inputs shared by all schemes.
//
// Fields:
//   - Where   — validity mask, true = real item, false = padding. Schemes
//     that honor it exclude padding from ranking and zero its weights.
//   - Weights — per-item multiplicative weight.
//
// A nil *Options is equivalent to DefaultOptions(): no mask, no weights.
type Options struct {
	Where   *tensor.Bool
	Weights *tensor.Tensor
}

// DefaultOptions returns Options with no mask and no per-item weights.
func DefaultOptions() Options { return Options{} }
