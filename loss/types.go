// Package loss: options shared by all pairwise losses.
package loss

import (
	"github.com/ronakice/ltr/lambdaweight"
	"github.com/ronakice/ltr/tensor"
)

// Options configures a pairwise loss.
//
// Fields:
//   - Where        — optional validity mask of shape [..., list_size];
//     a pair counts only when both its items are valid.
//   - Weights      — optional per-item weights; each pair's penalty is
//     multiplied by the weight of its first (row) item.
//   - Lambdaweight — optional weighting scheme; its pair matrix
//     multiplies each pair's penalty. The mask and weights above are
//     forwarded to the scheme so it can honor them where it chooses to.
//
// A nil *Options is equivalent to DefaultOptions().
type Options struct {
	Where        *tensor.Bool
	Weights      *tensor.Tensor
	Lambdaweight lambdaweight.Func
}

// DefaultOptions returns Options with no mask, no weights and no
// lambdaweight scheme.
func DefaultOptions() Options { return Options{} }
