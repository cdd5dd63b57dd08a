// Package lambdaweight computes per-pair weights for pairwise
// learning-to-rank losses.
//
// 🚀 What is a lambdaweight?
//
//	A pairwise ranking loss sums a penalty over item pairs (i, j) in a
//	list. A lambdaweight multiplies each pair's penalty by how much that
//	pair matters — e.g. pairs with very different relevance labels, or
//	pairs whose swap would move a highly ranked item. It's the "lambda"
//	of LambdaRank-style training.
//
// ✨ Provided weighting schemes:
//   - LabelDiff — |y_i − y_j|, the absolute label difference. Ignores
//     scores, masks and item weights entirely.
//   - DCG — LambdaRank-style |ΔG|·|ΔD| weights from gains over labels
//     and rank discounts over scores, with optional top-n cutoff,
//     validity masks and per-item weights.
//
// Every scheme implements the one Func interface:
//
//	PairWeights(scores, labels, opts) → [..., n, n] tensor
//
// where rows index the first item of a pair and columns the second — the
// axis order pairwise losses rely on.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/ronakice/ltr/lambdaweight"
//	  "github.com/ronakice/ltr/tensor"
//	)
//
//	labels, _ := tensor.FromSlice([]float64{1, 2, 0})
//	scores, _ := tensor.FromSlice([]float64{1.2, 0.4, 1.9})
//	w, _ := lambdaweight.LabelDiff{}.PairWeights(scores, labels, nil)
//	// w[i][j] == |labels[i] - labels[j]|
//
// All schemes are pure: no mutation, no I/O, no randomness; safe for
// concurrent use with different inputs.
package lambdaweight
