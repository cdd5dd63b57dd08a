// Package loss implements pairwise ranking losses over batched score and
// label tensors, with pluggable lambdaweight schemes.
//
// 🚀 What is a pairwise ranking loss?
//
//	Given one list of items with scores s and relevance labels y, every
//	pair where y_i > y_j "should" be ordered s_i > s_j. A pairwise loss
//	penalizes each such pair by how badly the scores violate that order,
//	then averages over the valid pairs of the whole batch.
//
// ✨ Provided losses:
//   - PairwiseLogistic — log(1 + exp(−(s_i − s_j))), the RankNet loss,
//     computed in a numerically stable form.
//   - PairwiseHinge — max(0, 1 − (s_i − s_j)).
//
// Both accept Options with:
//   - Where        — validity mask; pairs touching padding are skipped
//   - Weights      — per-item weights; a pair inherits its row item's weight
//   - Lambdaweight — any lambdaweight.Func; its [..., n, n] matrix
//     multiplies each pair's penalty
//
// ⚙️ Usage:
//
//	scores, _ := tensor.FromSlice([]float64{1.2, 0.4, 1.9})
//	labels, _ := tensor.FromSlice([]float64{1.0, 2.0, 0.0})
//	opts := loss.DefaultOptions()
//	opts.Lambdaweight = lambdaweight.LabelDiff{}
//	l, _ := loss.PairwiseLogistic(scores, labels, &opts)
//	// l == 1.8923711 (lambda-weighted RankNet loss)
//
// Reduction: the weighted pair penalties are summed and divided by the
// number of valid pairs. A batch with no valid pair yields 0.
package loss
