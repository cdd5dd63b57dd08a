// Package ltr is a small learning-to-rank toolkit: batched tensors,
// lambdaweight schemes and pairwise ranking losses — the pieces needed
// to score, weight and penalize ranked lists.
//
// 🚀 What is ltr?
//
//	A pure-Go library for the math at the heart of pairwise
//	learning-to-rank training:
//		• tensor/       — batched float64 arrays, broadcasting, pairwise expansion
//		• lambdaweight/ — per-pair weights (label difference, LambdaRank DCG)
//		• loss/         — pairwise logistic (RankNet) and hinge losses
//
// ✨ Why choose ltr?
//
//   - Minimal API, clear naming — one interface for every weighting scheme
//   - Shape-polymorphic — arbitrary leading batch dimensions everywhere
//   - Deterministic & pure — no mutation, no I/O, safe under concurrency
//   - gonum bridge — pull any pair matrix into mat.Dense for linear algebra
//
// Quick example:
//
//	scores, _ := tensor.FromSlice([]float64{1.2, 0.4, 1.9})
//	labels, _ := tensor.FromSlice([]float64{1.0, 2.0, 0.0})
//	opts := loss.DefaultOptions()
//	opts.Lambdaweight = lambdaweight.LabelDiff{}
//	l, _ := loss.PairwiseLogistic(scores, labels, &opts) // 1.8923711
//
// See the runnable scenarios in examples/ and each package's doc.go for
// the full contracts.
//
//	go get github.com/ronakice/ltr
package ltr
