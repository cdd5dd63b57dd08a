package loss_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ronakice/ltr/lambdaweight"
	"github.com/ronakice/ltr/loss"
	"github.com/ronakice/ltr/tensor"
)

// lossFixture is the running three-item example: the most relevant item
// is scored in the middle, the least relevant one highest.
func lossFixture(t *testing.T) (scores, labels *tensor.Tensor) {
	t.Helper()
	scores, err := tensor.FromSlice([]float64{1.2, 0.4, 1.9})
	require.NoError(t, err)
	labels, err = tensor.FromSlice([]float64{1, 2, 0})
	require.NoError(t, err)

	return scores, labels
}

// TestPairwiseLogistic_Plain verifies the unweighted RankNet loss:
// mean of log(1+exp(-(s_i-s_j))) over the three pairs with y_i > y_j.
func TestPairwiseLogistic_Plain(t *testing.T) {
	scores, labels := lossFixture(t)

	got, err := loss.PairwiseLogistic(scores, labels, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1.3252333309386626, got, 1e-9)
}

// TestPairwiseLogistic_LabelDiff verifies the lambda-weighted loss
// against the reference value for this fixture.
func TestPairwiseLogistic_LabelDiff(t *testing.T) {
	scores, labels := lossFixture(t)
	opts := loss.DefaultOptions()
	opts.Lambdaweight = lambdaweight.LabelDiff{}

	got, err := loss.PairwiseLogistic(scores, labels, &opts)
	require.NoError(t, err)
	assert.InDelta(t, 1.8923710902662467, got, 1e-9)
}

// TestPairwiseLogistic_BroadcastLabels verifies a single label list may
// broadcast across a batch of score lists even when a lambdaweight
// scheme is attached: LabelDiff builds its matrix from the labels shape
// alone, and the driver must expand it across the score batch.
func TestPairwiseLogistic_BroadcastLabels(t *testing.T) {
	scores, err := tensor.FromRows([][]float64{{1.2, 0.4, 1.9}, {1.2, 0.4, 1.9}})
	require.NoError(t, err)
	labels, err := tensor.FromSlice([]float64{1, 2, 0})
	require.NoError(t, err)
	opts := loss.DefaultOptions()
	opts.Lambdaweight = lambdaweight.LabelDiff{}

	got, err := loss.PairwiseLogistic(scores, labels, &opts)
	require.NoError(t, err)

	// Both batch lists replicate the single-list fixture, so the batch
	// mean equals the single-list reference value.
	assert.InDelta(t, 1.8923710902662467, got, 1e-9)
}

// fixedScheme returns a prebuilt matrix regardless of its inputs.
type fixedScheme struct{ w *tensor.Tensor }

func (f fixedScheme) PairWeights(_, _ *tensor.Tensor, _ *lambdaweight.Options) (*tensor.Tensor, error) {
	return f.w, nil
}

// TestPairwise_LambdaweightIncompatibleShape verifies a scheme matrix
// that cannot broadcast to the pair shape is still rejected.
func TestPairwise_LambdaweightIncompatibleShape(t *testing.T) {
	scores, labels := lossFixture(t)
	bad, err := tensor.FromRows([][]float64{{1, 1}, {1, 1}})
	require.NoError(t, err)
	opts := loss.DefaultOptions()
	opts.Lambdaweight = fixedScheme{w: bad}

	_, err = loss.PairwiseLogistic(scores, labels, &opts)
	assert.ErrorIs(t, err, tensor.ErrBroadcast)
}

// TestPairwiseHinge_Plain verifies mean of max(0, 1-(s_i-s_j)) over the
// same pairs: (1.7 + 1.8 + 2.5) / 3 = 2.
func TestPairwiseHinge_Plain(t *testing.T) {
	scores, labels := lossFixture(t)

	got, err := loss.PairwiseHinge(scores, labels, nil)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got, 1e-12)
}

// TestPairwise_PerfectOrdering verifies a well-separated correct ranking
// yields zero hinge loss and a small logistic loss.
func TestPairwise_PerfectOrdering(t *testing.T) {
	scores, err := tensor.FromSlice([]float64{10, 5, 0})
	require.NoError(t, err)
	labels, err := tensor.FromSlice([]float64{2, 1, 0})
	require.NoError(t, err)

	hinge, err := loss.PairwiseHinge(scores, labels, nil)
	require.NoError(t, err)
	assert.Zero(t, hinge)

	logistic, err := loss.PairwiseLogistic(scores, labels, nil)
	require.NoError(t, err)
	assert.Greater(t, logistic, 0.0)
	assert.Less(t, logistic, 0.01)
}

// TestPairwise_Where verifies pairs touching masked items are dropped
// from both the numerator and the pair count.
func TestPairwise_Where(t *testing.T) {
	scores, labels := lossFixture(t)
	mask, err := tensor.BoolFromSlice([]bool{true, true, false})
	require.NoError(t, err)
	opts := loss.DefaultOptions()
	opts.Where = mask

	got, err := loss.PairwiseLogistic(scores, labels, &opts)
	require.NoError(t, err)

	// Only (1,0) survives: log(1+exp(-(0.4-1.2))).
	want := math.Log1p(math.Exp(0.8))
	assert.InDelta(t, want, got, 1e-9)
}

// TestPairwise_ItemWeights verifies each pair inherits its row item's weight.
func TestPairwise_ItemWeights(t *testing.T) {
	scores, err := tensor.FromSlice([]float64{0, 0})
	require.NoError(t, err)
	labels, err := tensor.FromSlice([]float64{1, 0})
	require.NoError(t, err)
	weights, err := tensor.FromSlice([]float64{3, 1})
	require.NoError(t, err)
	opts := loss.DefaultOptions()
	opts.Weights = weights

	got, err := loss.PairwiseHinge(scores, labels, &opts)
	require.NoError(t, err)

	// One valid pair (0,1), hinge = 1, scaled by the row weight 3.
	assert.InDelta(t, 3.0, got, 1e-12)
}

// TestPairwise_NoValidPairs verifies uniform labels yield zero loss.
func TestPairwise_NoValidPairs(t *testing.T) {
	scores, err := tensor.FromSlice([]float64{1, 2, 3})
	require.NoError(t, err)
	labels, err := tensor.FromSlice([]float64{1, 1, 1})
	require.NoError(t, err)

	got, err := loss.PairwiseLogistic(scores, labels, nil)
	require.NoError(t, err)
	assert.Zero(t, got)
}

// TestPairwise_NaNLabelsSkipped verifies NaN labels fail every ordering
// comparison and therefore drop their pairs instead of poisoning the mean.
func TestPairwise_NaNLabelsSkipped(t *testing.T) {
	scores, err := tensor.FromSlice([]float64{0, 0, 0})
	require.NoError(t, err)
	labels, err := tensor.FromSlice([]float64{1, math.NaN(), 0})
	require.NoError(t, err)

	got, err := loss.PairwiseLogistic(scores, labels, nil)
	require.NoError(t, err)

	// Only (0,2) remains: log(1+exp(0)) = ln 2.
	assert.InDelta(t, math.Ln2, got, 1e-12)
	assert.False(t, math.IsNaN(got))
}

// TestPairwise_Batched verifies reduction runs across the whole batch:
// list 1 contributes one pair, list 2 none.
func TestPairwise_Batched(t *testing.T) {
	scores, err := tensor.FromRows([][]float64{{0, 0}, {5, -5}})
	require.NoError(t, err)
	labels, err := tensor.FromRows([][]float64{{1, 0}, {1, 1}})
	require.NoError(t, err)

	got, err := loss.PairwiseHinge(scores, labels, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-12)
}

// TestPairwise_Errors covers nil inputs and shape sentinels.
func TestPairwise_Errors(t *testing.T) {
	scores, labels := lossFixture(t)

	_, err := loss.PairwiseLogistic(nil, labels, nil)
	assert.ErrorIs(t, err, loss.ErrNilInput)

	short, err := tensor.FromSlice([]float64{1, 2})
	require.NoError(t, err)
	_, err = loss.PairwiseLogistic(short, labels, nil)
	assert.ErrorIs(t, err, tensor.ErrBroadcast)

	badMask, err := tensor.BoolFromSlice([]bool{true})
	require.NoError(t, err)
	opts := loss.DefaultOptions()
	opts.Where = badMask
	_, err = loss.PairwiseLogistic(scores, labels, &opts)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

// TestPairwise_LambdaweightErrorPropagates verifies scheme errors pass
// through the loss unmodified.
func TestPairwise_LambdaweightErrorPropagates(t *testing.T) {
	scores, labels := lossFixture(t)
	opts := loss.DefaultOptions()
	opts.Lambdaweight = lambdaweight.DCG{TopN: -1}

	_, err := loss.PairwiseLogistic(scores, labels, &opts)
	assert.ErrorIs(t, err, lambdaweight.ErrBadTopN)
}
