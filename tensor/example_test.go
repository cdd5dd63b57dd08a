package tensor_test

import (
	"fmt"

	"github.com/ronakice/ltr/tensor"
)

// ExamplePairs expands one list of labels into every ordered pair's
// difference, the building block of pairwise ranking losses.
func ExamplePairs() {
	labels, _ := tensor.FromSlice([]float64{1, 2, 0})
	pairs, _ := tensor.Pairs(labels, tensor.OpSub)
	diffs, _ := tensor.Abs(pairs)

	for i := 0; i < 3; i++ {
		row, _ := diffs.List(i)
		fmt.Println(row)
	}
	// Output:
	// [0 1 1]
	// [1 0 2]
	// [1 2 0]
}

// ExampleBroadcastTo shows a single list expanding across a batch axis.
func ExampleBroadcastTo() {
	row, _ := tensor.FromSlice([]float64{1, 2, 3})
	batch, _ := tensor.BroadcastTo(row, []int{2, 3})

	fmt.Println(batch.Shape())
	fmt.Println(batch.Values())
	// Output:
	// [2 3]
	// [1 2 3 1 2 3]
}
