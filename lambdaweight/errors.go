// Package lambdaweight: sentinel error set.

package lambdaweight

import "errors"

var (
	// ErrNilInput indicates a nil scores or labels tensor.
	ErrNilInput = errors.New("lambdaweight: scores and labels must be non-nil")

	// ErrBadTopN indicates a negative top-n cutoff on DCG.
	ErrBadTopN = errors.New("lambdaweight: TopN must be >= 0")
)
