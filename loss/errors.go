// Package loss: sentinel error set.

package loss

import "errors"

// ErrNilInput indicates a nil scores or labels tensor.
var ErrNilInput = errors.New("loss: scores and labels must be non-nil")
