// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the tensor
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions.

package tensor

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "tensor: ..." for consistency and to allow
// easy grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers still match with errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (empty shape, or any dimension < 1).
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrShapeMismatch indicates that the provided data length or an
	// operand's exact shape does not agree with the expected shape.
	ErrShapeMismatch = errors.New("tensor: shape mismatch")

	// ErrBroadcast indicates two shapes that cannot be broadcast together
	// (a trailing-aligned dimension pair differs and neither side is 1).
	ErrBroadcast = errors.New("tensor: shapes are not broadcast-compatible")

	// ErrOutOfRange indicates an index outside the valid bounds of a
	// tensor axis or list. Public indexers return this, never panic.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrNilTensor indicates a nil *Tensor or *Bool operand.
	ErrNilTensor = errors.New("tensor: nil tensor")

	// ErrNilOp indicates a nil operator passed to Apply, Elementwise or Pairs.
	ErrNilOp = errors.New("tensor: nil operator")
)
