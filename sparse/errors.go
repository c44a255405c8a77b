// SPDX-License-Identifier: MIT

// Package sparse: sentinel error set.
// All public operations return these sentinels; callers match them with
// errors.Is. Wrap with fmt.Errorf("ctx: %w", ErrX) only at outer
// boundaries so errors.Is still matches.

package sparse

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (negative dimensions) or a dense input is empty or ragged.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates that a coordinate (row or column) lies
	// outside the matrix shape. Public indexers return this, never panic.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. MulVec with a vector of the wrong length.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Matrix receiver or argument was used.
	ErrNilMatrix = errors.New("sparse: nil matrix")
)
