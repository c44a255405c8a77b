// SPDX-License-Identifier: MIT

// Package mlp: sentinel error set. Matched with errors.Is; context is
// added via fmt.Errorf("…: %w", ErrX) wrapping at the call site.

package mlp

import "errors"

var (
	// ErrBadShape is returned for invalid variable counts (negative, or a
	// Resize that would shrink an existing block).
	ErrBadShape = errors.New("mlp: invalid variable block shape")

	// ErrUnknownLevel indicates that a LevelID key does not name a level
	// of this problem.
	ErrUnknownLevel = errors.New("mlp: unknown level id")

	// ErrDimensionMismatch indicates that a vector or matrix does not
	// match the dimensions implied by the levels it references.
	ErrDimensionMismatch = errors.New("mlp: dimension mismatch")

	// ErrNilProblem indicates a nil *Problem or a level detached from its
	// problem.
	ErrNilProblem = errors.New("mlp: nil problem")
)
