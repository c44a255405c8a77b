// SPDX-License-Identifier: MIT

// Package mlp: domain types shared by the level tree and its consumers.

package mlp

import "math"

// Kind classifies a multilevel problem. The zero value is invalid so that
// an uninitialized Problem is rejected before any transform runs.
type Kind int

const (
	// Linear marks a problem with purely linear objectives.
	Linear Kind = iota + 1
	// Quadratic marks a problem whose objectives may carry quadratic
	// cross-level terms (the P blocks).
	Quadratic
)

// String implements fmt.Stringer for diagnostics.
func (k Kind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Quadratic:
		return "quadratic"
	default:
		return "invalid"
	}
}

// LevelID is a stable small-integer handle identifying a level within its
// problem. Cross-level maps are keyed by LevelID, never by pointer, so a
// cloned problem shares no identity with its source.
type LevelID int

// LevelPair keys a quadratic term block P[{First,Second}]: rows index
// First's variables, columns index Second's variables.
type LevelPair struct {
	First, Second LevelID
}

// Shape gives the variable counts used when adding a level.
type Shape struct {
	NxR int // continuous variables
	NxZ int // general integer variables
	NxB int // binary variables
}

// Vars is a level's variable block. Column ordering convention:
// [0, NxR) continuous, [NxR, NxR+NxZ) integer, [NxR+NxZ, Len()) binary.
// The bounds slices cover continuous and integer variables only; binaries
// are implicitly bounded in [0, 1].
type Vars struct {
	NxR, NxZ, NxB int
	LowerBounds   []float64 // length NxR+NxZ
	UpperBounds   []float64 // length NxR+NxZ
}

// Len returns the total variable count, binaries included.
func (v *Vars) Len() int { return v.NxR + v.NxZ + v.NxB }

// newVars allocates a block of the given shape with (-inf, +inf) default
// bounds on continuous and integer variables.
func newVars(s Shape) Vars {
	n := s.NxR + s.NxZ
	lb := make([]float64, n)
	ub := make([]float64, n)
	for i := 0; i < n; i++ {
		lb[i] = math.Inf(-1)
		ub[i] = math.Inf(1)
	}
	return Vars{NxR: s.NxR, NxZ: s.NxZ, NxB: s.NxB, LowerBounds: lb, UpperBounds: ub}
}

// ShiftIndex returns the position of column i after the continuous and
// integer blocks grow from (oldR, oldZ) to (newR, newZ) variables.
// Continuous columns keep their index; integer columns shift by the
// continuous growth; binary columns shift by the combined growth. Blocks
// are contiguous and ordered R, Z, B, so this is the whole remapping.
func ShiftIndex(i, oldR, oldZ, newR, newZ int) int {
	switch {
	case i < oldR:
		return i
	case i < oldR+oldZ:
		return i + newR - oldR
	default:
		return i + (newR + newZ) - (oldR + oldZ)
	}
}
