// SPDX-License-Identifier: MIT

// Package mlp: the Problem root, traversal, cloning, and validation.

package mlp

import "fmt"

// Problem is a multilevel optimization problem: a kind (linear or
// quadratic) and a tree of levels rooted at the upper level.
type Problem struct {
	// Kind is the problem class; the zero value is invalid.
	Kind Kind

	// Root is the upper level, nil until AddUpper is called.
	Root *Level

	nextID LevelID
}

// NewLinear returns an empty linear multilevel problem.
func NewLinear() *Problem { return &Problem{Kind: Linear} }

// NewQuadratic returns an empty quadratic multilevel problem.
func NewQuadratic() *Problem { return &Problem{Kind: Quadratic} }

// AddUpper creates the root (upper) level with the given variable counts.
// Panics when the upper level already exists (programmer error).
func (p *Problem) AddUpper(s Shape) *Level {
	if p.Root != nil {
		panic("mlp: upper level already defined")
	}
	p.Root = newLevel(p, s)
	return p.Root
}

// Levels returns every level of the problem in preorder: parent before
// descendants, children in insertion order. The order is stable across
// runs and is the canonical processing order for all per-level passes.
func (p *Problem) Levels() []*Level {
	if p == nil || p.Root == nil {
		return nil
	}
	return p.Root.Levels()
}

// Level returns the level with the given id, or ErrUnknownLevel.
func (p *Problem) Level(id LevelID) (*Level, error) {
	for _, l := range p.Levels() {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, fmt.Errorf("Level(%d): %w", id, ErrUnknownLevel)
}

// Clone returns a deep value copy of the problem: tree, variable blocks,
// objective vectors, constraint and quadratic matrices. Level IDs are
// preserved, so cross-level keys remain valid on the clone while no data
// is shared with the source.
func (p *Problem) Clone() *Problem {
	if p == nil {
		return nil
	}
	np := &Problem{Kind: p.Kind, nextID: p.nextID}
	if p.Root != nil {
		np.Root = p.Root.clone(np)
	}
	return np
}

// Check validates the structural consistency of the whole problem:
// bounds-array lengths, RHS length versus constraint rows, vector and
// matrix widths versus the referenced level's variable count, and that
// every cross-level key names an existing level. Returns the first
// violation found, wrapped with the offending level ids.
func (p *Problem) Check() error {
	if p == nil || p.Root == nil {
		return fmt.Errorf("Check: %w", ErrNilProblem)
	}
	if p.Kind != Linear && p.Kind != Quadratic {
		return fmt.Errorf("Check: kind %v: %w", p.Kind, ErrBadShape)
	}
	levels := p.Levels()
	width := make(map[LevelID]int, len(levels))
	for _, l := range levels {
		width[l.ID] = l.X.Len()
	}
	for _, l := range levels {
		if got, want := len(l.X.LowerBounds), l.X.NxR+l.X.NxZ; got != want {
			return fmt.Errorf("level %d: %d lower bounds for %d variables: %w", l.ID, got, want, ErrDimensionMismatch)
		}
		if got, want := len(l.X.UpperBounds), l.X.NxR+l.X.NxZ; got != want {
			return fmt.Errorf("level %d: %d upper bounds for %d variables: %w", l.ID, got, want, ErrDimensionMismatch)
		}
		for id, c := range l.C {
			w, ok := width[id]
			if !ok {
				return fmt.Errorf("level %d objective key %d: %w", l.ID, id, ErrUnknownLevel)
			}
			if len(c) != w {
				return fmt.Errorf("level %d objective against level %d: len %d, want %d: %w",
					l.ID, id, len(c), w, ErrDimensionMismatch)
			}
		}
		for id, a := range l.A {
			w, ok := width[id]
			if !ok {
				return fmt.Errorf("level %d constraint key %d: %w", l.ID, id, ErrUnknownLevel)
			}
			if a == nil {
				continue
			}
			if rows := a.Rows(); rows != len(l.B) {
				return fmt.Errorf("level %d constraints against level %d: %d rows, %d rhs entries: %w",
					l.ID, id, rows, len(l.B), ErrDimensionMismatch)
			}
			if cols := a.Cols(); cols != w {
				return fmt.Errorf("level %d constraints against level %d: %d cols, want %d: %w",
					l.ID, id, cols, w, ErrDimensionMismatch)
			}
		}
		for pair, q := range l.P {
			if p.Kind != Quadratic {
				return fmt.Errorf("level %d: quadratic block %v on a %v problem: %w", l.ID, pair, p.Kind, ErrBadShape)
			}
			wr, ok := width[pair.First]
			if !ok {
				return fmt.Errorf("level %d quadratic key %v: %w", l.ID, pair, ErrUnknownLevel)
			}
			wc, ok := width[pair.Second]
			if !ok {
				return fmt.Errorf("level %d quadratic key %v: %w", l.ID, pair, ErrUnknownLevel)
			}
			if q == nil {
				continue
			}
			if q.Rows() != wr || q.Cols() != wc {
				return fmt.Errorf("level %d quadratic block %v: %dx%d, want %dx%d: %w",
					l.ID, pair, q.Rows(), q.Cols(), wr, wc, ErrDimensionMismatch)
			}
		}
	}
	return nil
}
