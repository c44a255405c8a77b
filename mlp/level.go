// SPDX-License-Identifier: MIT

// Package mlp: the Level node and its mutating operations.

package mlp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mlopt/sparse"
)

// Level is one decision-maker's variables, objective, and constraints.
// Fields are exported for literal-style model construction; consistency
// across levels is enforced by (*Problem).Check, not by setters.
type Level struct {
	// ID is the stable handle of this level within its problem.
	ID LevelID

	// Name is an optional human-readable label, used only in diagnostics.
	Name string

	// X is the variable block owned by this level.
	X Vars

	// Minimize is the objective sense (false means maximization).
	Minimize bool

	// Inequalities selects this level's constraint convention:
	// true for A·x ≤ b, false for A·x = b.
	Inequalities bool

	// C maps a level id to this level's dense objective coefficients
	// against that level's variables. A missing key means no terms.
	C map[LevelID][]float64

	// D is the scalar objective constant.
	D float64

	// A maps a level id to this level's sparse constraint coefficients
	// against that level's variables. A missing key means no coefficients.
	A map[LevelID]*sparse.Matrix

	// B is the right-hand side of this level's constraints.
	B []float64

	// P maps level pairs to sparse quadratic term blocks (quadratic
	// problems only; rows index First's variables, columns Second's).
	P map[LevelPair]*sparse.Matrix

	// LL is the ordered list of child (lower) levels.
	LL []*Level

	prob *Problem // owning problem, for ID allocation and Resize
}

func newLevel(p *Problem, s Shape) *Level {
	l := &Level{
		ID:       p.nextID,
		X:        newVars(s),
		Minimize: true,
		C:        make(map[LevelID][]float64),
		A:        make(map[LevelID]*sparse.Matrix),
		P:        make(map[LevelPair]*sparse.Matrix),
		prob:     p,
	}
	p.nextID++
	return l
}

// AddLower appends a child level with the given variable counts and
// returns it. Panics when the level is detached from its problem
// (programmer error, not input data).
func (l *Level) AddLower(s Shape) *Level {
	if l.prob == nil {
		panic("mlp: AddLower on a detached level")
	}
	child := newLevel(l.prob, s)
	l.LL = append(l.LL, child)
	return child
}

// Levels returns this level and all its descendants in preorder
// (parent before descendants, children in LL order).
func (l *Level) Levels() []*Level {
	out := []*Level{l}
	for _, c := range l.LL {
		out = append(out, c.Levels()...)
	}
	return out
}

// SetA sets this level's constraint coefficients against target's
// variables from a dense row-major slice.
func (l *Level) SetA(target LevelID, rows [][]float64) error {
	m, err := sparse.FromDense(rows)
	if err != nil {
		return fmt.Errorf("SetA(%d): %w", target, err)
	}
	l.A[target] = m
	return nil
}

// SetP sets the quadratic term block between levels first and second from
// a dense row-major slice.
func (l *Level) SetP(first, second LevelID, rows [][]float64) error {
	m, err := sparse.FromDense(rows)
	if err != nil {
		return fmt.Errorf("SetP(%d,%d): %w", first, second, err)
	}
	l.P[LevelPair{First: first, Second: second}] = m
	return nil
}

// Resize grows this level's variable block to (nxR, nxZ, nxB) and remaps
// the integer and binary columns of every vector and matrix in the whole
// problem that references this level's variables. New continuous and
// integer slots get bounds (lb, +inf).
//
// Growth only: shrinking any block returns ErrBadShape. The remapping is
// what keeps externally computed column indices (e.g. the standard-form
// engine's change lists, which are expressed in post-resize numbering)
// consistent with the matrices they are applied to.
func (l *Level) Resize(nxR, nxZ, nxB int, lb float64) error {
	if l.prob == nil {
		return fmt.Errorf("Resize: %w", ErrNilProblem)
	}
	old := l.X
	if nxR < old.NxR || nxZ < old.NxZ || nxB < old.NxB {
		return fmt.Errorf("Resize(%d,%d,%d): shrinking (%d,%d,%d): %w",
			nxR, nxZ, nxB, old.NxR, old.NxZ, old.NxB, ErrBadShape)
	}
	if nxR == old.NxR && nxZ == old.NxZ && nxB == old.NxB {
		return nil
	}

	// 1. Rebuild the bounds arrays around the grown blocks.
	nb := nxR + nxZ
	newLB := make([]float64, nb)
	newUB := make([]float64, nb)
	for i := 0; i < nb; i++ {
		newLB[i] = lb
		newUB[i] = math.Inf(1)
	}
	copy(newLB[:old.NxR], old.LowerBounds[:old.NxR])
	copy(newUB[:old.NxR], old.UpperBounds[:old.NxR])
	copy(newLB[nxR:nxR+old.NxZ], old.LowerBounds[old.NxR:])
	copy(newUB[nxR:nxR+old.NxZ], old.UpperBounds[old.NxR:])
	l.X = Vars{NxR: nxR, NxZ: nxZ, NxB: nxB, LowerBounds: newLB, UpperBounds: newUB}

	// 2. Remap every referencing structure problem-wide.
	width := l.X.Len()
	remap := func(i int) int { return ShiftIndex(i, old.NxR, old.NxZ, nxR, nxZ) }
	for _, x := range l.prob.Levels() {
		if c, ok := x.C[l.ID]; ok {
			if len(c) != old.Len() {
				return fmt.Errorf("Resize: level %d objective against level %d: %w", x.ID, l.ID, ErrDimensionMismatch)
			}
			nc := make([]float64, width)
			for i, v := range c {
				nc[remap(i)] = v
			}
			x.C[l.ID] = nc
		}
		if a, ok := x.A[l.ID]; ok && a != nil {
			na, err := a.RemapCols(width, remap)
			if err != nil {
				return fmt.Errorf("Resize: level %d constraints against level %d: %w", x.ID, l.ID, err)
			}
			x.A[l.ID] = na
		}
		for pair, p := range x.P {
			if p == nil {
				continue
			}
			var err error
			if pair.First == l.ID {
				if p, err = p.RemapRows(width, remap); err != nil {
					return fmt.Errorf("Resize: level %d quadratic block %v: %w", x.ID, pair, err)
				}
			}
			if pair.Second == l.ID {
				if p, err = p.RemapCols(width, remap); err != nil {
					return fmt.Errorf("Resize: level %d quadratic block %v: %w", x.ID, pair, err)
				}
			}
			x.P[pair] = p
		}
	}
	return nil
}

// clone deep-copies the subtree rooted at l into problem p.
func (l *Level) clone(p *Problem) *Level {
	nl := &Level{
		ID:           l.ID,
		Name:         l.Name,
		X:            cloneVars(l.X),
		Minimize:     l.Minimize,
		Inequalities: l.Inequalities,
		C:            make(map[LevelID][]float64, len(l.C)),
		D:            l.D,
		A:            make(map[LevelID]*sparse.Matrix, len(l.A)),
		B:            append([]float64(nil), l.B...),
		P:            make(map[LevelPair]*sparse.Matrix, len(l.P)),
		prob:         p,
	}
	for id, c := range l.C {
		nl.C[id] = append([]float64(nil), c...)
	}
	for id, a := range l.A {
		nl.A[id] = a.Clone()
	}
	for pair, q := range l.P {
		nl.P[pair] = q.Clone()
	}
	for _, child := range l.LL {
		nl.LL = append(nl.LL, child.clone(p))
	}
	return nl
}

func cloneVars(v Vars) Vars {
	return Vars{
		NxR:         v.NxR,
		NxZ:         v.NxZ,
		NxB:         v.NxB,
		LowerBounds: append([]float64(nil), v.LowerBounds...),
		UpperBounds: append([]float64(nil), v.UpperBounds...),
	}
}
