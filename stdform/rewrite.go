// Package stdform: objective and constraint rewriters — apply one
// level's bound-normalization plan to every coefficient structure that
// references that level's variables.

package stdform

import (
	"fmt"

	"github.com/katalvlaran/mlopt/sparse"
)

// applyChangesToObjective rewrites a dense objective vector c (indexed by
// the changed level's post-resize columns) and the scalar offset d.
// c may be nil — no objective terms reference the changed level — in
// which case only d is returned unchanged. The caller owns c; it is
// rewritten in place and returned for symmetry with the constraint side.
//
// Per variant:
//
//	LowerBound  x = x' + lb       d += c[v]·lb
//	UpperBound  x = ub − x'       d += c[v]·ub, c[v] = −c[v]
//	Range       x = x' + lb       d += c[v]·lb, slack coefficient 0
//	Unbounded   x = x⁺ − x⁻       c[w] = −c[v]
func applyChangesToObjective(cs *changeSet, c []float64, d float64) ([]float64, float64) {
	if c == nil {
		return nil, d
	}
	for _, chg := range cs.list {
		switch ch := chg.(type) {
		case changeLowerBound:
			d += c[ch.v] * ch.lb
		case changeUpperBound:
			d += c[ch.v] * ch.ub
			c[ch.v] = -c[ch.v]
		case changeRange:
			d += c[ch.v] * ch.lb
			if ch.w >= 0 {
				c[ch.w] = 0
			}
		case changeUnbounded:
			c[ch.w] = -c[ch.v]
		}
	}
	return c, d
}

// applyChangesToConstraints rewrites a sparse constraint matrix A (its
// columns index the changed level's variables, already remapped to the
// post-resize numbering) together with the owning level's RHS b.
//
// The rewrite never mutates A: all contributions — surviving entries,
// sign flips, fresh x⁻ columns, appended range rows — are merged into a
// fresh matrix by coordinate union (colliding coordinates accumulate).
//
// addRows enables the appended rows for Range changes (x' ≤ ub−lb under
// the inequality target, x' + s = ub−lb under the equality target) and
// must be true only for the level that owns the changed variables, so the
// rows fire once per physical variable rather than once per referencing
// level.
//
// width is the changed level's total post-resize variable count. A may be
// nil; the result is nil only when no rows exist at all.
func applyChangesToConstraints(cs *changeSet, width int, a *sparse.Matrix, b []float64, addRows bool) (*sparse.Matrix, []float64, error) {
	nb := append([]float64(nil), b...)

	nrows := 0
	if a != nil {
		nrows = a.Rows()
	}
	added := 0
	if addRows {
		for _, chg := range cs.list {
			if _, ok := chg.(changeRange); ok {
				added++
			}
		}
	}
	if nrows+added == 0 {
		return nil, nb, nil
	}

	bld := sparse.NewBuilder(nrows+added, width)

	// 1. Column-wise rewrite of the existing entries.
	byCol := make(map[int]varChange, len(cs.list))
	for _, chg := range cs.list {
		byCol[chg.varIndex()] = chg
	}
	var derr error
	if a != nil {
		a.Do(func(r, c int, v float64) {
			if derr != nil {
				return
			}
			chg, ok := byCol[c]
			if !ok {
				derr = bld.Add(r, c, v)
				return
			}
			switch ch := chg.(type) {
			case changeLowerBound:
				nb[r] -= v * ch.lb
				derr = bld.Add(r, c, v)
			case changeUpperBound:
				nb[r] -= v * ch.ub
				derr = bld.Add(r, c, -v)
			case changeRange:
				nb[r] -= v * ch.lb
				derr = bld.Add(r, c, v)
			case changeUnbounded:
				derr = bld.Add(r, c, v)
				if derr == nil {
					derr = bld.Add(r, ch.w, -v)
				}
			}
		})
	}
	if derr != nil {
		return nil, nil, fmt.Errorf("applyChangesToConstraints: %w", derr)
	}

	// 2. Appended rows, in change-list order for determinism.
	if addRows {
		row := nrows
		for _, chg := range cs.list {
			ch, ok := chg.(changeRange)
			if !ok {
				continue
			}
			if err := bld.Add(row, ch.v, 1); err != nil {
				return nil, nil, fmt.Errorf("applyChangesToConstraints: %w", err)
			}
			if ch.w >= 0 {
				if err := bld.Add(row, ch.w, 1); err != nil {
					return nil, nil, fmt.Errorf("applyChangesToConstraints: %w", err)
				}
			}
			nb = append(nb, ch.ub-ch.lb)
			row++
		}
	}

	return bld.Build(), nb, nil
}
