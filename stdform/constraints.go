// Package stdform: constraint-form converter — makes every level's
// constraint convention match a single global choice, independently of
// bound normalization.

package stdform

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/mlopt/mlp"
	"github.com/katalvlaran/mlopt/sparse"
)

// convertConstraints converts every level to the requested form.
//
// Equalities → inequalities: each A·x = b row is duplicated with its
// negation (A·x ≤ b, −A·x ≤ −b), doubling the row count and b.
//
// Inequalities → equalities: one fresh nonnegative continuous slack per
// row joins the level's own variable block, with coefficient 1 in the
// corresponding row of the level's own-block matrix A[L][L]. Slacks are
// private to the owning level — other levels' matrices only grow columns
// through the resize remap. When a level has rows but no own-block matrix
// the slack coefficients have nowhere to live and the rows are left as
// they are, matching the reference behavior.
//
// Afterwards every level's Inequalities flag equals the target.
func convertConstraints(m *mlp.Problem, inequalities bool) error {
	if inequalities {
		for _, l := range m.Levels() {
			if l.Inequalities {
				continue
			}
			neg := append([]float64(nil), l.B...)
			floats.Scale(-1, neg)
			l.B = append(l.B, neg...)
			for id, a := range l.A {
				na, err := stackNegated(a)
				if err != nil {
					return fmt.Errorf("convertConstraints: level %d against %d: %w", l.ID, id, err)
				}
				l.A[id] = na
			}
		}
	} else {
		for _, l := range m.Levels() {
			if !l.Inequalities || len(l.B) == 0 {
				continue
			}
			nxR := l.X.NxR
			if err := l.Resize(nxR+len(l.B), l.X.NxZ, l.X.NxB, 0); err != nil {
				return fmt.Errorf("convertConstraints: level %d: %w", l.ID, err)
			}
			a := l.A[l.ID]
			if a == nil {
				continue
			}
			bld := sparse.NewBuilder(a.Rows(), a.Cols())
			if err := bld.AddMatrix(a); err != nil {
				return fmt.Errorf("convertConstraints: level %d: %w", l.ID, err)
			}
			for i := range l.B {
				if err := bld.Add(i, nxR+i, 1); err != nil {
					return fmt.Errorf("convertConstraints: level %d slack %d: %w", l.ID, i, err)
				}
			}
			l.A[l.ID] = bld.Build()
		}
	}
	for _, l := range m.Levels() {
		l.Inequalities = inequalities
	}
	return nil
}

// stackNegated returns [a; −a]: the matrix stacked on its negation.
func stackNegated(a *sparse.Matrix) (*sparse.Matrix, error) {
	if a == nil {
		return nil, nil
	}
	rows := a.Rows()
	bld := sparse.NewBuilder(2*rows, a.Cols())
	var err error
	a.Do(func(r, c int, v float64) {
		if err == nil {
			err = bld.Add(r, c, v)
		}
		if err == nil {
			err = bld.Add(rows+r, c, -v)
		}
	})
	if err != nil {
		return nil, err
	}
	return bld.Build(), nil
}
