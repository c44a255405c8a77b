// Package stdform: the orchestrator — fixed conversion pipeline over a
// deep copy of the input problem.

package stdform

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mlopt/mlp"
)

// Convert rewrites a multilevel problem into standard form and returns
// the transformed problem together with the SolutionManager that maps
// solutions back to the original variable space. The input is never
// mutated; all work happens on a deep copy.
//
// Pipeline, in fixed order:
//  1. kind check (ErrKind before any mutation)
//  2. clone
//  3. sense normalization — every level minimizes
//  4. constraint-form conversion to the global target
//  5. per-level bound normalization, with the plan propagated to every
//     objective vector and constraint matrix that references the level
//  6. resize of every referencing matrix to its final (rows, cols)
//  7. reconstruction map, built against the input problem
//
// Levels are processed in the problem's canonical preorder. Each level's
// plan is computed independently of every other level's, so the order
// matters only for reproducibility, not correctness.
func Convert(m *mlp.Problem, opts ...Option) (*mlp.Problem, *SolutionManager, error) {
	// 1. Validate the input kind before touching anything.
	if m == nil || (m.Kind != mlp.Linear && m.Kind != mlp.Quadratic) {
		return nil, nil, ErrKind
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 2. Clone: every mutation below happens on ans.
	ans := m.Clone()

	// 3. Global minimization.
	toMinimization(ans)

	// 4. Uniform constraint form.
	if err := convertConstraints(ans, o.inequalities); err != nil {
		return nil, nil, err
	}

	// 5a. Phase one: compute every level's change list. No level's plan
	// depends on another's, so this is a pure per-level scan.
	levels := ans.Levels()
	changes := make(map[mlp.LevelID]*changeSet, len(levels))
	for _, l := range levels {
		cs, err := findNonnegativeChanges(&l.X, o.inequalities)
		if err != nil {
			return nil, nil, fmt.Errorf("level %d: %w", l.ID, err)
		}
		changes[l.ID] = cs
	}

	// 5b. Phase two: apply each plan — grow the level's block, then
	// propagate the rewrite to every referencing level.
	for _, l := range levels {
		cs := changes[l.ID]
		if err := l.Resize(cs.nxR, cs.nxZ, l.X.NxB, 0); err != nil {
			return nil, nil, fmt.Errorf("level %d: %w", l.ID, err)
		}
		// The block is canonical from here on: [0, +inf) everywhere.
		for i := range l.X.LowerBounds {
			l.X.LowerBounds[i] = 0
			l.X.UpperBounds[i] = math.Inf(1)
		}
		if len(cs.list) == 0 {
			continue
		}
		if ans.Kind == mlp.Quadratic {
			if err := rejectQuadraticPropagation(levels, l.ID); err != nil {
				return nil, nil, err
			}
		}
		width := l.X.Len()
		for _, x := range levels {
			if c, ok := x.C[l.ID]; ok {
				x.C[l.ID], x.D = applyChangesToObjective(cs, c, x.D)
			}
			na, nb, err := applyChangesToConstraints(cs, width, x.A[l.ID], x.B, x.ID == l.ID)
			if err != nil {
				return nil, nil, fmt.Errorf("level %d against %d: %w", x.ID, l.ID, err)
			}
			if na != nil {
				x.A[l.ID] = na
			}
			x.B = nb
		}
	}

	// 6. Final resize: every referencing matrix ends at (len(X.B), len(L.x)).
	for _, l := range levels {
		for _, x := range levels {
			a := x.A[l.ID]
			if a == nil {
				continue
			}
			ra, err := a.Resize(len(x.B), l.X.Len())
			if err != nil {
				return nil, nil, fmt.Errorf("level %d against %d: %w", x.ID, l.ID, err)
			}
			x.A[l.ID] = ra
		}
	}

	// 7. Reconstruction map, indexed by the input problem's variables.
	return ans, buildSolutionManager(m, changes), nil
}

// rejectQuadraticPropagation fails when any quadratic block touches the
// variables of a level that has bound changes: substituting bound changes
// through P is not implemented, and dropping terms silently would destroy
// solution equivalence.
func rejectQuadraticPropagation(levels []*mlp.Level, id mlp.LevelID) error {
	for _, x := range levels {
		for pair := range x.P {
			if pair.First == id || pair.Second == id {
				return fmt.Errorf("level %d: quadratic block %v: %w", id, pair, ErrUnsupportedStructure)
			}
		}
	}
	return nil
}
