// Package stdform: reconstruction map — the linear recipe for recovering
// original variable values from a solution of the transformed problem.

package stdform

import (
	"fmt"

	"github.com/katalvlaran/mlopt/mlp"
)

// Term is one multiplier of a reconstruction recipe: the original value
// picks up Coef times the transformed variable at Index.
type Term struct {
	Index int
	Coef  float64
}

// recovery is the full recipe for one original variable:
// original = Σ Term.Coef · transformed[Term.Index] + shift.
type recovery struct {
	terms []Term
	shift float64
}

// SolutionManager maps solutions of the transformed problem back to the
// original variable space. Built once by Convert, read-only afterwards.
type SolutionManager struct {
	recs  map[mlp.LevelID][]recovery
	width map[mlp.LevelID]int // transformed variable count per level
}

// buildSolutionManager derives the per-variable recipes from the change
// lists. m is the *input* problem: recipes are indexed by original
// variable positions, while Term indices live in the transformed space.
//
// Two renumberings separate the original space from the transformed one.
// Constraint-form conversion may have appended slack columns to the
// continuous block before the bound scan ran, so each change list speaks
// the intermediate (post-slack) numbering; the bound plan then grows the
// blocks again. Both shifts are bridged here: an original index i maps to
// the intermediate index mid (continuous columns keep their position,
// later blocks shift by the slack growth), and mid maps to the final
// column via the plan's block growth.
//
// Defaults map an untouched variable to its final column with coefficient
// 1. Overrides per variant:
//
//	UpperBound  [(v,−1)], shift ub
//	Unbounded   [(v,1),(w,−1)]
//	LowerBound  [(v,1)],  shift lb
//	Range       [(v,1)],  shift lb
func buildSolutionManager(m *mlp.Problem, changes map[mlp.LevelID]*changeSet) *SolutionManager {
	sm := &SolutionManager{
		recs:  make(map[mlp.LevelID][]recovery),
		width: make(map[mlp.LevelID]int),
	}
	for _, l := range m.Levels() {
		cs := changes[l.ID]
		slackShift := cs.oldNxR - l.X.NxR
		byMid := make(map[int]varChange, len(cs.list))
		for _, chg := range cs.list {
			byMid[cs.originalIndex(chg)] = chg
		}
		recs := make([]recovery, l.X.Len())
		for i := range recs {
			mid := i
			if i >= l.X.NxR {
				mid += slackShift
			}
			chg, ok := byMid[mid]
			if !ok {
				col := mlp.ShiftIndex(mid, cs.oldNxR, cs.oldNxZ, cs.nxR, cs.nxZ)
				recs[i] = recovery{terms: []Term{{Index: col, Coef: 1}}}
				continue
			}
			switch ch := chg.(type) {
			case changeLowerBound:
				recs[i] = recovery{terms: []Term{{Index: ch.v, Coef: 1}}, shift: ch.lb}
			case changeUpperBound:
				recs[i] = recovery{terms: []Term{{Index: ch.v, Coef: -1}}, shift: ch.ub}
			case changeRange:
				recs[i] = recovery{terms: []Term{{Index: ch.v, Coef: 1}}, shift: ch.lb}
			case changeUnbounded:
				recs[i] = recovery{terms: []Term{{Index: ch.v, Coef: 1}, {Index: ch.w, Coef: -1}}}
			}
		}
		sm.recs[l.ID] = recs
		sm.width[l.ID] = cs.nxR + cs.nxZ + l.X.NxB
	}
	return sm
}

// Multipliers returns, for every original variable of the level, the
// multiplier term list (without the bound shift). The slices are copies;
// mutating them never affects the manager.
func (sm *SolutionManager) Multipliers(id mlp.LevelID) ([][]Term, error) {
	recs, ok := sm.recs[id]
	if !ok {
		return nil, fmt.Errorf("Multipliers(%d): %w", id, mlp.ErrUnknownLevel)
	}
	out := make([][]Term, len(recs))
	for i, r := range recs {
		out[i] = append([]Term(nil), r.terms...)
	}
	return out, nil
}

// RecoverLevel maps one level's transformed solution vector back to the
// original variable values: original[i] = Σ coef·x[index] + shift.
// x must have exactly the transformed level's variable count.
func (sm *SolutionManager) RecoverLevel(id mlp.LevelID, x []float64) ([]float64, error) {
	recs, ok := sm.recs[id]
	if !ok {
		return nil, fmt.Errorf("RecoverLevel(%d): %w", id, mlp.ErrUnknownLevel)
	}
	if len(x) != sm.width[id] {
		return nil, fmt.Errorf("RecoverLevel(%d): len %d, want %d: %w", id, len(x), sm.width[id], ErrSolutionShape)
	}
	out := make([]float64, len(recs))
	for i, r := range recs {
		val := r.shift
		for _, t := range r.terms {
			val += t.Coef * x[t.Index]
		}
		out[i] = val
	}
	return out, nil
}

// Recover maps a full solution (one vector per level, in transformed
// numbering) back to original variable values, level by level.
func (sm *SolutionManager) Recover(sol map[mlp.LevelID][]float64) (map[mlp.LevelID][]float64, error) {
	out := make(map[mlp.LevelID][]float64, len(sol))
	for id, x := range sol {
		orig, err := sm.RecoverLevel(id, x)
		if err != nil {
			return nil, err
		}
		out[id] = orig
	}
	return out, nil
}
