// Package stdform: bound normalizer — classifies every variable of a
// level by its bound pattern and plans the index remapping that makes
// the block nonnegative.

package stdform

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mlopt/mlp"
)

// varChange is a closed sum type: exactly one variant is produced per
// variable that is not already nonnegative-with-no-upper-bound. Every
// consumer (objective rewriter, constraint rewriter, reconstruction map)
// switches exhaustively over the four variants.
type varChange interface {
	isVarChange()
	// varIndex is the column of the affected variable in post-resize
	// numbering (integer columns are shifted once the final continuous
	// count is known).
	varIndex() int
	// newIndex reports the extra column this change introduces, if any.
	newIndex() (int, bool)
}

// changeLowerBound: finite lower bound only; substitute x = x' + lb.
type changeLowerBound struct {
	real bool
	v    int
	lb   float64
}

// changeUpperBound: finite upper bound only; substitute x = ub − x'.
type changeUpperBound struct {
	real bool
	v    int
	ub   float64
}

// changeRange: both bounds finite; substitute x = x' + lb. Under the
// equality target w is the column of a fresh slack with x' + s = ub−lb;
// under the inequality target w is -1 and a row x' ≤ ub−lb is appended.
type changeRange struct {
	real   bool
	v      int
	lb, ub float64
	w      int // slack column, -1 when the target form needs none
}

// changeUnbounded: no finite bound; substitute x = x⁺ − x⁻ where w is
// the column of the fresh x⁻.
type changeUnbounded struct {
	real bool
	v    int
	w    int
}

func (changeLowerBound) isVarChange() {}
func (changeUpperBound) isVarChange() {}
func (changeRange) isVarChange()      {}
func (changeUnbounded) isVarChange()  {}

func (c changeLowerBound) varIndex() int { return c.v }
func (c changeUpperBound) varIndex() int { return c.v }
func (c changeRange) varIndex() int      { return c.v }
func (c changeUnbounded) varIndex() int  { return c.v }

func (changeLowerBound) newIndex() (int, bool) { return 0, false }
func (changeUpperBound) newIndex() (int, bool) { return 0, false }
func (c changeRange) newIndex() (int, bool) {
	if c.w < 0 {
		return 0, false
	}
	return c.w, true
}
func (c changeUnbounded) newIndex() (int, bool) { return c.w, true }

// changeSet is one level's bound-normalization plan: the ordered change
// list plus the variable counts before and after.
type changeSet struct {
	list           []varChange
	oldNxR, oldNxZ int
	nxR, nxZ       int
}

// realShift is the amount every integer column moves: the number of
// continuous columns added by the plan.
func (cs *changeSet) realShift() int { return cs.nxR - cs.oldNxR }

// originalIndex maps a change's (post-resize) variable column back to the
// variable's index in the block the scan ran on (pre-plan numbering).
func (cs *changeSet) originalIndex(c varChange) int {
	if isReal(c) {
		return c.varIndex()
	}
	return c.varIndex() - cs.realShift()
}

func isReal(c varChange) bool {
	switch ch := c.(type) {
	case changeLowerBound:
		return ch.real
	case changeUpperBound:
		return ch.real
	case changeRange:
		return ch.real
	case changeUnbounded:
		return ch.real
	default:
		panic("stdform: unknown varChange variant")
	}
}

// findNonnegativeChanges scans a variable block and produces its plan.
// Binary variables are implicitly in [0,1] and never appear in the list.
//
// New continuous columns are allocated right after the existing
// continuous block; new integer columns after the existing integer block.
// Because continuous columns come first, every integer change is shifted
// by the final continuous growth once the scan completes — the shift can
// only be computed after the final nxR is known.
//
// Postcondition (count identity): nxR + nxZ equals the original count
// plus the number of changes that introduced a new column. A violation
// returns ErrInternalConsistency.
func findNonnegativeChanges(x *mlp.Vars, inequalities bool) (*changeSet, error) {
	cs := &changeSet{oldNxR: x.NxR, oldNxZ: x.NxZ, nxR: x.NxR, nxZ: x.NxZ}

	// 1. Classify each continuous and integer variable.
	for i := 0; i < x.NxR+x.NxZ; i++ {
		lb, ub := x.LowerBounds[i], x.UpperBounds[i]
		isR := i < x.NxR
		switch {
		case math.IsInf(ub, 1):
			switch {
			case lb == 0:
				// Already canonical.
			case math.IsInf(lb, -1):
				if isR {
					cs.list = append(cs.list, changeUnbounded{real: true, v: i, w: cs.nxR})
					cs.nxR++
				} else {
					// w is allocated relative to the integer block and made
					// absolute in the reindex pass below.
					cs.list = append(cs.list, changeUnbounded{real: false, v: i, w: cs.nxZ})
					cs.nxZ++
				}
			default:
				cs.list = append(cs.list, changeLowerBound{real: isR, v: i, lb: lb})
			}
		case math.IsInf(lb, -1):
			cs.list = append(cs.list, changeUpperBound{real: isR, v: i, ub: ub})
		case inequalities:
			cs.list = append(cs.list, changeRange{real: isR, v: i, lb: lb, ub: ub, w: -1})
		default:
			// Equality target: a continuous slack joins the real block.
			cs.list = append(cs.list, changeRange{real: isR, v: i, lb: lb, ub: ub, w: cs.nxR})
			cs.nxR++
		}
	}

	// 2. Reindex integer changes now that the final nxR is known.
	shift := cs.realShift()
	for i, c := range cs.list {
		switch ch := c.(type) {
		case changeLowerBound:
			if !ch.real {
				ch.v += shift
				cs.list[i] = ch
			}
		case changeUpperBound:
			if !ch.real {
				ch.v += shift
				cs.list[i] = ch
			}
		case changeRange:
			if !ch.real {
				ch.v += shift
				cs.list[i] = ch
			}
		case changeUnbounded:
			if !ch.real {
				ch.v += shift
				ch.w += cs.nxR
				cs.list[i] = ch
			}
		}
	}

	// 3. Count identity postcondition.
	added := 0
	for _, c := range cs.list {
		if _, ok := c.newIndex(); ok {
			added++
		}
	}
	if cs.nxR+cs.nxZ != x.NxR+x.NxZ+added {
		return nil, fmt.Errorf("findNonnegativeChanges: (%d,%d)→(%d,%d) with %d new columns: %w",
			x.NxR, x.NxZ, cs.nxR, cs.nxZ, added, ErrInternalConsistency)
	}
	return cs, nil
}
