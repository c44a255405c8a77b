package stdform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mlopt/mlp"
)

func inf() float64  { return math.Inf(1) }
func ninf() float64 { return math.Inf(-1) }

func varsWith(nxR, nxZ int, lb, ub []float64) *mlp.Vars {
	return &mlp.Vars{NxR: nxR, NxZ: nxZ, LowerBounds: lb, UpperBounds: ub}
}

func TestFindChanges_CanonicalVariableUntouched(t *testing.T) {
	x := varsWith(1, 0, []float64{0}, []float64{inf()})

	cs, err := findNonnegativeChanges(x, false)
	require.NoError(t, err)
	require.Empty(t, cs.list)
	require.Equal(t, 1, cs.nxR)
	require.Equal(t, 0, cs.nxZ)
}

func TestFindChanges_UnboundedRealSplits(t *testing.T) {
	x := varsWith(1, 0, []float64{ninf()}, []float64{inf()})

	cs, err := findNonnegativeChanges(x, false)
	require.NoError(t, err)
	require.Len(t, cs.list, 1)
	require.Equal(t, changeUnbounded{real: true, v: 0, w: 1}, cs.list[0])
	require.Equal(t, 2, cs.nxR, "negative part gets a fresh continuous column")
}

func TestFindChanges_LowerAndUpperBound(t *testing.T) {
	x := varsWith(2, 0, []float64{2, ninf()}, []float64{inf(), 7})

	cs, err := findNonnegativeChanges(x, true)
	require.NoError(t, err)
	require.Len(t, cs.list, 2)
	require.Equal(t, changeLowerBound{real: true, v: 0, lb: 2}, cs.list[0])
	require.Equal(t, changeUpperBound{real: true, v: 1, ub: 7}, cs.list[1])
	require.Equal(t, 2, cs.nxR, "shifts introduce no new columns")
}

func TestFindChanges_RangeInequalityHasNoSlack(t *testing.T) {
	x := varsWith(1, 0, []float64{2}, []float64{5})

	cs, err := findNonnegativeChanges(x, true)
	require.NoError(t, err)
	require.Len(t, cs.list, 1)
	require.Equal(t, changeRange{real: true, v: 0, lb: 2, ub: 5, w: -1}, cs.list[0])
	require.Equal(t, 1, cs.nxR)
}

func TestFindChanges_RangeEqualityAllocatesSlack(t *testing.T) {
	x := varsWith(1, 0, []float64{2}, []float64{5})

	cs, err := findNonnegativeChanges(x, false)
	require.NoError(t, err)
	require.Len(t, cs.list, 1)
	require.Equal(t, changeRange{real: true, v: 0, lb: 2, ub: 5, w: 1}, cs.list[0])
	require.Equal(t, 2, cs.nxR)
}

func TestFindChanges_IntegerColumnsReindexAfterRealGrowth(t *testing.T) {
	// One unbounded real (adds a real column) and one ranged integer
	// (equality target: adds a real slack). The integer's column must end
	// up shifted by the total real growth, computed only after the scan.
	x := varsWith(1, 1, []float64{ninf(), 2}, []float64{inf(), 5})

	cs, err := findNonnegativeChanges(x, false)
	require.NoError(t, err)
	require.Len(t, cs.list, 2)
	require.Equal(t, changeUnbounded{real: true, v: 0, w: 1}, cs.list[0])
	require.Equal(t, changeRange{real: false, v: 3, lb: 2, ub: 5, w: 2}, cs.list[1],
		"integer column 1 shifts by the two new continuous columns")
	require.Equal(t, 3, cs.nxR)
	require.Equal(t, 1, cs.nxZ)
	require.Equal(t, 1, cs.originalIndex(cs.list[1]))
}

func TestFindChanges_UnboundedInteger(t *testing.T) {
	x := varsWith(1, 1, []float64{0, ninf()}, []float64{inf(), inf()})

	cs, err := findNonnegativeChanges(x, false)
	require.NoError(t, err)
	require.Len(t, cs.list, 1)
	require.Equal(t, changeUnbounded{real: false, v: 1, w: 2}, cs.list[0],
		"integer negative part lands after the integer block")
	require.Equal(t, 1, cs.nxR)
	require.Equal(t, 2, cs.nxZ)
}

func TestFindChanges_CountIdentity(t *testing.T) {
	// Mixed block: every variant at once, equality target.
	x := varsWith(4, 2,
		[]float64{0, ninf(), 2, 1, ninf(), -3},
		[]float64{inf(), inf(), 5, inf(), 4, 3},
	)

	cs, err := findNonnegativeChanges(x, false)
	require.NoError(t, err)

	added := 0
	for _, c := range cs.list {
		if _, ok := c.newIndex(); ok {
			added++
		}
	}
	require.Equal(t, x.NxR+x.NxZ+added, cs.nxR+cs.nxZ)
}
