package stdform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mlopt/sparse"
)

// planOf builds a changeSet the way findNonnegativeChanges would,
// from explicit variants and counts.
func planOf(oldR, oldZ, newR, newZ int, list ...varChange) *changeSet {
	return &changeSet{list: list, oldNxR: oldR, oldNxZ: oldZ, nxR: newR, nxZ: newZ}
}

func TestObjectiveRewrite_NilVectorPassesThrough(t *testing.T) {
	cs := planOf(1, 0, 2, 0, changeUnbounded{real: true, v: 0, w: 1})

	c, d := applyChangesToObjective(cs, nil, 3.5)
	require.Nil(t, c)
	require.Equal(t, 3.5, d)
}

func TestObjectiveRewrite_LowerBoundShiftsConstant(t *testing.T) {
	cs := planOf(1, 0, 1, 0, changeLowerBound{real: true, v: 0, lb: 2})

	c, d := applyChangesToObjective(cs, []float64{3}, 1)
	require.Equal(t, []float64{3}, c, "coefficient keeps its value")
	require.Equal(t, 7.0, d, "d += c[v]·lb")
}

func TestObjectiveRewrite_UpperBoundNegates(t *testing.T) {
	cs := planOf(1, 0, 1, 0, changeUpperBound{real: true, v: 0, ub: 3})

	c, d := applyChangesToObjective(cs, []float64{2}, 0)
	require.Equal(t, []float64{-2}, c)
	require.Equal(t, 6.0, d)
}

func TestObjectiveRewrite_RangeZeroesSlack(t *testing.T) {
	cs := planOf(1, 0, 2, 0, changeRange{real: true, v: 0, lb: 2, ub: 5, w: 1})

	c, d := applyChangesToObjective(cs, []float64{4, 9}, 0)
	require.Equal(t, []float64{4, 0}, c, "slack never appears in the objective")
	require.Equal(t, 8.0, d)
}

func TestObjectiveRewrite_UnboundedNegatesNewColumn(t *testing.T) {
	cs := planOf(1, 0, 2, 0, changeUnbounded{real: true, v: 0, w: 1})

	c, d := applyChangesToObjective(cs, []float64{5, 0}, 0)
	require.Equal(t, []float64{5, -5}, c)
	require.Equal(t, 0.0, d)
}

func TestConstraintRewrite_RangeAppendsRowWithoutSlack(t *testing.T) {
	// One variable with lb=2, ub=5, inequality target: expect the
	// appended row x' ≤ 3 and the shifted rhs.
	cs := planOf(1, 0, 1, 0, changeRange{real: true, v: 0, lb: 2, ub: 5, w: -1})
	a, err := sparse.FromDense([][]float64{{1}})
	require.NoError(t, err)

	na, nb, err := applyChangesToConstraints(cs, 1, a, []float64{4}, true)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 3}, nb, "b[0] -= 1·lb; new row rhs is ub−lb")
	require.Equal(t, [][]float64{{1}, {1}}, na.Dense())
}

func TestConstraintRewrite_RangeAppendsSlackEquation(t *testing.T) {
	// Same variable, equality target: x' + s = 3.
	cs := planOf(1, 0, 2, 0, changeRange{real: true, v: 0, lb: 2, ub: 5, w: 1})
	a, err := sparse.FromDense([][]float64{{1, 0}})
	require.NoError(t, err)

	na, nb, err := applyChangesToConstraints(cs, 2, a, []float64{4}, true)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 3}, nb)
	require.Equal(t, [][]float64{{1, 0}, {1, 1}}, na.Dense())
}

func TestConstraintRewrite_RowAdditionFiresOnlyForOwner(t *testing.T) {
	cs := planOf(1, 0, 1, 0, changeRange{real: true, v: 0, lb: 2, ub: 5, w: -1})
	a, err := sparse.FromDense([][]float64{{1}})
	require.NoError(t, err)

	na, nb, err := applyChangesToConstraints(cs, 1, a, []float64{4}, false)
	require.NoError(t, err)
	require.Equal(t, []float64{2}, nb, "rhs still shifts for a referencing level")
	require.Equal(t, [][]float64{{1}}, na.Dense(), "but no row is appended")
}

func TestConstraintRewrite_UpperBoundFlipsColumn(t *testing.T) {
	cs := planOf(1, 0, 1, 0, changeUpperBound{real: true, v: 0, ub: 3})
	a, err := sparse.FromDense([][]float64{{2}, {-1}})
	require.NoError(t, err)

	na, nb, err := applyChangesToConstraints(cs, 1, a, []float64{4, 5}, true)
	require.NoError(t, err)
	require.Equal(t, []float64{-2, 8}, nb)
	require.Equal(t, [][]float64{{-2}, {1}}, na.Dense())
}

func TestConstraintRewrite_UnboundedAddsNegatedColumn(t *testing.T) {
	cs := planOf(1, 0, 2, 0, changeUnbounded{real: true, v: 0, w: 1})
	a, err := sparse.FromDense([][]float64{{2, 0}, {-3, 0}})
	require.NoError(t, err)

	na, nb, err := applyChangesToConstraints(cs, 2, a, []float64{1, 1}, true)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 1}, nb, "splitting shifts nothing")
	require.Equal(t, [][]float64{{2, -2}, {-3, 3}}, na.Dense())
}

func TestConstraintRewrite_NilMatrixStillGrowsOwnerRows(t *testing.T) {
	// A level can own ranged variables without having its own constraint
	// matrix yet; the range rows materialize a fresh one.
	cs := planOf(1, 0, 2, 0, changeRange{real: true, v: 0, lb: 2, ub: 5, w: 1})

	na, nb, err := applyChangesToConstraints(cs, 2, nil, nil, true)
	require.NoError(t, err)
	require.Equal(t, []float64{3}, nb)
	require.Equal(t, [][]float64{{1, 1}}, na.Dense())
}

func TestConstraintRewrite_NilMatrixNoRowsStaysNil(t *testing.T) {
	cs := planOf(1, 0, 2, 0, changeUnbounded{real: true, v: 0, w: 1})

	na, nb, err := applyChangesToConstraints(cs, 2, nil, nil, false)
	require.NoError(t, err)
	require.Nil(t, na)
	require.Empty(t, nb)
}
