package mlp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mlopt/mlp"
)

func TestAddUpperAddLower_SequentialIDsAndPreorder(t *testing.T) {
	m := mlp.NewLinear()
	u := m.AddUpper(mlp.Shape{NxR: 1})
	l1 := u.AddLower(mlp.Shape{NxR: 2})
	l2 := l1.AddLower(mlp.Shape{NxR: 1})
	l3 := u.AddLower(mlp.Shape{NxZ: 1})

	require.Equal(t, mlp.LevelID(0), u.ID)
	require.Equal(t, mlp.LevelID(1), l1.ID)
	require.Equal(t, mlp.LevelID(2), l2.ID)
	require.Equal(t, mlp.LevelID(3), l3.ID)

	var order []mlp.LevelID
	for _, l := range m.Levels() {
		order = append(order, l.ID)
	}
	require.Equal(t, []mlp.LevelID{0, 1, 2, 3}, order, "parent before descendants, children in insertion order")

	got, err := m.Level(l2.ID)
	require.NoError(t, err)
	require.Same(t, l2, got)

	_, err = m.Level(mlp.LevelID(9))
	require.ErrorIs(t, err, mlp.ErrUnknownLevel)
}

func TestAddUpper_PanicsOnSecondRoot(t *testing.T) {
	m := mlp.NewLinear()
	m.AddUpper(mlp.Shape{NxR: 1})
	require.Panics(t, func() { m.AddUpper(mlp.Shape{NxR: 1}) })
}

func TestDefaultBoundsAreFree(t *testing.T) {
	m := mlp.NewLinear()
	u := m.AddUpper(mlp.Shape{NxR: 1, NxZ: 1})
	require.Equal(t, []float64{math.Inf(-1), math.Inf(-1)}, u.X.LowerBounds)
	require.Equal(t, []float64{math.Inf(1), math.Inf(1)}, u.X.UpperBounds)
	require.Equal(t, 2, u.X.Len())
}

func TestClone_IsADeepValueCopy(t *testing.T) {
	m := mlp.NewLinear()
	u := m.AddUpper(mlp.Shape{NxR: 2})
	l := u.AddLower(mlp.Shape{NxR: 1})
	u.C[u.ID] = []float64{1, 2}
	u.C[l.ID] = []float64{3}
	u.B = []float64{4}
	require.NoError(t, u.SetA(u.ID, [][]float64{{1, 0}}))

	c := m.Clone()
	cu := c.Root
	require.Equal(t, u.ID, cu.ID, "level ids survive cloning")
	require.Equal(t, u.C[u.ID], cu.C[u.ID])

	// Mutating the clone never touches the source.
	cu.C[u.ID][0] = 99
	cu.B[0] = 99
	cu.X.LowerBounds[0] = 99
	require.Equal(t, []float64{1, 2}, u.C[u.ID])
	require.Equal(t, []float64{4}, u.B)
	require.Equal(t, math.Inf(-1), u.X.LowerBounds[0])

	// Cloned levels belong to the cloned problem: growing the clone
	// leaves the source's tree alone.
	require.NoError(t, cu.Resize(3, 0, 0, 0))
	require.Equal(t, 2, u.X.NxR)
	require.Equal(t, 2, u.A[u.ID].Cols())
	require.Equal(t, 3, cu.A[cu.ID].Cols())
}

func TestCheck_CatchesStructuralDefects(t *testing.T) {
	build := func() (*mlp.Problem, *mlp.Level, *mlp.Level) {
		m := mlp.NewLinear()
		u := m.AddUpper(mlp.Shape{NxR: 2})
		l := u.AddLower(mlp.Shape{NxR: 1})
		return m, u, l
	}

	m, u, _ := build()
	u.C[u.ID] = []float64{1}
	require.ErrorIs(t, m.Check(), mlp.ErrDimensionMismatch)

	m, u, _ = build()
	u.C[mlp.LevelID(7)] = []float64{1}
	require.ErrorIs(t, m.Check(), mlp.ErrUnknownLevel)

	m, u, _ = build()
	require.NoError(t, u.SetA(u.ID, [][]float64{{1, 0}}))
	require.ErrorIs(t, m.Check(), mlp.ErrDimensionMismatch, "one row but empty rhs")

	m, u, l := build()
	require.NoError(t, u.SetA(l.ID, [][]float64{{1, 0}}))
	u.B = []float64{1}
	require.ErrorIs(t, m.Check(), mlp.ErrDimensionMismatch, "two columns against a one-variable level")

	m, u, l = build()
	require.NoError(t, u.SetP(u.ID, l.ID, [][]float64{{1}, {0}}))
	require.ErrorIs(t, m.Check(), mlp.ErrBadShape, "quadratic block on a linear problem")

	m, u, l = build()
	u.C[u.ID] = []float64{1, 2}
	u.C[l.ID] = []float64{3}
	require.NoError(t, m.Check())
}
