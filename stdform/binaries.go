// Package stdform: binary relaxation helper.

package stdform

import "github.com/katalvlaran/mlopt/mlp"

// ConvertBinariesToIntegers relabels every level's binary block as
// general integer variables with explicit [0, 1] bounds, in place.
// Binary columns already sit at the tail of the block, so no column in
// any referencing vector or matrix moves.
//
// Useful ahead of Convert when a downstream consumer handles integers
// but not binaries; note that Convert will then turn the [0, 1] ranges
// into Range changes like any other two-sided bound.
func ConvertBinariesToIntegers(m *mlp.Problem) {
	for _, l := range m.Levels() {
		if l.X.NxB == 0 {
			continue
		}
		for i := 0; i < l.X.NxB; i++ {
			l.X.LowerBounds = append(l.X.LowerBounds, 0)
			l.X.UpperBounds = append(l.X.UpperBounds, 1)
		}
		l.X.NxZ += l.X.NxB
		l.X.NxB = 0
	}
}
