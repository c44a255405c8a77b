// Package stdform: sense normalizer — forces a single objective sense
// across every level.

package stdform

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/mlopt/mlp"
)

// convertSense makes a level's objective sense match the target by
// negating the constant, every objective vector, and every quadratic
// block. No-op when the sense already matches, so a second invocation
// with the same target never changes anything.
func convertSense(l *mlp.Level, minimize bool) {
	if l.Minimize == minimize {
		return
	}
	l.Minimize = minimize
	l.D = -l.D
	for _, c := range l.C {
		floats.Scale(-1, c)
	}
	for pair, p := range l.P {
		l.P[pair] = p.Scale(-1)
	}
}

// toMinimization flips every maximizing level of the problem.
func toMinimization(m *mlp.Problem) {
	for _, l := range m.Levels() {
		convertSense(l, true)
	}
}
