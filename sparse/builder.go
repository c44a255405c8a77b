// SPDX-License-Identifier: MIT

// Package sparse: coordinate accumulator for incremental matrix assembly.
//
// Builder is the write-side companion of Matrix: rewrites that merge
// several contributions (column rewrites, appended rows, stacked blocks)
// accumulate coordinates here and materialize a canonical Matrix once.

package sparse

import "fmt"

type coord struct{ r, c int }

// Builder accumulates coordinate contributions for a rows×cols matrix.
// Add on the same coordinate sums values (standard sparse-add semantics).
// The zero Builder is not usable; construct with NewBuilder.
type Builder struct {
	rows, cols int
	vals       map[coord]float64
}

// NewBuilder returns an empty accumulator for a rows×cols matrix.
// Panics on negative dimensions (programmer error, not input data).
func NewBuilder(rows, cols int) *Builder {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("sparse: NewBuilder(%d,%d): negative shape", rows, cols))
	}
	return &Builder{rows: rows, cols: cols, vals: make(map[coord]float64)}
}

// Rows returns the target row count.
func (b *Builder) Rows() int { return b.rows }

// Cols returns the target column count.
func (b *Builder) Cols() int { return b.cols }

// Add accumulates v at (r, c).
// Returns ErrOutOfRange when the coordinate is outside the target shape.
func (b *Builder) Add(r, c int, v float64) error {
	if r < 0 || r >= b.rows || c < 0 || c >= b.cols {
		return fmt.Errorf("Builder.Add(%d,%d): %w", r, c, ErrOutOfRange)
	}
	b.vals[coord{r, c}] += v
	return nil
}

// AddMatrix accumulates every nonzero of m at its own coordinates.
// m may be nil (no-op).
func (b *Builder) AddMatrix(m *Matrix) error {
	if m == nil {
		return nil
	}
	var err error
	m.Do(func(r, c int, v float64) {
		if err == nil {
			err = b.Add(r, c, v)
		}
	})
	return err
}

// Build materializes the accumulated coordinates as a canonical Matrix.
// Coordinates that accumulated to exactly zero are dropped. The Builder
// remains usable afterwards.
func (b *Builder) Build() *Matrix {
	ent := make([]Entry, 0, len(b.vals))
	for k, v := range b.vals {
		ent = append(ent, Entry{Row: k.r, Col: k.c, Val: v})
	}
	// canonicalize sorts, so map iteration order never leaks out.
	return &Matrix{rows: b.rows, cols: b.cols, ent: canonicalize(ent)}
}
