// SPDX-License-Identifier: MIT

// Package sparse: coordinate storage and value-semantics matrix surgery.
//
// The Matrix type is effectively immutable: every transforming method
// (Scale, Resize, RemapRows, RemapCols) builds a fresh matrix and leaves
// the receiver untouched. The standard-form engine relies on this to
// rewrite constraint matrices that may be referenced from several levels
// without aliasing hazards.

package sparse

import (
	"fmt"
	"sort"
)

// Entry is a single nonzero coordinate of a sparse matrix.
type Entry struct {
	Row, Col int
	Val      float64
}

// Matrix is a sparse matrix in coordinate (COO) form.
// Canonical invariants, maintained by every constructor:
//   - entries sorted by (Row, Col), row-major
//   - no duplicate coordinates (duplicates accumulate on construction)
//   - no explicitly stored zeros
type Matrix struct {
	rows, cols int
	ent        []Entry // canonical: sorted, coalesced, zero-free
}

// New builds a rows×cols matrix from the given entries.
// Duplicate coordinates accumulate (standard sparse-add semantics);
// entries that sum to exactly zero are dropped.
//
// Errors: ErrBadShape for negative dimensions, ErrOutOfRange for an entry
// outside the shape.
func New(rows, cols int, entries []Entry) (*Matrix, error) {
	// 1. Validate shape.
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrBadShape)
	}
	// 2. Validate coordinates.
	for _, e := range entries {
		if e.Row < 0 || e.Row >= rows || e.Col < 0 || e.Col >= cols {
			return nil, fmt.Errorf("New: entry (%d,%d): %w", e.Row, e.Col, ErrOutOfRange)
		}
	}
	// 3. Canonicalize: sort, accumulate duplicates, drop zeros.
	return &Matrix{rows: rows, cols: cols, ent: canonicalize(entries)}, nil
}

// FromDense builds a matrix from a dense row-major [][]float64.
// The input must be rectangular and non-empty in both dimensions.
func FromDense(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromDense: empty input: %w", ErrBadShape)
	}
	cols := len(rows[0])
	var ent []Entry
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("FromDense: ragged row %d: %w", i, ErrBadShape)
		}
		for j, v := range r {
			if v != 0 {
				ent = append(ent, Entry{Row: i, Col: j, Val: v})
			}
		}
	}
	return &Matrix{rows: len(rows), cols: cols, ent: ent}, nil
}

// canonicalize sorts entries row-major, sums duplicates and drops zeros.
func canonicalize(entries []Entry) []Entry {
	if len(entries) == 0 {
		return nil
	}
	ent := make([]Entry, len(entries))
	copy(ent, entries)
	sort.Slice(ent, func(i, j int) bool {
		if ent[i].Row != ent[j].Row {
			return ent[i].Row < ent[j].Row
		}
		return ent[i].Col < ent[j].Col
	})
	out := ent[:0]
	for _, e := range ent {
		if n := len(out); n > 0 && out[n-1].Row == e.Row && out[n-1].Col == e.Col {
			out[n-1].Val += e.Val
			continue
		}
		out = append(out, e)
	}
	// Drop exact zeros (including those produced by accumulation).
	final := out[:0]
	for _, e := range out {
		if e.Val != 0 {
			final = append(final, e)
		}
	}
	if len(final) == 0 {
		return nil
	}
	return final
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Dims returns (rows, cols).
func (m *Matrix) Dims() (int, int) { return m.rows, m.cols }

// NNZ returns the number of stored nonzeros.
func (m *Matrix) NNZ() int { return len(m.ent) }

// At returns the value at (r, c), zero when the coordinate is not stored.
// Returns ErrOutOfRange for coordinates outside the shape.
func (m *Matrix) At(r, c int) (float64, error) {
	if m == nil {
		return 0, fmt.Errorf("At: %w", ErrNilMatrix)
	}
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return 0, fmt.Errorf("At(%d,%d): %w", r, c, ErrOutOfRange)
	}
	i := sort.Search(len(m.ent), func(i int) bool {
		e := m.ent[i]
		return e.Row > r || (e.Row == r && e.Col >= c)
	})
	if i < len(m.ent) && m.ent[i].Row == r && m.ent[i].Col == c {
		return m.ent[i].Val, nil
	}
	return 0, nil
}

// Do calls fn for every stored nonzero in row-major order.
func (m *Matrix) Do(fn func(r, c int, v float64)) {
	if m == nil {
		return
	}
	for _, e := range m.ent {
		fn(e.Row, e.Col, e.Val)
	}
}

// Entries returns a copy of the canonical entry slice.
func (m *Matrix) Entries() []Entry {
	if m == nil || len(m.ent) == 0 {
		return nil
	}
	out := make([]Entry, len(m.ent))
	copy(out, m.ent)
	return out
}

// Clone returns an independent deep copy.
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}
	return &Matrix{rows: m.rows, cols: m.cols, ent: m.Entries()}
}

// Scale returns a fresh matrix with every entry multiplied by alpha.
// Scaling by zero yields an empty matrix of the same shape.
func (m *Matrix) Scale(alpha float64) *Matrix {
	if m == nil {
		return nil
	}
	if alpha == 0 {
		return &Matrix{rows: m.rows, cols: m.cols}
	}
	ent := make([]Entry, len(m.ent))
	for i, e := range m.ent {
		ent[i] = Entry{Row: e.Row, Col: e.Col, Val: alpha * e.Val}
	}
	return &Matrix{rows: m.rows, cols: m.cols, ent: ent}
}

// Resize returns a fresh matrix with the given shape and the same entries.
// Shrinking below a stored entry is an error (entries are never silently
// discarded).
func (m *Matrix) Resize(rows, cols int) (*Matrix, error) {
	if m == nil {
		return nil, fmt.Errorf("Resize: %w", ErrNilMatrix)
	}
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("Resize(%d,%d): %w", rows, cols, ErrBadShape)
	}
	for _, e := range m.ent {
		if e.Row >= rows || e.Col >= cols {
			return nil, fmt.Errorf("Resize(%d,%d): entry (%d,%d): %w", rows, cols, e.Row, e.Col, ErrOutOfRange)
		}
	}
	return &Matrix{rows: rows, cols: cols, ent: m.Entries()}, nil
}

// RemapCols returns a fresh rows×cols matrix where every entry (r, c, v)
// becomes (r, fn(c), v). The map need not be injective: colliding images
// accumulate per sparse-add semantics.
// Returns ErrOutOfRange when an image falls outside [0, cols).
func (m *Matrix) RemapCols(cols int, fn func(int) int) (*Matrix, error) {
	if m == nil {
		return nil, fmt.Errorf("RemapCols: %w", ErrNilMatrix)
	}
	ent := make([]Entry, 0, len(m.ent))
	for _, e := range m.ent {
		nc := fn(e.Col)
		if nc < 0 || nc >= cols {
			return nil, fmt.Errorf("RemapCols: column %d→%d: %w", e.Col, nc, ErrOutOfRange)
		}
		ent = append(ent, Entry{Row: e.Row, Col: nc, Val: e.Val})
	}
	return &Matrix{rows: m.rows, cols: cols, ent: canonicalize(ent)}, nil
}

// RemapRows is the row-wise counterpart of RemapCols.
func (m *Matrix) RemapRows(rows int, fn func(int) int) (*Matrix, error) {
	if m == nil {
		return nil, fmt.Errorf("RemapRows: %w", ErrNilMatrix)
	}
	ent := make([]Entry, 0, len(m.ent))
	for _, e := range m.ent {
		nr := fn(e.Row)
		if nr < 0 || nr >= rows {
			return nil, fmt.Errorf("RemapRows: row %d→%d: %w", e.Row, nr, ErrOutOfRange)
		}
		ent = append(ent, Entry{Row: nr, Col: e.Col, Val: e.Val})
	}
	return &Matrix{rows: rows, cols: m.cols, ent: canonicalize(ent)}, nil
}

// MulVec returns m·x as a dense vector of length Rows().
// Returns ErrDimensionMismatch when len(x) != Cols().
func (m *Matrix) MulVec(x []float64) ([]float64, error) {
	if m == nil {
		return nil, fmt.Errorf("MulVec: %w", ErrNilMatrix)
	}
	if len(x) != m.cols {
		return nil, fmt.Errorf("MulVec: len(x)=%d, cols=%d: %w", len(x), m.cols, ErrDimensionMismatch)
	}
	y := make([]float64, m.rows)
	for _, e := range m.ent {
		y[e.Row] += e.Val * x[e.Col]
	}
	return y, nil
}

// Dense materializes the matrix as a dense row-major [][]float64.
func (m *Matrix) Dense() [][]float64 {
	if m == nil {
		return nil
	}
	out := make([][]float64, m.rows)
	for i := range out {
		out[i] = make([]float64, m.cols)
	}
	for _, e := range m.ent {
		out[e.Row][e.Col] = e.Val
	}
	return out
}
