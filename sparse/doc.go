// SPDX-License-Identifier: MIT

// Package sparse provides a small, deterministic coordinate (COO) sparse
// matrix used by the multilevel problem representation and the
// standard-form engine.
//
// Key features:
//   - New / FromDense: bounds-checked construction; duplicate coordinates
//     accumulate (standard sparse-add semantics), exact zeros are dropped
//   - At / Do: safe accessors; Do visits entries in row-major order
//   - Clone / Scale / Resize / RemapRows / RemapCols: value-semantics
//     surgery — every operation returns a fresh matrix, the receiver is
//     never mutated (shared matrices stay alias-free)
//   - MulVec: dense matrix-vector product, used for equivalence checks
//
// Determinism:
//   - Entries are kept sorted by (row, col) and coalesced; Do and Entries
//     never depend on map iteration order.
//
// Errors:
//   - ErrBadShape            negative dimensions or ragged dense input
//   - ErrOutOfRange          coordinate outside the matrix shape
//   - ErrDimensionMismatch   operand length does not match the shape
//   - ErrNilMatrix           nil receiver or argument
//
// Complexity: construction O(nnz log nnz); accessors O(log nnz); all
// rewrites O(nnz).
package sparse
