// Package stdform rewrites a multilevel linear or quadratic optimization
// problem into standard form while preserving solution equivalence.
//
// After Convert, the returned problem satisfies:
//   - every continuous (and integer) variable has lower bound 0 and no
//     finite upper bound,
//   - every level's constraints follow a single global convention
//     (equalities by default, A·x ≤ b with WithInequalities),
//   - every level minimizes.
//
// The engine never solves anything. Alongside the rewritten problem it
// returns a SolutionManager: per level and original variable index, the
// linear recipe (multiplier terms plus bound shift) that recovers the
// original variable's value from a solution of the transformed problem.
//
// Pipeline (fixed order):
//
//	kind check → clone → sense normalization → constraint-form conversion
//	→ per-level bound normalization, propagated to every referencing
//	level → final matrix resize → reconstruction map
//
// Bound normalization classifies each variable by its bound pattern:
//
//	lb=0,  ub=+inf   already canonical, no change
//	lb=-inf, ub=+inf split x = x⁺ − x⁻ (one new column)
//	finite lb only   shift by lb
//	finite ub only   negate and shift by ub
//	finite lb and ub shift by lb; the width ub−lb becomes a new row
//	                 (inequality target) or a slack equation (equality)
//
// Errors:
//   - ErrKind                  input is not a linear/quadratic problem
//   - ErrUnsupportedStructure  quadratic terms touch variables that need
//     bound changes (propagation through P is not implemented; the engine
//     fails loudly rather than silently dropping terms)
//   - ErrInternalConsistency   variable-count identity violated — a
//     defect in the transform itself, never bad input
//
// All errors are unrecoverable: either the whole problem is reformulated
// or nothing is returned. The input problem is never mutated.
package stdform
