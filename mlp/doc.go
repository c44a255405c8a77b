// SPDX-License-Identifier: MIT

// Package mlp represents multilevel (bilevel, trilevel, …) linear and
// quadratic optimization problems as a tree of decision levels.
//
// Each Level owns a block of variables (continuous, general integer,
// binary — in that column order), an objective sense, a constraint
// convention (equalities or A·x ≤ b inequalities), and data that may
// reference variables owned by *any* level in the tree:
//
//   - C[id] — dense objective coefficients against level id's variables
//   - A[id] — sparse constraint coefficients against level id's variables
//   - P[{i,j}] — sparse quadratic terms between levels i and j
//
// Cross-level data is keyed by LevelID, a stable small integer handle:
// cloning a Problem is a pure value copy, never an aliasing hazard.
//
// Key operations:
//   - NewLinear / NewQuadratic, AddUpper / AddLower: build the level tree
//   - Levels: deterministic preorder traversal (parent before descendants)
//   - Clone: deep value copy of the whole tree
//   - Resize: grow a level's variable block and remap integer/binary
//     columns in every referencing vector and matrix problem-wide
//   - Check: structural validation of all dimensions and level references
//
// The package holds no solving logic; it is the data model consumed by
// stdform (and, eventually, by solver front ends).
package mlp
