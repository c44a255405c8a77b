// Package mlopt is an in-memory toolkit for multilevel (bilevel, trilevel, …)
// linear and quadratic optimization problems — representation, validation,
// and standard-form reformulation.
//
// 🚀 What is mlopt?
//
//	A deterministic, solver-free library that brings together:
//		• Problem representation: a tree of decision levels with cross-level
//		  objective vectors and sparse constraint matrices
//		• Sparse matrices: coordinate storage with safe, deterministic surgery
//		• Standard-form engine: bound normalization, sense normalization,
//		  uniform constraint form, and an exact reconstruction map
//
// ✨ Why choose mlopt?
//
//   - Solution-preserving – every rewrite is an exact affine substitution
//   - Rock-solid guarantees – sentinel errors, internal-consistency checks
//   - Pure Go – no cgo, no solver bindings, no hidden deps
//   - Deterministic – fixed traversal orders, sorted sparse entries
//
// Under the hood, everything is organized under three subpackages:
//
//	mlp/     — Level & Problem trees, cloning, resizing, validation
//	sparse/  — coordinate (COO) matrices + builder
//	stdform/ — the standard-form transform and the solution manager
//
// mlopt never solves anything: it rewrites problem data into a canonical
// form (nonnegative continuous variables, uniform constraint sense, global
// minimization) and returns the recipe for mapping solutions back.
//
//	go get github.com/katalvlaran/mlopt
package mlopt
