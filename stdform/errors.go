// Package stdform: sentinel error set, matched with errors.Is.

package stdform

import "errors"

var (
	// ErrKind is returned when the input is not a linear or quadratic
	// multilevel problem. Raised before any work happens.
	ErrKind = errors.New("stdform: expected a linear or quadratic multilevel problem")

	// ErrUnsupportedStructure is returned when quadratic term blocks
	// reference a level whose variables require bound changes. Propagating
	// bound substitutions through P is not implemented; failing loudly
	// beats silently dropping terms.
	ErrUnsupportedStructure = errors.New("stdform: quadratic terms reference variables with bound changes")

	// ErrInternalConsistency signals a violated postcondition on the
	// variable-count identity. It indicates a defect in the transform
	// itself, not bad input, and is never retried.
	ErrInternalConsistency = errors.New("stdform: variable count identity violated")

	// ErrSolutionShape is returned by the SolutionManager when a solution
	// vector does not match the transformed level's variable count.
	ErrSolutionShape = errors.New("stdform: solution vector length mismatch")
)
