// Package stdform: functional configuration for Convert.

package stdform

// Options configures the standard-form conversion.
// Fields are unexported; public APIs consume ...Option.
type Options struct {
	// inequalities selects the global constraint-form target:
	// true for A·x ≤ b everywhere, false for equalities everywhere.
	inequalities bool
}

// DefaultOptions returns the defaults: equality constraint form.
func DefaultOptions() Options {
	return Options{inequalities: false}
}

// Option mutates Options.
type Option func(*Options)

// WithInequalities targets the inequality constraint form (A·x ≤ b) for
// every level instead of the default equality form.
func WithInequalities() Option {
	return func(o *Options) { o.inequalities = true }
}
