package planner

import "github.com/MeKo-Tech/algo-dft-ct/problem"

// Options configures a new Planner.
type Options struct {
	Flags problem.Flags
}

// Option is a function that modifies Options.
type Option func(*Options)

// DefaultOptions returns the default planner options: no flags set.
func DefaultOptions() Options {
	return Options{Flags: 0}
}

// WithFlags sets the planner-wide flags (DestroyInput, NoVRecurse, ...).
func WithFlags(f problem.Flags) Option {
	return func(o *Options) {
		o.Flags = f
	}
}

// WithDestroyInput sets or clears the DestroyInput flag without disturbing
// other flags already configured.
func WithDestroyInput(enabled bool) Option {
	return func(o *Options) {
		if enabled {
			o.Flags |= problem.DestroyInput
		} else {
			o.Flags &^= problem.DestroyInput
		}
	}
}

// WithNoVRecurse sets or clears the NoVRecurse flag without disturbing
// other flags already configured.
func WithNoVRecurse(enabled bool) Option {
	return func(o *Options) {
		if enabled {
			o.Flags |= problem.NoVRecurse
		} else {
			o.Flags &^= problem.NoVRecurse
		}
	}
}

// ApplyOptions applies option functions to a base Options struct.
func ApplyOptions(base Options, opts []Option) Options {
	for _, opt := range opts {
		opt(&base)
	}
	return base
}
