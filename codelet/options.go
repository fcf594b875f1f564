package codelet

// Options configures the leaf solvers' own internal execution, never the
// Cooley–Tukey core above them (which stays single-threaded and
// non-suspending; fan-out is a leaf concern).
type Options struct {
	// Workers is the number of goroutines used to fan out independent
	// vector-loop instances. 0 means use runtime.GOMAXPROCS.
	Workers int
}

// Option is a function that modifies Options.
type Option func(*Options)

// DefaultOptions returns the default codelet options: Workers left at 0,
// resolved to runtime.GOMAXPROCS workers when a plan is applied.
func DefaultOptions() Options {
	return Options{Workers: 0}
}

// WithWorkers sets the number of worker goroutines used to parallelize
// independent vector-loop instances.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// ApplyOptions applies option functions to a base Options struct.
func ApplyOptions(base Options, opts []Option) Options {
	for _, opt := range opts {
		opt(&base)
	}
	return base
}
