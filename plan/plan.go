package plan

import "io"

// Plan is the capability set every compiled DFT or twiddle-pass plan
// satisfies, mirroring the polymorphic plan object of the surrounding
// planner: execute, (de)initialize twiddle state, print a wisdom-shaped
// description of the plan's structure, and release owned resources.
type Plan interface {
	// Apply runs the plan on the given buffers. DFT plans use all four;
	// twiddle-pass (DFTW) plans use only the pair they were built for and
	// ignore the rest.
	Apply(ri, ii, ro, io []float64)

	// Awake acquires (on) or releases (off) any twiddle tables or other
	// state the plan needs while executing. Calls must balance and are
	// not reentrant.
	Awake(on bool)

	// Print writes a parenthesized, wisdom-shaped description of the
	// plan's structure.
	Print(w io.Writer)

	// Destroy releases the plan and, recursively, everything it owns.
	// A plan must not be used after Destroy.
	Destroy()

	// Ops returns the plan's accumulated operation count.
	Ops() Ops
}

// Ops accumulates the floating point operation counts of a plan. It is
// additive: a composite plan's Ops is the sum of its sub-plans' Ops.
type Ops struct {
	Add int64
	Mul int64
	FMA int64
}

// Sum returns a+b.
func Sum(a, b Ops) Ops {
	return Ops{
		Add: a.Add + b.Add,
		Mul: a.Mul + b.Mul,
		FMA: a.FMA + b.FMA,
	}
}

// Total returns a single weighted operation count, counting an FMA as one
// multiply and one add.
func (o Ops) Total() int64 {
	return o.Add + o.Mul + 2*o.FMA
}
