package dftct

import (
	"github.com/MeKo-Tech/algo-dft-ct/codelet"
	"github.com/MeKo-Tech/algo-dft-ct/ct"
	"github.com/MeKo-Tech/algo-dft-ct/planner"
	"github.com/MeKo-Tech/algo-dft-ct/problem"
)

// NewPlanner builds a Planner with the full Cooley–Tukey solver set
// registered (ct.Register's 72 solvers) followed by the direct leaf
// solvers (codelet.NewDirectDFTSolver, codelet.NewDirectDFTWSolver) that
// guarantee every problem finds an applicable solver.
//
// Leaf solvers are registered last so that, for any n with a usable
// factorization, a Cooley–Tukey split is tried first; the direct solvers
// only ever get reached for prime n or once m has been driven down to
// where no further split is applicable.
func NewPlanner(opts ...planner.Option) *planner.Planner {
	pl := planner.New(opts...)

	ct.Register(pl)

	pl.RegisterDFT(codelet.NewDirectDFTSolver())
	pl.RegisterDFTW(codelet.NewDirectDFTWSolver())

	return pl
}

// NewProblem builds a problem.DFT for a single, un-looped transform of
// length n over the given split real/imaginary buffers, with unit
// strides. Use problem.DFT directly for strided or vectorized problems.
func NewProblem(n int, ri, ii, ro, io []float64) (*problem.DFT, error) {
	if n < 2 {
		return nil, ErrInvalidSize
	}
	for _, buf := range [][]float64{ri, ii, ro, io} {
		if len(buf) != n {
			return nil, &SizeError{Field: "buffer", Expected: n, Got: len(buf)}
		}
	}

	return &problem.DFT{
		N:  n,
		RI: ri, II: ii, RO: ro, IO: io,
		IS: 1, OS: 1,
	}, nil
}
