package planner

import (
	"github.com/MeKo-Tech/algo-dft-ct/plan"
	"github.com/MeKo-Tech/algo-dft-ct/problem"
)

// DFTSolver produces a plan for a 1-D complex DFT problem, or nil if it
// does not apply.
type DFTSolver interface {
	MkPlanDFT(pl *Planner, p *problem.DFT) plan.Plan
}

// DFTWSolver produces a plan for a radix-r twiddle-pass problem, or nil if
// it does not apply.
type DFTWSolver interface {
	MkPlanDFTW(pl *Planner, p *problem.DFTW) plan.Plan
}

// Planner holds the solver registry and the flags that govern
// applicability decisions. A Planner is single-threaded: plan construction
// is not safe for concurrent use.
type Planner struct {
	opts Options

	dftSolvers  []DFTSolver
	dftwSolvers []DFTWSolver
}

// New creates an empty Planner with no solvers registered.
func New(opts ...Option) *Planner {
	return &Planner{opts: ApplyOptions(DefaultOptions(), opts)}
}

// Flags returns the planner's configured flags.
func (pl *Planner) Flags() problem.Flags { return pl.opts.Flags }

// DestroyInput reports whether the DESTROY_INPUT flag is set.
func (pl *Planner) DestroyInput() bool { return pl.opts.Flags.Has(problem.DestroyInput) }

// NoVRecurse reports whether the NO_VRECURSE flag is set.
func (pl *Planner) NoVRecurse() bool { return pl.opts.Flags.Has(problem.NoVRecurse) }

// RegisterDFT appends a DFT solver to the registry. Solvers are probed in
// registration order, so order determines which of several applicable
// solvers wins for a given problem.
func (pl *Planner) RegisterDFT(s DFTSolver) {
	pl.dftSolvers = append(pl.dftSolvers, s)
}

// RegisterDFTW appends a twiddle-pass solver to the registry.
func (pl *Planner) RegisterDFTW(s DFTWSolver) {
	pl.dftwSolvers = append(pl.dftwSolvers, s)
}

// NumDFTSolvers returns the number of registered DFT solvers.
func (pl *Planner) NumDFTSolvers() int { return len(pl.dftSolvers) }

// NumDFTWSolvers returns the number of registered twiddle-pass solvers.
func (pl *Planner) NumDFTWSolvers() int { return len(pl.dftwSolvers) }

// PlanDFT asks every registered DFT solver, in order, to plan p, returning
// the first plan produced, or nil if none applies.
func (pl *Planner) PlanDFT(p *problem.DFT) plan.Plan {
	for _, s := range pl.dftSolvers {
		if pln := s.MkPlanDFT(pl, p); pln != nil {
			return pln
		}
	}
	return nil
}

// PlanDFTW asks every registered twiddle-pass solver, in order, to plan p,
// returning the first plan produced, or nil if none applies.
func (pl *Planner) PlanDFTW(p *problem.DFTW) plan.Plan {
	for _, s := range pl.dftwSolvers {
		if pln := s.MkPlanDFTW(pl, p); pln != nil {
			return pln
		}
	}
	return nil
}

// FirstDivisor returns the smallest prime factor of n. It panics if
// n < 1, and returns n itself if n is 1 or prime.
func FirstDivisor(n int) int {
	if n < 1 {
		panic("planner: FirstDivisor requires n >= 1")
	}
	if n <= 1 {
		return n
	}
	if n%2 == 0 {
		return 2
	}
	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return d
		}
	}
	return n
}
