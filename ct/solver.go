package ct

import (
	"github.com/MeKo-Tech/algo-dft-ct/plan"
	"github.com/MeKo-Tech/algo-dft-ct/planner"
	"github.com/MeKo-Tech/algo-dft-ct/problem"
	"github.com/MeKo-Tech/algo-dft-ct/tensor"
)

// Solver is an immutable Cooley–Tukey solver: a radix spec, a decimation
// order, and the ordered buddy list used to deduplicate equivalent
// factorizations. Solvers are created once, at Register, and never
// mutated afterward.
type Solver struct {
	radix      RadixSpec
	decimation problem.Decimation
	buddies    []RadixSpec
}

// NewSolver builds a solver for the given radix spec and decimation,
// sharing the given buddy list (which must include radix).
func NewSolver(radix RadixSpec, decimation problem.Decimation, buddies []RadixSpec) *Solver {
	return &Solver{radix: radix, decimation: decimation, buddies: buddies}
}

// chooseRadix resolves this solver's spec against n, honoring buddy
// uniqueness. Returns 0 to mean "refuse."
func (s *Solver) chooseRadix(n int) int {
	return chooseRadix(s.radix, s.buddies, n)
}

// applicable decides whether this solver can be instantiated on p under
// the planner's current flags. "Is a DFT problem" and "transform rank 1"
// hold by construction: this solver only ever receives *problem.DFT
// values, which model exactly one transform axis.
func (s *Solver) applicable(pl *planner.Planner, p *problem.DFT) (r int, ok bool) {
	if p.N < 2 {
		return 0, false
	}

	if p.VecRank() > 1 {
		return 0, false
	}

	// DIF writes twiddles into the input array.
	if s.decimation == problem.DIF && !p.InPlace() && !pl.DestroyInput() {
		return 0, false
	}

	r = s.chooseRadix(p.N)
	if r <= 0 {
		return 0, false
	}

	// Forbid the degenerate m=1 split; the base case belongs to the
	// direct codelets, not a radix split.
	if p.N <= r {
		return 0, false
	}

	if pl.NoVRecurse() && p.VecRank() > 0 {
		return 0, false
	}

	return r, true
}

// MkPlanDFT implements planner.DFTSolver. It returns nil ("no plan") if
// the gate rejects p or either sub-plan request fails.
func (s *Solver) MkPlanDFT(pl *planner.Planner, p *problem.DFT) plan.Plan {
	r, ok := s.applicable(pl, p)
	if !ok {
		return nil
	}

	n := p.N
	m := n / r
	vl, ivs, ovs := tensor.Tornk1(p.Vec)

	var cld, cldw plan.Plan

	switch s.decimation {
	case problem.DIT:
		cldw = pl.PlanDFTW(&problem.DFTW{
			Decimation: problem.DIT,
			R:          r,
			M:          m,
			Stride:     p.OS,
			VL:         vl,
			VStride:    ovs,
			BufRe:      p.RO,
			BufIm:      p.IO,
		})
		if cldw == nil {
			return nil
		}

		// Inner DFT sees the m "outer" samples as its transform axis and
		// gains the r "radices" as an added vector axis, ahead of
		// whatever vector axis the original problem already carried.
		innerVec := tensor.Append(tensor.Dim1D(r, p.IS, m*p.OS), p.Vec)
		cld = pl.PlanDFT(&problem.DFT{
			N:   m,
			RI:  p.RI, II: p.II, RO: p.RO, IO: p.IO,
			IS:  r * p.IS,
			OS:  p.OS,
			Vec: innerVec,
		})
		if cld == nil {
			cldw.Destroy()
			return nil
		}

		return newComposite(s, r, problem.DIT, cld, cldw)

	case problem.DIF:
		cldw = pl.PlanDFTW(&problem.DFTW{
			Decimation: problem.DIF,
			R:          r,
			M:          m,
			Stride:     p.IS,
			VL:         vl,
			VStride:    ivs,
			BufRe:      p.RI,
			BufIm:      p.II,
		})
		if cldw == nil {
			return nil
		}

		innerVec := tensor.Append(tensor.Dim1D(r, m*p.IS, p.OS), p.Vec)
		cld = pl.PlanDFT(&problem.DFT{
			N:   m,
			RI:  p.RI, II: p.II, RO: p.RO, IO: p.IO,
			IS:  p.IS,
			OS:  r * p.OS,
			Vec: innerVec,
		})
		if cld == nil {
			cldw.Destroy()
			return nil
		}

		return newComposite(s, r, problem.DIF, cld, cldw)

	default:
		panic("ct: solver has an invalid decimation")
	}
}
