package codelet

import (
	"fmt"
	"io"
	"math"

	"github.com/MeKo-Tech/algo-dft-ct/plan"
	"github.com/MeKo-Tech/algo-dft-ct/planner"
	"github.com/MeKo-Tech/algo-dft-ct/problem"
	"github.com/MeKo-Tech/algo-dft-ct/tensor"
)

// DirectDFTSolver computes a 1-D complex DFT by direct summation. It
// applies to any rank-1 problem.DFT with n >= 1, regardless of strides or
// vector tensor rank, making it the base case the Cooley–Tukey recursion
// eventually bottoms out at. Register it last, after ct.Register's
// solvers, so radix splits are tried first.
type DirectDFTSolver struct {
	opts Options
}

// NewDirectDFTSolver builds a direct DFT solver.
func NewDirectDFTSolver(opts ...Option) *DirectDFTSolver {
	return &DirectDFTSolver{opts: ApplyOptions(DefaultOptions(), opts)}
}

// MkPlanDFT implements planner.DFTSolver.
func (s *DirectDFTSolver) MkPlanDFT(_ *planner.Planner, p *problem.DFT) plan.Plan {
	if p.N < 1 {
		return nil
	}

	return &directDFTPlan{
		n:       p.N,
		is:      p.IS,
		os:      p.OS,
		vec:     p.Vec,
		workers: s.opts.Workers,
	}
}

type directDFTPlan struct {
	n       int
	is, os  int
	vec     tensor.Tensor
	workers int
}

func (p *directDFTPlan) Apply(ri, ii, ro, io []float64) {
	instances := tensor.Instances(p.vec)
	workers := effectiveWorkers(p.workers)

	// Gather every instance's input before writing anything: a recursive
	// split routinely hands this solver in-place sub-problems whose
	// rearranged output positions overlap other instances' inputs, so
	// all reads must complete before the first store.
	inRe := make([]float64, len(instances)*p.n)
	inIm := make([]float64, len(instances)*p.n)
	parallelFor(workers, len(instances), func(start, end int) {
		for idx := start; idx < end; idx++ {
			inst := instances[idx]
			off := idx * p.n
			for j := 0; j < p.n; j++ {
				inRe[off+j] = ri[inst.IS+j*p.is]
				inIm[off+j] = ii[inst.IS+j*p.is]
			}
		}
	})

	parallelFor(workers, len(instances), func(start, end int) {
		outRe := make([]float64, p.n)
		outIm := make([]float64, p.n)

		for idx := start; idx < end; idx++ {
			inst := instances[idx]
			off := idx * p.n
			directDFT(inRe[off:off+p.n], inIm[off:off+p.n], outRe, outIm)

			for k := 0; k < p.n; k++ {
				ro[inst.OS+k*p.os] = outRe[k]
				io[inst.OS+k*p.os] = outIm[k]
			}
		}
	})
}

// directDFT computes the forward transform out[k] = sum_j in[j] *
// exp(-2*pi*i*j*k/n) for n = len(inRe). Direction (forward vs. inverse) is
// a caller convention, not a property of the problem: swap the real and
// imaginary buffers at the call site to get the inverse, as FFTW does.
func directDFT(inRe, inIm, outRe, outIm []float64) {
	n := len(inRe)
	for k := 0; k < n; k++ {
		var sumRe, sumIm float64
		for j := 0; j < n; j++ {
			angle := -2 * math.Pi * float64(k*j) / float64(n)
			cs, sn := math.Cos(angle), math.Sin(angle)
			xre, xim := inRe[j], inIm[j]
			sumRe += xre*cs - xim*sn
			sumIm += xre*sn + xim*cs
		}
		outRe[k] = sumRe
		outIm[k] = sumIm
	}
}

func (p *directDFTPlan) Awake(bool) {}

func (p *directDFTPlan) Destroy() {}

func (p *directDFTPlan) Print(w io.Writer) {
	fmt.Fprintf(w, "(dft-direct-%d)", p.n)
}

func (p *directDFTPlan) Ops() plan.Ops {
	insts := int64(p.vec.Count())
	n := int64(p.n)
	return plan.Ops{
		Mul: insts * 4 * n * n,
		Add: insts * 4 * n * (n - 1),
	}
}
