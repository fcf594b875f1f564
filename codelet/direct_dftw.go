package codelet

import (
	"fmt"
	"io"
	"math"

	"github.com/MeKo-Tech/algo-dft-ct/plan"
	"github.com/MeKo-Tech/algo-dft-ct/planner"
	"github.com/MeKo-Tech/algo-dft-ct/problem"
)

// DirectDFTWSolver computes a radix-r twiddle pass by direct summation:
// for each of m "columns" it gathers that column's r strided values,
// multiplies by the appropriate primitive n-th roots of unity (n = r*m),
// and combines them with a direct r-point DFT — the twiddles are applied
// before the combination for DIT, after it for DIF (see
// (*twiddlePlan).Apply). It applies to any DFTW request with r >= 1 and
// m >= 1, whatever the stride.
type DirectDFTWSolver struct {
	opts Options
}

// NewDirectDFTWSolver builds a direct twiddle-pass solver.
func NewDirectDFTWSolver(opts ...Option) *DirectDFTWSolver {
	return &DirectDFTWSolver{opts: ApplyOptions(DefaultOptions(), opts)}
}

// MkPlanDFTW implements planner.DFTWSolver.
func (s *DirectDFTWSolver) MkPlanDFTW(_ *planner.Planner, p *problem.DFTW) plan.Plan {
	if p.R < 1 || p.M < 1 {
		return nil
	}

	vl, vstride := p.VL, p.VStride
	if vl == 0 {
		vl, vstride = 1, 0
	}

	return &twiddlePlan{
		dec:     p.Decimation,
		r:       p.R,
		m:       p.M,
		stride:  p.Stride,
		vl:      vl,
		vstride: vstride,
		workers: s.opts.Workers,
	}
}

type twiddlePlan struct {
	dec         problem.Decimation
	r, m        int
	stride      int
	vl, vstride int
	workers     int
}

func (p *twiddlePlan) Apply(bufRe, bufIm, _, _ []float64) {
	n := p.r * p.m
	dit := p.dec == problem.DIT
	workers := effectiveWorkers(p.workers)

	parallelFor(workers, p.vl, func(start, end int) {
		vre := make([]float64, p.r)
		vim := make([]float64, p.r)
		ore := make([]float64, p.r)
		oim := make([]float64, p.r)

		for v := start; v < end; v++ {
			base := v * p.vstride
			for k := 0; k < p.m; k++ {
				for a := 0; a < p.r; a++ {
					pos := base + (a*p.m+k)*p.stride
					vre[a] = bufRe[pos]
					vim[a] = bufIm[pos]
				}

				if dit {
					for a := 0; a < p.r; a++ {
						rotate(&vre[a], &vim[a], -2*math.Pi*float64(a*k)/float64(n))
					}
				}

				for c := 0; c < p.r; c++ {
					var sre, sim float64
					for a := 0; a < p.r; a++ {
						angle := -2 * math.Pi * float64(c*a) / float64(p.r)
						cs, sn := math.Cos(angle), math.Sin(angle)
						sre += vre[a]*cs - vim[a]*sn
						sim += vre[a]*sn + vim[a]*cs
					}
					ore[c], oim[c] = sre, sim
				}

				if !dit {
					for c := 0; c < p.r; c++ {
						rotate(&ore[c], &oim[c], -2*math.Pi*float64(c*k)/float64(n))
					}
				}

				for c := 0; c < p.r; c++ {
					pos := base + (c*p.m+k)*p.stride
					bufRe[pos] = ore[c]
					bufIm[pos] = oim[c]
				}
			}
		}
	})
}

func rotate(re, im *float64, angle float64) {
	cs, sn := math.Cos(angle), math.Sin(angle)
	r, i := *re, *im
	*re = r*cs - i*sn
	*im = r*sn + i*cs
}

func (p *twiddlePlan) Awake(bool) {}

func (p *twiddlePlan) Destroy() {}

func (p *twiddlePlan) Print(w io.Writer) {
	fmt.Fprintf(w, "(dftw-direct-%s-%d)", p.dec, p.r)
}

func (p *twiddlePlan) Ops() plan.Ops {
	n := int64(p.r * p.m)
	r := int64(p.r)
	vl := int64(p.vl)
	return plan.Ops{
		Mul: vl * n * (4*r + 4),
		Add: vl * n * (4*r - 4 + 4*(r-1)),
	}
}
