package ct

import (
	"fmt"
	"io"

	"github.com/MeKo-Tech/algo-dft-ct/plan"
	"github.com/MeKo-Tech/algo-dft-ct/problem"
)

// CompositePlan is the plan a Solver produces: it exclusively owns its two
// sub-plans (cld, the size-m inner DFT, and cldw, the radix-r twiddle
// pass) and is immutable once assembled.
type CompositePlan struct {
	slv        *Solver
	r          int
	decimation problem.Decimation
	cld, cldw  plan.Plan
	ops        plan.Ops
}

func newComposite(slv *Solver, r int, dec problem.Decimation, cld, cldw plan.Plan) *CompositePlan {
	if r < 1 {
		panic("ct: composite plan requires r >= 1")
	}
	if dec != problem.DIT && dec != problem.DIF {
		panic("ct: composite plan requires a valid decimation")
	}

	return &CompositePlan{
		slv:        slv,
		r:          r,
		decimation: dec,
		cld:        cld,
		cldw:       cldw,
		ops:        plan.Sum(cld.Ops(), cldw.Ops()),
	}
}

// R returns the radix this plan splits on.
func (c *CompositePlan) R() int { return c.r }

// Decimation returns DIT or DIF.
func (c *CompositePlan) Decimation() problem.Decimation { return c.decimation }

// Apply runs the composite plan: for DIT, the inner DFT first and then
// the twiddle pass on the output buffers; for DIF, the twiddle pass first
// on the input buffers and then the inner DFT.
func (c *CompositePlan) Apply(ri, ii, ro, io []float64) {
	switch c.decimation {
	case problem.DIT:
		c.cld.Apply(ri, ii, ro, io)
		c.cldw.Apply(ro, io, nil, nil)
	case problem.DIF:
		c.cldw.Apply(ri, ii, nil, nil)
		c.cld.Apply(ri, ii, ro, io)
	default:
		panic("ct: composite plan has an invalid decimation")
	}
}

// Awake propagates to both sub-plans; calls must balance.
func (c *CompositePlan) Awake(on bool) {
	c.cld.Awake(on)
	c.cldw.Awake(on)
}

// Destroy destroys both sub-plans. Destroying a CompositePlan twice is a
// programmer error, not guarded against (matching the owning planner's
// single-threaded, single-use lifecycle).
func (c *CompositePlan) Destroy() {
	c.cldw.Destroy()
	c.cld.Destroy()
}

// Print writes "(dft-ct-dit/r(cldw)(cld))" or the dif equivalent, nesting
// both sub-plans' own Print output. The shape is stable so wisdom
// serializations round-trip.
func (c *CompositePlan) Print(w io.Writer) {
	fmt.Fprintf(w, "(dft-ct-%s/%d", c.decimation, c.r)
	c.cldw.Print(w)
	c.cld.Print(w)
	fmt.Fprint(w, ")")
}

// Ops returns the accumulated operation count (the sum of both
// sub-plans').
func (c *CompositePlan) Ops() plan.Ops { return c.ops }
