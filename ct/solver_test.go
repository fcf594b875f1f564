package ct

import (
	"io"
	"testing"

	"github.com/MeKo-Tech/algo-dft-ct/plan"
	"github.com/MeKo-Tech/algo-dft-ct/planner"
	"github.com/MeKo-Tech/algo-dft-ct/problem"
	"github.com/MeKo-Tech/algo-dft-ct/tensor"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func newDFT(n int, is, os int) *problem.DFT {
	return &problem.DFT{
		N:  n,
		RI: make([]float64, n), II: make([]float64, n),
		RO: make([]float64, n), IO: make([]float64, n),
		IS: is, OS: os,
	}
}

func TestSolver_Applicable_Divisibility(t *testing.T) {
	pl := planner.New()
	s := NewSolver(4, problem.DIT, buddyList)

	// Require n > r: reject the trivial n==r split.
	_, ok := s.applicable(pl, newDFT(4, 1, 1))
	require.False(t, ok)

	r, ok := s.applicable(pl, newDFT(12, 1, 1))
	require.True(t, ok)
	require.Equal(t, 4, r)
}

func TestSolver_Applicable_DIFRequiresInPlaceOrDestroyInput(t *testing.T) {
	s := NewSolver(2, problem.DIF, buddyList)

	outOfPlace := newDFT(8, 1, 1)
	_, ok := s.applicable(planner.New(), outOfPlace)
	require.False(t, ok, "out-of-place DIF must be rejected without DESTROY_INPUT")

	_, ok = s.applicable(planner.New(planner.WithDestroyInput(true)), outOfPlace)
	require.True(t, ok, "DESTROY_INPUT permits out-of-place DIF")

	inPlace := newDFT(8, 1, 1)
	inPlace.RO, inPlace.IO = inPlace.RI, inPlace.II
	_, ok = s.applicable(planner.New(), inPlace)
	require.True(t, ok, "in-place DIF is always permitted")
}

func TestSolver_Applicable_NoVRecurse(t *testing.T) {
	s := NewSolver(2, problem.DIT, buddyList)

	p := newDFT(8, 1, 1)
	p.Vec = tensor.Dim1D(3, 1, 1)

	_, ok := s.applicable(planner.New(), p)
	require.True(t, ok)

	_, ok = s.applicable(planner.New(planner.WithNoVRecurse(true)), p)
	require.False(t, ok, "NO_VRECURSE rejects any vector-rank > 0 problem")
}

func TestSolver_Applicable_VectorRankAboveOneRejected(t *testing.T) {
	s := NewSolver(2, problem.DIT, buddyList)

	p := newDFT(8, 1, 1)
	p.Vec = tensor.Append(tensor.Dim1D(3, 1, 1), tensor.Dim1D(2, 1, 1))

	_, ok := s.applicable(planner.New(), p)
	require.False(t, ok)
}

type recordingDFTSolver struct{ seen *problem.DFT }

func (r *recordingDFTSolver) MkPlanDFT(_ *planner.Planner, p *problem.DFT) plan.Plan {
	r.seen = p
	return &fakePlan{}
}

type recordingDFTWSolver struct{ seen *problem.DFTW }

func (r *recordingDFTWSolver) MkPlanDFTW(_ *planner.Planner, p *problem.DFTW) plan.Plan {
	r.seen = p
	return &fakePlan{}
}

type fakePlan struct{}

func (f *fakePlan) Apply(ri, ii, ro, io []float64) {}
func (f *fakePlan) Awake(bool)                     {}
func (f *fakePlan) Destroy()                       {}
func (f *fakePlan) Print(w io.Writer)              {}
func (f *fakePlan) Ops() plan.Ops                  { return plan.Ops{} }

func TestMkPlanDFT_DIT_TensorRewrite(t *testing.T) {
	pl := planner.New()
	innerDFT := &recordingDFTSolver{}
	innerDFTW := &recordingDFTWSolver{}
	pl.RegisterDFT(innerDFT)
	pl.RegisterDFTW(innerDFTW)

	s := NewSolver(4, problem.DIT, buddyList)
	p := newDFT(12, 1, 1)

	pln := s.MkPlanDFT(pl, p)
	require.NotNil(t, pln)

	// m=3, r=4: the inner DFT's transform tensor rearranges strides for
	// the DIT branch, with an added vector axis of length r.
	require.Equal(t, 3, innerDFT.seen.N)
	require.Equal(t, 4, innerDFT.seen.IS) // r * dims[0].is
	require.Equal(t, 1, innerDFT.seen.OS) // dims[0].os unchanged

	wantVec := tensor.Dim1D(4, 1, 3) // (r, is=dims[0].is, os=m*dims[0].os)
	if diff := cmp.Diff(wantVec, innerDFT.seen.Vec); diff != "" {
		t.Fatalf("inner DFT vector tensor mismatch (-want +got):\n%s", diff)
	}

	require.Equal(t, problem.DIT, innerDFTW.seen.Decimation)
	require.Equal(t, 4, innerDFTW.seen.R)
	require.Equal(t, 3, innerDFTW.seen.M)
}

func TestMkPlanDFT_DIF_TensorRewrite(t *testing.T) {
	pl := planner.New()
	innerDFT := &recordingDFTSolver{}
	innerDFTW := &recordingDFTWSolver{}
	pl.RegisterDFT(innerDFT)
	pl.RegisterDFTW(innerDFTW)

	s := NewSolver(4, problem.DIF, buddyList)
	p := newDFT(12, 1, 1)
	p.RO, p.IO = p.RI, p.II // DIF without DESTROY_INPUT requires in-place

	pln := s.MkPlanDFT(pl, p)
	require.NotNil(t, pln)

	require.Equal(t, 3, innerDFT.seen.N)
	require.Equal(t, 1, innerDFT.seen.IS)
	require.Equal(t, 4, innerDFT.seen.OS) // r * dims[0].os

	wantVec := tensor.Dim1D(4, 3, 1) // (r, is=m*dims[0].is, os=dims[0].os)
	if diff := cmp.Diff(wantVec, innerDFT.seen.Vec); diff != "" {
		t.Fatalf("inner DFT vector tensor mismatch (-want +got):\n%s", diff)
	}

	require.Equal(t, problem.DIF, innerDFTW.seen.Decimation)
}

func TestMkPlanDFT_TwiddlePassFailureReturnsNil(t *testing.T) {
	pl := planner.New()
	// No DFTW solver registered: the twiddle-pass request always fails.
	s := NewSolver(4, problem.DIT, buddyList)

	pln := s.MkPlanDFT(pl, newDFT(12, 1, 1))
	require.Nil(t, pln)
}

func TestMkPlanDFT_InnerFailureDestroysTwiddlePass(t *testing.T) {
	pl := planner.New()
	destroyed := false
	pl.RegisterDFTW(&alwaysPlanDFTW{onDestroy: func() { destroyed = true }})
	// No DFT solver registered: the inner DFT request fails.

	s := NewSolver(4, problem.DIT, buddyList)
	pln := s.MkPlanDFT(pl, newDFT(12, 1, 1))
	require.Nil(t, pln)
	require.True(t, destroyed, "the already-built twiddle pass must be destroyed on inner-plan failure")
}

type alwaysPlanDFTW struct{ onDestroy func() }

func (a *alwaysPlanDFTW) MkPlanDFTW(_ *planner.Planner, _ *problem.DFTW) plan.Plan {
	return &destroyTrackingPlan{onDestroy: a.onDestroy}
}

type destroyTrackingPlan struct{ onDestroy func() }

func (d *destroyTrackingPlan) Apply(ri, ii, ro, io []float64) {}
func (d *destroyTrackingPlan) Awake(bool)                     {}
func (d *destroyTrackingPlan) Destroy() {
	if d.onDestroy != nil {
		d.onDestroy()
	}
}
func (d *destroyTrackingPlan) Print(w io.Writer) {}
func (d *destroyTrackingPlan) Ops() plan.Ops     { return plan.Ops{} }
