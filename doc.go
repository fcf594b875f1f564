// Package dftct provides a recursive Cooley–Tukey planner for 1-D complex
// discrete Fourier transforms.
//
// Given a transform of length n, the planner chooses a radix r such that
// n = r·m and factors the problem into an m-point inner DFT plus a
// radix-r twiddle pass — decimation-in-time (DIT) or
// decimation-in-frequency (DIF) — recursing until no further radix split
// applies and a direct solver takes over.
//
// # Architecture
//
// The library follows a plan-based API:
//
//  1. planner.New creates an empty registry.
//  2. ct.Register installs the 72 Cooley–Tukey solvers (one per
//     (radix spec, decimation) pair); codelet.NewDirectDFTSolver and
//     codelet.NewDirectDFTWSolver supply the base cases the recursion
//     bottoms out at. NewPlanner wires all of this for the common case.
//  3. Planner.PlanDFT(problem) returns a plan.Plan, or nil if nothing
//     applies (never possible once the direct solver is registered).
//  4. Plan.Apply runs the transform; Plan.Awake(true)/Awake(false)
//     bracket repeated use; Plan.Destroy releases it.
//
// # Packages
//
//   - tensor: iteration tensors (transform and vector axes, strides).
//   - problem: the DFT and DFTW problem value types, and planner flags.
//   - plan: the Plan capability interface and operation-count type.
//   - planner: the solver registry plan requests are served from.
//   - ct: the Cooley–Tukey core itself — radix choice, the applicability
//     gate, the plan constructor, the composite plan.
//   - codelet: direct (O(n²)) leaf solvers closing the recursion.
//
// # Example
//
//	pl := dftct.NewPlanner()
//	n := 360
//	ri, ii := make([]float64, n), make([]float64, n)
//	ro, io := make([]float64, n), make([]float64, n)
//	// ... fill ri, ii with input samples ...
//	p, err := dftct.NewProblem(n, ri, ii, ro, io)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pln := pl.PlanDFT(p)
//	pln.Apply(ri, ii, ro, io)
package dftct
