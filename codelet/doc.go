// Package codelet provides the leaf solvers that close the Cooley–Tukey
// recursion: a direct O(n²) DFT solver that applies to any problem (the
// base case every recursive split eventually bottoms out at) and a direct
// radix-r twiddle-pass solver servicing planner.PlanDFTW requests.
//
// Neither solver is part of the Cooley–Tukey core itself: the core only
// consumes small-size codelets and twiddle passes through the planner
// interface. This package is that collaborator — a correct, unoptimized
// reference implementation, not a competitor to the highly-tuned
// straight-line codelets a production FFT library would generate.
package codelet
