// Package problem defines the value types the planner plans against: a
// 1-D complex DFT problem in split real/imaginary layout, and the radix-r
// twiddle-pass problem a Cooley–Tukey split hands to its inner solver.
package problem
