// Package ct implements the recursive Cooley–Tukey planner core for 1-D
// complex DFTs: for a transform of length n, choose a radix r such that
// n = r·m, and factor the problem into an m-point inner DFT plus a
// radix-r twiddle pass, in either decimation-in-time (DIT) or
// decimation-in-frequency (DIF) order, recursing back through the
// surrounding planner for both sub-plans.
//
// The hard part is not the recursion itself but choosing among many
// candidate radices without re-exploring equivalent factorizations: each
// Solver carries an ordered "buddy list" of radix specs, and
// chooseRadix uses buddy order to pick a single canonical owner for every
// concrete radix a given n admits (see radix.go). Register installs one
// solver per (radix spec, decimation) pair from the fixed buddy list, 72
// in total (36 radix specs x 2 decimations).
package ct
