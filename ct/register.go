package ct

import (
	"github.com/MeKo-Tech/algo-dft-ct/planner"
	"github.com/MeKo-Tech/algo-dft-ct/problem"
)

// buddyList is the fixed, ordered list of radix specs shared by every
// Cooley–Tukey solver. Positive fixed radices precede
// 0 (smallest prime factor), which precedes -1 (sqrt(n)), which precedes
// the remaining negative (sqrt(n/|r|)) specs. When two strategies
// coincide on a given n, the earlier entry in this list wins.
var buddyList = []RadixSpec{
	2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 32, 64,

	0, // smallest prime factor

	-1, // sqrt(n)

	-2, -3, -4, -5, -6, -7, -8, -9, -10, -11, -12, -13, -14, -15, -16, -32, -64,
}

// Register installs one solver per (radix spec, decimation) pair from
// buddyList — 2 * len(buddyList) = 72 solvers in total — onto pl.
func Register(pl *planner.Planner) {
	for _, r := range buddyList {
		pl.RegisterDFT(NewSolver(r, problem.DIT, buddyList))
		pl.RegisterDFT(NewSolver(r, problem.DIF, buddyList))
	}
}
