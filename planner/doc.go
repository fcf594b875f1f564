// Package planner provides the minimal solver registry the Cooley–Tukey
// core recurses through: a planner holds an ordered list of DFT and
// twiddle-pass solvers and serves plan requests by probing them in
// registration order, returning the first plan produced.
//
// This is a deliberately small stand-in for a generic, cost-ranking
// planner search: it has no wisdom cache and no alternative-ranking by
// estimated cost, only first-applicable dispatch. The Cooley–Tukey core
// only ever asks it for plans and reads its flags, so nothing downstream
// depends on the ranking strategy.
package planner
