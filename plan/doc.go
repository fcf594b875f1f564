// Package plan defines the capability interface every compiled DFT plan
// satisfies (apply, awake, destroy, print) and the operation-count type
// plans accumulate as they are built.
package plan
