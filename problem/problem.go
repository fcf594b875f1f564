package problem

import "github.com/MeKo-Tech/algo-dft-ct/tensor"

// Decimation selects whether a Cooley–Tukey split applies its twiddle
// factors before (DIF) or after (DIT) the inner transform.
type Decimation int

const (
	// DIT is decimation-in-time: inner DFT first, then the twiddle pass,
	// writing and then rewriting the output buffers.
	DIT Decimation = iota
	// DIF is decimation-in-frequency: the twiddle pass runs first, in
	// place on the input buffers, which the inner DFT then reads.
	DIF
)

func (d Decimation) String() string {
	if d == DIF {
		return "dif"
	}
	return "dit"
}

// DFT describes one 1-D complex discrete Fourier transform problem in
// split real/imaginary layout. Buffers may alias (in place) iff
// RI==RO && II==IO.
type DFT struct {
	N int

	RI, II []float64
	RO, IO []float64

	// IS, OS are the element strides, in real samples, between
	// successive points of the transform.
	IS, OS int

	// Vec is the problem's vector (loop) tensor: the same 1-D DFT applied
	// across every point of Vec. A Cooley–Tukey solver only ever applies
	// when len(Vec) <= 1 (see Solver.applicable); a zero-length Vec means
	// a single, un-looped transform.
	Vec tensor.Tensor
}

// VecRank returns the rank of the problem's vector tensor.
func (p *DFT) VecRank() int { return len(p.Vec) }

// InPlace reports whether the input and output buffers alias.
func (p *DFT) InPlace() bool {
	return sameBuf(p.RI, p.RO) && sameBuf(p.II, p.IO)
}

func sameBuf(a, b []float64) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}

// DFTW describes a radix-r twiddle pass over m groups, applied vl times:
// the request the Cooley–Tukey plan constructor issues to the planner for
// its cldw sub-plan.
type DFTW struct {
	Decimation Decimation
	R, M       int

	// Stride is the element stride between successive points within one
	// group of the twiddle pass (dims[0].os for DIT, dims[0].is for DIF).
	Stride int

	VL, VStride int

	// BufRe, BufIm are the single buffer pair the twiddle pass reads and
	// writes in place (the output buffers for DIT, the input buffers for
	// DIF).
	BufRe, BufIm []float64
}

// VecLen returns the effective vector length, defaulting to 1 when VL is
// unset.
func (p *DFTW) VecLen() int {
	if p.VL == 0 {
		return 1
	}
	return p.VL
}

// Flags carries the subset of planner-wide flags the Cooley–Tukey core and
// its leaf solvers consult. Other planner flags (wisdom, threading) belong
// to the surrounding planner and are out of scope here.
type Flags uint32

const (
	// DestroyInput permits a solver to overwrite its input buffers. DIF
	// twiddle passes require this unless the transform is already
	// in-place.
	DestroyInput Flags = 1 << iota
	// NoVRecurse disables planning into problems with a vector rank > 0,
	// for compatibility with callers that dislike recursive vector loops.
	NoVRecurse
)

// Has reports whether the given bit is set.
func (f Flags) Has(bit Flags) bool {
	return f&bit != 0
}
