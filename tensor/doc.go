// Package tensor provides the small rank-0/rank-1 iteration tensors used to
// describe how a DFT problem's buffers are walked: a transform dimension
// plus an optional vector (loop) dimension, each carrying an independent
// input and output stride.
package tensor
