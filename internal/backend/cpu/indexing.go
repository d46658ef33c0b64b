package cpu

import (
	"fmt"

	"github.com/latent-ml/latent/internal/tensor"
)

// TakeSamples gathers sample indices along the last axis.
//
// For a tensor of shape [d0, ..., dk, n] the result has shape
// [d0, ..., dk, len(indices)]. The sample axis varies fastest in memory,
// so each selected sample is a strided column copy.
func (cb *Backend) TakeSamples(a *tensor.RawTensor, indices []int) *tensor.RawTensor {
	shape := a.Shape()
	n := shape.Samples()
	rows := shape.SampleSize()

	for _, idx := range indices {
		if idx < 0 || idx >= n {
			panic(fmt.Sprintf("TakeSamples: index %d out of range [0, %d)", idx, n))
		}
	}

	out := mustRaw(shape.WithSamples(len(indices)))
	ad, od := a.Data(), out.Data()
	m := len(indices)

	for j := 0; j < rows; j++ {
		src := ad[j*n : (j+1)*n]
		dst := od[j*m : (j+1)*m]
		for t, idx := range indices {
			dst[t] = src[idx]
		}
	}
	return out
}
