package cpu

import (
	"fmt"

	"github.com/latent-ml/latent/internal/parallel"
	"github.com/latent-ml/latent/internal/tensor"
)

// MatMul computes a @ b for 2D tensors [m, k] x [k, n] -> [m, n].
// Rows of the result are computed in parallel.
func (cb *Backend) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	require2D("MatMul", a)
	require2D("MatMul", b)

	m, k := a.Shape()[0], a.Shape()[1]
	k2, n := b.Shape()[0], b.Shape()[1]
	if k != k2 {
		panic(fmt.Sprintf("MatMul: inner dimensions mismatch %v x %v", a.Shape(), b.Shape()))
	}

	out := mustRaw(tensor.Shape{m, n})
	ad, bd, od := a.Data(), b.Data(), out.Data()

	parallel.For(m, func(i int) {
		arow := ad[i*k : (i+1)*k]
		orow := od[i*n : (i+1)*n]
		for p, av := range arow {
			if av == 0 {
				continue
			}
			brow := bd[p*n : (p+1)*n]
			for j, bv := range brow {
				orow[j] += av * bv
			}
		}
	}, cb.pool)

	return out
}

// Transpose returns the 2D transpose of a.
func (cb *Backend) Transpose(a *tensor.RawTensor) *tensor.RawTensor {
	require2D("Transpose", a)

	r, c := a.Shape()[0], a.Shape()[1]
	out := mustRaw(tensor.Shape{c, r})
	ad, od := a.Data(), out.Data()

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			od[j*r+i] = ad[i*c+j]
		}
	}
	return out
}
