package train

import (
	"github.com/latent-ml/latent/internal/optim"
	"github.com/latent-ml/latent/internal/tensor"
)

// Update applies one optimizer step to every parameter the optimizer
// manages and clears its gradient.
//
// Update and gradient reset are coupled per parameter: the next
// backward pass must start from clean gradient state, and a skipped
// reset would silently accumulate gradients across steps. Parameters
// without a gradient (they did not participate in the last backward
// pass) are left untouched.
func Update[B tensor.Backend](opt optim.Optimizer[B]) {
	for _, p := range opt.Params() {
		grad := p.Grad()
		if grad == nil {
			continue
		}

		delta := opt.Delta(p, grad)

		pd, dd := p.Tensor().Data(), delta.Data()
		for i := range pd {
			pd[i] -= dd[i]
		}
		p.ZeroGrad()
	}
}

// Clip bounds every element of grad to [-bound, bound] in place.
//
// A local stabilization measure against rare numeric blow-ups; the
// bound (e.g. 1e4) is far above normal gradient magnitudes, so regular
// steps pass through unchanged.
func Clip[B tensor.Backend](grad *tensor.Tensor[B], bound float32) {
	data := grad.Data()
	for i, v := range data {
		switch {
		case v > bound:
			data[i] = bound
		case v < -bound:
			data[i] = -bound
		}
	}
}
