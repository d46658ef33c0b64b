package nn

import "github.com/latent-ml/latent/internal/tensor"

// Parameter is a trainable tensor with an accumulated gradient.
//
// The gradient is nil until a backward pass deposits one via AddGrad and
// becomes nil again when the update rule zeroes it; nil-as-zero avoids
// allocating buffers for parameters that never receive gradients.
type Parameter[B tensor.Backend] struct {
	name   string
	tensor *tensor.Tensor[B]
	grad   *tensor.Tensor[B]
}

// NewParameter creates a trainable parameter around an initialized
// tensor.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[B]) *Parameter[B] {
	return &Parameter[B]{name: name, tensor: t}
}

// Name returns the parameter name (e.g. "encoder.0.weight").
func (p *Parameter[B]) Name() string {
	return p.name
}

// Tensor returns the parameter value tensor.
func (p *Parameter[B]) Tensor() *tensor.Tensor[B] {
	return p.tensor
}

// Grad returns the accumulated gradient, or nil if none has been
// deposited since the last ZeroGrad.
func (p *Parameter[B]) Grad() *tensor.Tensor[B] {
	return p.grad
}

// AddGrad accumulates g into the parameter's gradient. The addition is
// performed directly on the buffers; gradient bookkeeping itself must
// never land on a gradient tape.
func (p *Parameter[B]) AddGrad(g *tensor.Tensor[B]) {
	if p.grad == nil {
		p.grad = g.Clone()
		return
	}
	gd, pd := g.Data(), p.grad.Data()
	for i := range pd {
		pd[i] += gd[i]
	}
}

// ZeroGrad clears the accumulated gradient.
func (p *Parameter[B]) ZeroGrad() {
	p.grad = nil
}
