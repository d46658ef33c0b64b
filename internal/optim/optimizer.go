// Package optim implements optimization algorithms for training.
//
// Optimizers own the parameter list they optimize and expose a step
// computation: given a parameter and its gradient, Delta returns the
// step to subtract from the parameter value. Applying the step (and
// zeroing the gradient) is the training driver's job, which keeps
// update-and-reset an atomic pair per parameter regardless of the
// optimizer in use.
//
// Example:
//
//	opt := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.01})
//	for _, batch := range batches {
//	    loss := lossFn(batch)
//	    grads := backend.Backward(loss.Raw())
//	    // deposit grads, then:
//	    train.Update(opt)
//	}
package optim

import (
	"github.com/latent-ml/latent/internal/nn"
	"github.com/latent-ml/latent/internal/tensor"
)

// Optimizer computes parameter update steps.
type Optimizer[B tensor.Backend] interface {
	// Params returns the parameters this optimizer manages.
	Params() []*nn.Parameter[B]

	// Delta returns the step to subtract from the parameter value,
	// advancing any internal per-parameter state (momentum, moments).
	Delta(p *nn.Parameter[B], grad *tensor.Tensor[B]) *tensor.Tensor[B]

	// LR returns the current learning rate.
	LR() float32
}
