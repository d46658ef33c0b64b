package optim

import (
	"github.com/latent-ml/latent/internal/nn"
	"github.com/latent-ml/latent/internal/tensor"
)

// SGD implements stochastic gradient descent with optional momentum.
//
// Without momentum the step is lr·grad. With momentum:
//
//	velocity = momentum * velocity + grad
//	step     = lr * velocity
type SGD[B tensor.Backend] struct {
	params     []*nn.Parameter[B]
	lr         float32
	momentum   float32
	velocities map[*nn.Parameter[B]]*tensor.Tensor[B]
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float32 // Learning rate (default 0.01)
	Momentum float32 // Momentum factor (default 0, range [0, 1))
}

// NewSGD creates an SGD optimizer over the given parameters.
func NewSGD[B tensor.Backend](params []*nn.Parameter[B], config SGDConfig) *SGD[B] {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD[B]{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*nn.Parameter[B]]*tensor.Tensor[B]),
	}
}

// Params returns the managed parameters.
func (s *SGD[B]) Params() []*nn.Parameter[B] {
	return s.params
}

// Delta returns the step for one parameter.
func (s *SGD[B]) Delta(p *nn.Parameter[B], grad *tensor.Tensor[B]) *tensor.Tensor[B] {
	if s.momentum == 0 {
		return grad.Scale(s.lr)
	}

	velocity, ok := s.velocities[p]
	if !ok {
		velocity = tensor.Zeros(grad.Shape(), grad.Backend())
		s.velocities[p] = velocity
	}

	// velocity = momentum * velocity + grad, updated in place so the
	// stored buffer persists across steps.
	vd, gd := velocity.Data(), grad.Data()
	for i := range vd {
		vd[i] = s.momentum*vd[i] + gd[i]
	}

	return velocity.Scale(s.lr)
}

// LR returns the current learning rate.
func (s *SGD[B]) LR() float32 {
	return s.lr
}

// SetLR updates the learning rate. Useful for schedules.
func (s *SGD[B]) SetLR(lr float32) {
	s.lr = lr
}
