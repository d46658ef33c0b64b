package nn

import "github.com/latent-ml/latent/internal/tensor"

// Sigmoid is the logistic activation module.
type Sigmoid[B tensor.Backend] struct{}

// NewSigmoid creates a Sigmoid activation.
func NewSigmoid[B tensor.Backend]() *Sigmoid[B] { return &Sigmoid[B]{} }

func (s *Sigmoid[B]) Forward(input *tensor.Tensor[B]) *tensor.Tensor[B] {
	return input.Sigmoid()
}

func (s *Sigmoid[B]) Parameters() []*Parameter[B] { return nil }

// Tanh is the hyperbolic tangent activation module.
type Tanh[B tensor.Backend] struct{}

// NewTanh creates a Tanh activation.
func NewTanh[B tensor.Backend]() *Tanh[B] { return &Tanh[B]{} }

func (t *Tanh[B]) Forward(input *tensor.Tensor[B]) *tensor.Tensor[B] {
	return input.Tanh()
}

func (t *Tanh[B]) Parameters() []*Parameter[B] { return nil }

// ReLU is the rectified linear activation module.
type ReLU[B tensor.Backend] struct{}

// NewReLU creates a ReLU activation.
func NewReLU[B tensor.Backend]() *ReLU[B] { return &ReLU[B]{} }

func (r *ReLU[B]) Forward(input *tensor.Tensor[B]) *tensor.Tensor[B] {
	return input.ReLU()
}

func (r *ReLU[B]) Parameters() []*Parameter[B] { return nil }
