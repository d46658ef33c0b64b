package nn

import "github.com/latent-ml/latent/internal/tensor"

// Sequential chains modules, feeding each output into the next.
//
//	enc := nn.NewSequential[B](
//	    nn.NewLinear[B](784, 128, b),
//	    nn.NewTanh[B](),
//	    nn.NewLinear[B](128, 16, b),
//	)
type Sequential[B tensor.Backend] struct {
	layers []Module[B]
}

// NewSequential creates a Sequential container over the given layers.
func NewSequential[B tensor.Backend](layers ...Module[B]) *Sequential[B] {
	return &Sequential[B]{layers: layers}
}

// Forward applies every layer in order.
func (s *Sequential[B]) Forward(input *tensor.Tensor[B]) *tensor.Tensor[B] {
	x := input
	for _, layer := range s.layers {
		x = layer.Forward(x)
	}
	return x
}

// Parameters returns the concatenated parameters of all layers.
func (s *Sequential[B]) Parameters() []*Parameter[B] {
	var params []*Parameter[B]
	for _, layer := range s.layers {
		params = append(params, layer.Parameters()...)
	}
	return params
}

// Len returns the number of layers.
func (s *Sequential[B]) Len() int {
	return len(s.layers)
}
