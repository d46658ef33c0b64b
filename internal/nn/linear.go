package nn

import (
	"fmt"

	"github.com/latent-ml/latent/internal/tensor"
)

// Linear is a fully connected layer in feature-major layout.
//
// Forward computes y = W @ x + bias where
//   - x has shape [inFeatures, batch]
//   - W has shape [outFeatures, inFeatures]
//   - bias has shape [outFeatures, 1], broadcast across the batch
//   - y has shape [outFeatures, batch]
type Linear[B tensor.Backend] struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter[B]
	bias        *Parameter[B]
}

// NewLinear creates a Linear layer with Xavier-initialized weights and
// zero biases.
func NewLinear[B tensor.Backend](inFeatures, outFeatures int, b B) *Linear[B] {
	return &Linear[B]{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      NewParameter("weight", Xavier(inFeatures, outFeatures, b)),
		bias:        NewParameter("bias", tensor.Zeros(tensor.Shape{outFeatures, 1}, b)),
	}
}

// Forward computes W @ x + bias.
func (l *Linear[B]) Forward(input *tensor.Tensor[B]) *tensor.Tensor[B] {
	shape := input.Shape()
	if len(shape) != 2 || shape[0] != l.inFeatures {
		panic(fmt.Sprintf("Linear.Forward: expected input shape [%d, batch], got %v", l.inFeatures, shape))
	}
	return l.weight.Tensor().MatMul(input).Add(l.bias.Tensor())
}

// Parameters returns [weight, bias].
func (l *Linear[B]) Parameters() []*Parameter[B] {
	return []*Parameter[B]{l.weight, l.bias}
}

// Weight returns the weight parameter.
func (l *Linear[B]) Weight() *Parameter[B] {
	return l.weight
}

// Bias returns the bias parameter.
func (l *Linear[B]) Bias() *Parameter[B] {
	return l.bias
}
