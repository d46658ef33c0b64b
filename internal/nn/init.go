package nn

import (
	"math"
	"math/rand"

	"github.com/latent-ml/latent/internal/tensor"
)

// Xavier returns a [fanOut, fanIn] weight tensor initialized with
// Xavier/Glorot uniform values: U(-limit, limit), limit = √(6/(in+out)).
// Suited to tanh and sigmoid activations, which dominate the
// autoencoder stacks here.
//
//nolint:gosec // math/rand is appropriate for weight initialization
func Xavier[B tensor.Backend](fanIn, fanOut int, b B) *tensor.Tensor[B] {
	limit := float32(math.Sqrt(6.0 / float64(fanIn+fanOut)))
	t := tensor.Zeros(tensor.Shape{fanOut, fanIn}, b)
	data := t.Data()
	for i := range data {
		data[i] = (rand.Float32()*2 - 1) * limit
	}
	return t
}

// He returns a [fanOut, fanIn] weight tensor with He-normal values
// N(0, √(2/fanIn)), the matching choice for ReLU layers.
//
//nolint:gosec // math/rand is appropriate for weight initialization
func He[B tensor.Backend](fanIn, fanOut int, b B) *tensor.Tensor[B] {
	std := float32(math.Sqrt(2.0 / float64(fanIn)))
	t := tensor.Zeros(tensor.Shape{fanOut, fanIn}, b)
	data := t.Data()
	for i := range data {
		data[i] = float32(rand.NormFloat64()) * std
	}
	return t
}
