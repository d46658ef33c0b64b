// Package nn implements the neural-network building blocks consumed by
// the autoencoder models: Module, Parameter, Linear, activations,
// Sequential and the loss functions.
//
// All modules are feature-major: inputs have shape
// [features, batch] with samples on the last axis.
package nn

import "github.com/latent-ml/latent/internal/tensor"

// Module is the base interface for all network components.
type Module[B tensor.Backend] interface {
	// Forward computes the module output for a [features, batch] input.
	Forward(input *tensor.Tensor[B]) *tensor.Tensor[B]

	// Parameters returns all trainable parameters, including nested
	// module parameters. Modules without parameters return nil.
	Parameters() []*Parameter[B]
}
