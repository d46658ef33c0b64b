package models

import (
	"fmt"

	"github.com/latent-ml/latent/internal/nn"
	"github.com/latent-ml/latent/internal/tensor"
)

// AEConfig configures a plain autoencoder.
type AEConfig struct {
	// InputDim is the feature dimensionality of the data.
	InputDim int

	// HiddenDims lists the hidden layer widths of the encoder, outermost
	// first. The decoder mirrors them. May be empty for a linear
	// bottleneck.
	HiddenDims []int

	// LatentDim is the bottleneck width.
	LatentDim int
}

func errPositiveDims(what string, dims []int) error {
	return fmt.Errorf("models: %s dims must be positive, got %v", what, dims)
}

func (c AEConfig) validate() error {
	if c.InputDim <= 0 {
		return fmt.Errorf("models: input dim must be positive, got %d", c.InputDim)
	}
	if c.LatentDim <= 0 {
		return fmt.Errorf("models: latent dim must be positive, got %d", c.LatentDim)
	}
	for _, h := range c.HiddenDims {
		if h <= 0 {
			return errPositiveDims("hidden", c.HiddenDims)
		}
	}
	return nil
}

// encoderDims returns [input, hidden..., latent].
func (c AEConfig) encoderDims() []int {
	dims := make([]int, 0, len(c.HiddenDims)+2)
	dims = append(dims, c.InputDim)
	dims = append(dims, c.HiddenDims...)
	return append(dims, c.LatentDim)
}

// mlp builds a Linear stack over dims with Tanh between layers.
// The output layer gets the given activation, or none when nil.
func mlp[B tensor.Backend](dims []int, output nn.Module[B], b B) *nn.Sequential[B] {
	var layers []nn.Module[B]
	for i := 0; i+1 < len(dims); i++ {
		layers = append(layers, nn.NewLinear(dims[i], dims[i+1], b))
		if i+2 < len(dims) {
			layers = append(layers, nn.NewTanh[B]())
		}
	}
	if output != nil {
		layers = append(layers, output)
	}
	return nn.NewSequential(layers...)
}

// reverse returns dims in reverse order.
func reverse(dims []int) []int {
	out := make([]int, len(dims))
	for i, d := range dims {
		out[len(dims)-1-i] = d
	}
	return out
}

// AE is a plain autoencoder: a Tanh MLP encoder into a linear latent
// and a mirrored decoder with a sigmoid output, so reconstructions live
// in (0, 1) like normalized input data.
type AE[B tensor.Backend] struct {
	encoder *nn.Sequential[B]
	decoder *nn.Sequential[B]
	config  AEConfig
}

// NewAE creates an autoencoder from the config.
func NewAE[B tensor.Backend](cfg AEConfig, b B) (*AE[B], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	dims := cfg.encoderDims()
	return &AE[B]{
		encoder: mlp[B](dims, nil, b),
		decoder: mlp[B](reverse(dims), nn.NewSigmoid[B](), b),
		config:  cfg,
	}, nil
}

// Encode maps [inputDim, batch] data to [latentDim, batch] codes.
func (m *AE[B]) Encode(x *tensor.Tensor[B]) *tensor.Tensor[B] {
	return m.encoder.Forward(x)
}

// Decode maps latent codes back to data space.
func (m *AE[B]) Decode(z *tensor.Tensor[B]) *tensor.Tensor[B] {
	return m.decoder.Forward(z)
}

// Forward reconstructs the input through the bottleneck.
func (m *AE[B]) Forward(x *tensor.Tensor[B]) *tensor.Tensor[B] {
	return m.Decode(m.Encode(x))
}

// Parameters returns encoder then decoder parameters.
func (m *AE[B]) Parameters() []*nn.Parameter[B] {
	return append(m.encoder.Parameters(), m.decoder.Parameters()...)
}

// Loss is the reconstruction objective mean((x̂ - x)²).
func (m *AE[B]) Loss(x *tensor.Tensor[B]) *tensor.Tensor[B] {
	return nn.MSE(m.Forward(x), x)
}

// LatentDim returns the bottleneck width.
func (m *AE[B]) LatentDim() int {
	return m.config.LatentDim
}
