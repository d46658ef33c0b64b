package models

import (
	"fmt"

	"github.com/latent-ml/latent/internal/nn"
	"github.com/latent-ml/latent/internal/tensor"
)

// WAEConfig configures a Wasserstein autoencoder with an MMD penalty.
type WAEConfig struct {
	AEConfig

	// Lambda weighs the MMD penalty against the reconstruction term.
	// Zero means the default weight of 1.
	Lambda float32

	// Sigma is the RBF kernel bandwidth. Zero means 1.
	Sigma float32

	// NoiseSeed seeds the prior samples. Zero derives a seed from the
	// clock.
	NoiseSeed int64
}

// WAE is a Wasserstein autoencoder: a deterministic autoencoder whose
// latent distribution is pulled toward a standard normal prior by the
// maximum mean discrepancy under an RBF kernel.
type WAE[B tensor.Backend] struct {
	ae     *AE[B]
	prior  NoiseSource[B]
	lambda float32
	sigma  float32
}

// NewWAE creates a Wasserstein autoencoder from the config.
func NewWAE[B tensor.Backend](cfg WAEConfig, b B) (*WAE[B], error) {
	ae, err := NewAE(cfg.AEConfig, b)
	if err != nil {
		return nil, err
	}
	if cfg.Lambda < 0 {
		return nil, fmt.Errorf("models: lambda must be non-negative, got %g", cfg.Lambda)
	}
	prior, err := NewGaussian(cfg.LatentDim, cfg.NoiseSeed, b)
	if err != nil {
		return nil, err
	}
	lambda := cfg.Lambda
	if lambda == 0 {
		lambda = 1
	}
	sigma := cfg.Sigma
	if sigma == 0 {
		sigma = 1
	}
	return &WAE[B]{ae: ae, prior: prior, lambda: lambda, sigma: sigma}, nil
}

// Encode maps data to latent codes.
func (m *WAE[B]) Encode(x *tensor.Tensor[B]) *tensor.Tensor[B] { return m.ae.Encode(x) }

// Decode maps latent codes back to data space.
func (m *WAE[B]) Decode(z *tensor.Tensor[B]) *tensor.Tensor[B] { return m.ae.Decode(z) }

// Forward reconstructs the input.
func (m *WAE[B]) Forward(x *tensor.Tensor[B]) *tensor.Tensor[B] { return m.ae.Forward(x) }

// Parameters returns encoder then decoder parameters.
func (m *WAE[B]) Parameters() []*nn.Parameter[B] { return m.ae.Parameters() }

// Loss is reconstruction MSE plus lambda times the MMD between the
// batch latents and fresh prior samples.
func (m *WAE[B]) Loss(x *tensor.Tensor[B]) *tensor.Tensor[B] {
	z := m.Encode(x)
	zPrior := m.prior.Sample(x.Shape().Samples())
	penalty := MMD(z, zPrior, m.sigma)
	return nn.MSE(m.Decode(z), x).Add(penalty.Scale(m.lambda))
}

// rbfKernel evaluates the Gaussian kernel matrix between the columns of
// x [d, n] and y [d, m], giving [n, m] entries exp(-||xi-yj||²/(2σ²)).
//
// Pairwise squared distances expand to ||x||² + ||y||² - 2·xᵀy, with
// the squared norms broadcast along rows and columns.
func rbfKernel[B tensor.Backend](x, y *tensor.Tensor[B], sigma float32) *tensor.Tensor[B] {
	xx := x.Mul(x).SumAxis(0) // [1, n]
	yy := y.Mul(y).SumAxis(0) // [1, m]
	cross := x.Transpose().MatMul(y)

	dist := cross.Scale(-2).Add(xx.Transpose()).Add(yy)
	return dist.Scale(-1 / (2 * sigma * sigma)).Exp()
}

// MMD computes the biased maximum mean discrepancy estimate between two
// column-sample sets under an RBF kernel of the given bandwidth:
//
//	mean(K(x,x)) + mean(K(y,y)) - 2·mean(K(x,y))
func MMD[B tensor.Backend](x, y *tensor.Tensor[B], sigma float32) *tensor.Tensor[B] {
	kxx := rbfKernel(x, x, sigma).Mean()
	kyy := rbfKernel(y, y, sigma).Mean()
	kxy := rbfKernel(x, y, sigma).Mean()
	return kxx.Add(kyy).Sub(kxy.Scale(2))
}
