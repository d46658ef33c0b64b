package models

import (
	"fmt"

	"github.com/latent-ml/latent/internal/nn"
	"github.com/latent-ml/latent/internal/tensor"
)

// VAEConfig configures a variational autoencoder.
type VAEConfig struct {
	AEConfig

	// Beta weighs the KL divergence against the reconstruction term.
	// Zero means the default weight of 1.
	Beta float32

	// NoiseSeed seeds the reparameterization noise. Zero derives a seed
	// from the clock.
	NoiseSeed int64

	// LinearOutput drops the sigmoid on the decoder output, for targets
	// that are not constrained to (0, 1) such as latent codes.
	LinearOutput bool
}

// VAE is a variational autoencoder: a shared Tanh trunk feeds separate
// mean and log-variance heads, latents are drawn by reparameterization,
// and the decoder mirrors the encoder with a sigmoid output.
type VAE[B tensor.Backend] struct {
	trunk   *nn.Sequential[B]
	muHead  *nn.Linear[B]
	lvHead  *nn.Linear[B]
	decoder *nn.Sequential[B]
	noise   NoiseSource[B]
	beta    float32
	config  VAEConfig
}

// NewVAE creates a variational autoencoder with a fresh-draw Gaussian
// noise source.
func NewVAE[B tensor.Backend](cfg VAEConfig, b B) (*VAE[B], error) {
	noise, err := NewGaussian(max(cfg.LatentDim, 1), cfg.NoiseSeed, b)
	if err != nil {
		return nil, err
	}
	return NewVAEWithNoise(cfg, noise, b)
}

// NewVAEWithNoise creates a variational autoencoder with an explicit
// noise source, e.g. a preallocated Buffered pool for long runs.
func NewVAEWithNoise[B tensor.Backend](cfg VAEConfig, noise NoiseSource[B], b B) (*VAE[B], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if noise.Dim() != cfg.LatentDim {
		return nil, fmt.Errorf("models: noise dim %d does not match latent dim %d", noise.Dim(), cfg.LatentDim)
	}
	beta := cfg.Beta
	if beta == 0 {
		beta = 1
	}

	// The trunk ends in Tanh; the heads are linear on top of it.
	trunkDims := append([]int{cfg.InputDim}, cfg.HiddenDims...)
	var trunkLayers []nn.Module[B]
	for i := 0; i+1 < len(trunkDims); i++ {
		trunkLayers = append(trunkLayers,
			nn.NewLinear(trunkDims[i], trunkDims[i+1], b),
			nn.NewTanh[B]())
	}
	headIn := trunkDims[len(trunkDims)-1]

	var output nn.Module[B] = nn.NewSigmoid[B]()
	if cfg.LinearOutput {
		output = nil
	}

	return &VAE[B]{
		trunk:   nn.NewSequential(trunkLayers...),
		muHead:  nn.NewLinear(headIn, cfg.LatentDim, b),
		lvHead:  nn.NewLinear(headIn, cfg.LatentDim, b),
		decoder: mlp[B](reverse(cfg.encoderDims()), output, b),
		noise:   noise,
		beta:    beta,
		config:  cfg,
	}, nil
}

// Encode returns the posterior mean and log-variance, each with shape
// [latentDim, batch].
func (m *VAE[B]) Encode(x *tensor.Tensor[B]) (mu, logvar *tensor.Tensor[B]) {
	h := m.trunk.Forward(x)
	return m.muHead.Forward(h), m.lvHead.Forward(h)
}

// Reparameterize draws z = mu + exp(logvar/2) · eps with eps ~ N(0, 1),
// keeping the sampling step differentiable with respect to mu and
// logvar.
func (m *VAE[B]) Reparameterize(mu, logvar *tensor.Tensor[B]) *tensor.Tensor[B] {
	eps := m.noise.Sample(mu.Shape().Samples())
	std := logvar.Scale(0.5).Exp()
	return mu.Add(std.Mul(eps))
}

// Decode maps latent codes back to data space.
func (m *VAE[B]) Decode(z *tensor.Tensor[B]) *tensor.Tensor[B] {
	return m.decoder.Forward(z)
}

// Forward reconstructs the input through a sampled latent.
func (m *VAE[B]) Forward(x *tensor.Tensor[B]) *tensor.Tensor[B] {
	mu, logvar := m.Encode(x)
	return m.Decode(m.Reparameterize(mu, logvar))
}

// Parameters returns trunk, head and decoder parameters.
func (m *VAE[B]) Parameters() []*nn.Parameter[B] {
	params := m.trunk.Parameters()
	params = append(params, m.muHead.Parameters()...)
	params = append(params, m.lvHead.Parameters()...)
	return append(params, m.decoder.Parameters()...)
}

// Loss is the negative ELBO: reconstruction MSE plus beta times the KL
// divergence of the posterior from the standard normal prior,
//
//	KL = -0.5 · mean(1 + logvar - mu² - exp(logvar))
func (m *VAE[B]) Loss(x *tensor.Tensor[B]) *tensor.Tensor[B] {
	mu, logvar := m.Encode(x)
	recon := nn.MSE(m.Decode(m.Reparameterize(mu, logvar)), x)
	kl := logvar.AddScalar(1).Sub(mu.Mul(mu)).Sub(logvar.Exp()).Mean().Scale(-0.5)
	return recon.Add(kl.Scale(m.beta))
}

// KL returns the current KL divergence on a batch, for tracking.
func (m *VAE[B]) KL(x *tensor.Tensor[B]) *tensor.Tensor[B] {
	mu, logvar := m.Encode(x)
	return logvar.AddScalar(1).Sub(mu.Mul(mu)).Sub(logvar.Exp()).Mean().Scale(-0.5)
}

// SamplePrior draws batch latent samples from the standard normal
// prior.
func (m *VAE[B]) SamplePrior(batch int) *tensor.Tensor[B] {
	return m.noise.Sample(batch)
}

// LatentDim returns the bottleneck width.
func (m *VAE[B]) LatentDim() int {
	return m.config.LatentDim
}
