package models

import (
	"github.com/latent-ml/latent/internal/nn"
	"github.com/latent-ml/latent/internal/optim"
	"github.com/latent-ml/latent/internal/sampler"
	"github.com/latent-ml/latent/internal/tensor"
	"github.com/latent-ml/latent/internal/train"
)

// AAEConfig configures an adversarial autoencoder.
type AAEConfig struct {
	AEConfig

	// DiscHiddenDims lists the hidden layer widths of the latent
	// discriminator. May be empty for a linear discriminator.
	DiscHiddenDims []int

	// NoiseSeed seeds the prior samples. Zero derives a seed from the
	// clock.
	NoiseSeed int64
}

// AAE is an adversarial autoencoder: alongside the reconstruction path
// a discriminator learns to tell prior samples from batch latents, and
// the encoder is trained to fool it, shaping the aggregate posterior
// toward the prior.
type AAE[B tensor.Backend] struct {
	ae      *AE[B]
	disc    *nn.Sequential[B]
	prior   NoiseSource[B]
	backend B
}

// NewAAE creates an adversarial autoencoder from the config.
func NewAAE[B tensor.Backend](cfg AAEConfig, b B) (*AAE[B], error) {
	ae, err := NewAE(cfg.AEConfig, b)
	if err != nil {
		return nil, err
	}
	for _, h := range cfg.DiscHiddenDims {
		if h <= 0 {
			return nil, errPositiveDims("discriminator hidden", cfg.DiscHiddenDims)
		}
	}
	prior, err := NewGaussian(cfg.LatentDim, cfg.NoiseSeed, b)
	if err != nil {
		return nil, err
	}

	discDims := append([]int{cfg.LatentDim}, cfg.DiscHiddenDims...)
	discDims = append(discDims, 1)

	return &AAE[B]{
		ae:      ae,
		disc:    mlp[B](discDims, nn.NewSigmoid[B](), b),
		prior:   prior,
		backend: b,
	}, nil
}

// Encode maps data to latent codes.
func (m *AAE[B]) Encode(x *tensor.Tensor[B]) *tensor.Tensor[B] { return m.ae.Encode(x) }

// Decode maps latent codes back to data space.
func (m *AAE[B]) Decode(z *tensor.Tensor[B]) *tensor.Tensor[B] { return m.ae.Decode(z) }

// Forward reconstructs the input.
func (m *AAE[B]) Forward(x *tensor.Tensor[B]) *tensor.Tensor[B] { return m.ae.Forward(x) }

// Discriminate returns per-sample probabilities [1, batch] that the
// latents came from the prior.
func (m *AAE[B]) Discriminate(z *tensor.Tensor[B]) *tensor.Tensor[B] {
	return m.disc.Forward(z)
}

// Parameters returns every trainable parameter across all three
// networks.
func (m *AAE[B]) Parameters() []*nn.Parameter[B] {
	return append(m.ae.Parameters(), m.disc.Parameters()...)
}

// ReconParams returns the encoder and decoder parameters.
func (m *AAE[B]) ReconParams() []*nn.Parameter[B] { return m.ae.Parameters() }

// EncoderParams returns the encoder parameters only, the generator side
// of the adversarial game.
func (m *AAE[B]) EncoderParams() []*nn.Parameter[B] { return m.ae.encoder.Parameters() }

// DiscParams returns the discriminator parameters.
func (m *AAE[B]) DiscParams() []*nn.Parameter[B] { return m.disc.Parameters() }

// ReconLoss is the reconstruction objective mean((x̂ - x)²).
func (m *AAE[B]) ReconLoss(x *tensor.Tensor[B]) *tensor.Tensor[B] {
	return m.ae.Loss(x)
}

// DiscLoss trains the discriminator: prior samples are labeled real,
// batch latents fake. The latents are detached so this objective never
// moves the encoder.
func (m *AAE[B]) DiscLoss(x *tensor.Tensor[B]) *tensor.Tensor[B] {
	batch := x.Shape().Samples()
	labels := tensor.Shape{1, batch}

	prior := m.Discriminate(m.prior.Sample(batch))
	fake := m.Discriminate(m.Encode(x).Detach())

	return nn.BCE(prior, tensor.Ones(labels, m.backend)).
		Add(nn.BCE(fake, tensor.Zeros(labels, m.backend)))
}

// GenLoss trains the encoder to fool the discriminator: batch latents
// are pushed toward the real label.
func (m *AAE[B]) GenLoss(x *tensor.Tensor[B]) *tensor.Tensor[B] {
	batch := x.Shape().Samples()
	probs := m.Discriminate(m.Encode(x))
	return nn.BCE(probs, tensor.Ones(tensor.Shape{1, batch}, m.backend))
}

// Objectives assembles the three-phase training schedule in order:
// reconstruction, discriminator, generator. Each optimizer must manage
// the matching parameter group (ReconParams, DiscParams, EncoderParams).
func (m *AAE[B]) Objectives(recon, disc, gen optim.Optimizer[B]) []train.Objective[B] {
	lossOn := func(f func(*tensor.Tensor[B]) *tensor.Tensor[B]) train.LossFn[B] {
		return func(batch *sampler.Batch[B]) (*tensor.Tensor[B], error) {
			return f(batch.Data), nil
		}
	}
	return []train.Objective[B]{
		{Loss: lossOn(m.ReconLoss), Opt: recon},
		{Loss: lossOn(m.DiscLoss), Opt: disc},
		{Loss: lossOn(m.GenLoss), Opt: gen},
	}
}
