package models

import (
	"fmt"

	"github.com/latent-ml/latent/internal/autodiff"
	"github.com/latent-ml/latent/internal/optim"
	"github.com/latent-ml/latent/internal/sampler"
	"github.com/latent-ml/latent/internal/tensor"
	"github.com/latent-ml/latent/internal/train"
)

// TwoStageConfig configures a two-stage VAE. The second stage always
// consumes the first stage's latent codes: its input dimension is
// forced to the first stage's latent dimension and its decoder output
// is linear, since latent codes are unbounded.
type TwoStageConfig struct {
	First  VAEConfig
	Second VAEConfig
}

// TwoStage is a two-stage VAE: the first stage learns a latent
// representation of the data, the second learns the distribution of
// those latents. Sampling runs the chain backwards through both
// decoders.
type TwoStage[B tensor.Backend] struct {
	First  *VAE[B]
	Second *VAE[B]
}

// NewTwoStage creates both stages from the config.
func NewTwoStage[B tensor.Backend](cfg TwoStageConfig, b B) (*TwoStage[B], error) {
	first, err := NewVAE(cfg.First, b)
	if err != nil {
		return nil, fmt.Errorf("models: first stage: %w", err)
	}

	cfg.Second.InputDim = cfg.First.LatentDim
	cfg.Second.LinearOutput = true
	second, err := NewVAE(cfg.Second, b)
	if err != nil {
		return nil, fmt.Errorf("models: second stage: %w", err)
	}

	return &TwoStage[B]{First: first, Second: second}, nil
}

// EncodeLatents returns the first-stage posterior means for a dataset,
// detached from any recording so they can serve as second-stage
// training data.
func (m *TwoStage[B]) EncodeLatents(x *tensor.Tensor[B]) *tensor.Tensor[B] {
	mu, _ := m.First.Encode(x)
	return mu.Detach()
}

// Generate draws batch samples by pushing second-stage prior noise
// through both decoders.
func (m *TwoStage[B]) Generate(batch int) *tensor.Tensor[B] {
	z := m.Second.Decode(m.Second.SamplePrior(batch))
	return m.First.Decode(z)
}

// FitConfig configures one stage of two-stage training.
type FitConfig struct {
	Epochs    int
	BatchSize int
	Seed      int64
	LR        float32
	ClipBound float32
}

// FitTwoStage trains the first stage on the data, re-encodes the data
// into first-stage posterior means, and trains the second stage on
// those latents. Both stages use Adam.
func FitTwoStage[B autodiff.BackwardCapable](
	m *TwoStage[B],
	data *tensor.Tensor[B],
	first, second FitConfig,
	backend B,
) error {
	if err := fitStage(m.First, data, first, backend); err != nil {
		return fmt.Errorf("models: first stage: %w", err)
	}
	latents := m.EncodeLatents(data)
	if err := fitStage(m.Second, latents, second, backend); err != nil {
		return fmt.Errorf("models: second stage: %w", err)
	}
	return nil
}

func fitStage[B autodiff.BackwardCapable](
	stage *VAE[B],
	data *tensor.Tensor[B],
	cfg FitConfig,
	backend B,
) error {
	s, err := sampler.NewEpoch(data, sampler.EpochConfig{
		Epochs:    cfg.Epochs,
		BatchSize: cfg.BatchSize,
		Seed:      cfg.Seed,
	})
	if err != nil {
		return err
	}
	opt := optim.NewAdam(stage.Parameters(), optim.AdamConfig{LR: cfg.LR})
	loss := func(batch *sampler.Batch[B]) (*tensor.Tensor[B], error) {
		return stage.Loss(batch.Data), nil
	}
	return train.Fit[B](stage, s, loss, opt, backend, train.Options[B]{
		ClipBound: cfg.ClipBound,
	})
}
