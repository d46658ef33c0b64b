// Copyright 2026 The Latent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package models provides the autoencoder family: plain, variational,
// Wasserstein (MMD) and adversarial autoencoders, plus the two-stage
// VAE.
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	m, err := models.NewVAE(models.VAEConfig{
//	    AEConfig: models.AEConfig{
//	        InputDim:   784,
//	        HiddenDims: []int{128},
//	        LatentDim:  16,
//	    },
//	    Beta: 0.5,
//	}, backend)
package models

import (
	"github.com/latent-ml/latent/internal/autodiff"
	"github.com/latent-ml/latent/internal/models"
	"github.com/latent-ml/latent/internal/tensor"
)

// NoiseSource draws latent prior samples of shape [dim, batch].
type NoiseSource[B tensor.Backend] = models.NoiseSource[B]

// Gaussian samples standard normal noise on every call.
type Gaussian[B tensor.Backend] = models.Gaussian[B]

// NewGaussian creates a standard normal noise source.
func NewGaussian[B tensor.Backend](dim int, seed int64, b B) (*Gaussian[B], error) {
	return models.NewGaussian(dim, seed, b)
}

// Buffered serves noise batches from a preallocated sample pool.
type Buffered[B tensor.Backend] = models.Buffered[B]

// NewBuffered creates a buffered noise source backed by poolSize
// standard normal samples.
func NewBuffered[B tensor.Backend](dim, poolSize int, seed int64, b B) (*Buffered[B], error) {
	return models.NewBuffered(dim, poolSize, seed, b)
}

// AEConfig configures a plain autoencoder.
type AEConfig = models.AEConfig

// AE is a plain autoencoder with a Tanh MLP encoder and a mirrored
// sigmoid-output decoder.
type AE[B tensor.Backend] = models.AE[B]

// NewAE creates an autoencoder from the config.
func NewAE[B tensor.Backend](cfg AEConfig, b B) (*AE[B], error) {
	return models.NewAE(cfg, b)
}

// VAEConfig configures a variational autoencoder.
type VAEConfig = models.VAEConfig

// VAE is a variational autoencoder trained on the negative ELBO.
type VAE[B tensor.Backend] = models.VAE[B]

// NewVAE creates a variational autoencoder from the config.
func NewVAE[B tensor.Backend](cfg VAEConfig, b B) (*VAE[B], error) {
	return models.NewVAE(cfg, b)
}

// NewVAEWithNoise creates a variational autoencoder with an explicit
// reparameterization noise source.
func NewVAEWithNoise[B tensor.Backend](cfg VAEConfig, noise NoiseSource[B], b B) (*VAE[B], error) {
	return models.NewVAEWithNoise(cfg, noise, b)
}

// WAEConfig configures a Wasserstein autoencoder.
type WAEConfig = models.WAEConfig

// WAE is a Wasserstein autoencoder with an RBF-kernel MMD penalty.
type WAE[B tensor.Backend] = models.WAE[B]

// NewWAE creates a Wasserstein autoencoder from the config.
func NewWAE[B tensor.Backend](cfg WAEConfig, b B) (*WAE[B], error) {
	return models.NewWAE(cfg, b)
}

// MMD computes the maximum mean discrepancy between two column-sample
// sets under an RBF kernel of the given bandwidth.
func MMD[B tensor.Backend](x, y *tensor.Tensor[B], sigma float32) *tensor.Tensor[B] {
	return models.MMD(x, y, sigma)
}

// AAEConfig configures an adversarial autoencoder.
type AAEConfig = models.AAEConfig

// AAE is an adversarial autoencoder: reconstruction plus a latent
// discriminator trained against the encoder.
type AAE[B tensor.Backend] = models.AAE[B]

// NewAAE creates an adversarial autoencoder from the config.
func NewAAE[B tensor.Backend](cfg AAEConfig, b B) (*AAE[B], error) {
	return models.NewAAE(cfg, b)
}

// TwoStageConfig configures a two-stage VAE.
type TwoStageConfig = models.TwoStageConfig

// TwoStage is a two-stage VAE: the second stage learns the
// distribution of the first stage's latents.
type TwoStage[B tensor.Backend] = models.TwoStage[B]

// NewTwoStage creates both stages from the config.
func NewTwoStage[B tensor.Backend](cfg TwoStageConfig, b B) (*TwoStage[B], error) {
	return models.NewTwoStage(cfg, b)
}

// FitConfig configures one stage of two-stage training.
type FitConfig = models.FitConfig

// FitTwoStage trains the first stage on the data, then the second
// stage on the first stage's posterior means.
func FitTwoStage[B autodiff.BackwardCapable](
	m *TwoStage[B],
	data *tensor.Tensor[B],
	first, second FitConfig,
	backend B,
) error {
	return models.FitTwoStage(m, data, first, second, backend)
}
