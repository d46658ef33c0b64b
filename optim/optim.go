// Copyright 2026 The Latent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimizers for gradient-based training.
//
// Optimizers compute parameter deltas; the train package applies them
// and clears gradients. See train.Update for the update rule.
package optim

import (
	"github.com/latent-ml/latent/internal/nn"
	"github.com/latent-ml/latent/internal/optim"
	"github.com/latent-ml/latent/internal/tensor"
)

// Optimizer computes per-parameter update deltas.
type Optimizer[B tensor.Backend] = optim.Optimizer[B]

// SGD is stochastic gradient descent with optional momentum.
type SGD[B tensor.Backend] = optim.SGD[B]

// SGDConfig configures SGD. Zero values select the defaults
// (LR 0.01, no momentum).
type SGDConfig = optim.SGDConfig

// NewSGD creates an SGD optimizer over the given parameters.
//
// Example:
//
//	model := nn.NewLinear(784, 10, backend)
//	opt := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
func NewSGD[B tensor.Backend](params []*nn.Parameter[B], cfg SGDConfig) *SGD[B] {
	return optim.NewSGD(params, cfg)
}

// Adam is the Adam optimizer with bias-corrected moment estimates.
type Adam[B tensor.Backend] = optim.Adam[B]

// AdamConfig configures Adam. Zero values select the defaults
// (LR 0.001, Beta1 0.9, Beta2 0.999, Eps 1e-8).
type AdamConfig = optim.AdamConfig

// NewAdam creates an Adam optimizer over the given parameters.
func NewAdam[B tensor.Backend](params []*nn.Parameter[B], cfg AdamConfig) *Adam[B] {
	return optim.NewAdam(params, cfg)
}
