// Copyright 2026 The Latent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train provides the generic training driver.
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	model := nn.NewLinear(2, 2, backend)
//	opt := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.1})
//
//	s, _ := sampler.NewEpoch(data, sampler.EpochConfig{Epochs: 10, BatchSize: 32})
//	err := train.Fit(model, s, func(batch *sampler.Batch[B]) (*tensor.Tensor[B], error) {
//	    return nn.MSE(model.Forward(batch.Data), batch.Data), nil
//	}, opt, backend, train.Options[B]{})
package train

import (
	"github.com/latent-ml/latent/internal/autodiff"
	"github.com/latent-ml/latent/internal/nn"
	"github.com/latent-ml/latent/internal/optim"
	"github.com/latent-ml/latent/internal/sampler"
	"github.com/latent-ml/latent/internal/tensor"
	"github.com/latent-ml/latent/internal/train"
)

// LossFn evaluates a scalar loss on a batch.
type LossFn[B tensor.Backend] = train.LossFn[B]

// Objective pairs a loss with the optimizer that consumes its
// gradients.
type Objective[B tensor.Backend] = train.Objective[B]

// Options configures a training run.
type Options[B tensor.Backend] = train.Options[B]

// Train runs the driver over a precomputed batch sequence: per batch,
// every objective is evaluated, backpropagated and applied in order,
// then the callback observes the step.
func Train[B autodiff.BackwardCapable](
	model nn.Module[B],
	batches []*sampler.Batch[B],
	objectives []Objective[B],
	backend B,
	opts Options[B],
) error {
	return train.Train(model, batches, objectives, backend, opts)
}

// Fit is the single-objective convenience wrapper over Train.
func Fit[B autodiff.BackwardCapable](
	model nn.Module[B],
	s sampler.Sampler[B],
	loss LossFn[B],
	opt optim.Optimizer[B],
	backend B,
	opts Options[B],
) error {
	return train.Fit(model, s, loss, opt, backend, opts)
}

// Update applies one optimizer step to every parameter with a gradient
// and clears the gradients.
func Update[B tensor.Backend](opt optim.Optimizer[B]) {
	train.Update(opt)
}

// Clip bounds every element of grad to [-bound, bound] in place.
func Clip[B tensor.Backend](grad *tensor.Tensor[B], bound float32) {
	train.Clip(grad, bound)
}

// Metric is one named scalar observed during training.
type Metric = train.Metric

// MetricFn extracts the current scalar metrics from a model on a batch.
type MetricFn[B tensor.Backend] = train.MetricFn[B]

// Step is the per-step observation handed to callbacks.
type Step[B tensor.Backend] = train.Step[B]

// Callback observes one training step.
type Callback[B tensor.Backend] = train.Callback[B]

// Nop is the no-op callback.
type Nop[B tensor.Backend] = train.Nop[B]

// History is a metric sink of named scalar series.
type History = train.History

// NewHistory creates an empty history.
func NewHistory() *History {
	return train.NewHistory()
}

// Tracking is the stateful observer: step counting, metric history and
// progress rendering.
type Tracking[B tensor.Backend] = train.Tracking[B]

// TrackingConfig configures a Tracking callback.
type TrackingConfig[B tensor.Backend] = train.TrackingConfig[B]

// NewTracking creates a Tracking callback.
func NewTracking[B tensor.Backend](cfg TrackingConfig[B]) *Tracking[B] {
	return train.NewTracking(cfg)
}
