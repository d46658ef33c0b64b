// Copyright 2026 The Latent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package sampler provides batch scheduling over sample-major datasets.
//
// A sampler turns a dataset tensor (last axis indexing samples) into a
// finite stream of batches. Two strategies are provided: Uniform draws
// a fixed number of random batches, Epoch partitions the dataset into
// shuffled epochs.
//
// Example:
//
//	s, err := sampler.NewEpoch(data, sampler.EpochConfig{
//	    Epochs:    10,
//	    BatchSize: 64,
//	    Seed:      42,
//	})
//	for batch, ok := s.Next(); ok; batch, ok = s.Next() {
//	    // batch.Data has shape [features, batchSize]
//	}
package sampler

import (
	"github.com/latent-ml/latent/internal/sampler"
	"github.com/latent-ml/latent/internal/tensor"
)

// Batch is one scheduled batch: the gathered data and the dataset
// indices it was drawn from.
type Batch[B tensor.Backend] = sampler.Batch[B]

// Sampler is a finite batch stream with replayable randomness.
type Sampler[B tensor.Backend] = sampler.Sampler[B]

// Indexed is a batch paired with its 1-based position in the stream.
type Indexed[B tensor.Backend] = sampler.Indexed[B]

// Uniform draws batches of uniformly random samples, with or without
// replacement within each batch.
type Uniform[B tensor.Backend] = sampler.Uniform[B]

// UniformConfig configures a Uniform sampler.
type UniformConfig = sampler.UniformConfig

// NewUniform creates a Uniform sampler over the dataset.
func NewUniform[B tensor.Backend](data *tensor.Tensor[B], cfg UniformConfig) (*Uniform[B], error) {
	return sampler.NewUniform(data, cfg)
}

// Epoch partitions the dataset into shuffled epochs of batches; the
// last batch of an epoch may be short.
type Epoch[B tensor.Backend] = sampler.Epoch[B]

// EpochConfig configures an Epoch sampler.
type EpochConfig = sampler.EpochConfig

// NewEpoch creates an Epoch sampler over the dataset.
func NewEpoch[B tensor.Backend](data *tensor.Tensor[B], cfg EpochConfig) (*Epoch[B], error) {
	return sampler.NewEpoch(data, cfg)
}

// CollectAll drains the sampler into a slice of batches.
func CollectAll[B tensor.Backend](s Sampler[B]) []*Batch[B] {
	return sampler.CollectAll(s)
}

// Enumerate drains the sampler into 1-based indexed batches.
func Enumerate[B tensor.Backend](s Sampler[B]) []Indexed[B] {
	return sampler.Enumerate(s)
}
