// Copyright 2026 The Latent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation.
//
// It wraps any backend with a gradient tape: operations run while the
// tape records are replayed backwards to produce gradients.
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	backend.Tape().StartRecording()
//
//	x := tensor.Randn(tensor.Shape{2, 3}, backend)
//	loss := x.Mul(x).Mean()
//
//	grads := backend.Backward(loss.Raw())
//	backend.Tape().Reset()
package autodiff

import (
	"github.com/latent-ml/latent/internal/autodiff"
	"github.com/latent-ml/latent/internal/tensor"
)

// Backend is the autodiff-enabled backend decorating an inner backend.
type Backend[B tensor.Backend] = autodiff.Backend[B]

// New creates an autodiff backend wrapping the given backend.
func New[B tensor.Backend](inner B) *Backend[B] {
	return autodiff.New(inner)
}

// GradientTape records operations for automatic differentiation.
type GradientTape = autodiff.GradientTape

// BackwardCapable is the backend interface required by the training
// driver: a recording tape plus a backward pass.
type BackwardCapable = autodiff.BackwardCapable
