// Copyright 2026 The Latent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks: layers,
// activations, parameters and loss functions in feature-major layout
// (inputs have shape [features, batch]).
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	model := nn.NewSequential[*autodiff.Backend[*cpu.Backend]](
//	    nn.NewLinear(784, 128, backend),
//	    nn.NewTanh[*autodiff.Backend[*cpu.Backend]](),
//	    nn.NewLinear(128, 10, backend),
//	)
package nn

import (
	"github.com/latent-ml/latent/internal/nn"
	"github.com/latent-ml/latent/internal/tensor"
)

// Module is anything with a forward pass and trainable parameters.
type Module[B tensor.Backend] = nn.Module[B]

// Parameter is a trainable tensor with an accumulated gradient.
type Parameter[B tensor.Backend] = nn.Parameter[B]

// NewParameter creates a trainable parameter around an initialized
// tensor.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[B]) *Parameter[B] {
	return nn.NewParameter(name, t)
}

// Linear is a fully connected layer computing W @ x + bias.
type Linear[B tensor.Backend] = nn.Linear[B]

// NewLinear creates a Linear layer with Xavier-initialized weights and
// zero biases.
func NewLinear[B tensor.Backend](inFeatures, outFeatures int, b B) *Linear[B] {
	return nn.NewLinear(inFeatures, outFeatures, b)
}

// Sequential chains modules, feeding each output into the next.
type Sequential[B tensor.Backend] = nn.Sequential[B]

// NewSequential creates a Sequential container over the given layers.
func NewSequential[B tensor.Backend](layers ...Module[B]) *Sequential[B] {
	return nn.NewSequential(layers...)
}

// Sigmoid is the logistic activation module.
type Sigmoid[B tensor.Backend] = nn.Sigmoid[B]

// NewSigmoid creates a Sigmoid activation.
func NewSigmoid[B tensor.Backend]() *Sigmoid[B] { return nn.NewSigmoid[B]() }

// Tanh is the hyperbolic tangent activation module.
type Tanh[B tensor.Backend] = nn.Tanh[B]

// NewTanh creates a Tanh activation.
func NewTanh[B tensor.Backend]() *Tanh[B] { return nn.NewTanh[B]() }

// ReLU is the rectified linear activation module.
type ReLU[B tensor.Backend] = nn.ReLU[B]

// NewReLU creates a ReLU activation.
func NewReLU[B tensor.Backend]() *ReLU[B] { return nn.NewReLU[B]() }

// MSE computes the mean squared error between predictions and targets.
func MSE[B tensor.Backend](pred, target *tensor.Tensor[B]) *tensor.Tensor[B] {
	return nn.MSE(pred, target)
}

// BCE computes the mean binary cross-entropy between predictions in
// (0, 1) and binary targets.
func BCE[B tensor.Backend](pred, target *tensor.Tensor[B]) *tensor.Tensor[B] {
	return nn.BCE(pred, target)
}

// Xavier creates a [fanOut, fanIn] weight tensor with Xavier uniform
// initialization.
func Xavier[B tensor.Backend](fanIn, fanOut int, b B) *tensor.Tensor[B] {
	return nn.Xavier(fanIn, fanOut, b)
}

// He creates a [fanOut, fanIn] weight tensor with He normal
// initialization.
func He[B tensor.Backend](fanIn, fanOut int, b B) *tensor.Tensor[B] {
	return nn.He(fanIn, fanOut, b)
}
