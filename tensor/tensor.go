// Copyright 2026 The Latent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for tensor operations.
//
// The package defines the core types for float32 tensor math in
// sample-major layout (the last axis indexes samples):
//   - Tensor[B]: high-level generic tensor bound to a backend
//   - RawTensor: low-level shape-plus-buffer storage
//   - Backend: interface for device-specific compute implementations
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros(tensor.Shape{2, 3}, backend)
//	y := tensor.Ones(tensor.Shape{2, 3}, backend)
//	z := x.Add(y)  // Element-wise addition
package tensor

import (
	"github.com/latent-ml/latent/internal/tensor"
)

// Shape represents the dimensions of a tensor. The last axis indexes
// samples: Shape{4, 100} holds 100 samples of 4 features each.
type Shape = tensor.Shape

// RawTensor is the low-level tensor: a shape and a flat float32 buffer.
// Its identity (pointer) keys gradient lookups after a backward pass.
type RawTensor = tensor.RawTensor

// Backend is the compute interface tensors dispatch their operations
// through.
type Backend = tensor.Backend

// Tensor is a tensor bound to a backend.
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	x := tensor.Randn(tensor.Shape{784, 64}, backend)
//	y := x.Sigmoid().Mean()
type Tensor[B Backend] = tensor.Tensor[B]

// New creates a tensor from a raw tensor.
//
// This is a low-level function. Most users should use creation
// functions like Zeros, Ones, or FromSlice instead.
func New[B Backend](raw *RawTensor, b B) *Tensor[B] {
	return tensor.New(raw, b)
}

// NewRaw creates a raw tensor with the given shape.
func NewRaw(shape Shape) (*RawTensor, error) {
	return tensor.NewRaw(shape)
}

// Zeros creates a tensor filled with zeros.
func Zeros[B Backend](shape Shape, b B) *Tensor[B] {
	return tensor.Zeros(shape, b)
}

// Ones creates a tensor filled with ones.
func Ones[B Backend](shape Shape, b B) *Tensor[B] {
	return tensor.Ones(shape, b)
}

// Full creates a tensor filled with a constant value.
func Full[B Backend](shape Shape, value float32, b B) *Tensor[B] {
	return tensor.Full(shape, value, b)
}

// Randn creates a tensor with values drawn from N(0, 1).
func Randn[B Backend](shape Shape, b B) *Tensor[B] {
	return tensor.Randn(shape, b)
}

// Rand creates a tensor with values drawn from U(0, 1).
func Rand[B Backend](shape Shape, b B) *Tensor[B] {
	return tensor.Rand(shape, b)
}

// FromSlice creates a tensor by copying a Go slice.
//
// Example:
//
//	data := []float32{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3}, backend)
func FromSlice[B Backend](data []float32, shape Shape, b B) (*Tensor[B], error) {
	return tensor.FromSlice(data, shape, b)
}
