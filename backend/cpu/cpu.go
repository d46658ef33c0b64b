// Copyright 2026 The Latent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go CPU backend.
package cpu

import (
	internalcpu "github.com/latent-ml/latent/internal/backend/cpu"
	"github.com/latent-ml/latent/tensor"
)

// Backend is the CPU backend: pure Go kernels with a worker pool sized
// from the host CPU topology.
type Backend = internalcpu.Backend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a CPU backend with parallel kernels.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros(tensor.Shape{2, 3}, backend)
func New() *Backend {
	return internalcpu.New()
}

// NewSequential creates a single-threaded CPU backend, useful for
// deterministic benchmarking and tests.
func NewSequential() *Backend {
	return internalcpu.NewSequential()
}
