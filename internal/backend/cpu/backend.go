// Package cpu implements the tensor.Backend interface with pure Go
// kernels. Heavy kernels (matmul) parallelize across rows via
// internal/parallel; everything else runs sequentially.
package cpu

import (
	"fmt"

	"github.com/latent-ml/latent/internal/parallel"
	"github.com/latent-ml/latent/internal/tensor"
)

// Backend is the CPU compute backend.
type Backend struct {
	pool parallel.Config
}

// New creates a CPU backend with CPU-topology-derived parallelism.
func New() *Backend {
	return &Backend{pool: parallel.DefaultConfig()}
}

// NewSequential creates a CPU backend with parallelism disabled.
// Useful for deterministic profiling and small unit tests.
func NewSequential() *Backend {
	return &Backend{pool: parallel.Config{Enabled: false}}
}

// Name returns the backend name.
func (b *Backend) Name() string {
	return "cpu"
}

func mustRaw(shape tensor.Shape) *tensor.RawTensor {
	raw, err := tensor.NewRaw(shape)
	if err != nil {
		panic(err)
	}
	return raw
}

func require2D(op string, a *tensor.RawTensor) {
	if len(a.Shape()) != 2 {
		panic(fmt.Sprintf("%s: expected 2D tensor, got shape %v", op, a.Shape()))
	}
}
