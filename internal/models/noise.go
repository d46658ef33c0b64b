package models

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/latent-ml/latent/internal/tensor"
)

// NoiseSource draws latent prior samples of shape [dim, batch].
//
// Sampled tensors are constants with respect to the gradient tape:
// gradients never flow into the prior.
type NoiseSource[B tensor.Backend] interface {
	Sample(batch int) *tensor.Tensor[B]
	Dim() int
}

// newRNG seeds a private random source. A zero seed derives one from
// the clock.
//
//nolint:gosec // math/rand is appropriate for sampling noise
func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Gaussian samples standard normal noise on every call.
type Gaussian[B tensor.Backend] struct {
	dim     int
	rng     *rand.Rand
	backend B
}

// NewGaussian creates a standard normal noise source of the given
// dimensionality.
func NewGaussian[B tensor.Backend](dim int, seed int64, b B) (*Gaussian[B], error) {
	if dim <= 0 {
		return nil, fmt.Errorf("models: noise dim must be positive, got %d", dim)
	}
	return &Gaussian[B]{dim: dim, rng: newRNG(seed), backend: b}, nil
}

func (g *Gaussian[B]) Dim() int { return g.dim }

// Sample returns a fresh [dim, batch] draw from N(0, 1).
func (g *Gaussian[B]) Sample(batch int) *tensor.Tensor[B] {
	data := make([]float32, g.dim*batch)
	for i := range data {
		data[i] = float32(g.rng.NormFloat64())
	}
	t, err := tensor.FromSlice(data, tensor.Shape{g.dim, batch}, g.backend)
	if err != nil {
		panic(err)
	}
	return t
}

// Buffered preallocates a pool of prior samples and serves batches by
// gathering random columns from it. The pool amortizes the allocation
// cost of per-step noise when training for many iterations.
type Buffered[B tensor.Backend] struct {
	pool *tensor.Tensor[B]
	rng  *rand.Rand
}

// NewBuffered creates a buffered noise source backed by poolSize
// standard normal samples.
func NewBuffered[B tensor.Backend](dim, poolSize int, seed int64, b B) (*Buffered[B], error) {
	if dim <= 0 {
		return nil, fmt.Errorf("models: noise dim must be positive, got %d", dim)
	}
	if poolSize <= 0 {
		return nil, fmt.Errorf("models: noise pool size must be positive, got %d", poolSize)
	}
	rng := newRNG(seed)

	data := make([]float32, dim*poolSize)
	for i := range data {
		data[i] = float32(rng.NormFloat64())
	}
	pool, err := tensor.FromSlice(data, tensor.Shape{dim, poolSize}, b)
	if err != nil {
		return nil, err
	}
	return &Buffered[B]{pool: pool, rng: rng}, nil
}

func (n *Buffered[B]) Dim() int { return n.pool.Shape()[0] }

// Sample gathers batch random columns from the pool, with replacement.
func (n *Buffered[B]) Sample(batch int) *tensor.Tensor[B] {
	poolSize := n.pool.Shape().Samples()
	indices := make([]int, batch)
	for i := range indices {
		indices[i] = n.rng.Intn(poolSize)
	}
	return n.pool.TakeSamples(indices)
}
