package sampler

import (
	"fmt"
	"math/rand"

	"github.com/latent-ml/latent/internal/tensor"
)

// Uniform draws a fixed number of independently sampled batches.
//
// Each call to Next draws batchSize indices uniformly at random, with
// or without replacement per configuration. Draws are independent: the
// same sample may appear in several batches (and, with replacement,
// several times within one batch). There is no coverage guarantee.
type Uniform[B tensor.Backend] struct {
	data        *tensor.Tensor[B]
	n           int
	batchSize   int
	replacement bool
	iterations  int
	iteration   int
	seed        int64
	rng         *rand.Rand
}

// UniformConfig configures a Uniform sampler.
type UniformConfig struct {
	// Iterations is the number of batches to produce. Required.
	Iterations int

	// BatchSize is the requested batch size. Required. Clamped to the
	// dataset size when sampling without replacement.
	BatchSize int

	// Replacement selects sampling with replacement. Default: without.
	Replacement bool

	// Seed seeds the sampler's random source; 0 means time-derived.
	Seed int64
}

// NewUniform creates a Uniform sampler over data.
func NewUniform[B tensor.Backend](data *tensor.Tensor[B], cfg UniformConfig) (*Uniform[B], error) {
	if cfg.Iterations <= 0 {
		return nil, fmt.Errorf("uniform sampler: iterations must be positive, got %d", cfg.Iterations)
	}
	if cfg.BatchSize <= 0 {
		return nil, fmt.Errorf("uniform sampler: batch size must be positive, got %d", cfg.BatchSize)
	}

	n := data.Shape().Samples()
	return &Uniform[B]{
		data:        data,
		n:           n,
		batchSize:   clampBatchSize(n, cfg.BatchSize, cfg.Replacement),
		replacement: cfg.Replacement,
		iterations:  cfg.Iterations,
		seed:        cfg.Seed,
		rng:         newRNG(cfg.Seed),
	}, nil
}

// BatchSize returns the effective (possibly clamped) batch size.
func (u *Uniform[B]) BatchSize() int {
	return u.batchSize
}

// Next draws the next random batch, or reports exhaustion.
func (u *Uniform[B]) Next() (*Batch[B], bool) {
	if u.iteration >= u.iterations {
		return nil, false
	}
	u.iteration++

	var indices []int
	if u.replacement {
		indices = make([]int, u.batchSize)
		for i := range indices {
			indices[i] = u.rng.Intn(u.n)
		}
	} else {
		indices = u.rng.Perm(u.n)[:u.batchSize]
	}

	return &Batch[B]{
		Data:    u.data.TakeSamples(indices),
		Indices: indices,
	}, true
}

// Reset rewinds the sampler. A fresh random source is derived so a
// reproducibly seeded sampler replays the same draw order.
func (u *Uniform[B]) Reset() {
	u.iteration = 0
	u.rng = newRNG(u.seed)
}
