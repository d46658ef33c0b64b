package sampler

import (
	"fmt"
	"math/rand"

	"github.com/latent-ml/latent/internal/tensor"
)

// Epoch produces full-coverage epochs: within one epoch the batches
// partition the dataset's index set exactly: every sample appears
// once and none repeats. Sampling is always without replacement.
//
// The sampler keeps a shuffle buffer holding the not-yet-emitted
// indices of the current epoch. Batches peel indices off the front;
// when the remainder fits in one batch it is emitted whole (possibly
// short), the buffer is regenerated as a fresh permutation, and the
// epoch counter advances.
//
// If batchSize >= N, every epoch is a single batch containing the whole
// dataset in a fresh random order.
type Epoch[B tensor.Backend] struct {
	data      *tensor.Tensor[B]
	n         int
	batchSize int
	epochs    int
	perEpoch  int
	epoch     int
	buffer    []int
	seed      int64
	rng       *rand.Rand
}

// EpochConfig configures an Epoch sampler.
type EpochConfig struct {
	// Epochs is the number of full passes over the dataset. Required.
	Epochs int

	// BatchSize is the requested batch size. Required. Clamped to the
	// dataset size (coverage requires sampling without replacement).
	BatchSize int

	// Seed seeds the shuffle order; 0 means time-derived.
	Seed int64
}

// NewEpoch creates an Epoch sampler over data.
func NewEpoch[B tensor.Backend](data *tensor.Tensor[B], cfg EpochConfig) (*Epoch[B], error) {
	if cfg.Epochs <= 0 {
		return nil, fmt.Errorf("epoch sampler: epochs must be positive, got %d", cfg.Epochs)
	}
	if cfg.BatchSize <= 0 {
		return nil, fmt.Errorf("epoch sampler: batch size must be positive, got %d", cfg.BatchSize)
	}

	n := data.Shape().Samples()
	batchSize := clampBatchSize(n, cfg.BatchSize, false)

	e := &Epoch[B]{
		data:      data,
		n:         n,
		batchSize: batchSize,
		epochs:    cfg.Epochs,
		perEpoch:  (n + batchSize - 1) / batchSize,
		seed:      cfg.Seed,
		rng:       newRNG(cfg.Seed),
	}
	e.buffer = e.rng.Perm(n)
	return e, nil
}

// BatchSize returns the effective (possibly clamped) batch size.
func (e *Epoch[B]) BatchSize() int {
	return e.batchSize
}

// IterationsPerEpoch returns ceil(N / batchSize), the number of batches
// each epoch yields.
func (e *Epoch[B]) IterationsPerEpoch() int {
	return e.perEpoch
}

// Next emits the next batch of the current epoch, or reports
// exhaustion once all epochs are consumed.
func (e *Epoch[B]) Next() (*Batch[B], bool) {
	if e.epoch >= e.epochs {
		return nil, false
	}

	var indices []int
	if len(e.buffer) > e.batchSize {
		indices = e.buffer[:e.batchSize]
		e.buffer = e.buffer[e.batchSize:]
	} else {
		// Remainder of the epoch: may be shorter than batchSize.
		indices = e.buffer
		e.buffer = e.rng.Perm(e.n)
		e.epoch++
	}

	return &Batch[B]{
		Data:    e.data.TakeSamples(indices),
		Indices: indices,
	}, true
}

// Reset rewinds the epoch counter and regenerates the shuffle buffer.
func (e *Epoch[B]) Reset() {
	e.epoch = 0
	e.rng = newRNG(e.seed)
	e.buffer = e.rng.Perm(e.n)
}
