// Package sampler implements the batch-scheduling engine: samplers turn
// a fixed dataset into an ordered, finite sequence of batches.
//
// Two policies are provided. Uniform draws a fixed number of
// independently sampled batches with no coverage guarantee; Epoch
// guarantees every sample is drawn exactly once per epoch (modulo a
// trailing short batch).
//
// Samplers never copy the dataset. Each batch is an index-selected copy
// along the sample axis (the last axis); the source tensor is shared,
// read-only state.
package sampler

import (
	"log"
	"math/rand"
	"time"

	"github.com/latent-ml/latent/internal/tensor"
)

// Batch is one index-selected slice of the dataset.
//
// Len may be smaller than the configured batch size: the Epoch sampler
// emits a trailing short batch when the dataset size is not divisible
// by the batch size. Consumers must tolerate variable batch length.
type Batch[B tensor.Backend] struct {
	// Data holds the selected samples, sample axis last.
	Data *tensor.Tensor[B]

	// Indices are the dataset positions this batch was drawn from.
	Indices []int
}

// Len returns the number of samples in the batch.
func (b *Batch[B]) Len() int {
	return len(b.Indices)
}

// Sampler produces an ordered, finite sequence of batches.
type Sampler[B tensor.Backend] interface {
	// Next returns the next batch, or (nil, false) once the sampler is
	// exhausted. Calling Next on an exhausted sampler is idempotent.
	Next() (*Batch[B], bool)

	// Reset returns the sampler to its initial, un-exhausted state,
	// reusing its dataset reference. The random source is reinitialized
	// from the configured seed.
	Reset()
}

// CollectAll drains the sampler, returning every batch it produces in
// order. Used to precompute a full training curriculum.
func CollectAll[B tensor.Backend](s Sampler[B]) []*Batch[B] {
	var batches []*Batch[B]
	for {
		batch, ok := s.Next()
		if !ok {
			return batches
		}
		batches = append(batches, batch)
	}
}

// Indexed pairs a batch with its 1-based sequence position.
type Indexed[B tensor.Backend] struct {
	N     int
	Batch *Batch[B]
}

// Enumerate drains the sampler like CollectAll, pairing each batch with
// its 1-based sequence index.
func Enumerate[B tensor.Backend](s Sampler[B]) []Indexed[B] {
	var out []Indexed[B]
	for {
		batch, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, Indexed[B]{N: len(out) + 1, Batch: batch})
	}
}

// clampBatchSize applies the shared admission rule: sampling without
// replacement cannot draw more than the population, so the batch size
// is clamped to n with a warning. With replacement any size is legal.
func clampBatchSize(n, batchSize int, withReplacement bool) int {
	if !withReplacement && batchSize > n {
		log.Printf("sampler: batch size %d exceeds dataset size %d without replacement, clamping to %d", batchSize, n, n)
		return n
	}
	return batchSize
}

// newRNG builds the sampler-owned random source. Seed 0 means
// time-derived; any other value gives a reproducible draw order.
func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	//nolint:gosec // math/rand is appropriate for batch scheduling
	return rand.New(rand.NewSource(seed))
}
