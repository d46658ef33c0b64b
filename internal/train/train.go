// Package train implements the generic training driver: it wires a
// batch sequence to loss evaluation, backpropagation, parameter
// updates, gradient clipping and a per-step observer callback.
//
// The driver is a plain sequential loop. Exactly one batch is in flight
// at a time; a run stops by exhausting its batch sequence or by the
// first unrecovered error.
package train

import (
	"fmt"
	"runtime"

	"github.com/latent-ml/latent/internal/autodiff"
	"github.com/latent-ml/latent/internal/nn"
	"github.com/latent-ml/latent/internal/optim"
	"github.com/latent-ml/latent/internal/sampler"
	"github.com/latent-ml/latent/internal/tensor"
)

// LossFn evaluates a scalar loss on a batch. The returned tensor must
// be a single element and must have been computed through the recording
// backend so gradients can flow.
type LossFn[B tensor.Backend] func(batch *sampler.Batch[B]) (*tensor.Tensor[B], error)

// Objective pairs a loss with the optimizer that consumes its
// gradients. Multi-objective runs (adversarial, two-stage) pass several
// objectives; each is evaluated, backpropagated and applied in order
// against the same batch.
type Objective[B tensor.Backend] struct {
	Loss LossFn[B]
	Opt  optim.Optimizer[B]
}

// Options configures a training run.
type Options[B tensor.Backend] struct {
	// ClipBound, when positive, bounds gradients elementwise to
	// [-ClipBound, ClipBound] before each update.
	ClipBound float32

	// MemoryEfficient forces a garbage-collection pass after every
	// batch, trading throughput for peak memory. Useful when batches
	// are large relative to available memory.
	MemoryEfficient bool

	// Transfer is the device-placement hook applied to each batch
	// before processing. Nil means identity.
	Transfer func(*sampler.Batch[B]) *sampler.Batch[B]

	// Callback observes every step. Nil means no observation.
	Callback Callback[B]
}

// Train runs the driver over a precomputed batch sequence (typically
// sampler.CollectAll over a configured sampler).
//
// For each batch, in order: the transfer hook runs, then every
// objective evaluates its loss, backpropagates, clips (when enabled)
// and updates its parameters, then the callback observes the step.
// Any error aborts the whole run; there is no retry and no
// partial-failure recovery.
func Train[B autodiff.BackwardCapable](
	model nn.Module[B],
	batches []*sampler.Batch[B],
	objectives []Objective[B],
	backend B,
	opts Options[B],
) error {
	if len(objectives) == 0 {
		return fmt.Errorf("train: no objectives given")
	}

	for i, batch := range batches {
		if opts.Transfer != nil {
			batch = opts.Transfer(batch)
		}

		for _, obj := range objectives {
			if err := step(batch, obj, backend, opts.ClipBound); err != nil {
				return fmt.Errorf("train: batch %d: %w", i+1, err)
			}
		}

		if opts.Callback != nil {
			opts.Callback.OnStep(Step[B]{
				Model:      model,
				Batch:      batch,
				Objectives: objectives,
			})
		}

		if opts.MemoryEfficient {
			runtime.GC()
		}
	}
	return nil
}

// step runs one objective against one batch: forward with recording,
// backward, gradient deposit, optional clip, update.
func step[B autodiff.BackwardCapable](
	batch *sampler.Batch[B],
	obj Objective[B],
	backend B,
	clipBound float32,
) error {
	tape := backend.Tape()
	tape.StartRecording()
	defer tape.Reset()

	loss, err := obj.Loss(batch)
	if err != nil {
		return err
	}
	if loss.NumElements() != 1 {
		return fmt.Errorf("loss must be scalar, got shape %v", loss.Shape())
	}

	grads := backend.Backward(loss.Raw())

	for _, p := range obj.Opt.Params() {
		if g, ok := grads[p.Tensor().Raw()]; ok {
			p.AddGrad(tensor.New(g, backend))
		}
		if clipBound > 0 && p.Grad() != nil {
			Clip(p.Grad(), clipBound)
		}
	}

	Update(obj.Opt)
	return nil
}

// Fit is the single-objective convenience wrapper: it drains the
// sampler into a curriculum and trains over it.
func Fit[B autodiff.BackwardCapable](
	model nn.Module[B],
	s sampler.Sampler[B],
	loss LossFn[B],
	opt optim.Optimizer[B],
	backend B,
	opts Options[B],
) error {
	batches := sampler.CollectAll(s)
	return Train(model, batches, []Objective[B]{{Loss: loss, Opt: opt}}, backend, opts)
}
