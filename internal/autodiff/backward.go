package autodiff

import "github.com/latent-ml/latent/internal/tensor"

// BackwardCapable is the backend contract the training driver requires:
// a regular compute backend that can also replay its tape in reverse.
type BackwardCapable interface {
	tensor.Backend
	Tape() *GradientTape
	Backward(loss *tensor.RawTensor) map[*tensor.RawTensor]*tensor.RawTensor
}

// Backward computes gradients of loss with respect to every tensor on
// the tape, by reverse traversal. Recording stops before the sweep so
// the backward computations themselves are not recorded.
//
// The returned map is keyed by RawTensor identity; tensors that did not
// contribute to the loss are absent.
func (b *Backend[B]) Backward(loss *tensor.RawTensor) map[*tensor.RawTensor]*tensor.RawTensor {
	b.tape.StopRecording()

	grads := make(map[*tensor.RawTensor]*tensor.RawTensor)

	// Seed: dL/dL = 1.
	seed, err := tensor.NewRaw(loss.Shape())
	if err != nil {
		panic(err)
	}
	for i := range seed.Data() {
		seed.Data()[i] = 1
	}
	grads[loss] = seed

	for i := len(b.tape.operations) - 1; i >= 0; i-- {
		op := b.tape.operations[i]
		grad, ok := grads[op.Output()]
		if !ok {
			// Operation did not contribute to the loss.
			continue
		}
		op.Backward(grad, grads, b.inner)
	}

	return grads
}
