package nn

import "github.com/latent-ml/latent/internal/tensor"

// bceEps keeps log arguments away from zero.
const bceEps = 1e-7

// MSE computes mean((pred - target)²) through tensor operations, so
// gradients flow when the backend records a tape.
//
// The mean normalizes by the actual element count: shorter trailing
// batches from an epoch sampler weigh each element identically.
func MSE[B tensor.Backend](pred, target *tensor.Tensor[B]) *tensor.Tensor[B] {
	if !pred.Shape().Equal(target.Shape()) {
		panic("MSE: predictions and targets must have the same shape")
	}
	diff := pred.Sub(target)
	return diff.Mul(diff).Mean()
}

// BCE computes the mean binary cross-entropy
// -mean(t·log(p) + (1-t)·log(1-p)) with epsilon-guarded logs.
// Predictions are expected in (0, 1), e.g. sigmoid outputs.
func BCE[B tensor.Backend](pred, target *tensor.Tensor[B]) *tensor.Tensor[B] {
	if !pred.Shape().Equal(target.Shape()) {
		panic("BCE: predictions and targets must have the same shape")
	}
	logP := pred.AddScalar(bceEps).Log()
	logNotP := pred.Scale(-1).AddScalar(1 + bceEps).Log()
	oneMinusT := target.Scale(-1).AddScalar(1)

	return target.Mul(logP).Add(oneMinusT.Mul(logNotP)).Mean().Scale(-1)
}
