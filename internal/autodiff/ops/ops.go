// Package ops defines the differentiable operations recorded on the
// gradient tape. Each operation captures its inputs and output during
// the forward pass and knows how to push an upstream gradient back to
// its inputs.
package ops

import "github.com/latent-ml/latent/internal/tensor"

// Operation is one recorded forward-pass step.
type Operation interface {
	// Output returns the tensor this operation produced.
	Output() *tensor.RawTensor

	// Backward propagates the upstream gradient of the output into the
	// grads map, accumulating per input. Computations run on b directly,
	// so they are never themselves recorded.
	Backward(grad *tensor.RawTensor, grads map[*tensor.RawTensor]*tensor.RawTensor, b tensor.Backend)
}

// accumulate adds g to the gradient stored for key, or installs it.
func accumulate(grads map[*tensor.RawTensor]*tensor.RawTensor, key, g *tensor.RawTensor, b tensor.Backend) {
	if existing, ok := grads[key]; ok {
		grads[key] = b.Add(existing, g)
		return
	}
	grads[key] = g
}

// reduceTo sums grad down to the given broadcast-origin shape. The
// forward broadcast replicated the operand across rows, columns or the
// whole tensor; its gradient is the matching sum.
func reduceTo(grad *tensor.RawTensor, shape tensor.Shape, b tensor.Backend) *tensor.RawTensor {
	gs := grad.Shape()
	switch {
	case gs.Equal(shape):
		return grad
	case shape.NumElements() == 1:
		out := b.Sum(grad)
		if len(shape) == 2 {
			// Preserve a [1, 1] operand shape.
			r, err := tensor.NewRawFrom(out.Data(), shape)
			if err != nil {
				panic(err)
			}
			return r
		}
		return out
	case len(shape) == 2 && shape[1] == 1:
		return b.SumAxis(grad, 1)
	case len(shape) == 2 && shape[0] == 1:
		return b.SumAxis(grad, 0)
	default:
		panic("ops: cannot reduce gradient of shape " + gs.String() + " to " + shape.String())
	}
}

// fill returns a tensor shaped like ref with every element set to v.
func fill(ref *tensor.RawTensor, v float32) *tensor.RawTensor {
	out, err := tensor.NewRaw(ref.Shape())
	if err != nil {
		panic(err)
	}
	data := out.Data()
	for i := range data {
		data[i] = v
	}
	return out
}
