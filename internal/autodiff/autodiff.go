// Package autodiff implements reverse-mode automatic differentiation
// using the decorator pattern.
//
// Backend[B] wraps any tensor.Backend and records every differentiable
// operation on a GradientTape during the forward pass. Backward walks
// the tape in reverse, accumulating gradients keyed by RawTensor
// identity.
//
// Usage:
//
//	b := autodiff.New(cpu.New())
//	b.Tape().StartRecording()
//	loss := lossFn(batch)             // ops recorded
//	grads := b.Backward(loss.Raw())   // reverse sweep
//	b.Tape().Reset()
package autodiff

import (
	"github.com/latent-ml/latent/internal/autodiff/ops"
	"github.com/latent-ml/latent/internal/tensor"
)

// Backend wraps an inner backend and adds gradient tracking.
type Backend[B tensor.Backend] struct {
	inner B
	tape  *GradientTape
}

// New creates an autodiff backend wrapping the given backend.
func New[B tensor.Backend](inner B) *Backend[B] {
	return &Backend[B]{inner: inner, tape: NewGradientTape()}
}

// Inner returns the wrapped backend.
func (b *Backend[B]) Inner() B {
	return b.inner
}

// Tape returns the gradient tape for recording control.
func (b *Backend[B]) Tape() *GradientTape {
	return b.tape
}

// Name returns the decorated backend name.
func (b *Backend[B]) Name() string {
	return "autodiff(" + b.inner.Name() + ")"
}

func (b *Backend[B]) record(op ops.Operation) {
	if b.tape.IsRecording() {
		b.tape.Record(op)
	}
}

// Add performs a + b and records the operation.
func (b *Backend[B]) Add(x, y *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Add(x, y)
	b.record(ops.NewAddOp(x, y, out))
	return out
}

// Sub performs a - b and records the operation.
func (b *Backend[B]) Sub(x, y *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Sub(x, y)
	b.record(ops.NewSubOp(x, y, out))
	return out
}

// Mul performs elementwise multiplication and records the operation.
func (b *Backend[B]) Mul(x, y *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Mul(x, y)
	b.record(ops.NewMulOp(x, y, out))
	return out
}

// Div performs elementwise division and records the operation.
func (b *Backend[B]) Div(x, y *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Div(x, y)
	b.record(ops.NewDivOp(x, y, out))
	return out
}

// Scale multiplies by a constant and records the operation.
func (b *Backend[B]) Scale(x *tensor.RawTensor, s float32) *tensor.RawTensor {
	out := b.inner.Scale(x, s)
	b.record(ops.NewScaleOp(x, out, s))
	return out
}

// AddScalar adds a constant and records the operation.
func (b *Backend[B]) AddScalar(x *tensor.RawTensor, s float32) *tensor.RawTensor {
	out := b.inner.AddScalar(x, s)
	b.record(ops.NewAddScalarOp(x, out))
	return out
}

// MatMul performs matrix multiplication and records the operation.
func (b *Backend[B]) MatMul(x, y *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.MatMul(x, y)
	b.record(ops.NewMatMulOp(x, y, out))
	return out
}

// Transpose transposes a 2D tensor and records the operation.
func (b *Backend[B]) Transpose(x *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Transpose(x)
	b.record(ops.NewTransposeOp(x, out))
	return out
}

// Sigmoid applies the logistic function and records the operation.
func (b *Backend[B]) Sigmoid(x *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Sigmoid(x)
	b.record(ops.NewSigmoidOp(x, out))
	return out
}

// Tanh applies tanh and records the operation.
func (b *Backend[B]) Tanh(x *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Tanh(x)
	b.record(ops.NewTanhOp(x, out))
	return out
}

// ReLU applies max(0, x) and records the operation.
func (b *Backend[B]) ReLU(x *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.ReLU(x)
	b.record(ops.NewReLUOp(x, out))
	return out
}

// Exp applies e^x and records the operation.
func (b *Backend[B]) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Exp(x)
	b.record(ops.NewExpOp(x, out))
	return out
}

// Log applies the natural logarithm and records the operation.
func (b *Backend[B]) Log(x *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Log(x)
	b.record(ops.NewLogOp(x, out))
	return out
}

// Clamp bounds elements to [lo, hi] and records the operation.
func (b *Backend[B]) Clamp(x *tensor.RawTensor, lo, hi float32) *tensor.RawTensor {
	out := b.inner.Clamp(x, lo, hi)
	b.record(ops.NewClampOp(x, out, lo, hi))
	return out
}

// Sum reduces to a scalar and records the operation.
func (b *Backend[B]) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Sum(x)
	b.record(ops.NewSumOp(x, out))
	return out
}

// Mean reduces to a scalar and records the operation.
func (b *Backend[B]) Mean(x *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Mean(x)
	b.record(ops.NewMeanOp(x, out))
	return out
}

// SumAxis reduces one axis and records the operation.
func (b *Backend[B]) SumAxis(x *tensor.RawTensor, axis int) *tensor.RawTensor {
	out := b.inner.SumAxis(x, axis)
	b.record(ops.NewSumAxisOp(x, out))
	return out
}

// TakeSamples gathers sample indices. Datasets are constants, so the
// gather is not recorded.
func (b *Backend[B]) TakeSamples(x *tensor.RawTensor, indices []int) *tensor.RawTensor {
	return b.inner.TakeSamples(x, indices)
}
