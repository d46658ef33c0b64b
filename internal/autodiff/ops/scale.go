package ops

import "github.com/latent-ml/latent/internal/tensor"

// ScaleOp records out = s * a.
type ScaleOp struct {
	a, out *tensor.RawTensor
	s      float32
}

// NewScaleOp creates the record for out = s * a.
func NewScaleOp(a, out *tensor.RawTensor, s float32) *ScaleOp {
	return &ScaleOp{a: a, out: out, s: s}
}

func (op *ScaleOp) Output() *tensor.RawTensor { return op.out }

func (op *ScaleOp) Backward(grad *tensor.RawTensor, grads map[*tensor.RawTensor]*tensor.RawTensor, b tensor.Backend) {
	accumulate(grads, op.a, b.Scale(grad, op.s), b)
}

// AddScalarOp records out = a + s. The scalar is a constant, so the
// gradient passes through unchanged.
type AddScalarOp struct {
	a, out *tensor.RawTensor
}

// NewAddScalarOp creates the record for out = a + s.
func NewAddScalarOp(a, out *tensor.RawTensor) *AddScalarOp {
	return &AddScalarOp{a: a, out: out}
}

func (op *AddScalarOp) Output() *tensor.RawTensor { return op.out }

func (op *AddScalarOp) Backward(grad *tensor.RawTensor, grads map[*tensor.RawTensor]*tensor.RawTensor, b tensor.Backend) {
	accumulate(grads, op.a, grad, b)
}
