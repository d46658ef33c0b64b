package ops

import "github.com/latent-ml/latent/internal/tensor"

// AddOp records out = a + b (with broadcast).
type AddOp struct {
	a, b, out *tensor.RawTensor
}

// NewAddOp creates the record for out = a + b.
func NewAddOp(a, b, out *tensor.RawTensor) *AddOp {
	return &AddOp{a: a, b: b, out: out}
}

func (op *AddOp) Output() *tensor.RawTensor { return op.out }

func (op *AddOp) Backward(grad *tensor.RawTensor, grads map[*tensor.RawTensor]*tensor.RawTensor, b tensor.Backend) {
	accumulate(grads, op.a, reduceTo(grad, op.a.Shape(), b), b)
	accumulate(grads, op.b, reduceTo(grad, op.b.Shape(), b), b)
}

// SubOp records out = a - b (with broadcast).
type SubOp struct {
	a, b, out *tensor.RawTensor
}

// NewSubOp creates the record for out = a - b.
func NewSubOp(a, b, out *tensor.RawTensor) *SubOp {
	return &SubOp{a: a, b: b, out: out}
}

func (op *SubOp) Output() *tensor.RawTensor { return op.out }

func (op *SubOp) Backward(grad *tensor.RawTensor, grads map[*tensor.RawTensor]*tensor.RawTensor, b tensor.Backend) {
	accumulate(grads, op.a, reduceTo(grad, op.a.Shape(), b), b)
	accumulate(grads, op.b, reduceTo(b.Scale(grad, -1), op.b.Shape(), b), b)
}
