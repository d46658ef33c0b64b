package ops

import "github.com/latent-ml/latent/internal/tensor"

// MulOp records out = a * b elementwise (with broadcast).
type MulOp struct {
	a, b, out *tensor.RawTensor
}

// NewMulOp creates the record for out = a * b.
func NewMulOp(a, b, out *tensor.RawTensor) *MulOp {
	return &MulOp{a: a, b: b, out: out}
}

func (op *MulOp) Output() *tensor.RawTensor { return op.out }

func (op *MulOp) Backward(grad *tensor.RawTensor, grads map[*tensor.RawTensor]*tensor.RawTensor, b tensor.Backend) {
	// d/da (a*b) = b, d/db (a*b) = a.
	gradA := reduceTo(b.Mul(grad, op.b), op.a.Shape(), b)
	gradB := reduceTo(b.Mul(grad, op.a), op.b.Shape(), b)
	accumulate(grads, op.a, gradA, b)
	accumulate(grads, op.b, gradB, b)
}

// DivOp records out = a / b elementwise (with broadcast).
type DivOp struct {
	a, b, out *tensor.RawTensor
}

// NewDivOp creates the record for out = a / b.
func NewDivOp(a, b, out *tensor.RawTensor) *DivOp {
	return &DivOp{a: a, b: b, out: out}
}

func (op *DivOp) Output() *tensor.RawTensor { return op.out }

func (op *DivOp) Backward(grad *tensor.RawTensor, grads map[*tensor.RawTensor]*tensor.RawTensor, b tensor.Backend) {
	// d/da (a/b) = 1/b, d/db (a/b) = -a/b² = -out/b.
	gradA := reduceTo(b.Div(grad, op.b), op.a.Shape(), b)
	gradB := reduceTo(b.Scale(b.Div(b.Mul(grad, op.out), op.b), -1), op.b.Shape(), b)
	accumulate(grads, op.a, gradA, b)
	accumulate(grads, op.b, gradB, b)
}
