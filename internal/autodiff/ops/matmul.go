package ops

import "github.com/latent-ml/latent/internal/tensor"

// MatMulOp records out = a @ b.
type MatMulOp struct {
	a, b, out *tensor.RawTensor
}

// NewMatMulOp creates the record for out = a @ b.
func NewMatMulOp(a, b, out *tensor.RawTensor) *MatMulOp {
	return &MatMulOp{a: a, b: b, out: out}
}

func (op *MatMulOp) Output() *tensor.RawTensor { return op.out }

func (op *MatMulOp) Backward(grad *tensor.RawTensor, grads map[*tensor.RawTensor]*tensor.RawTensor, b tensor.Backend) {
	// dA = grad @ Bᵀ, dB = Aᵀ @ grad.
	accumulate(grads, op.a, b.MatMul(grad, b.Transpose(op.b)), b)
	accumulate(grads, op.b, b.MatMul(b.Transpose(op.a), grad), b)
}

// TransposeOp records out = aᵀ.
type TransposeOp struct {
	a, out *tensor.RawTensor
}

// NewTransposeOp creates the record for out = aᵀ.
func NewTransposeOp(a, out *tensor.RawTensor) *TransposeOp {
	return &TransposeOp{a: a, out: out}
}

func (op *TransposeOp) Output() *tensor.RawTensor { return op.out }

func (op *TransposeOp) Backward(grad *tensor.RawTensor, grads map[*tensor.RawTensor]*tensor.RawTensor, b tensor.Backend) {
	accumulate(grads, op.a, b.Transpose(grad), b)
}
