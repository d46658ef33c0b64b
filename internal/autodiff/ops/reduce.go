package ops

import "github.com/latent-ml/latent/internal/tensor"

// SumOp records out = Σa (a [1] tensor).
type SumOp struct {
	a, out *tensor.RawTensor
}

// NewSumOp creates the record for out = sum(a).
func NewSumOp(a, out *tensor.RawTensor) *SumOp {
	return &SumOp{a: a, out: out}
}

func (op *SumOp) Output() *tensor.RawTensor { return op.out }

func (op *SumOp) Backward(grad *tensor.RawTensor, grads map[*tensor.RawTensor]*tensor.RawTensor, b tensor.Backend) {
	accumulate(grads, op.a, fill(op.a, grad.Data()[0]), b)
}

// MeanOp records out = mean(a) (a [1] tensor).
type MeanOp struct {
	a, out *tensor.RawTensor
}

// NewMeanOp creates the record for out = mean(a).
func NewMeanOp(a, out *tensor.RawTensor) *MeanOp {
	return &MeanOp{a: a, out: out}
}

func (op *MeanOp) Output() *tensor.RawTensor { return op.out }

func (op *MeanOp) Backward(grad *tensor.RawTensor, grads map[*tensor.RawTensor]*tensor.RawTensor, b tensor.Backend) {
	accumulate(grads, op.a, fill(op.a, grad.Data()[0]/float32(op.a.NumElements())), b)
}

// SumAxisOp records out = sum of a over one axis, dimension kept.
type SumAxisOp struct {
	a, out *tensor.RawTensor
}

// NewSumAxisOp creates the record for out = sumAxis(a, axis).
func NewSumAxisOp(a, out *tensor.RawTensor) *SumAxisOp {
	return &SumAxisOp{a: a, out: out}
}

func (op *SumAxisOp) Output() *tensor.RawTensor { return op.out }

func (op *SumAxisOp) Backward(grad *tensor.RawTensor, grads map[*tensor.RawTensor]*tensor.RawTensor, b tensor.Backend) {
	// grad has shape [1, c] or [r, 1]; broadcast-add against zeros
	// replicates it across the summed axis.
	zeros, err := tensor.NewRaw(op.a.Shape())
	if err != nil {
		panic(err)
	}
	accumulate(grads, op.a, b.Add(zeros, grad), b)
}
