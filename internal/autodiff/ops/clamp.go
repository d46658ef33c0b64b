package ops

import "github.com/latent-ml/latent/internal/tensor"

// ClampOp records out = clamp(a, lo, hi). The gradient passes where the
// input lay strictly inside the bounds and is zero where it saturated.
type ClampOp struct {
	a, out *tensor.RawTensor
	lo, hi float32
}

// NewClampOp creates the record for out = clamp(a, lo, hi).
func NewClampOp(a, out *tensor.RawTensor, lo, hi float32) *ClampOp {
	return &ClampOp{a: a, out: out, lo: lo, hi: hi}
}

func (op *ClampOp) Output() *tensor.RawTensor { return op.out }

func (op *ClampOp) Backward(grad *tensor.RawTensor, grads map[*tensor.RawTensor]*tensor.RawTensor, b tensor.Backend) {
	masked, err := tensor.NewRaw(op.a.Shape())
	if err != nil {
		panic(err)
	}
	ad, gd, md := op.a.Data(), grad.Data(), masked.Data()
	for i := range ad {
		if ad[i] >= op.lo && ad[i] <= op.hi {
			md[i] = gd[i]
		}
	}
	accumulate(grads, op.a, masked, b)
}
