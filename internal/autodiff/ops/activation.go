package ops

import "github.com/latent-ml/latent/internal/tensor"

// SigmoidOp records out = σ(a). Backward uses the saved output:
// σ'(x) = σ(x)(1 - σ(x)).
type SigmoidOp struct {
	a, out *tensor.RawTensor
}

// NewSigmoidOp creates the record for out = σ(a).
func NewSigmoidOp(a, out *tensor.RawTensor) *SigmoidOp {
	return &SigmoidOp{a: a, out: out}
}

func (op *SigmoidOp) Output() *tensor.RawTensor { return op.out }

func (op *SigmoidOp) Backward(grad *tensor.RawTensor, grads map[*tensor.RawTensor]*tensor.RawTensor, b tensor.Backend) {
	oneMinus := b.AddScalar(b.Scale(op.out, -1), 1)
	accumulate(grads, op.a, b.Mul(grad, b.Mul(op.out, oneMinus)), b)
}

// TanhOp records out = tanh(a). tanh'(x) = 1 - tanh²(x).
type TanhOp struct {
	a, out *tensor.RawTensor
}

// NewTanhOp creates the record for out = tanh(a).
func NewTanhOp(a, out *tensor.RawTensor) *TanhOp {
	return &TanhOp{a: a, out: out}
}

func (op *TanhOp) Output() *tensor.RawTensor { return op.out }

func (op *TanhOp) Backward(grad *tensor.RawTensor, grads map[*tensor.RawTensor]*tensor.RawTensor, b tensor.Backend) {
	oneMinusSq := b.AddScalar(b.Scale(b.Mul(op.out, op.out), -1), 1)
	accumulate(grads, op.a, b.Mul(grad, oneMinusSq), b)
}

// ReLUOp records out = max(0, a). The gradient passes where the input
// was positive.
type ReLUOp struct {
	a, out *tensor.RawTensor
}

// NewReLUOp creates the record for out = relu(a).
func NewReLUOp(a, out *tensor.RawTensor) *ReLUOp {
	return &ReLUOp{a: a, out: out}
}

func (op *ReLUOp) Output() *tensor.RawTensor { return op.out }

func (op *ReLUOp) Backward(grad *tensor.RawTensor, grads map[*tensor.RawTensor]*tensor.RawTensor, b tensor.Backend) {
	masked, err := tensor.NewRaw(op.a.Shape())
	if err != nil {
		panic(err)
	}
	ad, gd, md := op.a.Data(), grad.Data(), masked.Data()
	for i := range ad {
		if ad[i] > 0 {
			md[i] = gd[i]
		}
	}
	accumulate(grads, op.a, masked, b)
}

// ExpOp records out = e^a; d/dx e^x = e^x = out.
type ExpOp struct {
	a, out *tensor.RawTensor
}

// NewExpOp creates the record for out = exp(a).
func NewExpOp(a, out *tensor.RawTensor) *ExpOp {
	return &ExpOp{a: a, out: out}
}

func (op *ExpOp) Output() *tensor.RawTensor { return op.out }

func (op *ExpOp) Backward(grad *tensor.RawTensor, grads map[*tensor.RawTensor]*tensor.RawTensor, b tensor.Backend) {
	accumulate(grads, op.a, b.Mul(grad, op.out), b)
}

// LogOp records out = ln(a); d/dx ln(x) = 1/x.
type LogOp struct {
	a, out *tensor.RawTensor
}

// NewLogOp creates the record for out = log(a).
func NewLogOp(a, out *tensor.RawTensor) *LogOp {
	return &LogOp{a: a, out: out}
}

func (op *LogOp) Output() *tensor.RawTensor { return op.out }

func (op *LogOp) Backward(grad *tensor.RawTensor, grads map[*tensor.RawTensor]*tensor.RawTensor, b tensor.Backend) {
	accumulate(grads, op.a, b.Div(grad, op.a), b)
}
