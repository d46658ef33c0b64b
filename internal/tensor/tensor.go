package tensor

import "fmt"

// Tensor is a backend-parameterized float32 tensor.
//
// Type parameter B selects the compute backend. With an autodiff backend
// every operator method is recorded on the gradient tape; with a plain
// CPU backend the same code runs without tracking.
//
// Example:
//
//	b := cpu.New()
//	x := tensor.Randn[*cpu.Backend](tensor.Shape{4, 16}, b)
//	y := x.Tanh().Scale(0.5)
type Tensor[B Backend] struct {
	raw     *RawTensor
	backend B
}

// New wraps a RawTensor with a backend.
func New[B Backend](raw *RawTensor, b B) *Tensor[B] {
	return &Tensor[B]{raw: raw, backend: b}
}

// Shape returns the tensor's shape.
func (t *Tensor[B]) Shape() Shape {
	return t.raw.Shape()
}

// Data returns the underlying buffer (not a copy).
func (t *Tensor[B]) Data() []float32 {
	return t.raw.Data()
}

// NumElements returns the total number of elements.
func (t *Tensor[B]) NumElements() int {
	return t.raw.NumElements()
}

// Raw returns the underlying RawTensor.
func (t *Tensor[B]) Raw() *RawTensor {
	return t.raw
}

// Backend returns the compute backend.
func (t *Tensor[B]) Backend() B {
	return t.backend
}

// Item returns the value of a single-element tensor.
func (t *Tensor[B]) Item() float32 {
	if t.raw.NumElements() != 1 {
		panic(fmt.Sprintf("Item: tensor has %d elements, want 1", t.raw.NumElements()))
	}
	return t.raw.Data()[0]
}

// Detach returns a tensor sharing this buffer under a fresh RawTensor
// identity. Operations downstream of the detached tensor do not
// propagate gradients back through this one.
func (t *Tensor[B]) Detach() *Tensor[B] {
	return New(t.raw.view(), t.backend)
}

// Clone returns a deep copy.
func (t *Tensor[B]) Clone() *Tensor[B] {
	return New(t.raw.Clone(), t.backend)
}

// Add returns t + o (broadcast rules per Backend).
func (t *Tensor[B]) Add(o *Tensor[B]) *Tensor[B] {
	return New(t.backend.Add(t.raw, o.raw), t.backend)
}

// Sub returns t - o.
func (t *Tensor[B]) Sub(o *Tensor[B]) *Tensor[B] {
	return New(t.backend.Sub(t.raw, o.raw), t.backend)
}

// Mul returns the elementwise product t * o.
func (t *Tensor[B]) Mul(o *Tensor[B]) *Tensor[B] {
	return New(t.backend.Mul(t.raw, o.raw), t.backend)
}

// Div returns the elementwise quotient t / o.
func (t *Tensor[B]) Div(o *Tensor[B]) *Tensor[B] {
	return New(t.backend.Div(t.raw, o.raw), t.backend)
}

// Scale returns s * t.
func (t *Tensor[B]) Scale(s float32) *Tensor[B] {
	return New(t.backend.Scale(t.raw, s), t.backend)
}

// AddScalar returns t + s.
func (t *Tensor[B]) AddScalar(s float32) *Tensor[B] {
	return New(t.backend.AddScalar(t.raw, s), t.backend)
}

// MatMul returns the matrix product t @ o for 2D tensors.
func (t *Tensor[B]) MatMul(o *Tensor[B]) *Tensor[B] {
	return New(t.backend.MatMul(t.raw, o.raw), t.backend)
}

// Transpose returns the 2D transpose.
func (t *Tensor[B]) Transpose() *Tensor[B] {
	return New(t.backend.Transpose(t.raw), t.backend)
}

// Sigmoid applies the logistic function elementwise.
func (t *Tensor[B]) Sigmoid() *Tensor[B] {
	return New(t.backend.Sigmoid(t.raw), t.backend)
}

// Tanh applies the hyperbolic tangent elementwise.
func (t *Tensor[B]) Tanh() *Tensor[B] {
	return New(t.backend.Tanh(t.raw), t.backend)
}

// ReLU applies max(0, x) elementwise.
func (t *Tensor[B]) ReLU() *Tensor[B] {
	return New(t.backend.ReLU(t.raw), t.backend)
}

// Exp applies e^x elementwise.
func (t *Tensor[B]) Exp() *Tensor[B] {
	return New(t.backend.Exp(t.raw), t.backend)
}

// Log applies the natural logarithm elementwise.
func (t *Tensor[B]) Log() *Tensor[B] {
	return New(t.backend.Log(t.raw), t.backend)
}

// Clamp bounds every element to [lo, hi].
func (t *Tensor[B]) Clamp(lo, hi float32) *Tensor[B] {
	return New(t.backend.Clamp(t.raw, lo, hi), t.backend)
}

// Sum reduces to a single-element tensor holding the total.
func (t *Tensor[B]) Sum() *Tensor[B] {
	return New(t.backend.Sum(t.raw), t.backend)
}

// Mean reduces to a single-element tensor holding the average.
func (t *Tensor[B]) Mean() *Tensor[B] {
	return New(t.backend.Mean(t.raw), t.backend)
}

// SumAxis reduces one axis of a 2D tensor, keeping the dimension.
func (t *Tensor[B]) SumAxis(axis int) *Tensor[B] {
	return New(t.backend.SumAxis(t.raw, axis), t.backend)
}

// TakeSamples gathers the given indices along the sample axis.
func (t *Tensor[B]) TakeSamples(indices []int) *Tensor[B] {
	return New(t.backend.TakeSamples(t.raw, indices), t.backend)
}
