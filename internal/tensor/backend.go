package tensor

// Backend is the interface compute backends implement.
//
// Every operation is out-of-place: it allocates and returns a new
// RawTensor and never mutates its inputs. That property is what lets the
// autodiff decorator record operations without defensive copies.
//
// Binary elementwise operations (Add, Sub, Mul, Div) support a limited
// broadcast of the second operand against a 2D first operand:
//   - same shape: plain elementwise
//   - [1]: scalar against every element
//   - [r, 1] against [r, c]: one value per row, repeated across columns
//   - [1, c] against [r, c]: one value per column, repeated across rows
//
// Column broadcast is how a bias of shape [features, 1] applies to a
// batch of shape [features, batch]. Shape mismatches outside these cases
// panic: they are programmer errors, not runtime conditions.
type Backend interface {
	// Name identifies the backend ("cpu", "autodiff(cpu)", ...).
	Name() string

	// Elementwise binary ops, with the broadcast rules above.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Scalar ops.
	Scale(a *RawTensor, s float32) *RawTensor
	AddScalar(a *RawTensor, s float32) *RawTensor

	// 2D linear algebra.
	MatMul(a, b *RawTensor) *RawTensor
	Transpose(a *RawTensor) *RawTensor

	// Elementwise unary ops.
	Sigmoid(a *RawTensor) *RawTensor
	Tanh(a *RawTensor) *RawTensor
	ReLU(a *RawTensor) *RawTensor
	Exp(a *RawTensor) *RawTensor
	Log(a *RawTensor) *RawTensor
	Clamp(a *RawTensor, lo, hi float32) *RawTensor

	// Reductions. Sum and Mean reduce to shape [1]. SumAxis reduces one
	// axis of a 2D tensor keeping the dimension: axis 0 yields [1, c],
	// axis 1 yields [r, 1].
	Sum(a *RawTensor) *RawTensor
	Mean(a *RawTensor) *RawTensor
	SumAxis(a *RawTensor, axis int) *RawTensor

	// TakeSamples gathers the given sample indices along the last axis,
	// returning a new tensor whose sample axis has len(indices) entries.
	// Indices may repeat (sampling with replacement).
	TakeSamples(a *RawTensor, indices []int) *RawTensor
}
