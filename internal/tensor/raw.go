package tensor

import "fmt"

// RawTensor is the low-level dense float32 buffer underlying every
// Tensor. Backends operate on RawTensors; the gradient tape keys its
// gradient map by RawTensor identity, so two tensors share a gradient
// history exactly when they share a RawTensor.
type RawTensor struct {
	shape Shape
	data  []float32
}

// NewRaw allocates a zero-filled raw tensor with the given shape.
func NewRaw(shape Shape) (*RawTensor, error) {
	for _, d := range shape {
		if d <= 0 {
			return nil, fmt.Errorf("invalid shape %v: dimensions must be positive", shape)
		}
	}
	return &RawTensor{
		shape: shape.Clone(),
		data:  make([]float32, shape.NumElements()),
	}, nil
}

// newRawLike allocates a zero-filled raw tensor shaped like t.
// Internal helper: t is assumed valid.
func newRawLike(t *RawTensor) *RawTensor {
	return &RawTensor{
		shape: t.shape.Clone(),
		data:  make([]float32, len(t.data)),
	}
}

// NewRawFrom wraps an existing buffer without copying. The buffer length
// must match the shape.
func NewRawFrom(data []float32, shape Shape) (*RawTensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, got %d", shape, shape.NumElements(), len(data))
	}
	return &RawTensor{shape: shape.Clone(), data: data}, nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Data returns the underlying float32 buffer (not a copy).
func (r *RawTensor) Data() []float32 {
	return r.data
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return len(r.data)
}

// Clone returns a deep copy.
func (r *RawTensor) Clone() *RawTensor {
	out := newRawLike(r)
	copy(out.data, r.data)
	return out
}

// view returns a new RawTensor identity sharing this buffer.
// Used by Detach to cut gradient-tape linkage without copying.
func (r *RawTensor) view() *RawTensor {
	return &RawTensor{shape: r.shape.Clone(), data: r.data}
}
