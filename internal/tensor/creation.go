package tensor

import "math/rand"

// Zeros creates a tensor filled with zeros.
func Zeros[B Backend](shape Shape, b B) *Tensor[B] {
	raw, err := NewRaw(shape)
	if err != nil {
		panic(err)
	}
	return New(raw, b)
}

// Ones creates a tensor filled with ones.
func Ones[B Backend](shape Shape, b B) *Tensor[B] {
	return Full(shape, 1, b)
}

// Full creates a tensor filled with a constant value.
func Full[B Backend](shape Shape, value float32, b B) *Tensor[B] {
	t := Zeros(shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Randn creates a tensor with values drawn from N(0, 1).
//
//nolint:gosec // math/rand is appropriate for ML initialization (not security-critical)
func Randn[B Backend](shape Shape, b B) *Tensor[B] {
	t := Zeros(shape, b)
	data := t.Data()
	for i := range data {
		data[i] = float32(rand.NormFloat64())
	}
	return t
}

// Rand creates a tensor with values drawn from U(0, 1).
//
//nolint:gosec // math/rand is appropriate for ML initialization
func Rand[B Backend](shape Shape, b B) *Tensor[B] {
	t := Zeros(shape, b)
	data := t.Data()
	for i := range data {
		data[i] = rand.Float32()
	}
	return t
}

// FromSlice creates a tensor by copying a Go slice.
func FromSlice[B Backend](data []float32, shape Shape, b B) (*Tensor[B], error) {
	buf := make([]float32, len(data))
	copy(buf, data)
	raw, err := NewRawFrom(buf, shape)
	if err != nil {
		return nil, err
	}
	return New(raw, b), nil
}
