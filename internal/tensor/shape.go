package tensor

import (
	"fmt"
	"strings"
)

// Shape represents the dimensions of a tensor.
// Example: Shape{784, 32} is a batch of 32 samples with 784 features each.
type Shape []int

// NumElements returns the total number of elements.
func (s Shape) NumElements() int {
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}

// Equal reports whether two shapes have identical dimensions.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Samples returns the size of the sample axis (the last axis).
// A 0-dimensional shape has a single implicit sample.
func (s Shape) Samples() int {
	if len(s) == 0 {
		return 1
	}
	return s[len(s)-1]
}

// SampleSize returns the number of elements per sample, i.e. the product
// of all axes except the last.
func (s Shape) SampleSize() int {
	n := 1
	for i := 0; i < len(s)-1; i++ {
		n *= s[i]
	}
	return n
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	copy(out, s)
	return out
}

// WithSamples returns a copy of the shape with the sample axis resized.
func (s Shape) WithSamples(n int) Shape {
	out := s.Clone()
	if len(out) == 0 {
		return Shape{n}
	}
	out[len(out)-1] = n
	return out
}

// String returns a human-readable representation like "[784, 32]".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = fmt.Sprintf("%d", d)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
