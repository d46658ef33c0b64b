package cpu

import (
	"math"

	"github.com/latent-ml/latent/internal/tensor"
)

func unary(a *tensor.RawTensor, f func(x float32) float32) *tensor.RawTensor {
	out := mustRaw(a.Shape())
	ad, od := a.Data(), out.Data()
	for i := range ad {
		od[i] = f(ad[i])
	}
	return out
}

// Sigmoid applies 1 / (1 + e^-x) elementwise.
func (cb *Backend) Sigmoid(a *tensor.RawTensor) *tensor.RawTensor {
	return unary(a, func(x float32) float32 {
		return float32(1.0 / (1.0 + math.Exp(-float64(x))))
	})
}

// Tanh applies the hyperbolic tangent elementwise.
func (cb *Backend) Tanh(a *tensor.RawTensor) *tensor.RawTensor {
	return unary(a, func(x float32) float32 {
		return float32(math.Tanh(float64(x)))
	})
}

// ReLU applies max(0, x) elementwise.
func (cb *Backend) ReLU(a *tensor.RawTensor) *tensor.RawTensor {
	return unary(a, func(x float32) float32 {
		if x > 0 {
			return x
		}
		return 0
	})
}

// Exp applies e^x elementwise.
func (cb *Backend) Exp(a *tensor.RawTensor) *tensor.RawTensor {
	return unary(a, func(x float32) float32 {
		return float32(math.Exp(float64(x)))
	})
}

// Log applies the natural logarithm elementwise.
func (cb *Backend) Log(a *tensor.RawTensor) *tensor.RawTensor {
	return unary(a, func(x float32) float32 {
		return float32(math.Log(float64(x)))
	})
}
