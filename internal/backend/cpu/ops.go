package cpu

import (
	"fmt"

	"github.com/latent-ml/latent/internal/tensor"
)

// broadcastKind classifies how b applies against a.
type broadcastKind int

const (
	bcastNone   broadcastKind = iota // same shape
	bcastScalar                      // b is a single element
	bcastCol                         // b is [r, 1] against a [r, c]
	bcastRow                         // b is [1, c] against a [r, c]
)

func classify(op string, a, b *tensor.RawTensor) broadcastKind {
	as, bs := a.Shape(), b.Shape()
	switch {
	case as.Equal(bs):
		return bcastNone
	case b.NumElements() == 1:
		return bcastScalar
	case len(as) == 2 && len(bs) == 2 && bs[0] == as[0] && bs[1] == 1:
		return bcastCol
	case len(as) == 2 && len(bs) == 2 && bs[0] == 1 && bs[1] == as[1]:
		return bcastRow
	default:
		panic(fmt.Sprintf("%s: cannot broadcast shape %v against %v", op, bs, as))
	}
}

// binary applies f(a[i], b[j]) with j resolved per the broadcast kind.
func binary(op string, a, b *tensor.RawTensor, f func(x, y float32) float32) *tensor.RawTensor {
	kind := classify(op, a, b)
	out := mustRaw(a.Shape())
	ad, bd, od := a.Data(), b.Data(), out.Data()

	switch kind {
	case bcastNone:
		for i := range ad {
			od[i] = f(ad[i], bd[i])
		}
	case bcastScalar:
		y := bd[0]
		for i := range ad {
			od[i] = f(ad[i], y)
		}
	case bcastCol:
		cols := a.Shape()[1]
		for i := range ad {
			od[i] = f(ad[i], bd[i/cols])
		}
	case bcastRow:
		cols := a.Shape()[1]
		for i := range ad {
			od[i] = f(ad[i], bd[i%cols])
		}
	}
	return out
}

// Add returns a + b.
func (cb *Backend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return binary("Add", a, b, func(x, y float32) float32 { return x + y })
}

// Sub returns a - b.
func (cb *Backend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return binary("Sub", a, b, func(x, y float32) float32 { return x - y })
}

// Mul returns the elementwise product a * b.
func (cb *Backend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return binary("Mul", a, b, func(x, y float32) float32 { return x * y })
}

// Div returns the elementwise quotient a / b.
func (cb *Backend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return binary("Div", a, b, func(x, y float32) float32 { return x / y })
}

// Scale returns s * a.
func (cb *Backend) Scale(a *tensor.RawTensor, s float32) *tensor.RawTensor {
	out := mustRaw(a.Shape())
	ad, od := a.Data(), out.Data()
	for i := range ad {
		od[i] = ad[i] * s
	}
	return out
}

// AddScalar returns a + s.
func (cb *Backend) AddScalar(a *tensor.RawTensor, s float32) *tensor.RawTensor {
	out := mustRaw(a.Shape())
	ad, od := a.Data(), out.Data()
	for i := range ad {
		od[i] = ad[i] + s
	}
	return out
}

// Clamp bounds every element to [lo, hi].
func (cb *Backend) Clamp(a *tensor.RawTensor, lo, hi float32) *tensor.RawTensor {
	out := mustRaw(a.Shape())
	ad, od := a.Data(), out.Data()
	for i, v := range ad {
		switch {
		case v < lo:
			od[i] = lo
		case v > hi:
			od[i] = hi
		default:
			od[i] = v
		}
	}
	return out
}
