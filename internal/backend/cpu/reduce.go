package cpu

import (
	"fmt"

	"github.com/latent-ml/latent/internal/tensor"
)

// Sum reduces all elements to a [1] tensor.
func (cb *Backend) Sum(a *tensor.RawTensor) *tensor.RawTensor {
	out := mustRaw(tensor.Shape{1})
	var total float64
	for _, v := range a.Data() {
		total += float64(v)
	}
	out.Data()[0] = float32(total)
	return out
}

// Mean reduces all elements to their average as a [1] tensor.
func (cb *Backend) Mean(a *tensor.RawTensor) *tensor.RawTensor {
	out := cb.Sum(a)
	out.Data()[0] /= float32(a.NumElements())
	return out
}

// SumAxis reduces one axis of a 2D tensor, keeping the dimension.
// Axis 0 sums over rows yielding [1, c]; axis 1 sums over columns
// yielding [r, 1].
func (cb *Backend) SumAxis(a *tensor.RawTensor, axis int) *tensor.RawTensor {
	require2D("SumAxis", a)
	r, c := a.Shape()[0], a.Shape()[1]
	ad := a.Data()

	switch axis {
	case 0:
		out := mustRaw(tensor.Shape{1, c})
		od := out.Data()
		for i := 0; i < r; i++ {
			row := ad[i*c : (i+1)*c]
			for j, v := range row {
				od[j] += v
			}
		}
		return out
	case 1:
		out := mustRaw(tensor.Shape{r, 1})
		od := out.Data()
		for i := 0; i < r; i++ {
			row := ad[i*c : (i+1)*c]
			var total float32
			for _, v := range row {
				total += v
			}
			od[i] = total
		}
		return out
	default:
		panic(fmt.Sprintf("SumAxis: invalid axis %d for 2D tensor", axis))
	}
}
