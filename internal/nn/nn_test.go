package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latent-ml/latent/internal/backend/cpu"
	"github.com/latent-ml/latent/internal/tensor"
)

func TestLinearForwardShape(t *testing.T) {
	b := cpu.NewSequential()
	layer := NewLinear(4, 3, b)

	input := tensor.Randn(tensor.Shape{4, 7}, b)
	out := layer.Forward(input)

	assert.True(t, out.Shape().Equal(tensor.Shape{3, 7}))
}

func TestLinearForwardValues(t *testing.T) {
	b := cpu.NewSequential()
	layer := NewLinear(2, 2, b)

	// Overwrite init for a deterministic check: W = [[1,0],[0,1]], bias = [1, -1].
	copy(layer.Weight().Tensor().Data(), []float32{1, 0, 0, 1})
	copy(layer.Bias().Tensor().Data(), []float32{1, -1})

	input, err := tensor.FromSlice([]float32{2, 3, 4, 5}, tensor.Shape{2, 2}, b)
	require.NoError(t, err)

	out := layer.Forward(input)
	assert.Equal(t, []float32{3, 4, 3, 4}, out.Data())
}

func TestLinearRejectsWrongShape(t *testing.T) {
	b := cpu.NewSequential()
	layer := NewLinear(4, 3, b)

	input := tensor.Randn(tensor.Shape{5, 7}, b)
	assert.Panics(t, func() { layer.Forward(input) })
}

func TestXavierWithinLimit(t *testing.T) {
	b := cpu.NewSequential()
	w := Xavier(100, 50, b)

	limit := math.Sqrt(6.0 / 150.0)
	for _, v := range w.Data() {
		require.LessOrEqual(t, math.Abs(float64(v)), limit)
	}
}

func TestSequentialComposesAndCollectsParams(t *testing.T) {
	b := cpu.NewSequential()
	model := NewSequential[*cpu.Backend](
		NewLinear(4, 8, b),
		NewTanh[*cpu.Backend](),
		NewLinear(8, 2, b),
	)

	out := model.Forward(tensor.Randn(tensor.Shape{4, 5}, b))
	assert.True(t, out.Shape().Equal(tensor.Shape{2, 5}))

	// Two Linear layers, weight+bias each.
	assert.Len(t, model.Parameters(), 4)
}

func TestParameterGradAccumulation(t *testing.T) {
	b := cpu.NewSequential()
	p := NewParameter("w", tensor.Zeros(tensor.Shape{2}, b))

	require.Nil(t, p.Grad())

	g, err := tensor.FromSlice([]float32{1, 2}, tensor.Shape{2}, b)
	require.NoError(t, err)

	p.AddGrad(g)
	p.AddGrad(g)
	assert.Equal(t, []float32{2, 4}, p.Grad().Data())

	// Accumulated copy must not alias the source gradient.
	assert.Equal(t, []float32{1, 2}, g.Data())

	p.ZeroGrad()
	assert.Nil(t, p.Grad())
}

func TestMSE(t *testing.T) {
	b := cpu.NewSequential()
	pred, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, b)
	require.NoError(t, err)
	target, err := tensor.FromSlice([]float32{1, 2, 3, 0}, tensor.Shape{2, 2}, b)
	require.NoError(t, err)

	loss := MSE(pred, target)
	assert.InDelta(t, 4.0, loss.Item(), 1e-6) // (0+0+0+16)/4
}

func TestBCEPerfectPrediction(t *testing.T) {
	b := cpu.NewSequential()
	pred, err := tensor.FromSlice([]float32{0.9999, 0.0001}, tensor.Shape{2}, b)
	require.NoError(t, err)
	target, err := tensor.FromSlice([]float32{1, 0}, tensor.Shape{2}, b)
	require.NoError(t, err)

	loss := BCE(pred, target)
	assert.Less(t, loss.Item(), float32(0.001))
	assert.GreaterOrEqual(t, loss.Item(), float32(0))
}

func TestActivationsHaveNoParameters(t *testing.T) {
	assert.Nil(t, NewSigmoid[*cpu.Backend]().Parameters())
	assert.Nil(t, NewTanh[*cpu.Backend]().Parameters())
	assert.Nil(t, NewReLU[*cpu.Backend]().Parameters())
}
