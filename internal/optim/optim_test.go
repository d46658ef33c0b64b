package optim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latent-ml/latent/internal/backend/cpu"
	"github.com/latent-ml/latent/internal/nn"
	"github.com/latent-ml/latent/internal/tensor"
)

func param(t *testing.T, b *cpu.Backend, vals []float32) *nn.Parameter[*cpu.Backend] {
	t.Helper()
	w, err := tensor.FromSlice(vals, tensor.Shape{len(vals)}, b)
	require.NoError(t, err)
	return nn.NewParameter("w", w)
}

func grad(t *testing.T, b *cpu.Backend, vals []float32) *tensor.Tensor[*cpu.Backend] {
	t.Helper()
	g, err := tensor.FromSlice(vals, tensor.Shape{len(vals)}, b)
	require.NoError(t, err)
	return g
}

func TestSGDDefaults(t *testing.T) {
	b := cpu.NewSequential()
	opt := NewSGD([]*nn.Parameter[*cpu.Backend]{param(t, b, []float32{0})}, SGDConfig{})
	assert.InDelta(t, 0.01, opt.LR(), 1e-9)
}

func TestSGDDelta(t *testing.T) {
	b := cpu.NewSequential()
	p := param(t, b, []float32{1, 2})
	opt := NewSGD([]*nn.Parameter[*cpu.Backend]{p}, SGDConfig{LR: 0.1})

	d := opt.Delta(p, grad(t, b, []float32{1, -2}))
	assert.InDeltaSlice(t, []float32{0.1, -0.2}, d.Data(), 1e-6)
}

func TestSGDMomentumAccumulates(t *testing.T) {
	b := cpu.NewSequential()
	p := param(t, b, []float32{0})
	opt := NewSGD([]*nn.Parameter[*cpu.Backend]{p}, SGDConfig{LR: 1, Momentum: 0.5})

	g := grad(t, b, []float32{1})

	d1 := opt.Delta(p, g)
	assert.InDelta(t, 1.0, d1.Data()[0], 1e-6) // v = 1

	d2 := opt.Delta(p, g)
	assert.InDelta(t, 1.5, d2.Data()[0], 1e-6) // v = 0.5*1 + 1

	d3 := opt.Delta(p, g)
	assert.InDelta(t, 1.75, d3.Data()[0], 1e-6) // v = 0.5*1.5 + 1
}

func TestAdamDefaults(t *testing.T) {
	b := cpu.NewSequential()
	opt := NewAdam([]*nn.Parameter[*cpu.Backend]{param(t, b, []float32{0})}, AdamConfig{})
	assert.InDelta(t, 0.001, opt.LR(), 1e-9)
}

func TestAdamFirstStepIsLR(t *testing.T) {
	b := cpu.NewSequential()
	p := param(t, b, []float32{1})
	opt := NewAdam([]*nn.Parameter[*cpu.Backend]{p}, AdamConfig{LR: 0.1})

	// With bias correction, the first step is ≈ lr regardless of
	// gradient magnitude.
	d := opt.Delta(p, grad(t, b, []float32{42}))
	assert.InDelta(t, 0.1, d.Data()[0], 1e-4)
}

func TestAdamStepDirectionFollowsGradientSign(t *testing.T) {
	b := cpu.NewSequential()
	p := param(t, b, []float32{0, 0})
	opt := NewAdam([]*nn.Parameter[*cpu.Backend]{p}, AdamConfig{LR: 0.01})

	d := opt.Delta(p, grad(t, b, []float32{3, -3}))
	assert.Greater(t, d.Data()[0], float32(0))
	assert.Less(t, d.Data()[1], float32(0))
}

func TestAdamMomentsPersistAcrossCalls(t *testing.T) {
	b := cpu.NewSequential()
	p := param(t, b, []float32{0})
	opt := NewAdam([]*nn.Parameter[*cpu.Backend]{p}, AdamConfig{LR: 0.1})

	g := grad(t, b, []float32{1})
	d1 := opt.Delta(p, g).Data()[0]
	d2 := opt.Delta(p, g).Data()[0]

	// Same gradient twice: second step stays close to lr but differs
	// slightly as moments and corrections evolve.
	assert.InDelta(t, float64(d1), float64(d2), 0.02)
	assert.NotZero(t, d2)
}
