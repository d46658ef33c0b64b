package models

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latent-ml/latent/internal/autodiff"
	"github.com/latent-ml/latent/internal/backend/cpu"
	"github.com/latent-ml/latent/internal/optim"
	"github.com/latent-ml/latent/internal/sampler"
	"github.com/latent-ml/latent/internal/tensor"
	"github.com/latent-ml/latent/internal/train"
)

type AD = *autodiff.Backend[*cpu.Backend]

func newAD() AD {
	return autodiff.New(cpu.NewSequential())
}

// clusters builds a [2, n] dataset of two blobs around (0.8, 0.2) and
// (0.2, 0.8), inside the sigmoid output range.
func clusters(t *testing.T, b AD, n int) *tensor.Tensor[AD] {
	t.Helper()
	rng := rand.New(rand.NewSource(7))
	data := make([]float32, 2*n)
	for i := 0; i < n; i++ {
		noise := func() float32 { return float32(rng.NormFloat64()) * 0.03 }
		if i%2 == 0 {
			data[i] = 0.8 + noise()
			data[n+i] = 0.2 + noise()
		} else {
			data[i] = 0.2 + noise()
			data[n+i] = 0.8 + noise()
		}
	}
	d, err := tensor.FromSlice(data, tensor.Shape{2, n}, b)
	require.NoError(t, err)
	return d
}

func finite(t *testing.T, v float32) {
	t.Helper()
	f := float64(v)
	require.False(t, math.IsNaN(f) || math.IsInf(f, 0))
}

func TestConfigValidation(t *testing.T) {
	b := newAD()

	_, err := NewAE(AEConfig{InputDim: 0, LatentDim: 2}, b)
	assert.Error(t, err)

	_, err = NewAE(AEConfig{InputDim: 2, LatentDim: 0}, b)
	assert.Error(t, err)

	_, err = NewAE(AEConfig{InputDim: 2, HiddenDims: []int{4, -1}, LatentDim: 2}, b)
	assert.Error(t, err)

	_, err = NewGaussian(0, 1, b)
	assert.Error(t, err)

	_, err = NewBuffered(2, 0, 1, b)
	assert.Error(t, err)

	_, err = NewAAE(AAEConfig{
		AEConfig:       AEConfig{InputDim: 2, LatentDim: 2},
		DiscHiddenDims: []int{-4},
	}, b)
	assert.Error(t, err)

	_, err = NewWAE(WAEConfig{
		AEConfig: AEConfig{InputDim: 2, LatentDim: 2},
		Lambda:   -1,
	}, b)
	assert.Error(t, err)
}

func TestGaussianSampleShapeAndSeed(t *testing.T) {
	b := newAD()

	g1, err := NewGaussian(3, 11, b)
	require.NoError(t, err)
	g2, err := NewGaussian(3, 11, b)
	require.NoError(t, err)

	s1 := g1.Sample(5)
	s2 := g2.Sample(5)

	assert.Equal(t, tensor.Shape{3, 5}, s1.Shape())
	assert.Equal(t, s1.Data(), s2.Data())

	// A second draw from the same source differs.
	assert.NotEqual(t, s1.Data(), g1.Sample(5).Data())
}

func TestBufferedSamplesFromPool(t *testing.T) {
	b := newAD()

	n, err := NewBuffered(2, 8, 11, b)
	require.NoError(t, err)
	assert.Equal(t, 2, n.Dim())

	pool := n.pool.Data()
	poolCols := make(map[[2]float32]bool)
	for j := 0; j < 8; j++ {
		poolCols[[2]float32{pool[j], pool[8+j]}] = true
	}

	s := n.Sample(16)
	require.Equal(t, tensor.Shape{2, 16}, s.Shape())
	data := s.Data()
	for j := 0; j < 16; j++ {
		assert.True(t, poolCols[[2]float32{data[j], data[16+j]}])
	}
}

func TestAEShapesAndLoss(t *testing.T) {
	b := newAD()
	m, err := NewAE(AEConfig{InputDim: 2, HiddenDims: []int{4}, LatentDim: 2}, b)
	require.NoError(t, err)

	x := clusters(t, b, 6)
	z := m.Encode(x)
	assert.Equal(t, tensor.Shape{2, 6}, z.Shape())

	xhat := m.Forward(x)
	assert.Equal(t, tensor.Shape{2, 6}, xhat.Shape())
	for _, v := range xhat.Data() {
		assert.Greater(t, v, float32(0))
		assert.Less(t, v, float32(1))
	}

	loss := m.Loss(x)
	assert.Equal(t, 1, loss.NumElements())
	finite(t, loss.Item())

	// Two Linear layers per side, weight and bias each.
	assert.Len(t, m.Parameters(), 8)
}

func TestAETrainingReducesLoss(t *testing.T) {
	b := newAD()
	data := clusters(t, b, 40)

	m, err := NewAE(AEConfig{InputDim: 2, HiddenDims: []int{8}, LatentDim: 2}, b)
	require.NoError(t, err)

	before := m.Loss(data).Item()

	s, err := sampler.NewEpoch(data, sampler.EpochConfig{Epochs: 150, BatchSize: 10, Seed: 3})
	require.NoError(t, err)
	opt := optim.NewAdam(m.Parameters(), optim.AdamConfig{LR: 0.01})

	err = train.Fit[AD](m, s, func(batch *sampler.Batch[AD]) (*tensor.Tensor[AD], error) {
		return m.Loss(batch.Data), nil
	}, opt, b, train.Options[AD]{ClipBound: 1e4})
	require.NoError(t, err)

	after := m.Loss(data).Item()
	assert.Less(t, after, before)
	assert.Less(t, after, float32(0.05))
}

func TestVAEEncodeAndLoss(t *testing.T) {
	b := newAD()
	m, err := NewVAE(VAEConfig{
		AEConfig:  AEConfig{InputDim: 2, HiddenDims: []int{4}, LatentDim: 2},
		NoiseSeed: 5,
	}, b)
	require.NoError(t, err)

	x := clusters(t, b, 6)
	mu, logvar := m.Encode(x)
	assert.Equal(t, tensor.Shape{2, 6}, mu.Shape())
	assert.Equal(t, tensor.Shape{2, 6}, logvar.Shape())

	z := m.Reparameterize(mu, logvar)
	assert.Equal(t, tensor.Shape{2, 6}, z.Shape())
	// Noise perturbs the mean.
	assert.NotEqual(t, mu.Data(), z.Data())

	loss := m.Loss(x)
	assert.Equal(t, 1, loss.NumElements())
	finite(t, loss.Item())
	finite(t, m.KL(x).Item())
}

func TestVAEWithBufferedNoise(t *testing.T) {
	b := newAD()

	noise, err := NewBuffered(2, 32, 9, b)
	require.NoError(t, err)

	m, err := NewVAEWithNoise(VAEConfig{
		AEConfig: AEConfig{InputDim: 2, HiddenDims: []int{4}, LatentDim: 2},
	}, noise, b)
	require.NoError(t, err)

	x := clusters(t, b, 6)
	finite(t, m.Loss(x).Item())

	// Dimensionality mismatch is a construction error.
	wrong, err := NewBuffered(3, 32, 9, b)
	require.NoError(t, err)
	_, err = NewVAEWithNoise(VAEConfig{
		AEConfig: AEConfig{InputDim: 2, HiddenDims: []int{4}, LatentDim: 2},
	}, wrong, b)
	assert.Error(t, err)
}

func TestVAETrainingReducesLoss(t *testing.T) {
	b := newAD()
	data := clusters(t, b, 40)

	m, err := NewVAE(VAEConfig{
		AEConfig:  AEConfig{InputDim: 2, HiddenDims: []int{8}, LatentDim: 2},
		Beta:      0.01,
		NoiseSeed: 5,
	}, b)
	require.NoError(t, err)

	before := m.Loss(data).Item()

	s, err := sampler.NewEpoch(data, sampler.EpochConfig{Epochs: 150, BatchSize: 10, Seed: 3})
	require.NoError(t, err)
	opt := optim.NewAdam(m.Parameters(), optim.AdamConfig{LR: 0.01})

	err = train.Fit[AD](m, s, func(batch *sampler.Batch[AD]) (*tensor.Tensor[AD], error) {
		return m.Loss(batch.Data), nil
	}, opt, b, train.Options[AD]{ClipBound: 1e4})
	require.NoError(t, err)

	after := m.Loss(data).Item()
	assert.Less(t, after, before)
}

func TestRBFKernelDiagonalIsOne(t *testing.T) {
	b := newAD()
	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, b)
	require.NoError(t, err)

	k := rbfKernel(x, x, 1)
	require.Equal(t, tensor.Shape{3, 3}, k.Shape())
	data := k.Data()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 1, data[i*3+i], 1e-5)
	}
}

func TestMMDProperties(t *testing.T) {
	b := newAD()
	x := tensor.Randn(tensor.Shape{2, 20}, b)

	// Identical sets have zero discrepancy.
	same := MMD(x, x, 1).Item()
	assert.InDelta(t, 0, same, 1e-5)

	near := x.AddScalar(0.1)
	far := x.AddScalar(3)
	assert.Less(t, MMD(x, near, 1).Item(), MMD(x, far, 1).Item())
	assert.Greater(t, MMD(x, far, 1).Item(), float32(0))
}

func TestWAELoss(t *testing.T) {
	b := newAD()
	m, err := NewWAE(WAEConfig{
		AEConfig:  AEConfig{InputDim: 2, HiddenDims: []int{4}, LatentDim: 2},
		Lambda:    0.5,
		NoiseSeed: 5,
	}, b)
	require.NoError(t, err)

	x := clusters(t, b, 8)
	loss := m.Loss(x)
	assert.Equal(t, 1, loss.NumElements())
	finite(t, loss.Item())
}

func TestAAEDetachBlocksEncoderGradients(t *testing.T) {
	b := newAD()
	m, err := NewAAE(AAEConfig{
		AEConfig:       AEConfig{InputDim: 2, HiddenDims: []int{4}, LatentDim: 2},
		DiscHiddenDims: []int{4},
		NoiseSeed:      5,
	}, b)
	require.NoError(t, err)

	x := clusters(t, b, 8)

	b.Tape().StartRecording()
	loss := m.DiscLoss(x)
	grads := b.Backward(loss.Raw())
	b.Tape().Reset()

	for _, p := range m.DiscParams() {
		_, ok := grads[p.Tensor().Raw()]
		assert.True(t, ok, "discriminator param %s should receive a gradient", p.Name())
	}
	for _, p := range m.EncoderParams() {
		_, ok := grads[p.Tensor().Raw()]
		assert.False(t, ok, "encoder param %s should be detached", p.Name())
	}
}

func TestAAEGenLossReachesEncoder(t *testing.T) {
	b := newAD()
	m, err := NewAAE(AAEConfig{
		AEConfig:       AEConfig{InputDim: 2, HiddenDims: []int{4}, LatentDim: 2},
		DiscHiddenDims: []int{4},
		NoiseSeed:      5,
	}, b)
	require.NoError(t, err)

	x := clusters(t, b, 8)

	b.Tape().StartRecording()
	loss := m.GenLoss(x)
	grads := b.Backward(loss.Raw())
	b.Tape().Reset()

	for _, p := range m.EncoderParams() {
		_, ok := grads[p.Tensor().Raw()]
		assert.True(t, ok, "encoder param %s should receive a gradient", p.Name())
	}
}

func TestAAEObjectivesTrain(t *testing.T) {
	b := newAD()
	data := clusters(t, b, 24)

	m, err := NewAAE(AAEConfig{
		AEConfig:       AEConfig{InputDim: 2, HiddenDims: []int{8}, LatentDim: 2},
		DiscHiddenDims: []int{8},
		NoiseSeed:      5,
	}, b)
	require.NoError(t, err)

	before := m.ReconLoss(data).Item()

	s, err := sampler.NewEpoch(data, sampler.EpochConfig{Epochs: 60, BatchSize: 8, Seed: 3})
	require.NoError(t, err)

	objectives := m.Objectives(
		optim.NewAdam(m.ReconParams(), optim.AdamConfig{LR: 0.01}),
		optim.NewAdam(m.DiscParams(), optim.AdamConfig{LR: 0.005}),
		optim.NewAdam(m.EncoderParams(), optim.AdamConfig{LR: 0.005}),
	)
	require.Len(t, objectives, 3)

	err = train.Train[AD](m, sampler.CollectAll[AD](s), objectives, b, train.Options[AD]{ClipBound: 1e4})
	require.NoError(t, err)

	after := m.ReconLoss(data).Item()
	assert.Less(t, after, before)
	finite(t, m.DiscLoss(data).Item())
}

func TestTwoStageGenerateShape(t *testing.T) {
	b := newAD()
	m, err := NewTwoStage(TwoStageConfig{
		First: VAEConfig{
			AEConfig:  AEConfig{InputDim: 2, HiddenDims: []int{4}, LatentDim: 2},
			NoiseSeed: 5,
		},
		Second: VAEConfig{
			AEConfig:  AEConfig{HiddenDims: []int{4}, LatentDim: 2, InputDim: 99},
			NoiseSeed: 6,
		},
	}, b)
	require.NoError(t, err)

	// The second stage input is forced to the first stage latent width.
	x := clusters(t, b, 6)
	latents := m.EncodeLatents(x)
	assert.Equal(t, tensor.Shape{2, 6}, latents.Shape())

	gen := m.Generate(5)
	assert.Equal(t, tensor.Shape{2, 5}, gen.Shape())
}

func TestFitTwoStage(t *testing.T) {
	b := newAD()
	data := clusters(t, b, 24)

	m, err := NewTwoStage(TwoStageConfig{
		First: VAEConfig{
			AEConfig:  AEConfig{InputDim: 2, HiddenDims: []int{8}, LatentDim: 2},
			Beta:      0.01,
			NoiseSeed: 5,
		},
		Second: VAEConfig{
			AEConfig:  AEConfig{HiddenDims: []int{8}, LatentDim: 2},
			Beta:      0.01,
			NoiseSeed: 6,
		},
	}, b)
	require.NoError(t, err)

	cfg := FitConfig{Epochs: 30, BatchSize: 8, Seed: 3, LR: 0.01, ClipBound: 1e4}
	require.NoError(t, FitTwoStage(m, data, cfg, cfg, b))

	finite(t, m.First.Loss(data).Item())
	finite(t, m.Second.Loss(m.EncodeLatents(data)).Item())
}
