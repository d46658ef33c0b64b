package optim

import (
	"math"

	"github.com/latent-ml/latent/internal/nn"
	"github.com/latent-ml/latent/internal/tensor"
)

// Adam implements the Adam optimizer (Kingma & Ba, 2014).
//
// Per parameter it maintains exponential moving averages of the
// gradient (m) and squared gradient (v), bias-corrects both, and steps
//
//	step = lr * m̂ / (√v̂ + eps)
//
// The timestep for bias correction advances per parameter, which is
// equivalent to the per-step formulation as long as a parameter
// receives a gradient every time it participates in an update.
type Adam[B tensor.Backend] struct {
	params []*nn.Parameter[B]
	lr     float32
	beta1  float32
	beta2  float32
	eps    float32
	m      map[*nn.Parameter[B]]*tensor.Tensor[B]
	v      map[*nn.Parameter[B]]*tensor.Tensor[B]
	t      map[*nn.Parameter[B]]int
}

// AdamConfig holds configuration for the Adam optimizer.
type AdamConfig struct {
	LR    float32    // Learning rate (default 0.001)
	Betas [2]float32 // Moving-average coefficients (default 0.9, 0.999)
	Eps   float32    // Numerical-stability term (default 1e-8)
}

// NewAdam creates an Adam optimizer over the given parameters.
func NewAdam[B tensor.Backend](params []*nn.Parameter[B], config AdamConfig) *Adam[B] {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}
	return &Adam[B]{
		params: params,
		lr:     config.LR,
		beta1:  config.Betas[0],
		beta2:  config.Betas[1],
		eps:    config.Eps,
		m:      make(map[*nn.Parameter[B]]*tensor.Tensor[B]),
		v:      make(map[*nn.Parameter[B]]*tensor.Tensor[B]),
		t:      make(map[*nn.Parameter[B]]int),
	}
}

// Params returns the managed parameters.
func (a *Adam[B]) Params() []*nn.Parameter[B] {
	return a.params
}

// Delta returns the step for one parameter, advancing its moments.
func (a *Adam[B]) Delta(p *nn.Parameter[B], grad *tensor.Tensor[B]) *tensor.Tensor[B] {
	m, ok := a.m[p]
	if !ok {
		m = tensor.Zeros(grad.Shape(), grad.Backend())
		a.m[p] = m
	}
	v, ok := a.v[p]
	if !ok {
		v = tensor.Zeros(grad.Shape(), grad.Backend())
		a.v[p] = v
	}

	a.t[p]++
	t := a.t[p]
	bc1 := float32(1 - math.Pow(float64(a.beta1), float64(t)))
	bc2 := float32(1 - math.Pow(float64(a.beta2), float64(t)))

	delta := tensor.Zeros(grad.Shape(), grad.Backend())
	gd, md, vd, dd := grad.Data(), m.Data(), v.Data(), delta.Data()

	for i := range gd {
		g := gd[i]
		md[i] = a.beta1*md[i] + (1-a.beta1)*g
		vd[i] = a.beta2*vd[i] + (1-a.beta2)*g*g

		mHat := md[i] / bc1
		vHat := vd[i] / bc2

		dd[i] = a.lr * mHat / (float32(math.Sqrt(float64(vHat))) + a.eps)
	}

	return delta
}

// LR returns the current learning rate.
func (a *Adam[B]) LR() float32 {
	return a.lr
}

// SetLR updates the learning rate.
func (a *Adam[B]) SetLR(lr float32) {
	a.lr = lr
}
