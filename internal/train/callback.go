package train

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/latent-ml/latent/internal/nn"
	"github.com/latent-ml/latent/internal/sampler"
	"github.com/latent-ml/latent/internal/tensor"
)

// Metric is one named scalar observed during training.
type Metric struct {
	Name  string
	Value float32
}

// MetricFn extracts the current scalar metrics from a model on a batch.
// Injecting the extraction function lets one Tracking callback serve
// every model variant.
type MetricFn[B tensor.Backend] func(model nn.Module[B], batch *sampler.Batch[B]) []Metric

// Step is the per-step observation handed to callbacks. Callbacks
// observe but never mutate the driver's control flow.
type Step[B tensor.Backend] struct {
	Model      nn.Module[B]
	Batch      *sampler.Batch[B]
	Objectives []Objective[B]
}

// Callback observes one training step.
type Callback[B tensor.Backend] interface {
	OnStep(step Step[B])
}

// Nop is the no-op callback for throughput-sensitive runs.
type Nop[B tensor.Backend] struct{}

func (Nop[B]) OnStep(Step[B]) {}

// TrackingConfig configures a Tracking callback.
type TrackingConfig[B tensor.Backend] struct {
	// History, when set, receives every metric on every step.
	History *History

	// Metrics extracts the scalars to track and display.
	Metrics MetricFn[B]

	// Verbose enables progress rendering.
	Verbose bool

	// ReportEvery is the step interval between display refreshes
	// (default 10). The very first step always renders.
	ReportEvery int

	// EpochSize converts step counts to epoch indices for display:
	// epoch = ceil(step / EpochSize). Default 1.
	EpochSize int

	// Out receives progress output. Default os.Stdout.
	Out io.Writer
}

// Tracking is the stateful observer: it counts steps, appends metrics
// to an optional history sink, and renders a progress line.
//
// Between report intervals the previously computed metric values are
// reused for display rather than recomputed, trading display freshness
// for avoiding redundant evaluation when no history sink forces a
// per-step computation anyway.
type Tracking[B tensor.Backend] struct {
	history     *History
	metrics     MetricFn[B]
	verbose     bool
	reportEvery int
	epochSize   int
	out         io.Writer

	steps  int
	cached []Metric
}

// NewTracking creates a Tracking callback.
func NewTracking[B tensor.Backend](cfg TrackingConfig[B]) *Tracking[B] {
	if cfg.ReportEvery <= 0 {
		cfg.ReportEvery = 10
	}
	if cfg.EpochSize <= 0 {
		cfg.EpochSize = 1
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	return &Tracking[B]{
		history:     cfg.History,
		metrics:     cfg.Metrics,
		verbose:     cfg.Verbose,
		reportEvery: cfg.ReportEvery,
		epochSize:   cfg.EpochSize,
		out:         cfg.Out,
	}
}

// Steps returns the number of invocations so far.
func (t *Tracking[B]) Steps() int {
	return t.steps
}

// OnStep records metrics and refreshes the progress display.
func (t *Tracking[B]) OnStep(step Step[B]) {
	t.steps++

	var current []Metric
	if t.history != nil && t.metrics != nil {
		current = t.metrics(step.Model, step.Batch)
		for _, m := range current {
			t.history.Append(m.Name, m.Value)
		}
	}

	if !t.verbose {
		return
	}
	if t.steps == 1 || t.steps%t.reportEvery == 0 {
		if current == nil && t.metrics != nil {
			current = t.metrics(step.Model, step.Batch)
		}
		t.cached = current
	}
	t.render()
}

func (t *Tracking[B]) render() {
	epoch := (t.steps + t.epochSize - 1) / t.epochSize

	var sb strings.Builder
	fmt.Fprintf(&sb, "\repoch %d step %d", epoch, t.steps)
	for _, m := range t.cached {
		fmt.Fprintf(&sb, "  %s=%.4f", m.Name, m.Value)
	}
	fmt.Fprint(t.out, sb.String())
}
