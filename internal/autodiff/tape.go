package autodiff

import "github.com/latent-ml/latent/internal/autodiff/ops"

// GradientTape records operations during the forward pass for later
// reverse-mode traversal. A tape is owned by exactly one backend and is
// never shared across goroutines; training is strictly sequential.
type GradientTape struct {
	operations []ops.Operation
	recording  bool
}

// NewGradientTape creates an empty, non-recording tape.
func NewGradientTape() *GradientTape {
	return &GradientTape{}
}

// StartRecording enables recording of subsequent operations.
func (t *GradientTape) StartRecording() {
	t.recording = true
}

// StopRecording disables recording.
func (t *GradientTape) StopRecording() {
	t.recording = false
}

// IsRecording reports whether operations are currently recorded.
func (t *GradientTape) IsRecording() bool {
	return t.recording
}

// Record appends an operation to the tape.
func (t *GradientTape) Record(op ops.Operation) {
	t.operations = append(t.operations, op)
}

// Len returns the number of recorded operations.
func (t *GradientTape) Len() int {
	return len(t.operations)
}

// Reset drops all recorded operations and stops recording. Called after
// each backward pass so tensors from the previous step become
// collectable.
func (t *GradientTape) Reset() {
	t.operations = t.operations[:0]
	t.recording = false
}
