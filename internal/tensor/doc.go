// Package tensor implements the float32 tensor substrate for the latent
// library.
//
// The package defines:
//   - RawTensor: an untyped dense float32 buffer with a shape
//   - Tensor[B]: a backend-parameterized tensor with operator methods
//   - Backend: the interface compute backends implement
//   - Shape: dimension vector where the last axis indexes samples
//
// The library is sample-major: the last axis of every dataset tensor
// indexes independent samples, and all other axes are per-sample feature
// axes. A batch of b vectors with f features therefore has shape [f, b].
package tensor
