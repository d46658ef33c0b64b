package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nopBackend satisfies Backend without doing any math; enough to test
// shape and storage behavior that never dispatches.
type nopBackend struct{ Backend }

func (nopBackend) Name() string { return "nop" }

func TestShapeBasics(t *testing.T) {
	s := Shape{4, 100}

	assert.Equal(t, 400, s.NumElements())
	assert.Equal(t, 100, s.Samples())
	assert.Equal(t, 4, s.SampleSize())
	assert.True(t, s.Equal(Shape{4, 100}))
	assert.False(t, s.Equal(Shape{100, 4}))
	assert.False(t, s.Equal(Shape{4}))

	batch := s.WithSamples(7)
	assert.Equal(t, Shape{4, 7}, batch)
	// Original is untouched.
	assert.Equal(t, Shape{4, 100}, s)

	c := s.Clone()
	c[0] = 9
	assert.Equal(t, 4, s[0])
}

func TestNewRawRejectsBadShapes(t *testing.T) {
	_, err := NewRaw(Shape{2, 0})
	assert.Error(t, err)

	_, err = NewRaw(Shape{-1, 3})
	assert.Error(t, err)
}

func TestNewRawFromLengthMismatch(t *testing.T) {
	_, err := NewRawFrom(make([]float32, 5), Shape{2, 3})
	assert.Error(t, err)

	raw, err := NewRawFrom([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3}, raw.Shape())
}

func TestTensorItemRequiresScalar(t *testing.T) {
	b := nopBackend{}

	one, err := FromSlice([]float32{3.5}, Shape{1}, b)
	require.NoError(t, err)
	assert.Equal(t, float32(3.5), one.Item())

	two, err := FromSlice([]float32{1, 2}, Shape{2}, b)
	require.NoError(t, err)
	assert.Panics(t, func() { two.Item() })
}

func TestDetachSharesDataWithNewIdentity(t *testing.T) {
	b := nopBackend{}

	x, err := FromSlice([]float32{1, 2, 3}, Shape{3}, b)
	require.NoError(t, err)
	d := x.Detach()

	// Same buffer, distinct raw identity.
	assert.NotSame(t, x.Raw(), d.Raw())
	d.Data()[0] = 9
	assert.Equal(t, float32(9), x.Data()[0])
}

func TestCloneCopiesData(t *testing.T) {
	b := nopBackend{}

	x, err := FromSlice([]float32{1, 2, 3}, Shape{3}, b)
	require.NoError(t, err)
	c := x.Clone()

	c.Data()[0] = 9
	assert.Equal(t, float32(1), x.Data()[0])
}
