package sampler

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latent-ml/latent/internal/backend/cpu"
	"github.com/latent-ml/latent/internal/tensor"
)

// dataset builds a [2, n] dataset whose feature values encode the
// sample index, so batches can be traced back to their sources.
func dataset(t *testing.T, b *cpu.Backend, n int) *tensor.Tensor[*cpu.Backend] {
	t.Helper()
	data := make([]float32, 2*n)
	for i := 0; i < n; i++ {
		data[i] = float32(i)        // feature 0
		data[n+i] = float32(i) * 10 // feature 1
	}
	d, err := tensor.FromSlice(data, tensor.Shape{2, n}, b)
	require.NoError(t, err)
	return d
}

func TestUniformProducesExactlyKBatches(t *testing.T) {
	b := cpu.NewSequential()
	s, err := NewUniform(dataset(t, b, 10), UniformConfig{Iterations: 5, BatchSize: 3, Seed: 1})
	require.NoError(t, err)

	batches := CollectAll(s)
	require.Len(t, batches, 5)
	for _, batch := range batches {
		assert.Equal(t, 3, batch.Len())
		assert.True(t, batch.Data.Shape().Equal(tensor.Shape{2, 3}))
	}
}

func TestUniformExhaustionIsIdempotent(t *testing.T) {
	b := cpu.NewSequential()
	s, err := NewUniform(dataset(t, b, 4), UniformConfig{Iterations: 1, BatchSize: 2, Seed: 1})
	require.NoError(t, err)

	_, ok := s.Next()
	require.True(t, ok)

	for i := 0; i < 3; i++ {
		batch, ok := s.Next()
		assert.Nil(t, batch)
		assert.False(t, ok)
	}
}

func TestUniformClampsBatchSizeWithoutReplacement(t *testing.T) {
	b := cpu.NewSequential()
	s, err := NewUniform(dataset(t, b, 4), UniformConfig{Iterations: 2, BatchSize: 9, Seed: 1})
	require.NoError(t, err)

	assert.Equal(t, 4, s.BatchSize())
	batch, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, 4, batch.Len())
}

func TestUniformWithReplacementKeepsBatchSize(t *testing.T) {
	b := cpu.NewSequential()
	s, err := NewUniform(dataset(t, b, 4), UniformConfig{
		Iterations: 1, BatchSize: 9, Replacement: true, Seed: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, 9, s.BatchSize())
	batch, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, 9, batch.Len())
}

func TestUniformWithoutReplacementNoDuplicatesInBatch(t *testing.T) {
	b := cpu.NewSequential()
	s, err := NewUniform(dataset(t, b, 10), UniformConfig{Iterations: 20, BatchSize: 6, Seed: 7})
	require.NoError(t, err)

	for batch, ok := s.Next(); ok; batch, ok = s.Next() {
		seen := make(map[int]bool)
		for _, idx := range batch.Indices {
			assert.False(t, seen[idx], "duplicate index %d within batch", idx)
			seen[idx] = true
		}
	}
}

func TestUniformRejectsInvalidConfig(t *testing.T) {
	b := cpu.NewSequential()
	d := dataset(t, b, 4)

	_, err := NewUniform(d, UniformConfig{Iterations: 0, BatchSize: 2})
	assert.Error(t, err)

	_, err = NewUniform(d, UniformConfig{Iterations: 3, BatchSize: 0})
	assert.Error(t, err)
}

func TestUniformReset(t *testing.T) {
	b := cpu.NewSequential()
	s, err := NewUniform(dataset(t, b, 6), UniformConfig{Iterations: 4, BatchSize: 2, Seed: 3})
	require.NoError(t, err)

	first := CollectAll(s)
	require.Len(t, first, 4)

	s.Reset()
	second := CollectAll(s)
	assert.Len(t, second, 4)
}

func TestEpochCoveragePartition(t *testing.T) {
	b := cpu.NewSequential()
	s, err := NewEpoch(dataset(t, b, 10), EpochConfig{Epochs: 1, BatchSize: 3, Seed: 5})
	require.NoError(t, err)

	batches := CollectAll(s)
	require.Len(t, batches, 4)

	sizes := make([]int, len(batches))
	var all []int
	for i, batch := range batches {
		sizes[i] = batch.Len()
		all = append(all, batch.Indices...)
	}
	sort.Ints(sizes)
	assert.Equal(t, []int{1, 3, 3, 3}, sizes)

	// The union of all batches is {0..9} with no repeats.
	sort.Ints(all)
	require.Len(t, all, 10)
	for i, idx := range all {
		assert.Equal(t, i, idx)
	}
}

func TestEpochMultiEpochConsumption(t *testing.T) {
	b := cpu.NewSequential()
	const n, epochs = 10, 3
	s, err := NewEpoch(dataset(t, b, n), EpochConfig{Epochs: epochs, BatchSize: 4, Seed: 5})
	require.NoError(t, err)

	total := 0
	for _, batch := range CollectAll(s) {
		total += batch.Len()
	}
	assert.Equal(t, epochs*n, total)
}

func TestEpochBatchSizeAtLeastDataset(t *testing.T) {
	b := cpu.NewSequential()
	s, err := NewEpoch(dataset(t, b, 5), EpochConfig{Epochs: 2, BatchSize: 8, Seed: 5})
	require.NoError(t, err)

	assert.Equal(t, 5, s.BatchSize())
	assert.Equal(t, 1, s.IterationsPerEpoch())

	batches := CollectAll(s)
	require.Len(t, batches, 2)
	for _, batch := range batches {
		assert.Equal(t, 5, batch.Len())
	}
}

func TestEpochResetRestoresCoverage(t *testing.T) {
	b := cpu.NewSequential()
	s, err := NewEpoch(dataset(t, b, 7), EpochConfig{Epochs: 2, BatchSize: 3, Seed: 9})
	require.NoError(t, err)

	_ = CollectAll(s)
	_, ok := s.Next()
	require.False(t, ok)

	s.Reset()
	total := 0
	for _, batch := range CollectAll(s) {
		total += batch.Len()
	}
	assert.Equal(t, 14, total)
}

func TestEpochRejectsInvalidConfig(t *testing.T) {
	b := cpu.NewSequential()
	d := dataset(t, b, 4)

	_, err := NewEpoch(d, EpochConfig{Epochs: 0, BatchSize: 2})
	assert.Error(t, err)

	_, err = NewEpoch(d, EpochConfig{Epochs: -1, BatchSize: 2})
	assert.Error(t, err)
}

func TestEpochBatchDataMatchesIndices(t *testing.T) {
	b := cpu.NewSequential()
	const n = 6
	s, err := NewEpoch(dataset(t, b, n), EpochConfig{Epochs: 1, BatchSize: 4, Seed: 11})
	require.NoError(t, err)

	for batch, ok := s.Next(); ok; batch, ok = s.Next() {
		m := batch.Len()
		data := batch.Data.Data()
		for col, idx := range batch.Indices {
			assert.Equal(t, float32(idx), data[col])        // feature 0
			assert.Equal(t, float32(idx)*10, data[m+col])   // feature 1
		}
	}
}

func TestEnumerateIsOneBased(t *testing.T) {
	b := cpu.NewSequential()
	s, err := NewUniform(dataset(t, b, 6), UniformConfig{Iterations: 3, BatchSize: 2, Seed: 1})
	require.NoError(t, err)

	indexed := Enumerate(s)
	require.Len(t, indexed, 3)
	for i, ib := range indexed {
		assert.Equal(t, i+1, ib.N)
		assert.Equal(t, 2, ib.Batch.Len())
	}
}

func TestCollectAllOnExhaustedSamplerIsEmpty(t *testing.T) {
	b := cpu.NewSequential()
	s, err := NewUniform(dataset(t, b, 6), UniformConfig{Iterations: 2, BatchSize: 2, Seed: 1})
	require.NoError(t, err)

	_ = CollectAll(s)
	assert.Empty(t, CollectAll(s))
}
