package parallel

import (
	"sync/atomic"
	"testing"
)

func TestForCoversRange(t *testing.T) {
	cfg := DefaultConfig()

	var counter int64
	n := 1000

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("expected %d invocations, got %d", n, counter)
	}
}

func TestForSequentialFallback(t *testing.T) {
	cfg := Config{Enabled: false}

	order := make([]int, 0, 10)
	For(10, func(i int) {
		order = append(order, i)
	}, cfg)

	for i, v := range order {
		if i != v {
			t.Fatalf("sequential fallback out of order at %d: %d", i, v)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.NumWorkers <= 0 {
		t.Errorf("expected positive worker count, got %d", cfg.NumWorkers)
	}
	if cfg.MinChunkSize <= 0 {
		t.Errorf("expected positive chunk size, got %d", cfg.MinChunkSize)
	}
}
