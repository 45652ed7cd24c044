package status

import (
	"sync"
	"testing"
)

func TestGetReturnsCachedPointer(t *testing.T) {
	m := NewMetricMap()
	a := m.Get("wave.spawned")
	b := m.Get("wave.spawned")
	if a != b {
		t.Error("Expected the same counter pointer for the same key")
	}

	a.Add(3)
	if b.Load() != 3 {
		t.Errorf("Expected 3 through the cached pointer, got %d", b.Load())
	}
}

func TestGetDistinctKeys(t *testing.T) {
	m := NewMetricMap()
	if m.Get("a") == m.Get("b") {
		t.Error("Distinct keys must not share a counter")
	}
}

func TestConcurrentGetSingleAllocation(t *testing.T) {
	m := NewMetricMap()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Get("engine.ticks").Add(1)
		}()
	}
	wg.Wait()

	if got := m.Get("engine.ticks").Load(); got != 16 {
		t.Errorf("Expected 16 increments on one counter, got %d", got)
	}
}
