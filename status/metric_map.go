package status

import (
	"sync"
	"sync/atomic"
)

// MetricMap is a thread-safe registry of named counters.
// Registration uses a mutex; systems resolve their counter pointers once at
// construction and write lock-free from then on.
type MetricMap struct {
	mu    sync.RWMutex
	items map[string]*atomic.Int64
}

// NewMetricMap creates an initialized MetricMap
func NewMetricMap() *MetricMap {
	return &MetricMap{
		items: make(map[string]*atomic.Int64),
	}
}

// Get returns the counter for key, creating it if absent.
// First call for a key allocates; subsequent calls return the cached pointer
func (m *MetricMap) Get(key string) *atomic.Int64 {
	// Fast path: RLock check
	m.mu.RLock()
	if ptr, ok := m.items[key]; ok {
		m.mu.RUnlock()
		return ptr
	}
	m.mu.RUnlock()

	// Slow path: Lock and create
	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if ptr, ok := m.items[key]; ok {
		return ptr
	}

	ptr := new(atomic.Int64)
	m.items[key] = ptr
	return ptr
}
