// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics collector for allocator monitoring.
// Exposes counters in a thread-safe map with dynamic registration.

package control

import (
	"strconv"
	"sync"
	"time"

	"github.com/momentics/hioload-buf/api"
)

// MetricsRegistry holds mutable and read-only metrics.
type MetricsRegistry struct {
	mu      sync.RWMutex
	metrics map[string]any
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		metrics: make(map[string]any),
	}
}

// Set sets or updates a metric key.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// GetSnapshot returns the latest metrics.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.metrics))
	for k, v := range mr.metrics {
		out[k] = v
	}
	return out
}

// PublishAllocator snapshots an allocator's accounting into the
// registry under name-prefixed keys.
func PublishAllocator(mr *MetricsRegistry, name string, src api.StatsProvider) {
	st := src.Stats()
	mr.Set(name+".lease_total", st.TotalLease)
	mr.Set(name+".release_total", st.TotalRelease)
	mr.Set(name+".alloc_total", st.TotalAlloc)
	mr.Set(name+".in_use", st.InUse)
	for clz, n := range st.PerClass {
		mr.Set(name+".class."+strconv.Itoa(clz), n)
	}
}
