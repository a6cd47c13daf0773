// Package status is a lock-free metrics registry
// Producers resolve a metric pointer once and write atomics on the hot path;
// the status line reads them through Snapshot
package status

import (
	"fmt"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
)

// Registry groups metrics by value type
type Registry struct {
	Flags  *MetricMap[atomic.Bool]
	Counts *MetricMap[atomic.Int64]
	Gauges *MetricMap[Gauge]
	Labels *MetricMap[Label]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Flags:  NewMetricMap[atomic.Bool](),
		Counts: NewMetricMap[atomic.Int64](),
		Gauges: NewMetricMap[Gauge](),
		Labels: NewMetricMap[Label](),
	}
}

// Entry is one formatted metric
type Entry struct {
	Key   string
	Value string
}

// Snapshot returns every metric formatted and sorted by key
func (r *Registry) Snapshot() []Entry {
	var out []Entry
	r.Flags.Range(func(k string, v *atomic.Bool) {
		out = append(out, Entry{k, strconv.FormatBool(v.Load())})
	})
	r.Counts.Range(func(k string, v *atomic.Int64) {
		out = append(out, Entry{k, strconv.FormatInt(v.Load(), 10)})
	})
	r.Gauges.Range(func(k string, v *Gauge) {
		out = append(out, Entry{k, fmt.Sprintf("%.1f", v.Get())})
	})
	r.Labels.Range(func(k string, v *Label) {
		out = append(out, Entry{k, v.Load()})
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// MetricMap lazily allocates one T per key
// Get takes a lock only on first use of a key
type MetricMap[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

// NewMetricMap creates an empty map
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{items: make(map[string]*T)}
}

// Get returns the metric for key, allocating it on first call
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	ptr, ok := m.items[key]
	m.mu.RUnlock()
	if ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr, ok := m.items[key]; ok {
		return ptr
	}
	ptr = new(T)
	m.items[key] = ptr
	return ptr
}

// Range visits metrics in key order
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fn(k, m.items[k])
	}
}

// Len returns the number of registered metrics
func (m *MetricMap[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
