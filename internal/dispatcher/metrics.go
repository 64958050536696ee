package dispatcher

import (
	"sort"
	"sync"
	"time"
)

// Metrics collects binding invocation statistics. One collector may be
// shared by several dispatchers.
type Metrics struct {
	mu sync.RWMutex

	bindings map[string]*BindingMetrics

	totalInvocations uint64
	totalErrors      uint64
	totalPanics      uint64
	totalDuration    time.Duration
}

// BindingMetrics holds metrics for one binding name.
type BindingMetrics struct {
	Name        string
	Invocations uint64
	Errors      uint64
	Panics      uint64
	MaxDuration time.Duration
	LastInvoked time.Time

	totalDuration time.Duration
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		bindings: make(map[string]*BindingMetrics),
	}
}

func (m *Metrics) entry(name string) *BindingMetrics {
	bm := m.bindings[name]
	if bm == nil {
		bm = &BindingMetrics{Name: name}
		m.bindings[name] = bm
	}
	return bm
}

// RecordInvoke records one action run.
func (m *Metrics) RecordInvoke(name string, duration time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalInvocations++
	m.totalDuration += duration

	bm := m.entry(name)
	bm.Invocations++
	bm.totalDuration += duration
	bm.LastInvoked = time.Now()
	if duration > bm.MaxDuration {
		bm.MaxDuration = duration
	}

	if err != nil {
		m.totalErrors++
		bm.Errors++
	}
}

// RecordPanic records a recovered panic. The panicking run counts as an
// invocation and an error.
func (m *Metrics) RecordPanic(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalInvocations++
	m.totalErrors++
	m.totalPanics++

	bm := m.entry(name)
	bm.Invocations++
	bm.Errors++
	bm.Panics++
	bm.LastInvoked = time.Now()
}

// TotalInvocations returns the number of actions run.
func (m *Metrics) TotalInvocations() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalInvocations
}

// TotalErrors returns the number of actions that failed or panicked.
func (m *Metrics) TotalErrors() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalErrors
}

// TotalPanics returns the number of panics recovered.
func (m *Metrics) TotalPanics() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalPanics
}

// BindingStats returns a copy of the metrics for one binding, or nil.
func (m *Metrics) BindingStats(name string) *BindingMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	bm := m.bindings[name]
	if bm == nil {
		return nil
	}
	c := *bm
	return &c
}

// TopBindings returns the n most invoked bindings.
func (m *Metrics) TopBindings(n int) []*BindingMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*BindingMetrics, 0, len(m.bindings))
	for _, bm := range m.bindings {
		c := *bm
		out = append(out, &c)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Invocations != out[j].Invocations {
			return out[i].Invocations > out[j].Invocations
		}
		return out[i].Name < out[j].Name
	})

	return out[:min(n, len(out))]
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.bindings = make(map[string]*BindingMetrics)
	m.totalInvocations = 0
	m.totalErrors = 0
	m.totalPanics = 0
	m.totalDuration = 0
}

// MetricsSnapshot is a point-in-time view of the totals.
type MetricsSnapshot struct {
	TotalInvocations uint64
	TotalErrors      uint64
	TotalPanics      uint64
	AverageDuration  time.Duration
	BindingCount     int
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := MetricsSnapshot{
		TotalInvocations: m.totalInvocations,
		TotalErrors:      m.totalErrors,
		TotalPanics:      m.totalPanics,
		BindingCount:     len(m.bindings),
	}
	if m.totalInvocations > 0 {
		s.AverageDuration = m.totalDuration / time.Duration(m.totalInvocations)
	}
	return s
}

// AverageDuration returns the mean run time of the binding's action.
func (bm *BindingMetrics) AverageDuration() time.Duration {
	if bm.Invocations == 0 {
		return 0
	}
	return bm.totalDuration / time.Duration(bm.Invocations)
}
