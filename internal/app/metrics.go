package app

import (
	"sync/atomic"
	"time"
)

// Metrics tracks frame loop timing.
type Metrics struct {
	// Frame timing (clear, render, flush)
	frameCount   atomic.Uint64
	frameTotalNs atomic.Int64
	frameMaxNs   atomic.Int64

	// Input handling (broadcast of one polled event)
	inputCount   atomic.Uint64
	inputTotalNs atomic.Int64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordFrame records the time taken to draw one frame.
func (m *Metrics) RecordFrame(duration time.Duration) {
	ns := duration.Nanoseconds()
	m.frameCount.Add(1)
	m.frameTotalNs.Add(ns)

	for {
		old := m.frameMaxNs.Load()
		if ns <= old || m.frameMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordInput records the time taken to broadcast one input event.
func (m *Metrics) RecordInput(duration time.Duration) {
	m.inputCount.Add(1)
	m.inputTotalNs.Add(duration.Nanoseconds())
}

// MetricsSnapshot is a point-in-time view of the loop metrics.
type MetricsSnapshot struct {
	Frames       uint64
	AvgFrameTime time.Duration
	MaxFrameTime time.Duration
	Inputs       uint64
	AvgInputTime time.Duration
	Uptime       time.Duration
}

// Snapshot returns the current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	s := MetricsSnapshot{
		Frames:       m.frameCount.Load(),
		MaxFrameTime: time.Duration(m.frameMaxNs.Load()),
		Inputs:       m.inputCount.Load(),
		Uptime:       time.Since(m.startTime),
	}
	if s.Frames > 0 {
		s.AvgFrameTime = time.Duration(m.frameTotalNs.Load() / int64(s.Frames))
	}
	if s.Inputs > 0 {
		s.AvgInputTime = time.Duration(m.inputTotalNs.Load() / int64(s.Inputs))
	}
	return s
}
