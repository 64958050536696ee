package app

import "sync/atomic"

// RunState is the flag that keeps the frame loop going. It starts true and
// only ever transitions to false.
type RunState struct {
	running atomic.Bool
}

// NewRunState returns a run-state that is running.
func NewRunState() *RunState {
	rs := &RunState{}
	rs.running.Store(true)
	return rs
}

// Running reports whether the loop should continue.
func (rs *RunState) Running() bool {
	return rs.running.Load()
}

// Stop clears the flag. It reports whether this call made the change.
func (rs *RunState) Stop() bool {
	return rs.running.CompareAndSwap(true, false)
}
