package core

import "time"

// TickScheduler gates simulation updates to a fixed real-time interval,
// independent of how often the render loop asks.
type TickScheduler struct {
	last time.Time
}

// NewTickScheduler creates a scheduler whose first interval starts at start.
func NewTickScheduler(start time.Time) *TickScheduler {
	return &TickScheduler{last: start}
}

// ShouldTick reports whether at least interval has elapsed since the last
// accepted tick. When it returns true the scheduler restarts its interval at now.
func (s *TickScheduler) ShouldTick(now time.Time, interval time.Duration) bool {
	if now.Sub(s.last) >= interval {
		s.last = now
		return true
	}
	return false
}

// LastTick returns the time of the last accepted tick.
func (s *TickScheduler) LastTick() time.Time {
	return s.last
}
