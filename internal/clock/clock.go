// Package clock abstracts time so generation code can be tested with a
// deterministic clock. Everything downstream reads the clock once per batch
// so a single generation pass never sees two different instants.
package clock

import "time"

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

// System is the production clock backed by time.Now.
type System struct{}

// NewSystem returns a Clock reading the real system time.
func NewSystem() *System {
	return &System{}
}

// Now returns the current system time.
func (*System) Now() time.Time {
	return time.Now()
}

// Fixed is a clock pinned to a single instant, for tests.
type Fixed struct {
	At time.Time
}

// Now returns the pinned instant.
func (f *Fixed) Now() time.Time {
	return f.At
}
