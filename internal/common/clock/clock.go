// Package clock lets services read the time through an interface so tests
// can pin it.
package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/numguess/internal/common/clock Clock
type Clock interface {
	Now() time.Time
}

// System reads the wall clock in UTC
type System struct{}

// New returns the system clock
func New() *System {
	return &System{}
}

// Now returns the current time in UTC
func (c *System) Now() time.Time {
	return time.Now().UTC()
}
