package testutil

import "time"

// Epoch is a fixed instant tests use as their starting time.
var Epoch = time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)

// Clock is a manually advanced clock.
type Clock struct {
	CurrentTime time.Time
}

func NewClock() *Clock {
	return &Clock{CurrentTime: Epoch}
}

func (c *Clock) Now() time.Time {
	return c.CurrentTime
}

// Advance moves the clock forward by d and returns the new time.
func (c *Clock) Advance(d time.Duration) time.Time {
	c.CurrentTime = c.CurrentTime.Add(d)
	return c.CurrentTime
}
