package clock

import "time"

// WallClock is the production ports.Clock backed by the system clock.
type WallClock struct{}

func New() WallClock {
	return WallClock{}
}

func (WallClock) Now() time.Time {
	return time.Now()
}

func (WallClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}
