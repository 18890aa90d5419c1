package dateutil

import "time"

// Clock is the source of the current time. Domains take a Clock instead of calling
// time.Now so tests can pin timestamps.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func NewSystemClock() Clock {
	return systemClock{}
}

// Now is truncated to milliseconds, the finest precision every supported database keeps.
func (systemClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

type fixedClock struct {
	t time.Time
}

// NewFixedClock always returns t in UTC.
func NewFixedClock(t time.Time) Clock {
	return fixedClock{t: t.UTC()}
}

func (c fixedClock) Now() time.Time {
	return c.t
}
