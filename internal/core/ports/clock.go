package ports

import "time"

// Clock supplies the current time to the application layer.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts an ordinary function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock returns the wall clock in UTC.
var SystemClock Clock = ClockFunc(func() time.Time { return time.Now().UTC() })
