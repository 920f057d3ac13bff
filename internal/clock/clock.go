package clock

import "time"

// Clock abstracts time.Now() so the review engine's callers can inject a
// deterministic "now" in tests. The engine itself never reads ambient time;
// it takes a timestamp argument on every call.
type Clock interface {
	Now() time.Time
}

// Real implements Clock using the standard time package.
type Real struct{}

// Now returns the current local time.
func (Real) Now() time.Time {
	return time.Now()
}

// Fixed is a Clock pinned to a single instant, for tests.
type Fixed struct {
	T time.Time
}

// Now returns the pinned instant.
func (f Fixed) Now() time.Time {
	return f.T
}
