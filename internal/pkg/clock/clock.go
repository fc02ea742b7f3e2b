// Package clock abstracts wall time so the simulated latency of login and
// registration can be skipped in tests.
package clock

import "time"

// Clock is the subset of the time package the services depend on.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type real struct{}

// Real returns a Clock backed by the time package.
func Real() Clock { return real{} }

func (real) Now() time.Time        { return time.Now() }
func (real) Sleep(d time.Duration) { time.Sleep(d) }
