package types

import "time"

/*
Clock is the time source used for every TTL decision.

The cache never calls time.Now directly. Tests plug in a manual clock
so expiry can be driven forward without sleeping.
*/
type Clock interface {
	Now() time.Time
}

// SystemClock reads the process clock. time.Now carries a monotonic
// reading, so ages computed from it are immune to wall-clock steps.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
