package clock

import "time"

// settle gives the wall clock a moment to actually cross the minute
// boundary before the tick fires.
const settle = 50 * time.Millisecond

// NextMinuteDelay returns how long to wait so the next tick lands just
// past the top of the next minute. Recomputing this on every fire keeps
// the minute clock from drifting.
func NextMinuteDelay(now time.Time) time.Duration {
	return time.Duration(60-now.Second())*time.Second + settle
}
