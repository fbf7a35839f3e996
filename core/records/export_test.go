package records

import "time"

// SetNow swaps the clock used to timestamp sessions and returns a restore func.
func SetNow(f func() time.Time) (restore func()) {
	prev := nowFunc
	nowFunc = f
	return func() { nowFunc = prev }
}
