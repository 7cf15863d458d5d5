package page

import "time"

// Clock schedules delayed callbacks.
type Clock interface {
	AfterFunc(d time.Duration, f func())
}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, f func()) { time.AfterFunc(d, f) }

// SystemClock returns a Clock backed by the time package.
func SystemClock() Clock { return systemClock{} }
