package wheel

import "time"

// Clock is the source of display refresh ticks driving the animation.
type Clock interface {
	Now() time.Time
	// Frames delivers tick timestamps roughly every interval until stop is called.
	Frames(interval time.Duration) (ticks <-chan time.Time, stop func())
}

type realClock struct{}

// RealClock ticks with the wall clock.
func RealClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) Frames(interval time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(interval)
	return t.C, t.Stop
}
