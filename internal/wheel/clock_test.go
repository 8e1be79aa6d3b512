package wheel

import (
	"sync"
	"time"
)

// virtualClock advances by step on every delivered frame, without sleeping.
type virtualClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func newVirtualClock(step time.Duration) *virtualClock {
	return &virtualClock{
		now:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		step: step,
	}
}

func (c *virtualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *virtualClock) Frames(time.Duration) (<-chan time.Time, func()) {
	ch := make(chan time.Time)
	quit := make(chan struct{})

	go func() {
		for {
			c.mu.Lock()
			c.now = c.now.Add(c.step)
			t := c.now
			c.mu.Unlock()

			select {
			case ch <- t:
			case <-quit:
				return
			}
		}
	}()

	var once sync.Once
	return ch, func() { once.Do(func() { close(quit) }) }
}

// manualClock delivers only the frames the test sends.
type manualClock struct {
	start  time.Time
	frames chan time.Time
}

func newManualClock() *manualClock {
	return &manualClock{
		start:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		frames: make(chan time.Time),
	}
}

func (c *manualClock) Now() time.Time {
	return c.start
}

func (c *manualClock) Frames(time.Duration) (<-chan time.Time, func()) {
	return c.frames, func() {}
}

func (c *manualClock) tick(after time.Duration) {
	c.frames <- c.start.Add(after)
}

// recorder keeps every rendered frame.
type recorder struct {
	mu     sync.Mutex
	frames []Frame
}

func (r *recorder) Render(f Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, f)
}

func (r *recorder) all() []Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Frame(nil), r.frames...)
}
