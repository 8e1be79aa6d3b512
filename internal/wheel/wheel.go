package wheel

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/petuhovskiy/spinwheel/internal/bgjobs"
	"github.com/petuhovskiy/spinwheel/internal/wrand"
)

const (
	DefaultDuration      = 5000 * time.Millisecond
	DefaultFrameInterval = time.Second / 60
	DefaultWeightCap     = 100
)

// Wheel holds the items and the animation state of a single wheel.
// Wheels share nothing with each other.
type Wheel struct {
	name          string
	mode          Mode
	weightCap     float64
	duration      time.Duration
	frameInterval time.Duration
	clock         Clock
	sampler       *Sampler
	renderer      Renderer
	register      *bgjobs.Register

	mu       sync.Mutex
	items    []Item
	rotation float64
	spinning atomic.Bool
}

type Option func(w *Wheel)

// WithSource sets the uniform [0,1) source used for sampling.
func WithSource(src wrand.Source) Option {
	return func(w *Wheel) { w.sampler = NewSampler(src) }
}

func WithClock(c Clock) Option {
	return func(w *Wheel) { w.clock = c }
}

func WithRenderer(r Renderer) Option {
	return func(w *Wheel) { w.renderer = r }
}

// WithDuration sets the wall-clock length of the spin animation.
func WithDuration(d time.Duration) Option {
	return func(w *Wheel) { w.duration = d }
}

func WithFrameInterval(d time.Duration) Option {
	return func(w *Wheel) { w.frameInterval = d }
}

// WithWeightCap limits the total weight of a weighted wheel. Zero disables the cap.
func WithWeightCap(c float64) Option {
	return func(w *Wheel) { w.weightCap = c }
}

// WithRegister runs animations as tracked background jobs.
func WithRegister(r *bgjobs.Register) Option {
	return func(w *Wheel) { w.register = r }
}

func New(name string, mode Mode, opts ...Option) *Wheel {
	w := &Wheel{
		name:          name,
		mode:          mode,
		weightCap:     DefaultWeightCap,
		duration:      DefaultDuration,
		frameInterval: DefaultFrameInterval,
		clock:         RealClock(),
		sampler:       NewSampler(nil),
		renderer:      nopRenderer{},
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.register == nil {
		w.register = bgjobs.NewRegister()
	}
	return w
}

func (w *Wheel) Name() string {
	return w.name
}

func (w *Wheel) Mode() Mode {
	return w.mode
}

// Rotation returns the cumulative rotation in radians.
func (w *Wheel) Rotation() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.rotation
}

func (w *Wheel) IsSpinning() bool {
	return w.spinning.Load()
}

// Sectors returns the current layout of the wheel.
func (w *Wheel) Sectors() []Sector {
	w.mu.Lock()
	defer w.mu.Unlock()
	return Layout(w.items, w.mode)
}

// Draw renders the wheel in its current state.
func (w *Wheel) Draw() {
	w.redraw(1, w.IsSpinning())
}

func (w *Wheel) redraw(progress float64, spinning bool) {
	w.mu.Lock()
	f := Frame{
		Wheel:    w.name,
		Sectors:  Layout(w.items, w.mode),
		Rotation: w.rotation,
		Progress: progress,
		Spinning: spinning,
	}
	w.mu.Unlock()

	w.renderer.Render(f)
}
