package wheel

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/petuhovskiy/spinwheel/internal/log"
)

// Result describes a finished spin.
type Result struct {
	Wheel  string
	Winner string
	// Sampled is the index drawn before the animation started.
	Sampled int
	// Resolved is the index found under the pointer after the animation.
	Resolved      int
	Revolutions   float64
	StartRotation float64
	FinalRotation float64
	StartedAt     time.Time
	FinishedAt    time.Time
}

// Consistent reports whether the geometric winner matches the sampled one.
func (r *Result) Consistent() bool {
	return r.Sampled == r.Resolved
}

func (r *Result) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// Spin is a handle to an in-flight (or declined) spin.
type Spin struct {
	done   chan struct{}
	result *Result
}

func declinedSpin() *Spin {
	s := &Spin{done: make(chan struct{})}
	close(s.done)
	return s
}

// Done is closed once the spin finished or was declined.
func (s *Spin) Done() <-chan struct{} {
	return s.done
}

// Wait blocks until the spin completes. A nil result means the spin was
// declined. Cancelling ctx stops waiting but does not stop the wheel.
func (s *Spin) Wait(ctx context.Context) (*Result, error) {
	select {
	case <-s.done:
		return s.result, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Winner returns the winning label of a finished spin.
func (s *Spin) Winner() (string, bool) {
	select {
	case <-s.done:
	default:
		return "", false
	}
	if s.result == nil {
		return "", false
	}
	return s.result.Winner, true
}

// Ease is the quartic ease-out curve. Progress is clamped to [0, 1].
func Ease(progress float64) float64 {
	if progress <= 0 {
		return 0
	}
	if progress >= 1 {
		return 1
	}
	return 1 - math.Pow(1-progress, 4)
}

// Spin starts spinning the wheel and returns immediately. The winner is
// fixed before the animation begins; the animation runs for the configured
// duration and cannot be aborted. A wheel with fewer than two items, or one
// that is already spinning, declines the spin without changing any state.
func (w *Wheel) Spin(ctx context.Context, revolutions float64) *Spin {
	ctx = log.With(ctx, zap.String("wheel", w.name))

	w.mu.Lock()
	if len(w.items) < 2 {
		w.mu.Unlock()
		log.Debug(ctx, "not enough items to spin", zap.Int("count", len(w.items)))
		return declinedSpin()
	}
	if !w.spinning.CompareAndSwap(false, true) {
		w.mu.Unlock()
		log.Debug(ctx, "wheel is already spinning")
		return declinedSpin()
	}
	sectors := Layout(w.items, w.mode)
	start := w.rotation
	items := make([]Item, len(w.items))
	copy(items, w.items)
	w.mu.Unlock()

	sampled := w.sampler.Sample(items, w.mode)
	delta := TargetDelta(sectors, sampled, start, revolutions)

	res := &Result{
		Wheel:         w.name,
		Sampled:       sampled,
		Revolutions:   revolutions,
		StartRotation: start,
		StartedAt:     w.clock.Now(),
	}
	s := &Spin{
		done:   make(chan struct{}),
		result: res,
	}

	log.Debug(
		ctx,
		"spin started",
		zap.Int("sampled", sampled),
		zap.Float64("start", start),
		zap.Float64("delta", delta),
	)

	// the caller cannot abort a started spin
	ctx = context.WithoutCancel(ctx)
	w.register.Go(func() {
		w.animate(ctx, s, sectors, start, delta)
	})

	return s
}

func (w *Wheel) animate(ctx context.Context, s *Spin, sectors []Sector, start, delta float64) {
	res := s.result

	ticks, stop := w.clock.Frames(w.frameInterval)
	for now := range ticks {
		elapsed := now.Sub(res.StartedAt)
		if elapsed >= w.duration {
			res.FinishedAt = now
			break
		}

		eased := Ease(float64(elapsed) / float64(w.duration))
		w.setRotation(start + delta*eased)
		w.renderer.Render(Frame{
			Wheel:    w.name,
			Sectors:  sectors,
			Rotation: start + delta*eased,
			Progress: eased,
			Spinning: true,
		})
	}
	stop()

	final := start + delta
	w.setRotation(final)

	res.FinalRotation = final
	// resolve in the start's own turn so a large cumulative rotation keeps its precision
	res.Resolved = Resolve(sectors, Normalize(start)+delta)
	res.Winner = sectors[res.Resolved].Label

	if !res.Consistent() {
		log.Error(
			ctx,
			"resolved winner differs from sampled",
			zap.Int("sampled", res.Sampled),
			zap.Int("resolved", res.Resolved),
			zap.Float64("rotation", final),
		)
	}

	w.spinning.Store(false)
	w.renderer.Render(Frame{
		Wheel:    w.name,
		Sectors:  sectors,
		Rotation: final,
		Progress: 1,
		Spinning: false,
	})

	log.Info(ctx, "spin finished", zap.String("winner", res.Winner), zap.Duration("took", res.Duration()))
	close(s.done)
}

func (w *Wheel) setRotation(r float64) {
	w.mu.Lock()
	w.rotation = r
	w.mu.Unlock()
}

// AwaitAll waits for every spin and returns their results in order.
// Declined spins have nil results.
func AwaitAll(ctx context.Context, spins ...*Spin) ([]*Result, error) {
	results := make([]*Result, len(spins))
	for i, s := range spins {
		res, err := s.Wait(ctx)
		if err != nil {
			return nil, err
		}
		results[i] = res
	}
	return results, nil
}
