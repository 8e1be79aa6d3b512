package render

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/petuhovskiy/spinwheel/internal/log"
	"github.com/petuhovskiy/spinwheel/internal/wheel"
)

// Logger renders wheel frames as log lines. Animation frames are throttled
// to one in every Every frames, item list changes and stops are always logged.
type Logger struct {
	ctx   context.Context
	every int

	mu     sync.Mutex
	frames map[string]int
}

var _ wheel.Renderer = (*Logger)(nil)

func NewLogger(ctx context.Context, every int) *Logger {
	if every < 1 {
		every = 1
	}
	return &Logger{
		ctx:    log.Into(ctx, "render"),
		every:  every,
		frames: make(map[string]int),
	}
}

func (l *Logger) Render(f wheel.Frame) {
	if f.Spinning {
		l.mu.Lock()
		n := l.frames[f.Wheel]
		l.frames[f.Wheel] = n + 1
		l.mu.Unlock()

		if n%l.every != 0 {
			return
		}
		log.Debug(
			l.ctx,
			"frame",
			zap.String("wheel", f.Wheel),
			zap.Int("n", n),
			zap.Float64("progress", f.Progress),
			zap.String("pointer", f.PointerLabel()),
		)
		return
	}

	l.mu.Lock()
	delete(l.frames, f.Wheel)
	l.mu.Unlock()

	log.Info(l.ctx, "wheel", zap.String("wheel", f.Wheel), zap.String("state", Snapshot(f)))
}

// Snapshot describes a frame in one line: every sector with its share of the
// circle, the sector under the pointer marked with an arrow.
func Snapshot(f wheel.Frame) string {
	if len(f.Sectors) == 0 {
		return "empty"
	}

	pointer := wheel.Resolve(f.Sectors, f.Rotation)

	var sb strings.Builder
	for i, s := range f.Sectors {
		if i > 0 {
			sb.WriteString(" | ")
		}
		if i == pointer {
			sb.WriteString("> ")
		}
		share := s.Span / wheel.FullTurn * 100
		fmt.Fprintf(&sb, "%s %.1f%%", s.Label, share)
	}
	fmt.Fprintf(&sb, " @ %.1f°", wheel.Normalize(f.Rotation)*180/math.Pi)
	return sb.String()
}
