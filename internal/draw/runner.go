package draw

import (
	"context"

	"go.uber.org/zap"

	"github.com/petuhovskiy/spinwheel/internal/log"
)

// Executable is something that can be run once or periodically.
type Executable interface {
	Execute(ctx context.Context) error
}

// Run executes e once, or forever with pauses when period is set. Errors of
// single executions are logged and do not stop the loop.
func Run(ctx context.Context, e Executable, period *Period) error {
	if period == nil {
		return e.Execute(log.Into(ctx, "once"))
	}

	ctx = log.Into(ctx, "periodic")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err := e.Execute(ctx)
		if err != nil {
			log.Error(ctx, "draw failed", zap.Error(err))
		}

		period.Sleep(ctx)
	}
}
