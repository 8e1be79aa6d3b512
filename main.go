package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/petuhovskiy/spinwheel/internal/app"
	"github.com/petuhovskiy/spinwheel/internal/conf"
	"github.com/petuhovskiy/spinwheel/internal/draw"
	"github.com/petuhovskiy/spinwheel/internal/log"
)

func main() {
	defer log.DefaultGlobals()()

	cfg, err := conf.ParseEnv()
	if err != nil {
		log.Fatal(context.Background(), "failed to parse config from env", zap.Error(err))
	}
	if !cfg.Debug {
		log.Globals(false)
	}

	base, err := app.NewApp(cfg)
	if err != nil {
		log.Fatal(context.Background(), "failed to init app", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	base.StartPrometheus()

	period, err := draw.ParsePeriod(base.Config.DrawPeriod)
	if err != nil {
		log.Fatal(ctx, "invalid DRAW_PERIOD", zap.Error(err))
	}

	d, err := draw.New(ctx, base)
	if err != nil {
		log.Fatal(ctx, "failed to create draw", zap.Error(err))
	}

	if base.Repo != nil {
		last, err := base.Repo.Draw.FetchLast(base.Config.DrawName, 1)
		if err != nil {
			log.Warn(ctx, "failed to fetch last draw", zap.Error(err))
		}
		for _, prev := range last {
			log.Info(ctx, "previous draw", zap.Uint("number", prev.Number), zap.String("table", prev.Table), zap.String("prize", prev.Prize))
		}
	}

	err = draw.Run(ctx, d, period)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error(ctx, "draw failed", zap.Error(err))
	}

	// spins cannot be aborted, let them land
	waitCtx, cancel := context.WithTimeout(context.Background(), base.Config.SpinDuration+time.Second)
	defer cancel()
	if err := base.Register.WaitAll(waitCtx); err != nil {
		log.Warn(waitCtx, "background jobs did not finish", zap.Error(err))
	}
}
