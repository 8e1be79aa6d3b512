package draw

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/petuhovskiy/spinwheel/internal/app"
	"github.com/petuhovskiy/spinwheel/internal/entries"
	"github.com/petuhovskiy/spinwheel/internal/log"
	"github.com/petuhovskiy/spinwheel/internal/models"
	"github.com/petuhovskiy/spinwheel/internal/wheel"
	"github.com/petuhovskiy/spinwheel/internal/wrand"
)

var ErrNotEnoughItems = fmt.Errorf("every wheel needs at least 2 items")
var ErrSpinDeclined = fmt.Errorf("wheel declined to spin")
var ErrDrawInFlight = fmt.Errorf("draw is already running")

// Draw spins the table wheel and the prize wheel together and announces
// which table won which prize.
type Draw struct {
	Tables *wheel.Wheel
	Prizes *wheel.Wheel

	saver        app.DrawSaver
	src          wrand.Source
	minRotations float64
	maxRotations float64

	running atomic.Bool
}

// Outcome is the result of one draw.
type Outcome struct {
	Table       string
	Prize       string
	Revolutions float64
	Spins       []*wheel.Result
}

func (o *Outcome) String() string {
	return fmt.Sprintf("table %s wins %s", o.Table, o.Prize)
}

// New creates empty wheels configured from the app and fills them with the
// configured TABLES and PRIZES. Rejected entries are logged and skipped.
func New(ctx context.Context, a *app.App) (*Draw, error) {
	opts := a.WheelOptions()
	tables := wheel.New("tables", wheel.Unweighted, opts...)
	prizes := wheel.New("prizes", wheel.Weighted, append(opts, wheel.WithWeightCap(a.Config.WeightCap))...)

	d := &Draw{
		Tables:       tables,
		Prizes:       prizes,
		saver:        a.Saver,
		src:          wrand.Default,
		minRotations: a.Config.MinRotations,
		maxRotations: a.Config.MaxRotations,
	}

	n, err := entries.AddTables(tables, a.Config.Tables)
	if err != nil {
		log.Warn(ctx, "some tables were rejected", zap.Error(err))
	}
	log.Info(ctx, "tables added", zap.Int("count", n))

	n, err = entries.AddPrizes(prizes, a.Config.Prizes)
	if err != nil {
		log.Warn(ctx, "some prizes were rejected", zap.Error(err))
	}
	log.Info(ctx, "prizes added", zap.Int("count", n), zap.Float64("totalWeight", prizes.TotalWeight()))

	return d, nil
}

// Revolutions picks the shared number of whole extra revolutions for the next draw.
func (d *Draw) Revolutions() float64 {
	return math.Floor(d.minRotations + d.src.Float64()*(d.maxRotations-d.minRotations))
}

// Execute runs a single draw, implements the periodic runner contract.
func (d *Draw) Execute(ctx context.Context) error {
	outcome, err := d.Spin(ctx)
	if err != nil {
		app.DrawErrors.Inc()
		return err
	}

	log.Info(ctx, "congratulations!", zap.Stringer("outcome", outcome))
	return nil
}

// Spin spins both wheels with the same revolution count, waits for both to
// stop, records metrics and persists the outcome. Either both wheels spin
// or neither does.
func (d *Draw) Spin(ctx context.Context) (*Outcome, error) {
	if !d.running.CompareAndSwap(false, true) {
		return nil, ErrDrawInFlight
	}
	defer d.running.Store(false)

	if d.Tables.Count() < 2 || d.Prizes.Count() < 2 {
		return nil, ErrNotEnoughItems
	}

	wheels := []*wheel.Wheel{d.Tables, d.Prizes}
	for _, w := range wheels {
		if w.IsSpinning() {
			app.SpinsDeclined.WithLabelValues(w.Name()).Inc()
			return nil, fmt.Errorf("%s: %w", w.Name(), ErrSpinDeclined)
		}
	}

	revolutions := d.Revolutions()
	ctx = log.With(ctx, zap.Float64("revolutions", revolutions))

	spins := []*wheel.Spin{
		d.Tables.Spin(ctx, revolutions),
		d.Prizes.Spin(ctx, revolutions),
	}
	results, err := wheel.AwaitAll(ctx, spins...)
	if err != nil {
		return nil, err
	}

	for i, res := range results {
		if res == nil {
			app.SpinsDeclined.WithLabelValues(wheels[i].Name()).Inc()
			return nil, fmt.Errorf("%s: %w", wheels[i].Name(), ErrSpinDeclined)
		}
		observe(ctx, res)
	}

	outcome := &Outcome{
		Table:       results[0].Winner,
		Prize:       results[1].Winner,
		Revolutions: revolutions,
		Spins:       results,
	}

	if err := d.save(outcome, wheels); err != nil {
		app.DrawErrors.Inc()
		log.Error(ctx, "failed to persist draw", zap.Error(err))
	}

	return outcome, nil
}

func observe(ctx context.Context, res *wheel.Result) {
	app.SpinTime.WithLabelValues(res.Wheel).Observe(res.Duration().Seconds())
	app.SpinWinners.WithLabelValues(res.Wheel, res.Winner).Inc()
	if !res.Consistent() {
		app.SpinMismatches.WithLabelValues(res.Wheel).Inc()
		log.Error(ctx, "spin winner mismatch", zap.String("wheel", res.Wheel))
	}
}

func (d *Draw) save(o *Outcome, wheels []*wheel.Wheel) error {
	draw := &models.Draw{
		Table:       o.Table,
		Prize:       o.Prize,
		Revolutions: o.Revolutions,
	}
	for i, res := range o.Spins {
		draw.Spins = append(draw.Spins, models.DrawSpin{
			Wheel:         res.Wheel,
			Winner:        res.Winner,
			SampledIndex:  res.Sampled,
			ResolvedIndex: res.Resolved,
			Items:         wheels[i].Count(),
			StartRotation: res.StartRotation,
			FinalRotation: res.FinalRotation,
			StartedAt:     res.StartedAt,
			FinishedAt:    res.FinishedAt,
		})
	}

	err := d.saver.Save(draw)
	if err != nil {
		return fmt.Errorf("save draw %s: %w", o, err)
	}
	return nil
}
