package draw

import (
	"context"
	"fmt"
	"time"

	"github.com/petuhovskiy/spinwheel/internal/wrand"
)

// MaxPeriod is the longest allowed pause between draws, in seconds.
const MaxPeriod = 7 * 24 * 60 * 60

// Period is a random pause between draws.
type Period struct {
	min uint
	max uint
}

// Delay picks a pause in [min, max] seconds.
func (p *Period) Delay(src wrand.Source) time.Duration {
	span := p.max - p.min
	val := p.min + uint(src.Float64()*float64(span+1))
	if val > p.max {
		val = p.max
	}
	return time.Duration(val) * time.Second
}

func (p *Period) Sleep(ctx context.Context) {
	select {
	case <-ctx.Done():
		return
	case <-time.After(p.Delay(wrand.Default)):
	}
}

// ParsePeriod parses "random(5,10)", meaning a pause of 5 to 10 seconds.
// An empty string means no repetition.
func ParsePeriod(str string) (*Period, error) {
	if str == "" {
		return nil, nil
	}

	var min, max uint

	_, err := fmt.Sscanf(str, "random(%d,%d)", &min, &max)
	if err != nil {
		return nil, fmt.Errorf("failed to parse period: %w", err)
	}

	if min > max {
		return nil, fmt.Errorf("min(%d) > max(%d)", min, max)
	}
	if max > MaxPeriod {
		return nil, fmt.Errorf("max(%d) exceeds %d seconds", max, MaxPeriod)
	}

	return &Period{
		min: min,
		max: max,
	}, nil
}
