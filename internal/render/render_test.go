package render

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/petuhovskiy/spinwheel/internal/wheel"
)

func TestSnapshot(t *testing.T) {
	f := wheel.Frame{
		Wheel: "prizes",
		Sectors: wheel.Layout([]wheel.Item{
			{Label: "tea", Weight: 25},
			{Label: "coffee", Weight: 75},
		}, wheel.Weighted),
		Rotation: math.Pi,
	}

	// after half a turn the pointer is inside coffee, a quarter turn past its start
	assert.Equal(t, 1, wheel.Resolve(f.Sectors, f.Rotation))
	assert.InDelta(t, f.Sectors[1].Start()+math.Pi/2, wheel.ReferenceAngle+wheel.PointerOffset(f.Rotation), 1e-9)
	assert.Equal(t, "tea 25.0% | > coffee 75.0% @ 180.0°", Snapshot(f))

	f.Rotation = 1.75 * math.Pi
	assert.Equal(t, "> tea 25.0% | coffee 75.0% @ 315.0°", Snapshot(f))
	assert.Equal(t, "empty", Snapshot(wheel.Frame{}))
}

func TestLogger_Throttles(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	l := NewLogger(context.Background(), 10)
	sectors := wheel.Layout([]wheel.Item{{Label: "A"}, {Label: "B"}}, wheel.Unweighted)

	for i := 0; i < 25; i++ {
		l.Render(wheel.Frame{Wheel: "tables", Sectors: sectors, Spinning: true})
	}
	l.Render(wheel.Frame{Wheel: "tables", Sectors: sectors})

	assert.Equal(t, 3, logs.FilterMessage("frame").Len())
	assert.Equal(t, 1, logs.FilterMessage("wheel").Len())
}
