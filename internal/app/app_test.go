package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petuhovskiy/spinwheel/internal/conf"
	"github.com/petuhovskiy/spinwheel/internal/repos"
	"github.com/petuhovskiy/spinwheel/internal/wheel"
)

func TestNewApp_WithoutDatabase(t *testing.T) {
	a, err := NewApp(&conf.App{
		SpinDuration:  time.Second,
		FrameInterval: 10 * time.Millisecond,
		WeightCap:     100,
	})
	require.NoError(t, err)

	assert.Nil(t, a.DB)
	assert.IsType(t, repos.NopSaver{}, a.Saver)
	assert.Len(t, a.WheelOptions(), 4)

	w := wheel.New("tables", wheel.Unweighted, a.WheelOptions()...)
	assert.Equal(t, "tables", w.Name())
}
