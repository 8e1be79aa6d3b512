package conf

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type App struct {
	PrometheusBind string `env:"PROMETHEUS_BIND" envDefault:":2112"`

	// PostgresDSN is a DSN for the postgres. Draw results are not persisted when empty.
	PostgresDSN string `env:"POSTGRES_DSN"`

	// DebugDB enables gorm query logging.
	DebugDB bool `env:"DEBUG_DB" envDefault:"false"`

	// Debug switches logging to the development config.
	Debug bool `env:"DEBUG" envDefault:"true"`

	// SpinDuration is the wall-clock length of every spin animation.
	SpinDuration time.Duration `env:"SPIN_DURATION" envDefault:"5s"`

	// FrameInterval is the display refresh period.
	FrameInterval time.Duration `env:"FRAME_INTERVAL" envDefault:"16ms"`

	// WeightCap is the maximum total weight of the prize wheel.
	WeightCap float64 `env:"WEIGHT_CAP" envDefault:"100"`

	// Both wheels turn the same random number of revolutions in [MinRotations, MaxRotations).
	MinRotations float64 `env:"MIN_ROTATIONS" envDefault:"4"`
	MaxRotations float64 `env:"MAX_ROTATIONS" envDefault:"8"`

	// Tables is a comma separated list of table numbers, e.g. "1, 2, 3".
	Tables string `env:"TABLES"`

	// Prizes is a comma separated list of weighted prizes, e.g. "tea(50), coffee(50)".
	Prizes string `env:"PRIZES"`

	// DrawPeriod repeats the draw, e.g. "random(5,10)". Empty runs a single draw.
	DrawPeriod string `env:"DRAW_PERIOD"`

	// DrawName is stored with every persisted draw.
	DrawName string `env:"DRAW_NAME" envDefault:"lounge"`
}

func ParseEnv() (*App, error) {
	cfg := App{}
	err := env.Parse(&cfg)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *App) Validate() error {
	if c.SpinDuration <= 0 {
		return fmt.Errorf("SPIN_DURATION must be positive, got %s", c.SpinDuration)
	}
	if c.FrameInterval <= 0 {
		return fmt.Errorf("FRAME_INTERVAL must be positive, got %s", c.FrameInterval)
	}
	if c.WeightCap < 0 {
		return fmt.Errorf("WEIGHT_CAP must not be negative, got %v", c.WeightCap)
	}
	if c.MinRotations < 0 || c.MaxRotations < c.MinRotations {
		return fmt.Errorf("invalid rotations range [%v, %v)", c.MinRotations, c.MaxRotations)
	}
	return nil
}
