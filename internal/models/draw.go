package models

import (
	"time"

	"gorm.io/gorm"
)

// Draw is a single round where all wheels were spun together.
type Draw struct {
	gorm.Model

	// Name of the draw series, taken from `DRAW_NAME`.
	Name string

	// Number is a sequential round number within the series.
	Number uint

	// Winning table label.
	Table string

	// Winning prize label.
	Prize string

	// Whole extra revolutions requested from every wheel.
	Revolutions float64

	Spins []DrawSpin
}

// DrawSpin is the outcome of one wheel within a draw.
type DrawSpin struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time

	// DrawID is a foreign key to the draw.
	DrawID uint

	// Name of the wheel, e.g. "tables".
	Wheel string

	// Label under the pointer after the animation.
	Winner string

	// Index drawn before the animation started.
	SampledIndex int

	// Index found under the pointer after the animation. Equal to SampledIndex
	// unless something is broken.
	ResolvedIndex int

	// Number of items on the wheel at spin time.
	Items int

	StartRotation float64
	FinalRotation float64
	StartedAt     time.Time
	FinishedAt    time.Time
}

func (s *DrawSpin) Duration() time.Duration {
	return s.FinishedAt.Sub(s.StartedAt)
}
