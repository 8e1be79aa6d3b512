package repos

import (
	"fmt"

	"github.com/petuhovskiy/spinwheel/internal/models"
)

// Counter hands out sequential round numbers.
type Counter interface {
	Next() (uint, error)
}

type drawStore interface {
	Save(draw *models.Draw) error
}

// DrawSaver numbers draws of a single series and saves them.
type DrawSaver struct {
	repo    drawStore
	counter Counter
	name    string
}

func NewDrawSaver(repo *DrawRepo, counter Counter, name string) *DrawSaver {
	return newDrawSaver(repo, counter, name)
}

func newDrawSaver(repo drawStore, counter Counter, name string) *DrawSaver {
	return &DrawSaver{
		repo:    repo,
		counter: counter,
		name:    name,
	}
}

func (s *DrawSaver) Save(draw *models.Draw) error {
	if draw.Name == "" {
		draw.Name = s.name
	}
	if draw.Number == 0 {
		n, err := s.counter.Next()
		if err != nil {
			return fmt.Errorf("next draw number: %w", err)
		}
		draw.Number = n
	}
	return s.repo.Save(draw)
}

// NopSaver drops draws, used when no database is configured.
type NopSaver struct{}

func (NopSaver) Save(*models.Draw) error {
	return nil
}
