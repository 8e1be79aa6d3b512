package repos

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/petuhovskiy/spinwheel/internal/models"
)

type DrawRepo struct {
	db *gorm.DB
}

func NewDrawRepo(db *gorm.DB) *DrawRepo {
	return &DrawRepo{
		db: db,
	}
}

// Save draw together with all its spins.
func (r *DrawRepo) Save(draw *models.Draw) error {
	return r.db.Create(draw).Error
}

// FetchLast returns the latest draws of the series, newest first.
func (r *DrawRepo) FetchLast(name string, limit int) ([]models.Draw, error) {
	var draws []models.Draw
	err := r.db.
		Preload("Spins").
		Where("name = ?", name).
		Order("id DESC").
		Limit(limit).
		Find(&draws).
		Error
	if err != nil {
		return nil, fmt.Errorf("find last draws: %w", err)
	}
	return draws, nil
}
