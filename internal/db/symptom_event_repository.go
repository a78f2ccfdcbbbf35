package db

import (
	"time"

	"github.com/terraincognita07/gloww/internal/models"
	"gorm.io/gorm"
)

type SymptomEventRepository struct {
	database *gorm.DB
}

func NewSymptomEventRepository(database *gorm.DB) *SymptomEventRepository {
	return &SymptomEventRepository{database: database}
}

func (repo *SymptomEventRepository) ListSince(from time.Time) ([]models.SymptomEvent, error) {
	events := make([]models.SymptomEvent, 0)
	if err := repo.database.
		Where("date >= ?", from).
		Order("date DESC, created_at DESC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (repo *SymptomEventRepository) ListAll() ([]models.SymptomEvent, error) {
	events := make([]models.SymptomEvent, 0)
	if err := repo.database.Order("date DESC, created_at DESC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (repo *SymptomEventRepository) Create(event *models.SymptomEvent) error {
	return repo.database.Create(event).Error
}
