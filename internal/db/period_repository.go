package db

import (
	"github.com/terraincognita07/gloww/internal/models"
	"gorm.io/gorm"
)

type PeriodRepository struct {
	database *gorm.DB
}

func NewPeriodRepository(database *gorm.DB) *PeriodRepository {
	return &PeriodRepository{database: database}
}

func (repo *PeriodRepository) ListNewestFirst() ([]models.PeriodRecord, error) {
	periods := make([]models.PeriodRecord, 0)
	if err := repo.database.Order("start_date DESC, created_at DESC").Find(&periods).Error; err != nil {
		return nil, err
	}
	return periods, nil
}

func (repo *PeriodRepository) Create(record *models.PeriodRecord) error {
	return repo.database.Create(record).Error
}
