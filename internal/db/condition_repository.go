package db

import (
	"github.com/terraincognita07/gloww/internal/models"
	"gorm.io/gorm"
)

type ConditionRepository struct {
	database *gorm.DB
}

func NewConditionRepository(database *gorm.DB) *ConditionRepository {
	return &ConditionRepository{database: database}
}

func (repo *ConditionRepository) List() ([]models.ConditionEntry, error) {
	entries := make([]models.ConditionEntry, 0)
	if err := repo.database.Order("date DESC, created_at DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *ConditionRepository) Create(entry *models.ConditionEntry) error {
	return repo.database.Create(entry).Error
}
