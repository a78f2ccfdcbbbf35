package db

import (
	"github.com/terraincognita07/gloww/internal/models"
	"gorm.io/gorm"
)

type OrganHealthRepository struct {
	database *gorm.DB
}

func NewOrganHealthRepository(database *gorm.DB) *OrganHealthRepository {
	return &OrganHealthRepository{database: database}
}

func (repo *OrganHealthRepository) List() ([]models.OrganHealth, error) {
	organs := make([]models.OrganHealth, 0)
	if err := repo.database.Order("position ASC").Find(&organs).Error; err != nil {
		return nil, err
	}
	return organs, nil
}
