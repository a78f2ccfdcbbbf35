package db

import (
	"errors"

	"github.com/terraincognita07/gloww/internal/models"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

func (repo *ProfileRepository) Find() (models.Profile, bool, error) {
	var profile models.Profile
	err := repo.database.First(&profile, models.ProfileID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Profile{}, false, nil
	}
	if err != nil {
		return models.Profile{}, false, err
	}
	return profile, true, nil
}

// SaveWithOrganHealth upserts the profile and replaces the organ-health rows
// in one transaction.
func (repo *ProfileRepository) SaveWithOrganHealth(profile *models.Profile, organs []models.OrganHealth) error {
	profile.ID = models.ProfileID
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(profile).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.OrganHealth{}).Error; err != nil {
			return err
		}
		if len(organs) == 0 {
			return nil
		}
		return tx.Create(&organs).Error
	})
}

// ClearAllData removes the profile, organ health and every record table.
// Settings are kept.
func (repo *ProfileRepository) ClearAllData() error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{
			&models.PeriodRecord{},
			&models.SymptomEvent{},
			&models.ConditionEntry{},
			&models.OrganHealth{},
			&models.Profile{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
