package db

import (
	"errors"
	"time"

	"github.com/terraincognita07/gloww/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepository struct {
	database *gorm.DB
}

func NewSettingsRepository(database *gorm.DB) *SettingsRepository {
	return &SettingsRepository{database: database}
}

func (repo *SettingsRepository) Get(key string) (string, bool, error) {
	var setting models.Setting
	err := repo.database.Where(clause.Eq{Column: clause.Column{Name: "key"}, Value: key}).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return setting.Value, true, nil
}

func (repo *SettingsRepository) Set(key string, value string) error {
	setting := models.Setting{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
}

func (repo *SettingsRepository) Remove(key string) error {
	return repo.database.Where(clause.Eq{Column: clause.Column{Name: "key"}, Value: key}).Delete(&models.Setting{}).Error
}
