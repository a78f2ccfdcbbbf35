package services

import (
	"time"

	"github.com/terraincognita07/gloww/internal/models"
)

type ProfileRepository interface {
	Find() (models.Profile, bool, error)
	SaveWithOrganHealth(profile *models.Profile, organs []models.OrganHealth) error
	ClearAllData() error
}

type PeriodRepository interface {
	ListNewestFirst() ([]models.PeriodRecord, error)
	Create(record *models.PeriodRecord) error
}

type SymptomEventRepository interface {
	ListSince(from time.Time) ([]models.SymptomEvent, error)
	ListAll() ([]models.SymptomEvent, error)
	Create(event *models.SymptomEvent) error
}

type ConditionRepository interface {
	List() ([]models.ConditionEntry, error)
	Create(entry *models.ConditionEntry) error
}

type OrganHealthRepository interface {
	List() ([]models.OrganHealth, error)
}
