package db

import "gorm.io/gorm"

type Repositories struct {
	Profiles      *ProfileRepository
	Periods       *PeriodRepository
	SymptomEvents *SymptomEventRepository
	Conditions    *ConditionRepository
	OrganHealth   *OrganHealthRepository
	Settings      *SettingsRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Profiles:      NewProfileRepository(database),
		Periods:       NewPeriodRepository(database),
		SymptomEvents: NewSymptomEventRepository(database),
		Conditions:    NewConditionRepository(database),
		OrganHealth:   NewOrganHealthRepository(database),
		Settings:      NewSettingsRepository(database),
	}
}
