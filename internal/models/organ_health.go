package models

import "time"

const (
	OrganUterus  = "uterus"
	OrganOvaries = "ovaries"
	OrganThyroid = "thyroid"
	OrganStress  = "stress"
)

type OrganHealth struct {
	Organ     string `gorm:"primaryKey"`
	Label     string `gorm:"not null"`
	Status    string `gorm:"not null"`
	Progress  int    `gorm:"not null;default:0"`
	Position  int    `gorm:"not null;default:0"`
	UpdatedAt time.Time
}

func (OrganHealth) TableName() string {
	return "organ_health"
}
