package models

import "time"

const (
	ConditionImproving = "improving"
	ConditionStable    = "stable"
	ConditionWorsening = "worsening"
)

type ConditionEntry struct {
	ID        string    `gorm:"primaryKey"`
	Condition string    `gorm:"not null"`
	Status    string    `gorm:"not null;default:stable"`
	IsNew     bool      `gorm:"not null;default:false"`
	Date      time.Time `gorm:"type:date;not null;index"`
	CreatedAt time.Time
}

func IsValidConditionStatus(status string) bool {
	switch status {
	case ConditionImproving, ConditionStable, ConditionWorsening:
		return true
	default:
		return false
	}
}
