package models

import "time"

const (
	SeverityMild     = "mild"
	SeverityModerate = "moderate"
	SeveritySevere   = "severe"
)

const DefaultRecentSymptomWindowDays = 30

type SymptomEvent struct {
	ID        string    `gorm:"primaryKey"`
	Type      string    `gorm:"not null"`
	Severity  string    `gorm:"not null;default:mild"`
	Date      time.Time `gorm:"type:date;not null;index"`
	Note      string
	CreatedAt time.Time
}

func IsValidSeverity(severity string) bool {
	switch severity {
	case SeverityMild, SeverityModerate, SeveritySevere:
		return true
	default:
		return false
	}
}
