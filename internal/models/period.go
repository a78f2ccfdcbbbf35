package models

import "time"

const (
	FlowSpotting = "spotting"
	FlowLight    = "light"
	FlowMedium   = "medium"
	FlowHeavy    = "heavy"
)

const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5
	LutealPhaseDays     = 14
	MinPainLevel        = 1
	MaxPainLevel        = 5
)

type PeriodRecord struct {
	ID        string    `gorm:"primaryKey"`
	StartDate time.Time `gorm:"type:date;not null;index"`
	EndDate   time.Time `gorm:"type:date;not null"`
	Duration  int       `gorm:"not null;default:0"`
	Flow      string    `gorm:"not null;default:medium"`
	Symptoms  []string  `gorm:"serializer:json"`
	PainLevel int       `gorm:"not null;default:1"`
	Mood      string    `gorm:"not null;default:''"`
	CreatedAt time.Time
}

func IsValidFlow(flow string) bool {
	switch flow {
	case FlowSpotting, FlowLight, FlowMedium, FlowHeavy:
		return true
	default:
		return false
	}
}
