package models

import "time"

// ProfileID is the primary key of the single on-device profile row.
const ProfileID uint = 1

type Profile struct {
	ID          uint     `gorm:"primaryKey"`
	AgeBracket  string   `gorm:"not null;default:''"`
	CycleLength string   `gorm:"not null;default:''"`
	Goals       []string `gorm:"serializer:json"`
	Symptoms    []string `gorm:"serializer:json"`
	Lifestyle   string   `gorm:"not null;default:''"`
	Score       int      `gorm:"not null;default:0"`
	OnboardedAt time.Time
	UpdatedAt   time.Time
}
