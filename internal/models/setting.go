package models

import "time"

const SettingAppLockPasscode = "app_lock_passcode"

// Setting is a single key-value entry; values are opaque strings.
type Setting struct {
	Key       string `gorm:"primaryKey"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}
