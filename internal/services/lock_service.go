package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/terraincognita07/gloww/internal/models"
	"github.com/terraincognita07/gloww/internal/security"
	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasscodeLength       = 4
	MaxPasscodeLength       = 12
	TemporaryPasscodeLength = 6
)

var (
	ErrInvalidPasscode  = errors.New("passcode must be 4 to 12 digits")
	ErrPasscodeMismatch = errors.New("passcode does not match")
	ErrPasscodeNotSet   = errors.New("passcode is not set")
)

type SettingsRepository interface {
	Get(key string) (string, bool, error)
	Set(key string, value string) error
	Remove(key string) error
}

// LockService guards the local API with an optional numeric passcode. Only
// the bcrypt hash is stored.
type LockService struct {
	settings SettingsRepository
	cost     int
}

func NewLockService(settings SettingsRepository) *LockService {
	return NewLockServiceWithCost(settings, bcrypt.DefaultCost)
}

// NewLockServiceWithCost allows a cheaper bcrypt cost for tests.
func NewLockServiceWithCost(settings SettingsRepository, cost int) *LockService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &LockService{settings: settings, cost: cost}
}

func ValidatePasscode(raw string) error {
	passcode := strings.TrimSpace(raw)
	if len(passcode) < MinPasscodeLength || len(passcode) > MaxPasscodeLength {
		return ErrInvalidPasscode
	}
	for _, char := range passcode {
		if char < '0' || char > '9' {
			return ErrInvalidPasscode
		}
	}
	return nil
}

func (service *LockService) Enabled() (bool, error) {
	hash, found, err := service.settings.Get(models.SettingAppLockPasscode)
	if err != nil {
		return false, fmt.Errorf("load passcode: %w", err)
	}
	return found && strings.TrimSpace(hash) != "", nil
}

func (service *LockService) SetPasscode(raw string) error {
	if err := ValidatePasscode(raw); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(strings.TrimSpace(raw)), service.cost)
	if err != nil {
		return fmt.Errorf("hash passcode: %w", err)
	}
	if err := service.settings.Set(models.SettingAppLockPasscode, string(hash)); err != nil {
		return fmt.Errorf("save passcode: %w", err)
	}
	return nil
}

func (service *LockService) RemovePasscode() error {
	if err := service.settings.Remove(models.SettingAppLockPasscode); err != nil {
		return fmt.Errorf("remove passcode: %w", err)
	}
	return nil
}

func (service *LockService) Verify(raw string) error {
	hash, found, err := service.settings.Get(models.SettingAppLockPasscode)
	if err != nil {
		return fmt.Errorf("load passcode: %w", err)
	}
	if !found || strings.TrimSpace(hash) == "" {
		return ErrPasscodeNotSet
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(strings.TrimSpace(raw))) != nil {
		return ErrPasscodeMismatch
	}
	return nil
}

// ResetPasscode replaces the passcode with a random numeric one and returns
// it so it can be shown once.
func (service *LockService) ResetPasscode() (string, error) {
	temporary, err := security.RandomDigits(TemporaryPasscodeLength)
	if err != nil {
		return "", fmt.Errorf("generate temporary passcode: %w", err)
	}
	if err := service.SetPasscode(temporary); err != nil {
		return "", err
	}
	return temporary, nil
}
