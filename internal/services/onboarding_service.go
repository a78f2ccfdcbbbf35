package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/gloww/internal/models"
)

// OnboardingAnswers are the raw questionnaire answers. Unknown brackets or
// tags are stored as given and simply carry no weight.
type OnboardingAnswers struct {
	AgeBracket  string
	CycleLength string
	Goals       []string
	Symptoms    []string
	Lifestyle   string
}

func SanitizeOnboardingAnswers(answers OnboardingAnswers) OnboardingAnswers {
	return OnboardingAnswers{
		AgeBracket:  strings.TrimSpace(answers.AgeBracket),
		CycleLength: strings.TrimSpace(answers.CycleLength),
		Goals:       NormalizeTags(answers.Goals),
		Symptoms:    NormalizeTags(answers.Symptoms),
		Lifestyle:   strings.TrimSpace(answers.Lifestyle),
	}
}

// CompleteOnboarding stores the answers with their onboarding score and the
// matching organ-health snapshot. Re-onboarding overwrites the answers but
// keeps the original onboarding date.
func (service *WellnessService) CompleteOnboarding(answers OnboardingAnswers, now time.Time) (models.Profile, error) {
	clean := SanitizeOnboardingAnswers(answers)

	existing, found, err := service.profiles.Find()
	if err != nil {
		return models.Profile{}, fmt.Errorf("load profile: %w", err)
	}

	profile := models.Profile{
		ID:          models.ProfileID,
		AgeBracket:  clean.AgeBracket,
		CycleLength: clean.CycleLength,
		Goals:       clean.Goals,
		Symptoms:    clean.Symptoms,
		Lifestyle:   clean.Lifestyle,
		OnboardedAt: now,
		UpdatedAt:   now,
	}
	if found && !existing.OnboardedAt.IsZero() {
		profile.OnboardedAt = existing.OnboardedAt
	}
	profile.Score = CalculateOnboardingScore(profile, service.catalog)

	organs := BuildOrganHealth(profile.Score, service.catalog, now)
	if err := service.profiles.SaveWithOrganHealth(&profile, organs); err != nil {
		return models.Profile{}, fmt.Errorf("save onboarding: %w", err)
	}
	return profile, nil
}
