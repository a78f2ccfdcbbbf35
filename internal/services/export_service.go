package services

import (
	"fmt"
	"time"
)

type ExportProfile struct {
	AgeBracket  string   `json:"age_bracket"`
	CycleLength string   `json:"cycle_length"`
	Goals       []string `json:"goals"`
	Symptoms    []string `json:"symptoms"`
	Lifestyle   string   `json:"lifestyle"`
	Score       int      `json:"score"`
	OnboardedAt string   `json:"onboarded_at"`
}

type ExportPeriod struct {
	ID        string   `json:"id"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Duration  int      `json:"duration"`
	Flow      string   `json:"flow"`
	Symptoms  []string `json:"symptoms"`
	PainLevel int      `json:"pain_level"`
	Mood      string   `json:"mood"`
}

type ExportSymptom struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Date     string `json:"date"`
	Note     string `json:"note,omitempty"`
}

type ExportCondition struct {
	ID        string `json:"id"`
	Condition string `json:"condition"`
	Status    string `json:"status"`
	IsNew     bool   `json:"is_new"`
	Date      string `json:"date"`
}

type ExportOrgan struct {
	Organ    string `json:"organ"`
	Label    string `json:"label"`
	Status   string `json:"status"`
	Progress int    `json:"progress"`
}

type ExportBundle struct {
	ExportedAt  string            `json:"exported_at"`
	Profile     *ExportProfile    `json:"profile"`
	Periods     []ExportPeriod    `json:"periods"`
	Symptoms    []ExportSymptom   `json:"symptoms"`
	Conditions  []ExportCondition `json:"conditions"`
	OrganHealth []ExportOrgan     `json:"organ_health"`
}

// Export collects every stored record into a JSON-ready bundle. The profile
// is nil when onboarding has not happened yet.
func (service *WellnessService) Export(now time.Time) (ExportBundle, error) {
	bundle := ExportBundle{
		ExportedAt:  now.UTC().Format(time.RFC3339),
		Periods:     []ExportPeriod{},
		Symptoms:    []ExportSymptom{},
		Conditions:  []ExportCondition{},
		OrganHealth: []ExportOrgan{},
	}

	profile, found, err := service.profiles.Find()
	if err != nil {
		return ExportBundle{}, fmt.Errorf("load profile: %w", err)
	}
	if found {
		bundle.Profile = &ExportProfile{
			AgeBracket:  profile.AgeBracket,
			CycleLength: profile.CycleLength,
			Goals:       nonNilStrings(profile.Goals),
			Symptoms:    nonNilStrings(profile.Symptoms),
			Lifestyle:   profile.Lifestyle,
			Score:       profile.Score,
			OnboardedAt: FormatISODate(profile.OnboardedAt),
		}
	}

	periods, err := service.periods.ListNewestFirst()
	if err != nil {
		return ExportBundle{}, fmt.Errorf("load periods: %w", err)
	}
	for _, period := range periods {
		bundle.Periods = append(bundle.Periods, ExportPeriod{
			ID:        period.ID,
			StartDate: FormatISODate(period.StartDate),
			EndDate:   FormatISODate(period.EndDate),
			Duration:  PeriodDuration(period),
			Flow:      period.Flow,
			Symptoms:  nonNilStrings(period.Symptoms),
			PainLevel: period.PainLevel,
			Mood:      period.Mood,
		})
	}

	symptoms, err := service.symptoms.ListAll()
	if err != nil {
		return ExportBundle{}, fmt.Errorf("load symptoms: %w", err)
	}
	for _, event := range symptoms {
		bundle.Symptoms = append(bundle.Symptoms, ExportSymptom{
			ID:       event.ID,
			Type:     event.Type,
			Severity: event.Severity,
			Date:     FormatISODate(event.Date),
			Note:     event.Note,
		})
	}

	conditions, err := service.conditions.List()
	if err != nil {
		return ExportBundle{}, fmt.Errorf("load conditions: %w", err)
	}
	for _, entry := range conditions {
		bundle.Conditions = append(bundle.Conditions, ExportCondition{
			ID:        entry.ID,
			Condition: entry.Condition,
			Status:    entry.Status,
			IsNew:     entry.IsNew,
			Date:      FormatISODate(entry.Date),
		})
	}

	organs, err := service.organs.List()
	if err != nil {
		return ExportBundle{}, fmt.Errorf("load organ health: %w", err)
	}
	for _, organ := range organs {
		bundle.OrganHealth = append(bundle.OrganHealth, ExportOrgan{
			Organ:    organ.Organ,
			Label:    organ.Label,
			Status:   organ.Status,
			Progress: organ.Progress,
		})
	}

	return bundle, nil
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
