package services

import (
	"github.com/terraincognita07/gloww/internal/content"
	"github.com/terraincognita07/gloww/internal/models"
)

// ScoreInput carries everything the Gloww score depends on. A nil
// RecentSymptoms or ConditionHistory means the adjustment is skipped;
// an empty non-nil slice still counts as "zero entries".
type ScoreInput struct {
	AgeBracket       string
	CycleLength      string
	Goals            []string
	Symptoms         []string
	Lifestyle        string
	RecentSymptoms   []models.SymptomEvent
	ConditionHistory []models.ConditionEntry
}

func ScoreInputFromProfile(profile models.Profile) ScoreInput {
	return ScoreInput{
		AgeBracket:  profile.AgeBracket,
		CycleLength: profile.CycleLength,
		Goals:       profile.Goals,
		Symptoms:    profile.Symptoms,
		Lifestyle:   profile.Lifestyle,
	}
}

// CalculateScore returns the general Gloww score clamped to the general bounds.
func CalculateScore(input ScoreInput, catalog *content.Catalog) int {
	return catalog.Score.General.Clamp(rawScore(input, catalog))
}

// CalculateOnboardingScore scores static onboarding answers only, clamped to
// the onboarding bounds.
func CalculateOnboardingScore(profile models.Profile, catalog *content.Catalog) int {
	return catalog.Score.Onboarding.Clamp(rawScore(ScoreInputFromProfile(profile), catalog))
}

func rawScore(input ScoreInput, catalog *content.Catalog) int {
	table := catalog.Score
	score := table.Base

	score += catalog.AgeWeight(input.AgeBracket)
	score += catalog.CycleLengthWeight(input.CycleLength)
	score += catalog.LifestyleWeight(input.Lifestyle)
	for _, goal := range NormalizeTags(input.Goals) {
		score += catalog.GoalWeight(goal)
	}

	symptoms := NormalizeTags(input.Symptoms)
	for _, label := range DetectConditions(symptoms, catalog) {
		score -= conditionPenalty(label, catalog)
	}
	for _, symptom := range symptoms {
		score -= catalog.SymptomPenalty(symptom)
	}

	if input.RecentSymptoms != nil {
		score += recentSymptomAdjustment(input.RecentSymptoms, table.Recent)
	}
	if input.ConditionHistory != nil {
		score += conditionHistoryAdjustment(input.ConditionHistory, table.History)
	}
	return score
}

func recentSymptomAdjustment(events []models.SymptomEvent, rules content.RecentAdjustments) int {
	adjustment := 0
	count := len(events)
	switch {
	case count < rules.FewBelow:
		adjustment += rules.FewBonus
	case count > rules.ManyAbove:
		adjustment -= rules.ManyPenalty
	}

	severe := 0
	for _, event := range events {
		if event.Severity == models.SeveritySevere {
			severe++
		}
	}
	switch {
	case severe == 0:
		adjustment += rules.NoSevereBonus
	case severe > rules.SevereAbove:
		adjustment -= rules.SeverePenalty
	}
	return adjustment
}

func conditionHistoryAdjustment(history []models.ConditionEntry, rules content.HistoryAdjustments) int {
	var improving, worsening, isNew bool
	for _, entry := range history {
		switch entry.Status {
		case models.ConditionImproving:
			improving = true
		case models.ConditionWorsening:
			worsening = true
		}
		if entry.IsNew {
			isNew = true
		}
	}

	adjustment := 0
	if improving {
		adjustment += rules.ImprovingBonus
	}
	if worsening {
		adjustment -= rules.WorseningPenalty
	}
	if isNew {
		adjustment -= rules.NewPenalty
	}
	return adjustment
}
