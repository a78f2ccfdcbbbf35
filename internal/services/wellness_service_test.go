package services

import (
	"errors"
	"testing"

	"github.com/terraincognita07/gloww/internal/models"
)

func TestRecomputeScoreUsesRecentSymptomsAndHistory(t *testing.T) {
	fixture := newWellnessFixture()
	fixture.profiles.profile = &models.Profile{
		ID:          models.ProfileID,
		AgeBracket:  "26-35",
		CycleLength: "25-28 days",
		Lifestyle:   "Lightly active",
	}
	now := mustParseDay(t, "2024-03-15")
	fixture.symptoms.events = []models.SymptomEvent{
		{Type: "Cramps", Severity: models.SeveritySevere, Date: mustParseDay(t, "2024-03-10")},
		{Type: "Fatigue", Severity: models.SeverityMild, Date: mustParseDay(t, "2024-03-09")},
		{Type: "Bloating", Severity: models.SeverityMild, Date: mustParseDay(t, "2024-03-01")},
		{Type: "Acne", Severity: models.SeverityModerate, Date: mustParseDay(t, "2024-02-20")},
		{Type: "Old", Severity: models.SeveritySevere, Date: mustParseDay(t, "2024-01-01")},
	}
	fixture.conditions.entries = []models.ConditionEntry{
		{Condition: "PCOS", Status: models.ConditionStable, IsNew: true},
	}

	profile, err := fixture.service.RecomputeScore(now)
	if err != nil {
		t.Fatalf("RecomputeScore() unexpected error: %v", err)
	}

	// 50 + 10 + 20 + 4, four recent events with one severe, one new condition.
	if profile.Score != 76 {
		t.Fatalf("expected score 76, got %d", profile.Score)
	}
	if got := FormatISODate(fixture.symptoms.sinceFrom); got != "2024-02-14" {
		t.Fatalf("expected 30-day window from 2024-02-14, got %s", got)
	}
	if len(fixture.profiles.organs) != 4 {
		t.Fatalf("expected 4 organ rows saved, got %d", len(fixture.profiles.organs))
	}
	if fixture.profiles.profile.Score != 76 {
		t.Fatalf("expected persisted score 76, got %d", fixture.profiles.profile.Score)
	}
}

func TestRecomputeScoreRequiresProfile(t *testing.T) {
	fixture := newWellnessFixture()

	_, err := fixture.service.RecomputeScore(mustParseDay(t, "2024-03-15"))
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestRecomputeScoreWrapsStorageErrors(t *testing.T) {
	fixture := newWellnessFixture()
	fixture.profiles.findErr = errStubStorage

	_, err := fixture.service.RecomputeScore(mustParseDay(t, "2024-03-15"))
	if !errors.Is(err, errStubStorage) {
		t.Fatalf("expected wrapped storage error, got %v", err)
	}
}

func TestCurrentPhaseWithoutHistory(t *testing.T) {
	fixture := newWellnessFixture()

	_, err := fixture.service.CurrentPhase(mustParseDay(t, "2024-03-15"))
	if !errors.Is(err, ErrNoPeriodHistory) {
		t.Fatalf("expected ErrNoPeriodHistory, got %v", err)
	}
}

func TestCurrentPhaseUsesPredictedLength(t *testing.T) {
	fixture := newWellnessFixture()
	fixture.periods.records = []models.PeriodRecord{
		makePeriod(t, "2024-01-29", 5),
		makePeriod(t, "2024-01-01", 5),
	}

	phase, err := fixture.service.CurrentPhase(mustParseDay(t, "2024-02-12"))
	if err != nil {
		t.Fatalf("CurrentPhase() unexpected error: %v", err)
	}
	if phase.Name != "ovulation" || phase.CycleDay != 14 || phase.CycleLength != 28 {
		t.Fatalf("unexpected phase %+v", phase)
	}
}

func TestCurrentPhaseFallsBackToProfileBracket(t *testing.T) {
	fixture := newWellnessFixture()
	fixture.profiles.profile = &models.Profile{ID: models.ProfileID, CycleLength: "29-32 days"}
	fixture.periods.records = []models.PeriodRecord{makePeriod(t, "2024-03-01", 5)}

	phase, err := fixture.service.CurrentPhase(mustParseDay(t, "2024-03-20"))
	if err != nil {
		t.Fatalf("CurrentPhase() unexpected error: %v", err)
	}
	if phase.CycleLength != 30 {
		t.Fatalf("expected bracket length 30, got %d", phase.CycleLength)
	}
	if phase.Name != "luteal" || phase.CycleDay != 19 {
		t.Fatalf("expected luteal day 19, got %s day %d", phase.Name, phase.CycleDay)
	}
}

func TestCurrentPhaseFallsBackToDefaultLength(t *testing.T) {
	fixture := newWellnessFixture()
	fixture.periods.records = []models.PeriodRecord{makePeriod(t, "2024-03-01", 5)}

	phase, err := fixture.service.CurrentPhase(mustParseDay(t, "2024-03-31"))
	if err != nil {
		t.Fatalf("CurrentPhase() unexpected error: %v", err)
	}
	if phase.CycleLength != models.DefaultCycleLength || phase.CycleDay != 2 {
		t.Fatalf("expected default length with day 2, got %+v", phase)
	}
}

func TestDetectedConditionsWithoutProfile(t *testing.T) {
	fixture := newWellnessFixture()

	labels, err := fixture.service.DetectedConditions()
	if err != nil {
		t.Fatalf("DetectedConditions() unexpected error: %v", err)
	}
	if labels == nil || len(labels) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", labels)
	}
}

func TestInsightsDegradesWithoutEnoughHistory(t *testing.T) {
	fixture := newWellnessFixture()
	fixture.profiles.profile = &models.Profile{
		ID:       models.ProfileID,
		Score:    62,
		Symptoms: []string{"Irregular periods", "Weight gain", "Hair loss"},
	}
	fixture.periods.records = []models.PeriodRecord{makePeriod(t, "2024-03-01", 5)}

	insights, err := fixture.service.Insights(mustParseDay(t, "2024-03-04"))
	if err != nil {
		t.Fatalf("Insights() unexpected error: %v", err)
	}
	if !insights.Onboarded || insights.Score != 62 {
		t.Fatalf("unexpected profile part %+v", insights)
	}
	if insights.Phase == nil || insights.Phase.Name != "menstrual" {
		t.Fatalf("expected menstrual phase, got %+v", insights.Phase)
	}
	if insights.Prediction != nil {
		t.Fatalf("expected no prediction, got %+v", insights.Prediction)
	}
	if insights.PredictionError != ErrInsufficientData.Error() {
		t.Fatalf("expected insufficient data message, got %q", insights.PredictionError)
	}
	if len(insights.DetectedConditions) != 1 || insights.DetectedConditions[0] != "PCOS" {
		t.Fatalf("expected PCOS, got %v", insights.DetectedConditions)
	}
}

func TestInsightsPropagatesStorageFailure(t *testing.T) {
	fixture := newWellnessFixture()
	fixture.periods.listErr = errStubStorage

	if _, err := fixture.service.Insights(mustParseDay(t, "2024-03-04")); !errors.Is(err, errStubStorage) {
		t.Fatalf("expected storage error, got %v", err)
	}
}

func TestResetAllData(t *testing.T) {
	fixture := newWellnessFixture()
	fixture.profiles.profile = &models.Profile{ID: models.ProfileID}

	if err := fixture.service.ResetAllData(); err != nil {
		t.Fatalf("ResetAllData() unexpected error: %v", err)
	}
	if !fixture.profiles.cleared {
		t.Fatal("expected repository to be cleared")
	}

	fixture.profiles.clearErr = errStubStorage
	if err := fixture.service.ResetAllData(); !errors.Is(err, errStubStorage) {
		t.Fatalf("expected wrapped storage error, got %v", err)
	}
}
