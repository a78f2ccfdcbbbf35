package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/gloww/internal/models"
)

const (
	defaultPeriodSpanDays = models.DefaultPeriodLength - 1
	maxSymptomNoteLength  = 500
)

var (
	ErrInvalidPeriodRange     = errors.New("period end date is before start date")
	ErrInvalidPainLevel       = errors.New("pain level must be between 1 and 5")
	ErrInvalidFlow            = errors.New("invalid flow")
	ErrInvalidSeverity        = errors.New("invalid severity")
	ErrInvalidConditionStatus = errors.New("invalid condition status")
	ErrInvalidSymptomType     = errors.New("symptom type is required")
	ErrInvalidCondition       = errors.New("condition is required")
)

type PeriodInput struct {
	StartDate string
	EndDate   string
	Flow      string
	Symptoms  []string
	PainLevel int
	Mood      string
}

type SymptomInput struct {
	Type     string
	Severity string
	Date     string
	Note     string
}

type ConditionInput struct {
	Condition string
	Status    string
	IsNew     bool
	Date      string
}

// BuildPeriodRecord validates the input and fills defaults: a missing end
// date covers the default period length, a zero pain level becomes 1 and an
// empty flow becomes medium.
func BuildPeriodRecord(input PeriodInput) (models.PeriodRecord, error) {
	start, err := ParseISODate(input.StartDate)
	if err != nil {
		return models.PeriodRecord{}, err
	}

	end := start.AddDate(0, 0, defaultPeriodSpanDays)
	if strings.TrimSpace(input.EndDate) != "" {
		end, err = ParseISODate(input.EndDate)
		if err != nil {
			return models.PeriodRecord{}, err
		}
	}
	if end.Before(start) {
		return models.PeriodRecord{}, ErrInvalidPeriodRange
	}

	pain := input.PainLevel
	if pain == 0 {
		pain = models.MinPainLevel
	}
	if pain < models.MinPainLevel || pain > models.MaxPainLevel {
		return models.PeriodRecord{}, ErrInvalidPainLevel
	}

	flow := strings.ToLower(strings.TrimSpace(input.Flow))
	if flow == "" {
		flow = models.FlowMedium
	}
	if !models.IsValidFlow(flow) {
		return models.PeriodRecord{}, ErrInvalidFlow
	}

	return models.PeriodRecord{
		StartDate: start,
		EndDate:   end,
		Duration:  DaysBetween(start, end) + 1,
		Flow:      flow,
		Symptoms:  NormalizeTags(input.Symptoms),
		PainLevel: pain,
		Mood:      strings.TrimSpace(input.Mood),
	}, nil
}

func BuildSymptomEvent(input SymptomInput, now time.Time) (models.SymptomEvent, error) {
	symptomType := strings.TrimSpace(input.Type)
	if symptomType == "" {
		return models.SymptomEvent{}, ErrInvalidSymptomType
	}

	severity := strings.ToLower(strings.TrimSpace(input.Severity))
	if severity == "" {
		severity = models.SeverityMild
	}
	if !models.IsValidSeverity(severity) {
		return models.SymptomEvent{}, ErrInvalidSeverity
	}

	date, err := optionalDate(input.Date, now)
	if err != nil {
		return models.SymptomEvent{}, err
	}

	note := strings.TrimSpace(input.Note)
	if runes := []rune(note); len(runes) > maxSymptomNoteLength {
		note = string(runes[:maxSymptomNoteLength])
	}

	return models.SymptomEvent{
		Type:     symptomType,
		Severity: severity,
		Date:     date,
		Note:     note,
	}, nil
}

func BuildConditionEntry(input ConditionInput, now time.Time) (models.ConditionEntry, error) {
	condition := strings.TrimSpace(input.Condition)
	if condition == "" {
		return models.ConditionEntry{}, ErrInvalidCondition
	}

	status := strings.ToLower(strings.TrimSpace(input.Status))
	if status == "" {
		status = models.ConditionStable
	}
	if !models.IsValidConditionStatus(status) {
		return models.ConditionEntry{}, ErrInvalidConditionStatus
	}

	date, err := optionalDate(input.Date, now)
	if err != nil {
		return models.ConditionEntry{}, err
	}

	return models.ConditionEntry{
		Condition: condition,
		Status:    status,
		IsNew:     input.IsNew,
		Date:      date,
	}, nil
}

func (service *WellnessService) LogPeriod(input PeriodInput, now time.Time) (models.PeriodRecord, error) {
	record, err := BuildPeriodRecord(input)
	if err != nil {
		return models.PeriodRecord{}, err
	}
	record.ID = uuid.NewString()
	record.CreatedAt = now
	if err := service.periods.Create(&record); err != nil {
		return models.PeriodRecord{}, fmt.Errorf("create period: %w", err)
	}
	return record, nil
}

func (service *WellnessService) LogSymptom(input SymptomInput, now time.Time) (models.SymptomEvent, error) {
	event, err := BuildSymptomEvent(input, now)
	if err != nil {
		return models.SymptomEvent{}, err
	}
	event.ID = uuid.NewString()
	event.CreatedAt = now
	if err := service.symptoms.Create(&event); err != nil {
		return models.SymptomEvent{}, fmt.Errorf("create symptom event: %w", err)
	}
	return event, nil
}

func (service *WellnessService) LogCondition(input ConditionInput, now time.Time) (models.ConditionEntry, error) {
	entry, err := BuildConditionEntry(input, now)
	if err != nil {
		return models.ConditionEntry{}, err
	}
	entry.ID = uuid.NewString()
	entry.CreatedAt = now
	if err := service.conditions.Create(&entry); err != nil {
		return models.ConditionEntry{}, fmt.Errorf("create condition entry: %w", err)
	}
	return entry, nil
}

func (service *WellnessService) Periods() ([]models.PeriodRecord, error) {
	periods, err := service.periods.ListNewestFirst()
	if err != nil {
		return nil, fmt.Errorf("load periods: %w", err)
	}
	return nonNilPeriods(periods), nil
}

// RecentSymptoms lists events inside the last days calendar days; days <= 0
// uses the configured window.
func (service *WellnessService) RecentSymptoms(days int, now time.Time) ([]models.SymptomEvent, error) {
	if days <= 0 {
		days = service.recentWindowDays
	}
	events, err := service.symptoms.ListSince(RecentWindowStart(now, days))
	if err != nil {
		return nil, fmt.Errorf("load symptoms: %w", err)
	}
	return nonNilSymptoms(events), nil
}

func (service *WellnessService) Conditions() ([]models.ConditionEntry, error) {
	entries, err := service.conditions.List()
	if err != nil {
		return nil, fmt.Errorf("load conditions: %w", err)
	}
	return nonNilConditions(entries), nil
}

func optionalDate(raw string, now time.Time) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return CalendarDay(now), nil
	}
	return ParseISODate(raw)
}

func nonNilPeriods(values []models.PeriodRecord) []models.PeriodRecord {
	if values == nil {
		return []models.PeriodRecord{}
	}
	return values
}
