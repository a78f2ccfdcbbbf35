package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/gloww/internal/content"
	"github.com/terraincognita07/gloww/internal/models"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrNoPeriodHistory = errors.New("no period history")
)

type WellnessService struct {
	profiles         ProfileRepository
	periods          PeriodRepository
	symptoms         SymptomEventRepository
	conditions       ConditionRepository
	organs           OrganHealthRepository
	catalog          *content.Catalog
	recentWindowDays int
}

type Insights struct {
	Onboarded          bool
	Score              int
	Phase              *CyclePhase
	PhaseError         string
	Prediction         *Prediction
	PredictionError    string
	DetectedConditions []string
	OrganHealth        []models.OrganHealth
}

func NewWellnessService(
	profiles ProfileRepository,
	periods PeriodRepository,
	symptoms SymptomEventRepository,
	conditions ConditionRepository,
	organs OrganHealthRepository,
	catalog *content.Catalog,
	recentWindowDays int,
) *WellnessService {
	if catalog == nil {
		catalog = content.Default()
	}
	if recentWindowDays <= 0 {
		recentWindowDays = models.DefaultRecentSymptomWindowDays
	}
	return &WellnessService{
		profiles:         profiles,
		periods:          periods,
		symptoms:         symptoms,
		conditions:       conditions,
		organs:           organs,
		catalog:          catalog,
		recentWindowDays: recentWindowDays,
	}
}

func (service *WellnessService) Catalog() *content.Catalog {
	return service.catalog
}

// RecomputeScore rescores the stored profile with recent symptoms and the
// condition history, then replaces the organ-health snapshot.
func (service *WellnessService) RecomputeScore(now time.Time) (models.Profile, error) {
	profile, found, err := service.profiles.Find()
	if err != nil {
		return models.Profile{}, fmt.Errorf("load profile: %w", err)
	}
	if !found {
		return models.Profile{}, ErrProfileNotFound
	}

	from := RecentWindowStart(now, service.recentWindowDays)
	recent, err := service.symptoms.ListSince(from)
	if err != nil {
		return models.Profile{}, fmt.Errorf("load recent symptoms: %w", err)
	}
	history, err := service.conditions.List()
	if err != nil {
		return models.Profile{}, fmt.Errorf("load condition history: %w", err)
	}

	input := ScoreInputFromProfile(profile)
	input.RecentSymptoms = nonNilSymptoms(recent)
	input.ConditionHistory = nonNilConditions(history)

	profile.Score = CalculateScore(input, service.catalog)
	profile.UpdatedAt = now
	organs := BuildOrganHealth(profile.Score, service.catalog, now)
	if err := service.profiles.SaveWithOrganHealth(&profile, organs); err != nil {
		return models.Profile{}, fmt.Errorf("save score: %w", err)
	}
	return profile, nil
}

func (service *WellnessService) Profile() (models.Profile, error) {
	profile, found, err := service.profiles.Find()
	if err != nil {
		return models.Profile{}, fmt.Errorf("load profile: %w", err)
	}
	if !found {
		return models.Profile{}, ErrProfileNotFound
	}
	return profile, nil
}

func (service *WellnessService) Prediction(now time.Time) (Prediction, error) {
	periods, err := service.periods.ListNewestFirst()
	if err != nil {
		return Prediction{}, fmt.Errorf("load periods: %w", err)
	}
	return PredictNextPeriod(periods, now)
}

// CurrentPhase classifies today against the latest period start. The cycle
// length comes from the prediction when there is enough history, then from
// the profile's cycle-length bracket, then the default.
func (service *WellnessService) CurrentPhase(now time.Time) (CyclePhase, error) {
	periods, err := service.periods.ListNewestFirst()
	if err != nil {
		return CyclePhase{}, fmt.Errorf("load periods: %w", err)
	}
	if len(periods) == 0 {
		return CyclePhase{}, ErrNoPeriodHistory
	}

	length := 0
	if prediction, predictErr := PredictNextPeriod(periods, now); predictErr == nil {
		length = prediction.AverageCycleLength
	} else {
		profile, found, err := service.profiles.Find()
		if err != nil {
			return CyclePhase{}, fmt.Errorf("load profile: %w", err)
		}
		if found {
			length = service.catalog.TypicalCycleDays(profile.CycleLength)
		}
	}

	return ClassifyCyclePhase(now, latestPeriodStart(periods), length, service.catalog), nil
}

func (service *WellnessService) DetectedConditions() ([]string, error) {
	profile, found, err := service.profiles.Find()
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if !found {
		return []string{}, nil
	}
	return DetectConditions(profile.Symptoms, service.catalog), nil
}

func (service *WellnessService) OrganHealth() ([]models.OrganHealth, error) {
	organs, err := service.organs.List()
	if err != nil {
		return nil, fmt.Errorf("load organ health: %w", err)
	}
	return organs, nil
}

// Insights bundles everything the dashboard shows. Missing history degrades
// the phase and prediction to nil with a reason; storage failures are errors.
func (service *WellnessService) Insights(now time.Time) (Insights, error) {
	insights := Insights{DetectedConditions: []string{}}

	profile, found, err := service.profiles.Find()
	if err != nil {
		return Insights{}, fmt.Errorf("load profile: %w", err)
	}
	if found {
		insights.Onboarded = true
		insights.Score = profile.Score
		insights.DetectedConditions = DetectConditions(profile.Symptoms, service.catalog)
	}

	phase, err := service.CurrentPhase(now)
	switch {
	case err == nil:
		insights.Phase = &phase
	case errors.Is(err, ErrNoPeriodHistory):
		insights.PhaseError = err.Error()
	default:
		return Insights{}, err
	}

	prediction, err := service.Prediction(now)
	switch {
	case err == nil:
		insights.Prediction = &prediction
	case errors.Is(err, ErrInsufficientData):
		insights.PredictionError = err.Error()
	default:
		return Insights{}, err
	}

	insights.OrganHealth, err = service.OrganHealth()
	if err != nil {
		return Insights{}, err
	}
	return insights, nil
}

func RecentWindowStart(now time.Time, days int) time.Time {
	if days <= 0 {
		days = models.DefaultRecentSymptomWindowDays
	}
	return CalendarDay(now).AddDate(0, 0, -days)
}

func latestPeriodStart(periods []models.PeriodRecord) time.Time {
	latest := time.Time{}
	for _, period := range periods {
		if period.StartDate.After(latest) {
			latest = period.StartDate
		}
	}
	return latest
}

func nonNilSymptoms(values []models.SymptomEvent) []models.SymptomEvent {
	if values == nil {
		return []models.SymptomEvent{}
	}
	return values
}

func nonNilConditions(values []models.ConditionEntry) []models.ConditionEntry {
	if values == nil {
		return []models.ConditionEntry{}
	}
	return values
}
