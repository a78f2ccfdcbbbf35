package api

import (
	"github.com/terraincognita07/gloww/internal/models"
	"github.com/terraincognita07/gloww/internal/services"
)

type onboardingPayload struct {
	AgeBracket  string   `json:"age_bracket"`
	CycleLength string   `json:"cycle_length"`
	Goals       []string `json:"goals"`
	Symptoms    []string `json:"symptoms"`
	Lifestyle   string   `json:"lifestyle"`
}

type periodPayload struct {
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Flow      string   `json:"flow"`
	Symptoms  []string `json:"symptoms"`
	PainLevel int      `json:"pain_level"`
	Mood      string   `json:"mood"`
}

type symptomPayload struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Date     string `json:"date"`
	Note     string `json:"note"`
}

type conditionPayload struct {
	Condition string `json:"condition"`
	Status    string `json:"status"`
	IsNew     bool   `json:"is_new"`
	Date      string `json:"date"`
}

type passcodePayload struct {
	Passcode string `json:"passcode"`
}

type profileResponse struct {
	AgeBracket  string   `json:"age_bracket"`
	CycleLength string   `json:"cycle_length"`
	Goals       []string `json:"goals"`
	Symptoms    []string `json:"symptoms"`
	Lifestyle   string   `json:"lifestyle"`
	Score       int      `json:"score"`
	OnboardedAt string   `json:"onboarded_at"`
}

type periodResponse struct {
	ID        string   `json:"id"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Duration  int      `json:"duration"`
	Flow      string   `json:"flow"`
	Symptoms  []string `json:"symptoms"`
	PainLevel int      `json:"pain_level"`
	Mood      string   `json:"mood"`
}

type symptomResponse struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Date     string `json:"date"`
	Note     string `json:"note,omitempty"`
}

type conditionResponse struct {
	ID        string `json:"id"`
	Condition string `json:"condition"`
	Status    string `json:"status"`
	IsNew     bool   `json:"is_new"`
	Date      string `json:"date"`
}

type phaseResponse struct {
	Phase           string   `json:"phase"`
	CycleDay        int      `json:"cycle_day"`
	CycleLength     int      `json:"cycle_length"`
	LastPeriodStart string   `json:"last_period_start"`
	Description     string   `json:"description"`
	Symptoms        []string `json:"symptoms"`
	Recommendations []string `json:"recommendations"`
}

type predictionResponse struct {
	AverageCycleLength int    `json:"average_cycle_length"`
	AverageDuration    int    `json:"average_duration"`
	Variability        int    `json:"variability"`
	IsRegular          bool   `json:"is_regular"`
	Confidence         int    `json:"confidence"`
	LastPeriodStart    string `json:"last_period_start"`
	NextPeriodDate     string `json:"next_period_date"`
	NextOvulationDate  string `json:"next_ovulation_date"`
	DaysUntilPeriod    int    `json:"days_until_period"`
	DaysUntilOvulation int    `json:"days_until_ovulation"`
}

type organResponse struct {
	Organ    string `json:"organ"`
	Label    string `json:"label"`
	Status   string `json:"status"`
	Progress int    `json:"progress"`
}

type insightsResponse struct {
	Onboarded          bool                `json:"onboarded"`
	Score              int                 `json:"score"`
	Phase              *phaseResponse      `json:"phase"`
	PhaseError         string              `json:"phase_error,omitempty"`
	Prediction         *predictionResponse `json:"prediction"`
	PredictionError    string              `json:"prediction_error,omitempty"`
	DetectedConditions []string            `json:"detected_conditions"`
	OrganHealth        []organResponse     `json:"organ_health"`
}

func toProfileResponse(profile models.Profile) profileResponse {
	return profileResponse{
		AgeBracket:  profile.AgeBracket,
		CycleLength: profile.CycleLength,
		Goals:       stringsOrEmpty(profile.Goals),
		Symptoms:    stringsOrEmpty(profile.Symptoms),
		Lifestyle:   profile.Lifestyle,
		Score:       profile.Score,
		OnboardedAt: services.FormatISODate(profile.OnboardedAt),
	}
}

func toPeriodResponse(record models.PeriodRecord) periodResponse {
	return periodResponse{
		ID:        record.ID,
		StartDate: services.FormatISODate(record.StartDate),
		EndDate:   services.FormatISODate(record.EndDate),
		Duration:  services.PeriodDuration(record),
		Flow:      record.Flow,
		Symptoms:  stringsOrEmpty(record.Symptoms),
		PainLevel: record.PainLevel,
		Mood:      record.Mood,
	}
}

func toSymptomResponse(event models.SymptomEvent) symptomResponse {
	return symptomResponse{
		ID:       event.ID,
		Type:     event.Type,
		Severity: event.Severity,
		Date:     services.FormatISODate(event.Date),
		Note:     event.Note,
	}
}

func toConditionResponse(entry models.ConditionEntry) conditionResponse {
	return conditionResponse{
		ID:        entry.ID,
		Condition: entry.Condition,
		Status:    entry.Status,
		IsNew:     entry.IsNew,
		Date:      services.FormatISODate(entry.Date),
	}
}

func toPhaseResponse(phase services.CyclePhase) phaseResponse {
	return phaseResponse{
		Phase:           phase.Name,
		CycleDay:        phase.CycleDay,
		CycleLength:     phase.CycleLength,
		LastPeriodStart: services.FormatISODate(phase.LastPeriodStart),
		Description:     phase.Description,
		Symptoms:        stringsOrEmpty(phase.Symptoms),
		Recommendations: stringsOrEmpty(phase.Recommendations),
	}
}

func toPredictionResponse(prediction services.Prediction) predictionResponse {
	return predictionResponse{
		AverageCycleLength: prediction.AverageCycleLength,
		AverageDuration:    prediction.AverageDuration,
		Variability:        prediction.Variability,
		IsRegular:          prediction.IsRegular,
		Confidence:         prediction.Confidence,
		LastPeriodStart:    services.FormatISODate(prediction.LastPeriodStart),
		NextPeriodDate:     services.FormatISODate(prediction.NextPeriodDate),
		NextOvulationDate:  services.FormatISODate(prediction.NextOvulationDate),
		DaysUntilPeriod:    prediction.DaysUntilPeriod,
		DaysUntilOvulation: prediction.DaysUntilOvulation,
	}
}

func toOrganResponses(organs []models.OrganHealth) []organResponse {
	result := make([]organResponse, 0, len(organs))
	for _, organ := range organs {
		result = append(result, organResponse{
			Organ:    organ.Organ,
			Label:    organ.Label,
			Status:   organ.Status,
			Progress: organ.Progress,
		})
	}
	return result
}

func stringsOrEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
