package services

import (
	"errors"
	"sort"
	"time"

	"github.com/terraincognita07/gloww/internal/models"
)

const (
	ConfidenceRegular     = 85
	ConfidenceIrregular   = 65
	MaxRegularVariability = 7
)

var ErrInsufficientData = errors.New("insufficient data")

type Prediction struct {
	AverageCycleLength int
	AverageDuration    int
	Variability        int
	IsRegular          bool
	Confidence         int
	LastPeriodStart    time.Time
	NextPeriodDate     time.Time
	NextOvulationDate  time.Time
	DaysUntilPeriod    int
	DaysUntilOvulation int
}

// PredictNextPeriod projects the next period linearly from the average gap
// between consecutive period starts. It needs at least two records.
func PredictNextPeriod(periods []models.PeriodRecord, now time.Time) (Prediction, error) {
	if len(periods) < 2 {
		return Prediction{}, ErrInsufficientData
	}

	sorted := make([]models.PeriodRecord, 0, len(periods))
	sorted = append(sorted, periods...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartDate.Before(sorted[j].StartDate)
	})

	gaps := make([]int, 0, len(sorted)-1)
	for index := 1; index < len(sorted); index++ {
		gaps = append(gaps, DaysBetween(sorted[index-1].StartDate, sorted[index].StartDate))
	}

	durations := make([]int, 0, len(sorted))
	for _, period := range sorted {
		if duration := PeriodDuration(period); duration > 0 {
			durations = append(durations, duration)
		}
	}

	shortest, longest := minMaxInts(gaps)
	variability := longest - shortest
	isRegular := variability <= MaxRegularVariability
	confidence := ConfidenceIrregular
	if isRegular {
		confidence = ConfidenceRegular
	}

	averageLength := roundedAverage(gaps)
	lastStart := CalendarDay(sorted[len(sorted)-1].StartDate)
	nextPeriod := lastStart.AddDate(0, 0, averageLength)
	nextOvulation := nextPeriod.AddDate(0, 0, -models.LutealPhaseDays)

	return Prediction{
		AverageCycleLength: averageLength,
		AverageDuration:    roundedAverage(durations),
		Variability:        variability,
		IsRegular:          isRegular,
		Confidence:         confidence,
		LastPeriodStart:    lastStart,
		NextPeriodDate:     nextPeriod,
		NextOvulationDate:  nextOvulation,
		DaysUntilPeriod:    CeilDaysUntil(now, nextPeriod),
		DaysUntilOvulation: CeilDaysUntil(now, nextOvulation),
	}, nil
}

// PeriodDuration prefers the recorded duration and falls back to the
// inclusive start..end span.
func PeriodDuration(period models.PeriodRecord) int {
	if period.Duration > 0 {
		return period.Duration
	}
	if period.StartDate.IsZero() || period.EndDate.IsZero() || period.EndDate.Before(period.StartDate) {
		return 0
	}
	return DaysBetween(period.StartDate, period.EndDate) + 1
}
