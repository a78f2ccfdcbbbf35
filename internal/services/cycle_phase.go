package services

import (
	"time"

	"github.com/terraincognita07/gloww/internal/content"
	"github.com/terraincognita07/gloww/internal/models"
)

type CyclePhase struct {
	Name            string
	CycleDay        int
	CycleLength     int
	LastPeriodStart time.Time
	Description     string
	Symptoms        []string
	Recommendations []string
}

// ResolveCycleLength falls back to the default length for non-positive values.
func ResolveCycleLength(averageLength int) int {
	if averageLength <= 0 {
		return models.DefaultCycleLength
	}
	return averageLength
}

// CycleDay is the number of days since lastPeriodStart modulo the cycle
// length, always in [0, cycleLength).
func CycleDay(today time.Time, lastPeriodStart time.Time, averageLength int) int {
	length := ResolveCycleLength(averageLength)
	elapsed := DaysBetween(lastPeriodStart, today)
	return ((elapsed % length) + length) % length
}

func ClassifyCyclePhase(today time.Time, lastPeriodStart time.Time, averageLength int, catalog *content.Catalog) CyclePhase {
	length := ResolveCycleLength(averageLength)
	day := CycleDay(today, lastPeriodStart, length)

	result := CyclePhase{
		CycleDay:        day,
		CycleLength:     length,
		LastPeriodStart: CalendarDay(lastPeriodStart),
	}
	phase, ok := catalog.PhaseForDay(day)
	if !ok {
		return result
	}

	result.Name = phase.Name
	result.Description = phase.Description
	result.Symptoms = append([]string(nil), phase.Symptoms...)
	result.Recommendations = append([]string(nil), phase.Recommendations...)
	return result
}
