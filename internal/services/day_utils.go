package services

import (
	"errors"
	"math"
	"sort"
	"strings"
	"time"
)

const isoDateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

// ParseISODate parses a YYYY-MM-DD string as a UTC calendar day.
func ParseISODate(raw string) (time.Time, error) {
	parsed, err := time.ParseInLocation(isoDateLayout, strings.TrimSpace(raw), time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return parsed, nil
}

func FormatISODate(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.Format(isoDateLayout)
}

// CalendarDay strips the clock and zone from value, keeping its calendar date.
func CalendarDay(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DaysBetween counts whole calendar days from start to end.
func DaysBetween(start time.Time, end time.Time) int {
	return int(math.Round(CalendarDay(end).Sub(CalendarDay(start)).Hours() / 24))
}

// CeilDaysUntil is the ceiling-divided number of days from now until target.
func CeilDaysUntil(now time.Time, target time.Time) int {
	reference := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), time.UTC)
	return int(math.Ceil(CalendarDay(target).Sub(reference).Hours() / 24))
}

func NormalizeTags(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, trimmed)
	}
	return result
}

func roundedAverage(values []int) int {
	if len(values) == 0 {
		return 0
	}
	total := 0
	for _, value := range values {
		total += value
	}
	return int(math.Round(float64(total) / float64(len(values))))
}

func minMaxInts(values []int) (int, int) {
	if len(values) == 0 {
		return 0, 0
	}
	sorted := make([]int, 0, len(values))
	sorted = append(sorted, values...)
	sort.Ints(sorted)
	return sorted[0], sorted[len(sorted)-1]
}
