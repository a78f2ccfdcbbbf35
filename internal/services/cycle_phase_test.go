package services

import (
	"testing"
	"time"

	"github.com/terraincognita07/gloww/internal/content"
)

func TestClassifyCyclePhaseBuckets(t *testing.T) {
	lastStart := mustParseDay(t, "2024-03-01")
	cases := []struct {
		offset int
		want   string
	}{
		{offset: 0, want: "menstrual"},
		{offset: 5, want: "menstrual"},
		{offset: 6, want: "follicular"},
		{offset: 13, want: "follicular"},
		{offset: 14, want: "ovulation"},
		{offset: 16, want: "ovulation"},
		{offset: 17, want: "luteal"},
		{offset: 27, want: "luteal"},
		{offset: 28, want: "menstrual"},
		{offset: 45, want: "luteal"},
	}

	for _, testCase := range cases {
		today := lastStart.AddDate(0, 0, testCase.offset)
		phase := ClassifyCyclePhase(today, lastStart, 28, content.Default())
		if phase.Name != testCase.want {
			t.Fatalf("offset %d: expected %s, got %s (cycle day %d)", testCase.offset, testCase.want, phase.Name, phase.CycleDay)
		}
		if phase.Description == "" || len(phase.Symptoms) == 0 || len(phase.Recommendations) == 0 {
			t.Fatalf("offset %d: expected static content for %s", testCase.offset, phase.Name)
		}
	}
}

func TestClassifyCyclePhasePartitionsCycle(t *testing.T) {
	lastStart := mustParseDay(t, "2024-03-01")
	for _, length := range []int{21, 28, 35, 45} {
		seen := make([]string, 0, 4)
		for day := 0; day < length; day++ {
			phase := ClassifyCyclePhase(lastStart.AddDate(0, 0, day), lastStart, length, content.Default())
			if phase.CycleDay != day {
				t.Fatalf("length %d: expected cycle day %d, got %d", length, day, phase.CycleDay)
			}
			if len(seen) == 0 || seen[len(seen)-1] != phase.Name {
				seen = append(seen, phase.Name)
			}
		}
		want := []string{"menstrual", "follicular", "ovulation", "luteal"}
		if len(seen) != len(want) {
			t.Fatalf("length %d: expected contiguous phases %v, got %v", length, want, seen)
		}
		for index := range want {
			if seen[index] != want[index] {
				t.Fatalf("length %d: expected contiguous phases %v, got %v", length, want, seen)
			}
		}
	}
}

func TestCycleDayFallsBackToDefaultLength(t *testing.T) {
	lastStart := mustParseDay(t, "2024-03-01")
	today := lastStart.AddDate(0, 0, 30)

	if got := CycleDay(today, lastStart, 0); got != 2 {
		t.Fatalf("expected cycle day 2 with default length, got %d", got)
	}
	if got := CycleDay(today, lastStart, -5); got != 2 {
		t.Fatalf("expected cycle day 2 for negative length, got %d", got)
	}

	phase := ClassifyCyclePhase(today, lastStart, 0, content.Default())
	if phase.CycleLength != 28 {
		t.Fatalf("expected fallback cycle length 28, got %d", phase.CycleLength)
	}
}

func TestCycleDayBeforeLastStartStaysInRange(t *testing.T) {
	lastStart := mustParseDay(t, "2024-03-10")
	today := mustParseDay(t, "2024-03-08")

	if got := CycleDay(today, lastStart, 28); got != 26 {
		t.Fatalf("expected wrapped cycle day 26, got %d", got)
	}
}

func TestClassifyCyclePhaseIgnoresClock(t *testing.T) {
	lastStart := mustParseDay(t, "2024-03-01")
	late := time.Date(2024, 3, 7, 23, 59, 0, 0, time.UTC)

	if got := ClassifyCyclePhase(late, lastStart, 28, content.Default()); got.CycleDay != 6 || got.Name != "follicular" {
		t.Fatalf("expected follicular day 6, got %s day %d", got.Name, got.CycleDay)
	}
}
