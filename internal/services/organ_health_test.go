package services

import (
	"testing"
	"time"

	"github.com/terraincognita07/gloww/internal/content"
)

func TestBuildOrganHealth(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	snapshot := BuildOrganHealth(72, content.Default(), now)

	if len(snapshot) != 4 {
		t.Fatalf("expected 4 organs, got %d", len(snapshot))
	}

	want := map[string]struct {
		progress int
		status   string
	}{
		"uterus":  {progress: 72, status: "Good"},
		"ovaries": {progress: 67, status: "Good"},
		"thyroid": {progress: 77, status: "Good"},
		"stress":  {progress: 28, status: "Low"},
	}
	for index, organ := range snapshot {
		expected, ok := want[organ.Organ]
		if !ok {
			t.Fatalf("unexpected organ %q", organ.Organ)
		}
		if organ.Progress != expected.progress || organ.Status != expected.status {
			t.Fatalf("%s: expected %d/%s, got %d/%s", organ.Organ, expected.progress, expected.status, organ.Progress, organ.Status)
		}
		if organ.Position != index {
			t.Fatalf("%s: expected position %d, got %d", organ.Organ, index, organ.Position)
		}
		if !organ.UpdatedAt.Equal(now) {
			t.Fatalf("%s: expected updated at %s", organ.Organ, now)
		}
	}
}

func TestBuildOrganHealthClampsToBandBounds(t *testing.T) {
	catalog := content.Default()
	for score := -50; score <= 150; score += 5 {
		for _, organ := range BuildOrganHealth(score, catalog, time.Time{}) {
			var band content.OrganBand
			for _, candidate := range catalog.Organs {
				if candidate.Key == organ.Organ {
					band = candidate
				}
			}
			if organ.Progress < band.Min || organ.Progress > band.Max {
				t.Fatalf("score %d: %s progress %d outside [%d,%d]", score, organ.Organ, organ.Progress, band.Min, band.Max)
			}
			if organ.Status == "" {
				t.Fatalf("score %d: %s has empty status", score, organ.Organ)
			}
		}
	}
}

func TestBuildOrganHealthStressIsInverse(t *testing.T) {
	catalog := content.Default()
	high := BuildOrganHealth(95, catalog, time.Time{})
	low := BuildOrganHealth(15, catalog, time.Time{})

	if high[3].Organ != "stress" || low[3].Organ != "stress" {
		t.Fatal("expected stress to be the fourth band")
	}
	if high[3].Status != "Low" {
		t.Fatalf("expected low stress for high score, got %s", high[3].Status)
	}
	if low[3].Status != "High" {
		t.Fatalf("expected high stress for low score, got %s", low[3].Status)
	}
	if low[0].Status != "Needs attention" {
		t.Fatalf("expected uterus to need attention for low score, got %s", low[0].Status)
	}
}
