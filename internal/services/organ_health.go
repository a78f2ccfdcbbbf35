package services

import (
	"time"

	"github.com/terraincognita07/gloww/internal/content"
	"github.com/terraincognita07/gloww/internal/models"
)

// BuildOrganHealth derives the full organ snapshot from a score; nothing from
// a previous snapshot is carried over.
func BuildOrganHealth(score int, catalog *content.Catalog, now time.Time) []models.OrganHealth {
	snapshot := make([]models.OrganHealth, 0, len(catalog.Organs))
	for position, band := range catalog.Organs {
		progress := score + band.Offset
		if band.Inverse {
			progress = 100 - score + band.Offset
		}
		progress = band.Bounds().Clamp(progress)

		snapshot = append(snapshot, models.OrganHealth{
			Organ:     band.Key,
			Label:     band.Label,
			Status:    organStatus(band, progress),
			Progress:  progress,
			Position:  position,
			UpdatedAt: now,
		})
	}
	return snapshot
}

func organStatus(band content.OrganBand, progress int) string {
	for _, threshold := range band.Statuses {
		if progress >= threshold.Min {
			return threshold.Label
		}
	}
	return band.Statuses[len(band.Statuses)-1].Label
}
