package services

import (
	"github.com/terraincognita07/gloww/internal/content"
)

// DetectConditions returns the labels of every catalog condition whose
// associated symptom tags are present at least threshold times, in catalog order.
func DetectConditions(symptoms []string, catalog *content.Catalog) []string {
	present := make(map[string]struct{}, len(symptoms))
	for _, symptom := range symptoms {
		key := content.NormalizeTag(symptom)
		if key != "" {
			present[key] = struct{}{}
		}
	}

	detected := make([]string, 0)
	if len(present) == 0 {
		return detected
	}

	for _, condition := range catalog.Conditions {
		matches := 0
		for _, tag := range condition.Symptoms {
			if _, ok := present[content.NormalizeTag(tag)]; ok {
				matches++
			}
		}
		if matches >= condition.Threshold {
			detected = append(detected, condition.Label)
		}
	}
	return detected
}

func conditionPenalty(label string, catalog *content.Catalog) int {
	for _, condition := range catalog.Conditions {
		if condition.Label == label {
			return condition.Penalty
		}
	}
	return 0
}
