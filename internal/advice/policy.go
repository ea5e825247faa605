package advice

import (
	"strings"
	"time"
)

// DefaultThreshold is the confidence an academic or wellness reply must
// exceed to be kept as advice.
const DefaultThreshold = 0.7

// ShouldLog reports whether a reply for intent is kept as advice. Only
// academic and wellness replies qualify.
func ShouldLog(intent string, confidence, threshold float64) bool {
	if intent != "academic" && intent != "wellness" {
		return false
	}
	return confidence > threshold
}

// CategoryFor files a reply by its support type first and intent second.
func CategoryFor(intent, supportType string) string {
	switch {
	case strings.Contains(supportType, "exam"), strings.Contains(supportType, "study"):
		return CategoryStudyPlan
	case strings.Contains(supportType, "wellbeing"), strings.Contains(supportType, "crisis"), strings.Contains(supportType, "stress"):
		return CategoryWellnessCheck
	case strings.Contains(supportType, "time"):
		return CategoryTimeManagement
	case strings.Contains(supportType, "resource"):
		return CategoryCampusResource
	}

	switch intent {
	case "academic":
		return CategoryStudyPlan
	case "wellness", "emergency":
		return CategoryWellnessCheck
	case "campus_life":
		return CategoryCampusResource
	default:
		return CategoryGeneral
	}
}

// PriorityFor ranks an entry. A crisis is always urgent.
func PriorityFor(confidence float64, crisis bool) string {
	switch {
	case crisis:
		return PriorityUrgent
	case confidence > 0.85:
		return PriorityHigh
	case confidence > 0.7:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// TitleFor renders "Academic Advice - 3/14/2025".
func TitleFor(intent string, at time.Time) string {
	prefix := intent
	if prefix != "" {
		prefix = strings.ToUpper(prefix[:1]) + prefix[1:]
	}
	return prefix + " Advice - " + at.Format("1/2/2006")
}

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c string) bool {
	switch c {
	case CategoryStudyPlan, CategoryWellnessCheck, CategoryTimeManagement, CategoryCampusResource, CategoryGeneral:
		return true
	}
	return false
}
