package detection

import (
	"strings"

	"github.com/shenikar/dispatch_system/internal/models"
)

var (
	criticalIndicators = []string{
		"critical", "urgent", "immediate", "dying", "unconscious",
		"severe", "serious", "emergency", "help", "now",
	}
	highIndicators = []string{
		"pain", "bleeding", "injured", "danger", "threat",
		"attack", "fire", "smoke", "explosion",
	}
	lowIndicators = []string{
		"minor", "small", "slight", "check", "advice",
		"question", "information", "inquiry",
	}
)

// EstimateSeverity подсказывает степень тяжести по описанию.
// Используется только как рекомендация, при создании инцидента не применяется.
func EstimateSeverity(description string, t models.EmergencyType) models.Severity {
	text := strings.ToLower(description)

	critical := countMatches(text, criticalIndicators)
	high := countMatches(text, highIndicators)
	low := countMatches(text, lowIndicators)

	switch {
	case critical > 0 || high > 2:
		return models.SeverityCritical
	case high > 0 || t == models.TypeFire:
		return models.SeverityHigh
	case low > 1:
		return models.SeverityLow
	default:
		return models.SeverityMedium
	}
}

func countMatches(text string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(text, w) {
			n++
		}
	}
	return n
}
