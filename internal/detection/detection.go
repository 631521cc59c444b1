package detection

import (
	"strings"

	"github.com/shenikar/dispatch_system/internal/models"
	"github.com/shopspring/decimal"
)

// ReviewThreshold - минимальная уверенность, при которой тип принимается без проверки оператором
const ReviewThreshold = 0.6

var keywords = map[models.EmergencyType][]string{
	models.TypeMedical: {
		"heart", "chest", "pain", "breath", "unconscious", "injured", "bleeding",
		"accident", "fall", "stroke", "attack", "hospital", "ambulance", "doctor",
		"blood", "wound", "fracture", "broken", "emergency", "medical",
	},
	models.TypeFire: {
		"fire", "smoke", "burn", "explosion", "flame", "heat", "gas", "emergency",
		"alarm", "blaze", "hot", "rescue", "firefighter", "extinguish", "danger",
	},
	models.TypePolice: {
		"attack", "theft", "robbery", "fight", "danger", "threat", "violence",
		"assault", "suspicious", "crime", "police", "officer", "help", "dangerous",
		"weapon", "gun", "knife", "thief", "burglary", "harassment",
	},
}

// Result - результат классификации текста
type Result struct {
	Type       models.EmergencyType         `json:"type"`
	Confidence float64                      `json:"confidence"`
	Scores     map[models.EmergencyType]int `json:"scores"`
}

// Classify определяет тип происшествия по ключевым словам в описании.
// Каждое ключевое слово даёт не больше одного очка своему типу.
func Classify(description string) Result {
	text := strings.ToLower(description)

	scores := make(map[models.EmergencyType]int, len(models.EmergencyTypes))
	total := 0
	for _, t := range models.EmergencyTypes {
		for _, kw := range keywords[t] {
			if strings.Contains(text, kw) {
				scores[t]++
				total++
			}
		}
	}

	if total == 0 {
		return Result{Type: models.TypeMedical, Confidence: 0, Scores: scores}
	}

	detected := models.TypeMedical
	maxScore := 0
	for _, t := range models.EmergencyTypes {
		if scores[t] > maxScore {
			maxScore = scores[t]
			detected = t
		}
	}

	confidence := decimal.NewFromInt(int64(maxScore)).
		Div(decimal.NewFromInt(int64(total))).
		Round(2).
		InexactFloat64()

	if confidence < ReviewThreshold {
		detected = models.TypeNeedsReview
	}
	return Result{Type: detected, Confidence: confidence, Scores: scores}
}
