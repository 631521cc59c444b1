package routing

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/shenikar/dispatch_system/internal/models"
)

const (
	baseETAMinutes    = 8
	etaRangeExtension = 4
)

// ErrNoResponders возвращается, если справочник экипажей пуст
var ErrNoResponders = errors.New("no responders configured")

// Assign выбирает ближайший экипаж для происшествия.
// Сначала среди свободных экипажей нужного типа, затем среди любых свободных,
// а если свободных нет, берётся первый экипаж пула, даже если он занят.
// Доступность экипажа не меняется: это делает вызывающая сторона.
func Assign(emergencyType models.EmergencyType, location models.Location, pool []*models.Responder, now time.Time) (*models.AssignedResponder, error) {
	if len(pool) == 0 {
		return nil, ErrNoResponders
	}

	candidates := filter(pool, func(r *models.Responder) bool {
		return r.Type == emergencyType && r.Available
	})
	if len(candidates) == 0 {
		candidates = filter(pool, func(r *models.Responder) bool {
			return r.Available
		})
	}
	if len(candidates) == 0 {
		candidates = pool[:1]
	}

	nearest := Nearest(location, candidates)

	return &models.AssignedResponder{
		Responder:  *nearest.Clone(),
		AssignedAt: now,
		ETA:        EstimateETA(location, nearest.Location),
	}, nil
}

// Nearest возвращает ближайший к точке экипаж. Экипажи без координат
// пропускаются; при равных расстояниях остаётся первый из списка.
func Nearest(location models.Location, candidates []*models.Responder) *models.Responder {
	nearest := candidates[0]
	minDistance := math.Inf(1)

	for _, r := range candidates {
		if r.Location == nil {
			continue
		}
		d := Distance(location, *r.Location)
		if d < minDistance {
			minDistance = d
			nearest = r
		}
	}
	return nearest
}

// Distance - плоское евклидово расстояние в градусах, не геодезическое
func Distance(a, b models.Location) float64 {
	dLat := a.Lat - b.Lat
	dLng := a.Lng - b.Lng
	return math.Sqrt(dLat*dLat + dLng*dLng)
}

// EstimateETA переводит расстояние в условные минуты.
// Без координат экипажа считается базовое время.
func EstimateETA(from models.Location, to *models.Location) models.ETA {
	additional := 0
	if to != nil {
		additional = int(math.Floor(Distance(from, *to) * 100))
	}
	return models.ETA{
		Minutes: baseETAMinutes + additional,
		Range:   fmt.Sprintf("%d-%d minutes", baseETAMinutes, baseETAMinutes+additional+etaRangeExtension),
	}
}

func filter(pool []*models.Responder, keep func(*models.Responder) bool) []*models.Responder {
	out := make([]*models.Responder, 0, len(pool))
	for _, r := range pool {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
