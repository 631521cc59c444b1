package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shenikar/dispatch_system/internal/models"
	"github.com/shenikar/dispatch_system/internal/service"
)

// ResponderRepository - справочник экипажей в памяти
type ResponderRepository struct {
	mu         sync.RWMutex
	responders []*models.Responder
	byID       map[string]int
	now        func() time.Time
}

// NewResponderRepository заполняет справочник начальным списком экипажей.
// Порядок списка сохраняется: от него зависит выбор при назначении.
func NewResponderRepository(seed []models.Responder) service.ResponderRepository {
	r := &ResponderRepository{
		responders: make([]*models.Responder, 0, len(seed)),
		byID:       make(map[string]int, len(seed)),
		now:        time.Now,
	}
	for i := range seed {
		responder := seed[i].Clone()
		r.byID[responder.ID] = len(r.responders)
		r.responders = append(r.responders, responder)
	}
	return r
}

// List возвращает копии всех экипажей в исходном порядке
func (r *ResponderRepository) List(_ context.Context) ([]*models.Responder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Responder, len(r.responders))
	for i, responder := range r.responders {
		out[i] = responder.Clone()
	}
	return out, nil
}

// FindAvailableByType возвращает свободные экипажи указанного типа
func (r *ResponderRepository) FindAvailableByType(_ context.Context, t models.EmergencyType) ([]*models.Responder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Responder, 0)
	for _, responder := range r.responders {
		if responder.Type == t && responder.Available {
			out = append(out, responder.Clone())
		}
	}
	return out, nil
}

// GetByID возвращает экипаж по идентификатору
func (r *ResponderRepository) GetByID(_ context.Context, id string) (*models.Responder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("responder with id %s: %w", id, models.ErrNotFound)
	}
	return r.responders[idx].Clone(), nil
}

// SetAvailability меняет доступность экипажа и время последнего обновления.
// Возвращает false, если экипажа с таким id нет.
func (r *ResponderRepository) SetAvailability(_ context.Context, id string, available bool) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.byID[id]
	if !ok {
		return false, nil
	}
	r.responders[idx].Available = available
	r.responders[idx].LastUpdate = r.now()
	return true, nil
}
