package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/shenikar/dispatch_system/internal/models"
	"github.com/shenikar/dispatch_system/internal/service"
)

// IncidentRepository хранит инциденты в памяти процесса.
// Наружу отдаются только копии, поэтому изменить инцидент можно лишь через Update.
type IncidentRepository struct {
	mu        sync.RWMutex
	incidents map[string]*models.Incident
	order     []string
	counter   int
}

func NewIncidentRepository() service.IncidentRepository {
	return &IncidentRepository{
		incidents: make(map[string]*models.Incident),
	}
}

// NextDispatchID выдаёт следующий последовательный номер вида INC-0001
func (r *IncidentRepository) NextDispatchID(_ context.Context) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.counter++
	return fmt.Sprintf("INC-%04d", r.counter)
}

// Create сохраняет новый инцидент
func (r *IncidentRepository) Create(_ context.Context, incident *models.Incident) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.incidents[incident.ID]; exists {
		return fmt.Errorf("incident with id %s already exists", incident.ID)
	}
	r.incidents[incident.ID] = incident.Clone()
	r.order = append(r.order, incident.ID)
	return nil
}

// GetByID возвращает копию инцидента по его номеру
func (r *IncidentRepository) GetByID(_ context.Context, id string) (*models.Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	incident, ok := r.incidents[id]
	if !ok {
		return nil, fmt.Errorf("incident with id %s: %w", id, models.ErrNotFound)
	}
	return incident.Clone(), nil
}

// Update заменяет сохранённый инцидент
func (r *IncidentRepository) Update(_ context.Context, incident *models.Incident) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.incidents[incident.ID]; !ok {
		return fmt.Errorf("incident with id %s not found for update: %w", incident.ID, models.ErrNotFound)
	}
	r.incidents[incident.ID] = incident.Clone()
	return nil
}

// List возвращает все инциденты, сначала новые. При равном времени
// сохраняется порядок создания.
func (r *IncidentRepository) List(_ context.Context) ([]*models.Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	incidents := make([]*models.Incident, 0, len(r.order))
	for _, id := range r.order {
		incidents = append(incidents, r.incidents[id].Clone())
	}
	sort.SliceStable(incidents, func(i, j int) bool {
		return incidents[i].Timestamp.After(incidents[j].Timestamp)
	})
	return incidents, nil
}
