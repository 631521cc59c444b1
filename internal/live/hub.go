package live

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shenikar/dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

// subscriberBuffer - сколько событий может накопиться у медленного подписчика
const subscriberBuffer = 16

// Subscriber - подписка на события одного инцидента
type Subscriber struct {
	ID         uuid.UUID
	IncidentID string
	Events     chan models.IncidentEvent
}

// Hub раздаёт события инцидентов подключённым клиентам.
// Реализует webhook.WebhookPublisher, поэтому подключается рядом с очередью вебхуков.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[uuid.UUID]*Subscriber
	logger      *logrus.Logger
}

func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		subscribers: make(map[string]map[uuid.UUID]*Subscriber),
		logger:      logger,
	}
}

// Subscribe регистрирует подписчика на события инцидента
func (h *Hub) Subscribe(incidentID string) *Subscriber {
	sub := &Subscriber{
		ID:         uuid.New(),
		IncidentID: incidentID,
		Events:     make(chan models.IncidentEvent, subscriberBuffer),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subscribers[incidentID] == nil {
		h.subscribers[incidentID] = make(map[uuid.UUID]*Subscriber)
	}
	h.subscribers[incidentID][sub.ID] = sub
	return sub
}

// Unsubscribe удаляет подписчика и закрывает его канал
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs, ok := h.subscribers[sub.IncidentID]
	if !ok {
		return
	}
	if _, ok := subs[sub.ID]; !ok {
		return
	}
	delete(subs, sub.ID)
	close(sub.Events)
	if len(subs) == 0 {
		delete(h.subscribers, sub.IncidentID)
	}
}

// Publish рассылает событие подписчикам инцидента. Если буфер подписчика
// заполнен, событие для него отбрасывается.
func (h *Hub) Publish(_ context.Context, event models.IncidentEvent) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subscribers[event.IncidentID] {
		select {
		case sub.Events <- event:
		default:
			h.logger.WithFields(logrus.Fields{
				"incident_id":   event.IncidentID,
				"subscriber_id": sub.ID,
			}).Warn("Live subscriber is too slow, event dropped")
		}
	}
	return nil
}

// Subscribers возвращает число подписчиков инцидента
func (h *Hub) Subscribers(incidentID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[incidentID])
}
