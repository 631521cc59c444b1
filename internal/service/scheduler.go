package service

import (
	"context"
	"sync"
	"time"

	"github.com/shenikar/dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Step - один автоматический переход статуса
type Step struct {
	Status  models.Status
	After   time.Duration // смещение от момента создания инцидента
	Message string
}

// DefaultTimeline - имитация движения экипажа без реальной телеметрии
var DefaultTimeline = []Step{
	{Status: models.StatusDispatched, After: 5 * time.Second, Message: "Responder dispatched"},
	{Status: models.StatusEnroute, After: 15 * time.Second, Message: "Responder en route to location"},
	{Status: models.StatusArrived, After: 30 * time.Second, Message: "Responder arrived at scene"},
	{Status: models.StatusResolved, After: 45 * time.Second, Message: "Incident resolved successfully"},
}

// Scheduler откладывает задачи, сгруппированные по ключу
type Scheduler interface {
	Schedule(key string, delay time.Duration, task func())
	// Cancel отменяет ещё не сработавшие задачи ключа и возвращает их число
	Cancel(key string) int
}

// TimerScheduler - Scheduler на time.AfterFunc
type TimerScheduler struct {
	mu     sync.Mutex
	timers map[string][]*time.Timer
}

func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{timers: make(map[string][]*time.Timer)}
}

func (s *TimerScheduler) Schedule(key string, delay time.Duration, task func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		s.mu.Lock()
		s.remove(key, timer)
		s.mu.Unlock()
		task()
	})
	s.timers[key] = append(s.timers[key], timer)
}

func (s *TimerScheduler) Cancel(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cancelled := 0
	for _, t := range s.timers[key] {
		if t.Stop() {
			cancelled++
		}
	}
	delete(s.timers, key)
	return cancelled
}

// pending возвращает число ожидающих задач ключа
func (s *TimerScheduler) pending(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers[key])
}

// Stop останавливает все таймеры, используется при завершении работы
func (s *TimerScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, timers := range s.timers {
		for _, t := range timers {
			t.Stop()
		}
		delete(s.timers, key)
	}
}

func (s *TimerScheduler) remove(key string, timer *time.Timer) {
	timers := s.timers[key]
	for i, t := range timers {
		if t == timer {
			s.timers[key] = append(timers[:i], timers[i+1:]...)
			break
		}
	}
	if len(s.timers[key]) == 0 {
		delete(s.timers, key)
	}
}

// scheduleTimeline ставит все переходы сразу, смещения считаются от создания
func (s *incidentService) scheduleTimeline(incidentID string) {
	for _, step := range s.timeline {
		step := step
		s.scheduler.Schedule(incidentID, step.After, func() {
			s.applyScheduled(incidentID, step)
		})
	}
}

// applyScheduled выполняет автоматический переход. Если инцидента уже нет,
// переход молча пропускается.
func (s *incidentService) applyScheduled(incidentID string, step Step) {
	ctx := context.Background()
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "applyScheduled",
		"incident_id": incidentID,
		"status":      step.Status,
	})

	incident, _, err := s.transition(ctx, incidentID, step.Status, step.Message, false)
	if err != nil {
		log.WithError(err).Debug("Scheduled transition skipped")
		return
	}

	s.emit(ctx, models.EventStatusChanged, auditStatusChanged, incident, step.Message)
	log.Debug("Scheduled transition applied")
}
