package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/shenikar/dispatch_system/internal/config"
	"github.com/shenikar/dispatch_system/internal/detection"
	"github.com/shenikar/dispatch_system/internal/models"
	"github.com/shenikar/dispatch_system/internal/routing"
	"github.com/shenikar/dispatch_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// DefaultListLimit - размер выборки инцидентов, если лимит не задан
const DefaultListLimit = 50

// errTimelineHalted - автоматический переход после ручного закрытия
var errTimelineHalted = errors.New("timeline halted by manual resolve")

const (
	auditCreated       = "created"
	auditStatusChanged = "status_changed"
	auditReassigned    = "reassigned"

	createdMessage = "Emergency reported successfully"
)

// IncidentRepository определяет контракт хранилища инцидентов
type IncidentRepository interface {
	NextDispatchID(ctx context.Context) string
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id string) (*models.Incident, error)
	Update(ctx context.Context, incident *models.Incident) error
	List(ctx context.Context) ([]*models.Incident, error)
}

// ResponderRepository определяет контракт справочника экипажей
type ResponderRepository interface {
	List(ctx context.Context) ([]*models.Responder, error)
	FindAvailableByType(ctx context.Context, t models.EmergencyType) ([]*models.Responder, error)
	GetByID(ctx context.Context, id string) (*models.Responder, error)
	SetAvailability(ctx context.Context, id string, available bool) (bool, error)
}

// AuditJournal принимает записи журнала диспетчерских действий
type AuditJournal interface {
	Record(ctx context.Context, entry *models.AuditEntry) error
}

// CreateIncidentInput - данные сообщения о происшествии
type CreateIncidentInput struct {
	Description string
	Location    *models.Location
	UserType    models.EmergencyType
	Severity    models.Severity
	Language    string
	OfflineID   string
}

// SyncedReport - успешно обработанный офлайн-отчёт
type SyncedReport struct {
	OfflineID  string `json:"offline_id"`
	DispatchID string `json:"dispatch_id"`
	Duplicate  bool   `json:"duplicate,omitempty"`
}

// FailedReport - офлайн-отчёт, который не удалось обработать
type FailedReport struct {
	OfflineID string `json:"offline_id"`
	Error     string `json:"error"`
}

// SyncResult - итог пакетной синхронизации офлайн-отчётов
type SyncResult struct {
	Synced  int            `json:"synced"`
	Failed  int            `json:"failed"`
	Results []SyncedReport `json:"results"`
	Errors  []FailedReport `json:"errors"`
}

// Classification - результат классификации с рекомендуемой тяжестью
type Classification struct {
	detection.Result
	SuggestedSeverity models.Severity `json:"suggested_severity"`
}

// IncidentService определяет контракт движка диспетчеризации
type IncidentService interface {
	CreateIncident(ctx context.Context, input CreateIncidentInput) (*models.Incident, error)
	GetIncident(ctx context.Context, id string) (*models.Incident, error)
	ListIncidents(ctx context.Context, filter models.IncidentFilter) (*models.IncidentList, error)
	UpdateStatus(ctx context.Context, id string, status models.Status, message string) (*models.Incident, error)
	GetLiveUpdates(ctx context.Context, id string) (*models.LiveUpdates, error)
	ListResponders(ctx context.Context, filter models.ResponderFilter) (*models.ResponderList, error)
	ReassignIncident(ctx context.Context, id string, responderType models.EmergencyType) (*models.Incident, error)
	SyncOfflineReports(ctx context.Context, reports []CreateIncidentInput) (*SyncResult, error)
	Classify(ctx context.Context, description string) *Classification
	// Close освобождает фоновые ресурсы сервиса
	Close()
}

type incidentService struct {
	// mu сериализует все изменяющие операции, включая отложенные переходы
	mu sync.Mutex

	incidents  IncidentRepository
	responders ResponderRepository
	scheduler  Scheduler
	publisher  webhook.WebhookPublisher
	journal    AuditJournal
	logger     *logrus.Logger
	cfg        *config.Config

	timeline []Step
	// halted - инциденты, закрытые вручную с отменой оставшихся переходов; под mu
	halted map[string]struct{}
	now    func() time.Time

	// offlineMu держит проверку и запись offline_id одной операцией
	offlineMu   sync.Mutex
	offlineSeen *ttlcache.Cache[string, string]
	closeOnce   sync.Once
}

func NewIncidentService(
	incidents IncidentRepository,
	responders ResponderRepository,
	scheduler Scheduler,
	publisher webhook.WebhookPublisher,
	journal AuditJournal,
	logger *logrus.Logger,
	cfg *config.Config,
) IncidentService {
	s := &incidentService{
		incidents:  incidents,
		responders: responders,
		scheduler:  scheduler,
		publisher:  publisher,
		journal:    journal,
		logger:     logger,
		cfg:        cfg,
		timeline:   DefaultTimeline,
		halted:     make(map[string]struct{}),
		now:        time.Now,
	}
	if cfg.OfflineDedupTTL > 0 {
		s.offlineSeen = ttlcache.New(ttlcache.WithTTL[string, string](cfg.OfflineDedupTTL))
		go s.offlineSeen.Start()
	}
	return s
}

// Close останавливает вытеснение просроченных offline_id. Повторный вызов ничего не делает.
func (s *incidentService) Close() {
	s.closeOnce.Do(func() {
		if s.offlineSeen != nil {
			s.offlineSeen.Stop()
		}
	})
}

// CreateIncident регистрирует происшествие, назначает экипаж и запускает ленту статусов
func (s *incidentService) CreateIncident(ctx context.Context, input CreateIncidentInput) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "incident",
		"method":     "CreateIncident",
		"offline_id": input.OfflineID,
	})
	log.Info("Attempting to create a new incident")

	if strings.TrimSpace(input.Description) == "" || input.Location == nil {
		log.Warn("Description or location is missing")
		return nil, fmt.Errorf("service: description and location are required: %w", models.ErrValidation)
	}

	incident, err := s.createLocked(ctx, input)
	if err != nil {
		log.WithError(err).Error("Failed to create incident")
		return nil, err
	}

	s.emit(ctx, models.EventIncidentCreated, auditCreated, incident, createdMessage)
	log.WithFields(logrus.Fields{
		"incident_id":  incident.ID,
		"type":         incident.Type,
		"responder_id": incident.AssignedResponder.ID,
	}).Info("Incident created successfully")
	return incident, nil
}

func (s *incidentService) createLocked(ctx context.Context, input CreateIncidentInput) (*models.Incident, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	detected := detection.Classify(input.Description)
	emergencyType := detected.Type
	if input.UserType != "" {
		emergencyType = input.UserType
	}

	now := s.now()
	assigned, err := s.assign(ctx, emergencyType, *input.Location, now)
	if err != nil {
		return nil, fmt.Errorf("service: could not assign responder: %w", err)
	}

	incident := &models.Incident{
		ID:                s.incidents.NextDispatchID(ctx),
		Description:       input.Description,
		Location:          *input.Location,
		Type:              emergencyType,
		Severity:          input.Severity,
		DetectedType:      detected.Type,
		Confidence:        detected.Confidence,
		AssignedResponder: assigned,
		Timestamp:         now,
		Language:          input.Language,
		Metadata: models.Metadata{
			OfflineID: input.OfflineID,
			Source:    models.SourceOnline,
		},
	}
	if incident.Severity == "" {
		incident.Severity = models.SeverityMedium
	}
	if incident.Language == "" {
		incident.Language = models.DefaultLanguage
	}
	if input.OfflineID != "" {
		incident.Metadata.Source = models.SourceOfflineSync
	}
	incident.AppendUpdate(models.StatusReceived, now, createdMessage)

	// Экипаж занимается до сохранения; при ошибке сохранения свободный до
	// назначения экипаж возвращается в свободные
	if _, err := s.responders.SetAvailability(ctx, assigned.ID, false); err != nil {
		return nil, fmt.Errorf("service: could not mark responder busy: %w", err)
	}
	if err := s.incidents.Create(ctx, incident); err != nil {
		if assigned.Available {
			s.restoreAvailability(ctx, &assigned.Responder)
		}
		return nil, fmt.Errorf("service: could not create incident: %w", err)
	}

	s.scheduleTimeline(incident.ID)
	return incident, nil
}

// assign подбирает экипаж среди свободных нужного типа, а при их отсутствии
// передаёт маршрутизации весь справочник для запасных уровней
func (s *incidentService) assign(ctx context.Context, t models.EmergencyType, location models.Location, now time.Time) (*models.AssignedResponder, error) {
	pool, err := s.responders.FindAvailableByType(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("could not find available responders: %w", err)
	}
	if len(pool) == 0 {
		if pool, err = s.responders.List(ctx); err != nil {
			return nil, fmt.Errorf("could not list responders: %w", err)
		}
	}
	return routing.Assign(t, location, pool, now)
}

// GetIncident получает инцидент по номеру
func (s *incidentService) GetIncident(ctx context.Context, id string) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})
	log.Debug("Fetching incident by ID")

	incident, err := s.incidents.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident in repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	return incident, nil
}

// ListIncidents возвращает отфильтрованные инциденты, сначала новые, и общую статистику
func (s *incidentService) ListIncidents(ctx context.Context, filter models.IncidentFilter) (*models.IncidentList, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultListLimit
	}
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListIncidents",
		"status":  filter.Status,
		"type":    filter.Type,
		"limit":   filter.Limit,
	})
	log.Debug("Listing incidents")

	all, err := s.incidents.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	result := &models.IncidentList{Incidents: make([]*models.Incident, 0)}
	for _, incident := range all {
		result.Stats.Total++
		if incident.Status.IsActive() {
			result.Stats.Active++
		}
		if incident.Severity == models.SeverityCritical {
			result.Stats.Critical++
		}
		if incident.Status == models.StatusResolved {
			result.Stats.Resolved++
		}

		if filter.Status != "" && incident.Status != filter.Status {
			continue
		}
		if filter.Type != "" && incident.Type != filter.Type {
			continue
		}
		if len(result.Incidents) < filter.Limit {
			result.Incidents = append(result.Incidents, incident)
		}
	}
	return result, nil
}

// UpdateStatus выставляет статус вручную. Порядок статусов не проверяется.
func (s *incidentService) UpdateStatus(ctx context.Context, id string, status models.Status, message string) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateStatus",
		"incident_id": id,
		"status":      status,
	})
	log.Info("Attempting to update incident status")

	if status == "" {
		return nil, fmt.Errorf("service: status is required: %w", models.ErrValidation)
	}
	if message == "" {
		message = fmt.Sprintf("Status updated to %s", status)
	}

	incident, cancelled, err := s.transition(ctx, id, status, message, true)
	if err != nil {
		log.WithError(err).Warn("Failed to update incident status")
		return nil, fmt.Errorf("service: could not update status: %w", err)
	}
	if cancelled > 0 {
		log.WithField("cancelled", cancelled).Info("Pending status transitions cancelled")
	}

	s.emit(ctx, models.EventStatusChanged, auditStatusChanged, incident, message)
	log.Info("Incident status updated successfully")
	return incident, nil
}

// transition добавляет запись в ленту и освобождает экипаж при закрытии.
// Ручное закрытие при CancelPendingOnResolve в той же критической секции
// останавливает ленту: отменяет таймеры и помечает инцидент, чтобы уже
// сработавший таймер не дописал статус после resolved.
func (s *incidentService) transition(ctx context.Context, id string, status models.Status, message string, manual bool) (*models.Incident, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, stopped := s.halted[id]; stopped && !manual {
		return nil, 0, errTimelineHalted
	}

	incident, err := s.incidents.GetByID(ctx, id)
	if err != nil {
		return nil, 0, err
	}

	incident.AppendUpdate(status, s.now(), message)
	if err := s.incidents.Update(ctx, incident); err != nil {
		return nil, 0, err
	}

	if status == models.StatusResolved {
		s.releaseResponder(ctx, incident.AssignedResponder)
	}

	cancelled := 0
	if manual && status == models.StatusResolved && s.cfg.CancelPendingOnResolve {
		s.halted[id] = struct{}{}
		cancelled = s.scheduler.Cancel(id)
	}
	return incident, cancelled, nil
}

func (s *incidentService) releaseResponder(ctx context.Context, responder *models.AssignedResponder) {
	if responder == nil {
		return
	}
	s.restoreAvailability(ctx, &responder.Responder)
}

// restoreAvailability возвращает экипаж в свободные
func (s *incidentService) restoreAvailability(ctx context.Context, responder *models.Responder) {
	found, err := s.responders.SetAvailability(ctx, responder.ID, true)
	if err != nil || !found {
		s.logger.WithError(err).WithField("responder_id", responder.ID).Warn("Failed to release responder")
	}
}

// GetLiveUpdates возвращает ленту статусов инцидента
func (s *incidentService) GetLiveUpdates(ctx context.Context, id string) (*models.LiveUpdates, error) {
	incident, err := s.GetIncident(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.LiveUpdates{
		Updates:       incident.Updates,
		CurrentStatus: incident.Status,
	}, nil
}

// ListResponders возвращает экипажи по фильтру и статистику по всему справочнику
func (s *incidentService) ListResponders(ctx context.Context, filter models.ResponderFilter) (*models.ResponderList, error) {
	all, err := s.responders.List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list responders")
		return nil, fmt.Errorf("service: could not list responders: %w", err)
	}

	result := &models.ResponderList{Responders: make([]*models.Responder, 0, len(all))}
	for _, r := range all {
		result.Stats.Total++
		if r.Available {
			result.Stats.Available++
		}
		switch r.Type {
		case models.TypeMedical:
			result.Stats.Medical++
		case models.TypePolice:
			result.Stats.Police++
		case models.TypeFire:
			result.Stats.Fire++
		}

		if filter.Type != "" && r.Type != filter.Type {
			continue
		}
		if filter.Available != nil && r.Available != *filter.Available {
			continue
		}
		result.Responders = append(result.Responders, r)
	}
	return result, nil
}

// ReassignIncident заново подбирает экипаж указанного типа
func (s *incidentService) ReassignIncident(ctx context.Context, id string, responderType models.EmergencyType) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "ReassignIncident",
		"incident_id": id,
		"type":        responderType,
	})
	log.Info("Attempting to reassign incident")

	if responderType == "" {
		return nil, fmt.Errorf("service: responder type is required: %w", models.ErrValidation)
	}

	incident, err := s.reassignLocked(ctx, id, responderType)
	if err != nil {
		log.WithError(err).Warn("Failed to reassign incident")
		return nil, fmt.Errorf("service: could not reassign incident: %w", err)
	}

	s.emit(ctx, models.EventIncidentReassigned, auditReassigned, incident,
		fmt.Sprintf("Reassigned to %s", incident.AssignedResponder.ID))
	log.WithField("responder_id", incident.AssignedResponder.ID).Info("Incident reassigned successfully")
	return incident, nil
}

func (s *incidentService) reassignLocked(ctx context.Context, id string, responderType models.EmergencyType) (*models.Incident, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	incident, err := s.incidents.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	assigned, err := s.assign(ctx, responderType, incident.Location, s.now())
	if err != nil {
		return nil, err
	}

	previous := incident.AssignedResponder
	incident.AssignedResponder = assigned
	incident.Type = responderType
	if err := s.incidents.Update(ctx, incident); err != nil {
		return nil, err
	}

	// У закрытого инцидента прежний экипаж уже свободен, а новый не нужно занимать
	if incident.Status.IsActive() {
		if _, err := s.responders.SetAvailability(ctx, assigned.ID, false); err != nil {
			return nil, err
		}
		if previous != nil && previous.ID != assigned.ID {
			s.releaseResponder(ctx, previous)
		}
	}
	return incident, nil
}

// SyncOfflineReports обрабатывает пакет офлайн-отчётов. Ошибка одного отчёта
// не прерывает обработку остальных.
func (s *incidentService) SyncOfflineReports(ctx context.Context, reports []CreateIncidentInput) (*SyncResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "SyncOfflineReports",
		"count":   len(reports),
	})
	log.Info("Syncing offline reports")

	result := &SyncResult{
		Results: make([]SyncedReport, 0, len(reports)),
		Errors:  make([]FailedReport, 0),
	}
	for _, report := range reports {
		synced, err := s.syncOne(ctx, report)
		if err != nil {
			result.Errors = append(result.Errors, FailedReport{
				OfflineID: report.OfflineID,
				Error:     err.Error(),
			})
			continue
		}
		result.Results = append(result.Results, synced)
	}
	result.Synced = len(result.Results)
	result.Failed = len(result.Errors)

	log.WithFields(logrus.Fields{
		"synced": result.Synced,
		"failed": result.Failed,
	}).Info("Offline reports synced")
	return result, nil
}

// syncOne создаёт инцидент по офлайн-отчёту, если offline_id ещё не встречался
func (s *incidentService) syncOne(ctx context.Context, report CreateIncidentInput) (SyncedReport, error) {
	s.offlineMu.Lock()
	defer s.offlineMu.Unlock()

	if dispatchID, ok := s.seenOffline(report.OfflineID); ok {
		return SyncedReport{OfflineID: report.OfflineID, DispatchID: dispatchID, Duplicate: true}, nil
	}

	incident, err := s.CreateIncident(ctx, report)
	if err != nil {
		return SyncedReport{}, err
	}
	s.rememberOffline(report.OfflineID, incident.ID)
	return SyncedReport{OfflineID: report.OfflineID, DispatchID: incident.ID}, nil
}

func (s *incidentService) seenOffline(offlineID string) (string, bool) {
	if s.offlineSeen == nil || offlineID == "" {
		return "", false
	}
	item := s.offlineSeen.Get(offlineID)
	if item == nil {
		return "", false
	}
	return item.Value(), true
}

func (s *incidentService) rememberOffline(offlineID, dispatchID string) {
	if s.offlineSeen == nil || offlineID == "" {
		return
	}
	s.offlineSeen.Set(offlineID, dispatchID, ttlcache.DefaultTTL)
}

// Classify возвращает тип происшествия и рекомендуемую тяжесть без создания инцидента
func (s *incidentService) Classify(_ context.Context, description string) *Classification {
	res := detection.Classify(description)
	return &Classification{
		Result:            res,
		SuggestedSeverity: detection.EstimateSeverity(description, res.Type),
	}
}

// emit публикует событие и пишет журнал. Ошибки только логируются.
func (s *incidentService) emit(ctx context.Context, kind, action string, incident *models.Incident, message string) {
	log := s.logger.WithFields(logrus.Fields{
		"incident_id": incident.ID,
		"event":       kind,
	})

	if err := s.publisher.Publish(ctx, models.NewIncidentEvent(kind, incident, message)); err != nil {
		log.WithError(err).Warn("Failed to publish incident event")
	}

	entry := &models.AuditEntry{
		IncidentID: incident.ID,
		Action:     action,
		Status:     incident.Status,
		Message:    message,
	}
	if incident.AssignedResponder != nil {
		entry.ResponderID = incident.AssignedResponder.ID
	}
	if err := s.journal.Record(ctx, entry); err != nil {
		log.WithError(err).Warn("Failed to record audit entry")
	}
}
