package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/dispatch_system/internal/models"
	"github.com/shenikar/dispatch_system/internal/service"
)

// AuditRepository пишет журнал диспетчерских действий в PostgreSQL.
// Журнал только пополняется и не читается обратно при старте.
type AuditRepository struct {
	db *pgxpool.Pool
}

func NewAuditRepository(db *pgxpool.Pool) service.AuditJournal {
	return &AuditRepository{db: db}
}

// Record сохраняет запись журнала в бд
func (r *AuditRepository) Record(ctx context.Context, entry *models.AuditEntry) error {
	query := `
		INSERT INTO dispatch_audit (incident_id, action, status, responder_id, message)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, recorded_at;
	`
	err := r.db.QueryRow(ctx, query,
		entry.IncidentID,
		entry.Action,
		string(entry.Status),
		entry.ResponderID,
		entry.Message,
	).Scan(&entry.ID, &entry.RecordedAt)
	if err != nil {
		return fmt.Errorf("failed to save audit entry: %w", err)
	}
	return nil
}

type nopAuditRepository struct{}

// NewNopAuditRepository возвращает журнал-заглушку для запуска без DATABASE_URL
func NewNopAuditRepository() service.AuditJournal {
	return nopAuditRepository{}
}

func (nopAuditRepository) Record(context.Context, *models.AuditEntry) error {
	return nil
}
