package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/campus-tools/advising-admin/internal/models"
)

// AuditRepository stores the gateway's audit trail of operator actions.
type AuditRepository struct {
	db *sqlx.DB
}

// NewAuditRepository creates a new instance of AuditRepository.
func NewAuditRepository(db *sqlx.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// CreateAuditLog stores an audit log entry.
func (r *AuditRepository) CreateAuditLog(ctx context.Context, log *models.AuditLog) error {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO audit_logs (id, user_id, action, resource, resource_id, detail, ip_address, user_agent, created_at) VALUES (:id, :user_id, :action, :resource, :resource_id, :detail, :ip_address, :user_agent, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, log); err != nil {
		return fmt.Errorf("create audit log: %w", err)
	}
	return nil
}

// ListRecent returns the newest audit entries, optionally scoped to one
// resource type.
func (r *AuditRepository) ListRecent(ctx context.Context, resource string, limit int) ([]models.AuditLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	var logs []models.AuditLog
	if resource != "" {
		const query = `SELECT id, user_id, action, resource, resource_id, detail, ip_address, user_agent, created_at FROM audit_logs WHERE resource = $1 ORDER BY created_at DESC LIMIT $2`
		if err := r.db.SelectContext(ctx, &logs, query, resource, limit); err != nil {
			return nil, fmt.Errorf("list audit logs: %w", err)
		}
		return logs, nil
	}

	const query = `SELECT id, user_id, action, resource, resource_id, detail, ip_address, user_agent, created_at FROM audit_logs ORDER BY created_at DESC LIMIT $1`
	if err := r.db.SelectContext(ctx, &logs, query, limit); err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	return logs, nil
}
