package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-tools/advising-admin/internal/models"
)

func TestCreateAuditLogFillsDefaults(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAuditRepository(db)

	mock.ExpectExec("INSERT INTO audit_logs").WillReturnResult(sqlmock.NewResult(1, 1))

	entry := &models.AuditLog{Action: models.AuditActionExport, Resource: "students"}
	err := repo.CreateAuditLog(context.Background(), entry)
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRecentScopedToResource(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAuditRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_id", "action", "resource", "resource_id", "detail", "ip_address", "user_agent", "created_at"}).
		AddRow("a1", nil, models.AuditActionImport, "enrollments", nil, nil, "127.0.0.1", "test", now)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, action, resource, resource_id, detail, ip_address, user_agent, created_at FROM audit_logs WHERE resource = $1 ORDER BY created_at DESC LIMIT $2")).
		WithArgs("enrollments", 50).
		WillReturnRows(rows)

	logs, err := repo.ListRecent(context.Background(), "enrollments", 50)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, models.AuditActionImport, logs[0].Action)
	assert.NoError(t, mock.ExpectationsWereMet())
}
