package helper

import (
	"context"
	"testing"

	"cinema_console/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// dryRunDB builds postgres statements without a server.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=127.0.0.1 user=console dbname=console sslmode=disable"}),
		&gorm.Config{DryRun: true, DisableAutomaticPing: true, SkipDefaultTransaction: true})
	require.NoError(t, err)
	return db
}

func TestGormAuditRecord(t *testing.T) {
	db := dryRunDB(t)
	var sql string
	var saved *model.AuditEntry
	require.NoError(t, db.Callback().Create().After("gorm:create").Register("test:capture", func(tx *gorm.DB) {
		sql = tx.Statement.SQL.String()
		saved, _ = tx.Statement.Dest.(*model.AuditEntry)
	}))

	NewGormAudit(db, zerolog.Nop()).Record(context.Background(), model.AuditEntry{
		Actor: "E005", Action: ActionDelete, Resource: "room", ResourceID: "2", Message: "Room has schedules",
	})

	assert.Contains(t, sql, `INSERT INTO "audit_entries"`)
	require.NotNil(t, saved)
	assert.Equal(t, "E005", saved.Actor)
	assert.False(t, saved.Succeeded)
	assert.False(t, saved.CreatedAt.IsZero())
}

func TestGormAuditRecentNewestFirst(t *testing.T) {
	db := dryRunDB(t)
	var sql string
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:capture", func(tx *gorm.DB) {
		sql = tx.Statement.SQL.String()
	}))

	audit := NewGormAudit(db, zerolog.Nop())
	entries, err := audit.Recent(context.Background(), 50)

	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.True(t, audit.Enabled())
	assert.Contains(t, sql, `FROM "audit_entries"`)
	assert.Contains(t, sql, "ORDER BY created_at desc")
	assert.Contains(t, sql, "LIMIT")
}

func TestNopAudit(t *testing.T) {
	var audit AuditTrail = NopAudit{}
	audit.Record(context.Background(), model.AuditEntry{Actor: "E005"})
	entries, err := audit.Recent(context.Background(), 50)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.False(t, audit.Enabled())
}
