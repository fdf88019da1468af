package helper

import (
	"context"
	"fmt"

	"cinema_console/model"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const (
	ActionCreate  = "create"
	ActionUpdate  = "update"
	ActionDelete  = "delete"
	ActionToggle  = "toggle"
	ActionReserve = "reserve"
	ActionLogin   = "login"
)

// AuditTrail records console mutations.
type AuditTrail interface {
	Record(ctx context.Context, e model.AuditEntry)
	Recent(ctx context.Context, limit int) ([]model.AuditEntry, error)
	Enabled() bool
}

type GormAudit struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewGormAudit(db *gorm.DB, log zerolog.Logger) *GormAudit {
	return &GormAudit{db: db, log: log}
}

// Record never fails the caller; a write error is only logged.
func (a *GormAudit) Record(ctx context.Context, e model.AuditEntry) {
	if err := a.db.WithContext(ctx).Create(&e).Error; err != nil {
		a.log.Warn().Err(err).Str("resource", e.Resource).Str("action", e.Action).Msg("audit write failed")
	}
}

func (a *GormAudit) Recent(ctx context.Context, limit int) ([]model.AuditEntry, error) {
	var entries []model.AuditEntry
	if err := a.db.WithContext(ctx).Order("created_at desc").Limit(limit).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("recent audit entries: %w", err)
	}
	return entries, nil
}

func (a *GormAudit) Enabled() bool { return true }

type NopAudit struct{}

func (NopAudit) Record(context.Context, model.AuditEntry) {}

func (NopAudit) Recent(context.Context, int) ([]model.AuditEntry, error) { return nil, nil }

func (NopAudit) Enabled() bool { return false }
