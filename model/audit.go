package model

import "time"

type AuditEntry struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time `gorm:"index" json:"createdAt"`
	Actor      string    `gorm:"size:64;index" json:"actor"`
	Action     string    `gorm:"size:16" json:"action"`
	Resource   string    `gorm:"size:32;index" json:"resource"`
	ResourceID string    `gorm:"size:64" json:"resourceId"`
	Succeeded  bool      `json:"succeeded"`
	Message    string    `gorm:"size:512" json:"message"`
}
