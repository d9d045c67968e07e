package models

import (
	"time"

	"gorm.io/datatypes"
)

// SourceState tracks the last fetch against an upstream source, one row per
// source scope (catalog, trending).
type SourceState struct {
	Scope         string         `gorm:"primaryKey;type:text" json:"scope"`
	LastAttemptAt *time.Time     `gorm:"type:timestamptz" json:"last_attempt_at"`
	LastSuccessAt *time.Time     `gorm:"type:timestamptz" json:"last_success_at"`
	LastError     *string        `gorm:"type:text" json:"last_error"`
	StatsJSON     datatypes.JSON `gorm:"type:jsonb" json:"stats"`
}

func (SourceState) TableName() string {
	return "source_state"
}
