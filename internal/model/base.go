package model

import (
	"time"
)

// BaseModel handles the numeric primary key and standard audit trails.
// The admin panel addresses every record by its auto-increment id, so
// no UUID primary keys here.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Audit User Tracking
	CreatedBy string `json:"created_by,omitempty"`
	UpdatedBy string `json:"updated_by,omitempty"`
}

func (base *BaseModel) RecordID() uint {
	return base.ID
}

// Base exposes the embedded columns to generic handlers.
func (base *BaseModel) Base() *BaseModel {
	return base
}

// Touch stamps the audit columns before a save.
func (base *BaseModel) Touch(actor string, created bool) {
	if created {
		base.CreatedBy = actor
	}
	base.UpdatedBy = actor
}
