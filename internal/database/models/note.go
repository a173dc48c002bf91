package models

import (
	"github.com/google/uuid"
)

// Note represents a note authored by a user within a tenant.
// A note is only ever visible inside its own tenant.
type Note struct {
	BaseModel
	TenantID uuid.UUID `json:"tenant_id" gorm:"type:uuid;not null;index"`
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	Title    string    `json:"title" gorm:"not null;size:255" validate:"required,min=1,max=255"`
	Content  string    `json:"content" gorm:"type:text;not null" validate:"required,min=1,max=10000"`
}

// TableName returns the table name for Note
func (Note) TableName() string {
	return "notes"
}
