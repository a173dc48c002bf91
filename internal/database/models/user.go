package models

import (
	"github.com/google/uuid"
)

// User represents a user belonging to exactly one tenant
type User struct {
	BaseModel
	TenantID     uuid.UUID `json:"tenant_id" gorm:"type:uuid;not null;index"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string    `json:"-" gorm:"not null;size:255"`
	Role         Role      `json:"role" gorm:"type:varchar(20);not null;default:'member'"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
