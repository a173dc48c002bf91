package repository

import (
	"github.com/suwubh/saas-notes-app/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TenantRepositoryInterface defines the interface for tenant repository operations
type TenantRepositoryInterface interface {
	Create(tenant *models.Tenant) error
	GetByID(id uuid.UUID) (*models.Tenant, error)
	GetBySlug(slug string) (*models.Tenant, error)
	UpdateSubscriptionPlan(id uuid.UUID, plan models.SubscriptionPlan) (*models.Tenant, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// NoteRepositoryInterface defines the interface for note repository operations.
// The authorID parameter narrows the scope to a single author; passing nil
// scopes by tenant only (the admin view).
type NoteRepositoryInterface interface {
	Create(note *models.Note) error
	ListScoped(tenantID uuid.UUID, authorID *uuid.UUID) ([]models.Note, error)
	GetScoped(id, tenantID uuid.UUID, authorID *uuid.UUID) (*models.Note, error)
	UpdateScoped(id, tenantID uuid.UUID, authorID *uuid.UUID, title, content string) (*models.Note, error)
	DeleteScoped(id, tenantID uuid.UUID, authorID *uuid.UUID) (*models.Note, error)
	CountByTenant(tenantID uuid.UUID) (int64, error)
}
