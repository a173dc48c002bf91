package testutils

import (
	"fmt"
	"time"

	"github.com/suwubh/saas-notes-app/internal/database/models"

	"github.com/google/uuid"
)

// TenantFactory provides methods to create test Tenant data
type TenantFactory struct{}

// NewTenantFactory creates a new TenantFactory
func NewTenantFactory() *TenantFactory {
	return &TenantFactory{}
}

// Create creates a test Tenant with default values
func (f *TenantFactory) Create() *models.Tenant {
	return &models.Tenant{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:             "Acme",
		Slug:             "acme",
		SubscriptionPlan: models.PlanFree,
	}
}

// WithSlug sets a custom slug and matching name
func (f *TenantFactory) WithSlug(slug string) *models.Tenant {
	tenant := f.Create()
	tenant.Slug = slug
	tenant.Name = slug
	return tenant
}

// WithPlan sets a custom subscription plan
func (f *TenantFactory) WithPlan(plan models.SubscriptionPlan) *models.Tenant {
	tenant := f.Create()
	tenant.SubscriptionPlan = plan
	return tenant
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create(tenantID uuid.UUID, role models.Role) *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID:     tenantID,
		Email:        fmt.Sprintf("user-%s@test.local", id.String()[:8]),
		PasswordHash: "$2a$12$bogus.hash.for.tests.only",
		Role:         role,
	}
}

// NoteFactory provides methods to create test Note data
type NoteFactory struct{}

// NewNoteFactory creates a new NoteFactory
func NewNoteFactory() *NoteFactory {
	return &NoteFactory{}
}

// Create creates a test Note with default values
func (f *NoteFactory) Create(tenantID, userID uuid.UUID) *models.Note {
	return &models.Note{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID: tenantID,
		UserID:   userID,
		Title:    "Test Note",
		Content:  "Test note content",
	}
}

// FactorySet bundles all factories
type FactorySet struct {
	Tenant *TenantFactory
	User   *UserFactory
	Note   *NoteFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Tenant: NewTenantFactory(),
		User:   NewUserFactory(),
		Note:   NewNoteFactory(),
	}
}
