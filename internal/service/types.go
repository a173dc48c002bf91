package service

import (
	"time"

	"github.com/suwubh/saas-notes-app/internal/database/models"

	"github.com/google/uuid"
)

// TenantInfo is the tenant as rendered in API responses. NotesLimit is nil
// on the pro plan, which serializes as JSON null.
type TenantInfo struct {
	ID               uuid.UUID               `json:"id"`
	Name             string                  `json:"name"`
	Slug             string                  `json:"slug"`
	SubscriptionPlan models.SubscriptionPlan `json:"subscription_plan"`
	NotesCount       int64                   `json:"notes_count"`
	NotesLimit       *int                    `json:"notes_limit"`
}

// UserResponse is the authenticated user with tenant context
type UserResponse struct {
	ID     uuid.UUID   `json:"id"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
	Tenant TenantInfo  `json:"tenant"`
}

// LoginResponse carries the bearer token and the user profile
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// NoteListResponse is the list view with tenant plan context
type NoteListResponse struct {
	Notes      []models.Note  `json:"notes"`
	Count      int            `json:"count"`
	TenantInfo NoteTenantInfo `json:"tenant_info"`
	Viewing    string         `json:"viewing"`
}

// NoteTenantInfo is the plan summary attached to note listings
type NoteTenantInfo struct {
	Name             string                  `json:"name"`
	SubscriptionPlan models.SubscriptionPlan `json:"subscription_plan"`
	NotesLimit       *int                    `json:"notes_limit"`
}

// DeletedNote is the summary of a removed note
type DeletedNote struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

// TenantStats is the admin-facing usage summary for a tenant
type TenantStats struct {
	Tenant     TenantStatsInfo `json:"tenant"`
	NotesCount int64           `json:"notes_count"`
	NotesLimit interface{}     `json:"notes_limit"`
	CanUpgrade bool            `json:"can_upgrade"`
}

// TenantStatsInfo identifies the tenant within a stats response
type TenantStatsInfo struct {
	Name             string                  `json:"name"`
	Slug             string                  `json:"slug"`
	SubscriptionPlan models.SubscriptionPlan `json:"subscription_plan"`
	CreatedAt        time.Time               `json:"created_at"`
}

// InvitedUser is the response for an admin invite
type InvitedUser struct {
	ID    uuid.UUID   `json:"id"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

func tenantInfo(tenant *models.Tenant, notesCount int64) TenantInfo {
	return TenantInfo{
		ID:               tenant.ID,
		Name:             tenant.Name,
		Slug:             tenant.Slug,
		SubscriptionPlan: tenant.SubscriptionPlan,
		NotesCount:       notesCount,
		NotesLimit:       tenant.SubscriptionPlan.NoteLimit(),
	}
}
