package service

import (
	"github.com/suwubh/saas-notes-app/internal/auth"
	"github.com/suwubh/saas-notes-app/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AuthServiceInterface defines the interface for signup/login/me flows
type AuthServiceInterface interface {
	Signup(req *SignupRequest) (*UserResponse, error)
	Login(req *LoginRequest) (*LoginResponse, error)
	Me(identity auth.Identity) (*UserResponse, error)
}

// NoteServiceInterface defines the interface for the note access policy
type NoteServiceInterface interface {
	List(identity auth.Identity) (*NoteListResponse, error)
	GetByID(identity auth.Identity, id uuid.UUID) (*models.Note, error)
	Create(identity auth.Identity, req *NoteRequest) (*models.Note, error)
	Update(identity auth.Identity, id uuid.UUID, req *NoteRequest) (*models.Note, error)
	Delete(identity auth.Identity, id uuid.UUID) (*DeletedNote, error)
}

// TenantServiceInterface defines the interface for tenant plan operations
type TenantServiceInterface interface {
	Upgrade(identity auth.Identity, slug string) (*TenantInfo, error)
	Stats(identity auth.Identity, slug string) (*TenantStats, error)
}

// UserServiceInterface defines the interface for user management
type UserServiceInterface interface {
	Invite(identity auth.Identity, req *InviteRequest) (*InvitedUser, error)
}
