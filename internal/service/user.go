package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/suwubh/saas-notes-app/internal/auth"
	"github.com/suwubh/saas-notes-app/internal/database/models"
	apperrors "github.com/suwubh/saas-notes-app/internal/errors"
	"github.com/suwubh/saas-notes-app/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// UserService handles user management within a tenant
type UserService struct {
	userRepo        repository.UserRepositoryInterface
	tokens          *auth.AuthService
	validator       *validator.Validate
	defaultPassword string
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepositoryInterface, tokens *auth.AuthService, validator *validator.Validate, defaultPassword string) *UserService {
	return &UserService{
		userRepo:        userRepo,
		tokens:          tokens,
		validator:       validator,
		defaultPassword: defaultPassword,
	}
}

// InviteRequest represents the request to invite a user into the caller's tenant
type InviteRequest struct {
	Email string      `json:"email" validate:"required,email,max=255"`
	Role  models.Role `json:"role"`
}

// Invite creates a user in the admin caller's tenant with a default
// password. The invitee always lands in the caller's own tenant.
func (s *UserService) Invite(identity auth.Identity, req *InviteRequest) (*InvitedUser, error) {
	if !identity.IsAdmin() {
		return nil, apperrors.ErrAdminRequired
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("email", "Email is required")
	}

	role := req.Role
	if role == "" {
		role = models.RoleMember
	}
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("role", "Role must be admin or member")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.userRepo.GetByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	hash, err := s.tokens.HashPassword(s.defaultPassword)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		TenantID:     identity.TenantID,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &InvitedUser{ID: user.ID, Email: user.Email, Role: user.Role}, nil
}
