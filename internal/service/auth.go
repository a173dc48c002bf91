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

// AuthService handles signup, login and the current-user lookup
type AuthService struct {
	userRepo       repository.UserRepositoryInterface
	tenantRepo     repository.TenantRepositoryInterface
	noteRepo       repository.NoteRepositoryInterface
	tokens         *auth.AuthService
	validator      *validator.Validate
	allowedTenants []string
}

// NewAuthService creates a new auth flow service
func NewAuthService(
	userRepo repository.UserRepositoryInterface,
	tenantRepo repository.TenantRepositoryInterface,
	noteRepo repository.NoteRepositoryInterface,
	tokens *auth.AuthService,
	validator *validator.Validate,
	allowedTenants []string,
) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		tenantRepo:     tenantRepo,
		noteRepo:       noteRepo,
		tokens:         tokens,
		validator:      validator,
		allowedTenants: allowedTenants,
	}
}

// SignupRequest represents the request to register a user
type SignupRequest struct {
	Email      string `json:"email" validate:"required,email,max=255"`
	Password   string `json:"password" validate:"required,min=6"`
	TenantSlug string `json:"tenantSlug" validate:"required"`
}

// LoginRequest represents the request to authenticate a user
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (s *AuthService) tenantAllowed(slug string) bool {
	for _, allowed := range s.allowedTenants {
		if allowed == slug {
			return true
		}
	}
	return false
}

func (s *AuthService) userResponse(user *models.User, tenant *models.Tenant) (*UserResponse, error) {
	count, err := s.noteRepo.CountByTenant(tenant.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count notes: %w", err)
	}
	return &UserResponse{
		ID:     user.ID,
		Email:  user.Email,
		Role:   user.Role,
		Tenant: tenantInfo(tenant, count),
	}, nil
}

// Signup registers a new member in one of the allow-listed tenants
func (s *AuthService) Signup(req *SignupRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", "Email, password and tenantSlug are required")
	}

	if !s.tenantAllowed(req.TenantSlug) {
		return nil, apperrors.NewValidationError("tenantSlug", "Invalid tenant")
	}

	tenant, err := s.tenantRepo.GetBySlug(req.TenantSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewValidationError("tenantSlug", "Invalid tenant")
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.userRepo.GetByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	hash, err := s.tokens.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		TenantID:     tenant.ID,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleMember,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.userResponse(user, tenant)
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password produce the same error.
func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", "Email and password are required")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !s.tokens.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	tenant, err := s.tenantRepo.GetByID(user.TenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAuthenticationError("Account tenant not found")
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	token, err := s.tokens.GenerateJWT(auth.Identity{
		UserID:   user.ID,
		TenantID: user.TenantID,
		Email:    user.Email,
		Role:     user.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	userResp, err := s.userResponse(user, tenant)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{Token: token, User: *userResp}, nil
}

// Me returns the current user with tenant usage context
func (s *AuthService) Me(identity auth.Identity) (*UserResponse, error) {
	user, err := s.userRepo.GetByID(identity.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	tenant, err := s.tenantRepo.GetByID(identity.TenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return s.userResponse(user, tenant)
}
