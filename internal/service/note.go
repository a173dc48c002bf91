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
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NoteService enforces the note access policy: tenant-scoped visibility,
// author scoping for members, and the free-plan note quota.
type NoteService struct {
	noteRepo   repository.NoteRepositoryInterface
	tenantRepo repository.TenantRepositoryInterface
	validator  *validator.Validate
}

// NewNoteService creates a new note service
func NewNoteService(noteRepo repository.NoteRepositoryInterface, tenantRepo repository.TenantRepositoryInterface, validator *validator.Validate) *NoteService {
	return &NoteService{
		noteRepo:   noteRepo,
		tenantRepo: tenantRepo,
		validator:  validator,
	}
}

// NoteRequest represents the payload to create or update a note
type NoteRequest struct {
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content" validate:"required,max=10000"`
}

// authorScope returns the author filter for the identity: admins see the
// whole tenant, members only their own notes.
func authorScope(identity auth.Identity) *uuid.UUID {
	if identity.IsAdmin() {
		return nil
	}
	userID := identity.UserID
	return &userID
}

// validateNote checks title and content and returns the trimmed values
func (s *NoteService) validateNote(req *NoteRequest) (title, content string, err error) {
	if err := s.validator.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			field := verrs[0]
			if field.Tag() == "required" {
				return "", "", apperrors.NewValidationError("", "Title and content are required")
			}
			if field.Field() == "Title" {
				return "", "", apperrors.NewValidationError("title", "Title must be less than 255 characters")
			}
			return "", "", apperrors.NewValidationError("content", "Content must be less than 10,000 characters")
		}
		return "", "", fmt.Errorf("validation failed: %w", err)
	}

	title = strings.TrimSpace(req.Title)
	if title == "" {
		return "", "", apperrors.NewValidationError("title", "Title cannot be empty")
	}
	content = strings.TrimSpace(req.Content)
	if content == "" {
		return "", "", apperrors.NewValidationError("content", "Content cannot be empty")
	}

	return title, content, nil
}

// List returns the notes visible to the identity, newest first
func (s *NoteService) List(identity auth.Identity) (*NoteListResponse, error) {
	tenant, err := s.tenantRepo.GetByID(identity.TenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	notes, err := s.noteRepo.ListScoped(identity.TenantID, authorScope(identity))
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	viewing := "Your notes only"
	if identity.IsAdmin() {
		viewing = "All tenant notes"
	}

	return &NoteListResponse{
		Notes: notes,
		Count: len(notes),
		TenantInfo: NoteTenantInfo{
			Name:             tenant.Name,
			SubscriptionPlan: tenant.SubscriptionPlan,
			NotesLimit:       tenant.SubscriptionPlan.NoteLimit(),
		},
		Viewing: viewing,
	}, nil
}

// GetByID returns a single note within the identity's scope. A note outside
// the scope yields not-found, never forbidden, so callers cannot learn that
// a foreign note exists.
func (s *NoteService) GetByID(identity auth.Identity, id uuid.UUID) (*models.Note, error) {
	note, err := s.noteRepo.GetScoped(id, identity.TenantID, authorScope(identity))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	return note, nil
}

// Create validates the payload, enforces the free-plan quota and persists a
// note owned by the identity.
//
// The count-then-insert is not transactional: two concurrent creations at
// the limit can both pass the check. Accepted behavior, see DESIGN.md.
func (s *NoteService) Create(identity auth.Identity, req *NoteRequest) (*models.Note, error) {
	title, content, err := s.validateNote(req)
	if err != nil {
		return nil, err
	}

	tenant, err := s.tenantRepo.GetByID(identity.TenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	if tenant.SubscriptionPlan == models.PlanFree {
		count, err := s.noteRepo.CountByTenant(identity.TenantID)
		if err != nil {
			return nil, fmt.Errorf("failed to count notes: %w", err)
		}
		if count >= models.FreePlanNoteLimit {
			return nil, apperrors.ErrNoteQuotaExceeded
		}
	}

	note := &models.Note{
		TenantID: identity.TenantID,
		UserID:   identity.UserID,
		Title:    title,
		Content:  content,
	}
	if err := s.noteRepo.Create(note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return note, nil
}

// Update rewrites title and content of a note within the identity's scope.
// The quota is not re-checked: updates never change the note count.
func (s *NoteService) Update(identity auth.Identity, id uuid.UUID, req *NoteRequest) (*models.Note, error) {
	title, content, err := s.validateNote(req)
	if err != nil {
		return nil, err
	}

	note, err := s.noteRepo.UpdateScoped(id, identity.TenantID, authorScope(identity), title, content)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	return note, nil
}

// Delete removes a note within the identity's scope and returns its summary
func (s *NoteService) Delete(identity auth.Identity, id uuid.UUID) (*DeletedNote, error) {
	note, err := s.noteRepo.DeleteScoped(id, identity.TenantID, authorScope(identity))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to delete note: %w", err)
	}
	return &DeletedNote{ID: note.ID, Title: note.Title}, nil
}
