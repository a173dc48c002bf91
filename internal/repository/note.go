package repository

import (
	"github.com/suwubh/saas-notes-app/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NoteRepository handles database operations for notes. Every query is
// filtered by tenant id; an optional author id narrows to a single author.
type NoteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new note repository
func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// Create creates a new note
func (r *NoteRepository) Create(note *models.Note) error {
	return r.db.Create(note).Error
}

// scoped applies the tenant predicate, plus the author predicate when set.
func (r *NoteRepository) scoped(tenantID uuid.UUID, authorID *uuid.UUID) *gorm.DB {
	q := r.db.Where("tenant_id = ?", tenantID)
	if authorID != nil {
		q = q.Where("user_id = ?", *authorID)
	}
	return q
}

// ListScoped retrieves notes within the scope, newest first
func (r *NoteRepository) ListScoped(tenantID uuid.UUID, authorID *uuid.UUID) ([]models.Note, error) {
	var notes []models.Note
	err := r.scoped(tenantID, authorID).
		Order("created_at DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// GetScoped retrieves a single note matching the scope predicate
func (r *NoteRepository) GetScoped(id, tenantID uuid.UUID, authorID *uuid.UUID) (*models.Note, error) {
	var note models.Note
	err := r.scoped(tenantID, authorID).First(&note, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// UpdateScoped updates title and content with a single conditional statement.
// Returns gorm.ErrRecordNotFound when no row matches the scope, so a racing
// delete simply makes the update miss.
func (r *NoteRepository) UpdateScoped(id, tenantID uuid.UUID, authorID *uuid.UUID, title, content string) (*models.Note, error) {
	result := r.scoped(tenantID, authorID).
		Model(&models.Note{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":   title,
			"content": content,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetScoped(id, tenantID, authorID)
}

// DeleteScoped deletes a note with a single conditional statement and
// returns the deleted record.
func (r *NoteRepository) DeleteScoped(id, tenantID uuid.UUID, authorID *uuid.UUID) (*models.Note, error) {
	note, err := r.GetScoped(id, tenantID, authorID)
	if err != nil {
		return nil, err
	}

	result := r.scoped(tenantID, authorID).Where("id = ?", id).Delete(&models.Note{})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return note, nil
}

// CountByTenant counts all notes belonging to a tenant
func (r *NoteRepository) CountByTenant(tenantID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Note{}).Where("tenant_id = ?", tenantID).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
