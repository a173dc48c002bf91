package service

import (
	"errors"
	"fmt"

	"github.com/suwubh/saas-notes-app/internal/auth"
	"github.com/suwubh/saas-notes-app/internal/database/models"
	apperrors "github.com/suwubh/saas-notes-app/internal/errors"
	"github.com/suwubh/saas-notes-app/internal/repository"

	"gorm.io/gorm"
)

// TenantService handles subscription plan transitions and usage stats.
// The only plan transition in the system is free to pro; pro is terminal.
type TenantService struct {
	tenantRepo repository.TenantRepositoryInterface
	noteRepo   repository.NoteRepositoryInterface
}

// NewTenantService creates a new tenant service
func NewTenantService(tenantRepo repository.TenantRepositoryInterface, noteRepo repository.NoteRepositoryInterface) *TenantService {
	return &TenantService{
		tenantRepo: tenantRepo,
		noteRepo:   noteRepo,
	}
}

// resolveOwnTenant looks up the slug and verifies it names the caller's own
// tenant. The explicit cross-check is the multi-tenancy guarantee: a caller
// authenticated under tenant A must never act on tenant B.
func (s *TenantService) resolveOwnTenant(identity auth.Identity, slug string, mismatch error) (*models.Tenant, error) {
	tenant, err := s.tenantRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	if tenant.ID != identity.TenantID {
		return nil, mismatch
	}

	return tenant, nil
}

// Upgrade moves the tenant from the free to the pro plan. Admin only, own
// tenant only, and rejected with a conflict when already pro.
func (s *TenantService) Upgrade(identity auth.Identity, slug string) (*TenantInfo, error) {
	if !identity.IsAdmin() {
		return nil, apperrors.ErrAdminRequired
	}

	tenant, err := s.resolveOwnTenant(identity, slug, apperrors.ErrWrongTenant)
	if err != nil {
		return nil, err
	}

	if tenant.SubscriptionPlan == models.PlanPro {
		return nil, apperrors.ErrTenantAlreadyPro
	}

	updated, err := s.tenantRepo.UpdateSubscriptionPlan(tenant.ID, models.PlanPro)
	if err != nil {
		return nil, fmt.Errorf("failed to upgrade tenant: %w", err)
	}

	count, err := s.noteRepo.CountByTenant(updated.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count notes: %w", err)
	}

	info := tenantInfo(updated, count)
	return &info, nil
}

// Stats returns the usage summary for the caller's own tenant. Admin only.
func (s *TenantService) Stats(identity auth.Identity, slug string) (*TenantStats, error) {
	if !identity.IsAdmin() {
		return nil, apperrors.ErrAdminRequired
	}

	tenant, err := s.resolveOwnTenant(identity, slug, apperrors.ErrTenantMismatch)
	if err != nil {
		return nil, err
	}

	count, err := s.noteRepo.CountByTenant(tenant.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count notes: %w", err)
	}

	var limit interface{} = "unlimited"
	if tenant.SubscriptionPlan == models.PlanFree {
		limit = models.FreePlanNoteLimit
	}

	return &TenantStats{
		Tenant: TenantStatsInfo{
			Name:             tenant.Name,
			Slug:             tenant.Slug,
			SubscriptionPlan: tenant.SubscriptionPlan,
			CreatedAt:        tenant.CreatedAt,
		},
		NotesCount: count,
		NotesLimit: limit,
		CanUpgrade: tenant.SubscriptionPlan == models.PlanFree,
	}, nil
}
