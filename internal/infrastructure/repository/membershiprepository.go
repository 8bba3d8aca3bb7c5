package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arbor-inc/arbor/internal/domain/tenant"
	"github.com/arbor-inc/arbor/internal/infrastructure/persistence/mappers"
	"github.com/arbor-inc/arbor/internal/infrastructure/persistence/models"
	"github.com/arbor-inc/arbor/internal/shared/db"
	"github.com/arbor-inc/arbor/internal/shared/logger"
)

// MembershipRepository implements the membership repository interface
type MembershipRepository struct {
	db     *gorm.DB
	mapper mappers.MembershipMapper
	logger logger.Interface
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(gdb *gorm.DB, logger logger.Interface) tenant.MembershipRepository {
	return &MembershipRepository{
		db:     gdb,
		mapper: mappers.NewMembershipMapper(),
		logger: logger,
	}
}

func (r *MembershipRepository) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).WithContext(ctx)
}

// Create creates a new membership
func (r *MembershipRepository) Create(ctx context.Context, membership *tenant.Membership) error {
	model := r.mapper.ToModel(membership)

	if err := r.conn(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create membership", "error", err)
		return fmt.Errorf("failed to create membership: %w", err)
	}

	r.logger.Infow("membership created successfully",
		"id", model.ID, "user_id", model.UserID, "tenant_id", model.TenantID)
	return nil
}

// GetByID retrieves a membership by ID
func (r *MembershipRepository) GetByID(ctx context.Context, id uuid.UUID) (*tenant.Membership, error) {
	var model models.UserTenantModel

	if err := r.conn(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tenant.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// Delete removes a membership by ID
func (r *MembershipRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.conn(ctx).Where("id = ?", id).Delete(&models.UserTenantModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete membership", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete membership: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return tenant.ErrMembershipNotFound
	}

	return nil
}

// ListByUserID returns all memberships for a user
func (r *MembershipRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*tenant.Membership, error) {
	var membershipModels []*models.UserTenantModel
	if err := r.conn(ctx).Where("user_id = ?", userID).Find(&membershipModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	return r.mapper.ToEntities(membershipModels)
}

// ListByTenantID returns all memberships within a tenant
func (r *MembershipRepository) ListByTenantID(ctx context.Context, tenantID uuid.UUID) ([]*tenant.Membership, error) {
	var membershipModels []*models.UserTenantModel
	if err := r.conn(ctx).Where("tenant_id = ?", tenantID).Find(&membershipModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	return r.mapper.ToEntities(membershipModels)
}

// Exists reports whether the user already belongs to the tenant
func (r *MembershipRepository) Exists(ctx context.Context, userID, tenantID uuid.UUID) (bool, error) {
	var count int64
	if err := r.conn(ctx).Model(&models.UserTenantModel{}).
		Where("user_id = ? AND tenant_id = ?", userID, tenantID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check membership existence: %w", err)
	}
	return count > 0, nil
}
