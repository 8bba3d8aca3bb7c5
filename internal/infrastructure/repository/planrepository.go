package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arbor-inc/arbor/internal/domain/plan"
	"github.com/arbor-inc/arbor/internal/infrastructure/persistence/mappers"
	"github.com/arbor-inc/arbor/internal/infrastructure/persistence/models"
	"github.com/arbor-inc/arbor/internal/shared/db"
	"github.com/arbor-inc/arbor/internal/shared/logger"
)

// PlanRepository implements the plan repository interface
type PlanRepository struct {
	db     *gorm.DB
	mapper mappers.PlanMapper
	logger logger.Interface
}

// NewPlanRepository creates a new plan repository
func NewPlanRepository(gdb *gorm.DB, logger logger.Interface) plan.Repository {
	return &PlanRepository{
		db:     gdb,
		mapper: mappers.NewPlanMapper(),
		logger: logger,
	}
}

func (r *PlanRepository) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).WithContext(ctx)
}

// Create creates a new plan
func (r *PlanRepository) Create(ctx context.Context, planEntity *plan.Plan) error {
	model := r.mapper.ToModel(planEntity)

	if err := r.conn(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create plan", "error", err)
		return fmt.Errorf("failed to create plan: %w", err)
	}

	r.logger.Infow("plan created successfully",
		"id", model.ID, "name", model.Name, "tenant_id", model.TenantID)
	return nil
}

// GetByID retrieves a plan by ID
func (r *PlanRepository) GetByID(ctx context.Context, id uuid.UUID) (*plan.Plan, error) {
	var model models.PlanModel

	if err := r.conn(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, plan.ErrPlanNotFound
		}
		r.logger.Errorw("failed to get plan by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// Update persists changes to an existing plan
func (r *PlanRepository) Update(ctx context.Context, planEntity *plan.Plan) error {
	model := r.mapper.ToModel(planEntity)

	result := r.conn(ctx).Model(&models.PlanModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":             model.Name,
			"price":            model.Price,
			"billing_duration": model.BillingDuration,
			"updated_at":       model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update plan", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return plan.ErrPlanNotFound
	}

	return nil
}

// Delete removes a plan by ID
func (r *PlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.conn(ctx).Where("id = ?", id).Delete(&models.PlanModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete plan", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return plan.ErrPlanNotFound
	}

	return nil
}

// ListByTenantID returns all plans belonging to a tenant
func (r *PlanRepository) ListByTenantID(ctx context.Context, tenantID uuid.UUID) ([]*plan.Plan, error) {
	var planModels []*models.PlanModel
	if err := r.conn(ctx).Where("tenant_id = ?", tenantID).
		Order("created_at DESC").Find(&planModels).Error; err != nil {
		r.logger.Errorw("failed to list plans", "tenant_id", tenantID, "error", err)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return r.mapper.ToEntities(planModels)
}

// ExistsByNameAndTenant reports whether the tenant already has a plan with the name
func (r *PlanRepository) ExistsByNameAndTenant(ctx context.Context, name string, tenantID uuid.UUID) (bool, error) {
	var count int64
	if err := r.conn(ctx).Model(&models.PlanModel{}).
		Where("name = ? AND tenant_id = ?", name, tenantID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check plan existence: %w", err)
	}
	return count > 0, nil
}
