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

// LimitPolicyRepository implements the limit policy repository interface
type LimitPolicyRepository struct {
	db     *gorm.DB
	mapper mappers.LimitPolicyMapper
	logger logger.Interface
}

// NewLimitPolicyRepository creates a new limit policy repository
func NewLimitPolicyRepository(gdb *gorm.DB, logger logger.Interface) plan.LimitPolicyRepository {
	return &LimitPolicyRepository{
		db:     gdb,
		mapper: mappers.NewLimitPolicyMapper(),
		logger: logger,
	}
}

func (r *LimitPolicyRepository) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).WithContext(ctx)
}

// Create creates a new limit policy
func (r *LimitPolicyRepository) Create(ctx context.Context, policy *plan.LimitPolicy) error {
	model := r.mapper.ToModel(policy)

	if err := r.conn(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create limit policy", "error", err)
		return fmt.Errorf("failed to create limit policy: %w", err)
	}

	r.logger.Infow("limit policy created successfully",
		"id", model.ID, "metric", model.Metric, "tenant_id", model.TenantID)
	return nil
}

// GetByID retrieves a limit policy by ID
func (r *LimitPolicyRepository) GetByID(ctx context.Context, id uuid.UUID) (*plan.LimitPolicy, error) {
	var model models.LimitPolicyModel

	if err := r.conn(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, plan.ErrLimitPolicyNotFound
		}
		return nil, fmt.Errorf("failed to get limit policy: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// Update persists changes to an existing limit policy
func (r *LimitPolicyRepository) Update(ctx context.Context, policy *plan.LimitPolicy) error {
	model := r.mapper.ToModel(policy)

	result := r.conn(ctx).Model(&models.LimitPolicyModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"limit":      model.Limit,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update limit policy", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update limit policy: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return plan.ErrLimitPolicyNotFound
	}

	return nil
}

// Delete removes a limit policy by ID
func (r *LimitPolicyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.conn(ctx).Where("id = ?", id).Delete(&models.LimitPolicyModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete limit policy", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete limit policy: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return plan.ErrLimitPolicyNotFound
	}

	return nil
}

// ListByTenantID returns all limit policies belonging to a tenant
func (r *LimitPolicyRepository) ListByTenantID(ctx context.Context, tenantID uuid.UUID) ([]*plan.LimitPolicy, error) {
	var policyModels []*models.LimitPolicyModel
	if err := r.conn(ctx).Where("tenant_id = ?", tenantID).
		Order("created_at DESC").Find(&policyModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list limit policies: %w", err)
	}
	return r.mapper.ToEntities(policyModels)
}

// ExistsByMetricAndTenant reports whether the tenant already limits the metric
func (r *LimitPolicyRepository) ExistsByMetricAndTenant(ctx context.Context, metric string, tenantID uuid.UUID) (bool, error) {
	var count int64
	if err := r.conn(ctx).Model(&models.LimitPolicyModel{}).
		Where("metric = ? AND tenant_id = ?", metric, tenantID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check limit policy existence: %w", err)
	}
	return count > 0, nil
}
