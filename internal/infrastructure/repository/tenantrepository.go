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

// TenantRepository implements the tenant repository interface
type TenantRepository struct {
	db     *gorm.DB
	mapper mappers.TenantMapper
	logger logger.Interface
}

// NewTenantRepository creates a new tenant repository
func NewTenantRepository(gdb *gorm.DB, logger logger.Interface) tenant.Repository {
	return &TenantRepository{
		db:     gdb,
		mapper: mappers.NewTenantMapper(),
		logger: logger,
	}
}

func (r *TenantRepository) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).WithContext(ctx)
}

// Create creates a new tenant
func (r *TenantRepository) Create(ctx context.Context, tenantEntity *tenant.Tenant) error {
	model := r.mapper.ToModel(tenantEntity)

	if err := r.conn(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create tenant", "error", err)
		return fmt.Errorf("failed to create tenant: %w", err)
	}

	r.logger.Infow("tenant created successfully", "id", model.ID, "name", model.Name)
	return nil
}

// GetByID retrieves a tenant by ID
func (r *TenantRepository) GetByID(ctx context.Context, id uuid.UUID) (*tenant.Tenant, error) {
	var model models.TenantModel

	if err := r.conn(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tenant.ErrTenantNotFound
		}
		r.logger.Errorw("failed to get tenant by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetByName retrieves a tenant by its unique name
func (r *TenantRepository) GetByName(ctx context.Context, name string) (*tenant.Tenant, error) {
	var model models.TenantModel

	if err := r.conn(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tenant.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// Update persists changes to an existing tenant
func (r *TenantRepository) Update(ctx context.Context, tenantEntity *tenant.Tenant) error {
	model := r.mapper.ToModel(tenantEntity)

	result := r.conn(ctx).Model(&models.TenantModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update tenant", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update tenant: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return tenant.ErrTenantNotFound
	}

	return nil
}

// Delete removes a tenant by ID
func (r *TenantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.conn(ctx).Where("id = ?", id).Delete(&models.TenantModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete tenant", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete tenant: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return tenant.ErrTenantNotFound
	}

	return nil
}

// List returns tenants with pagination
func (r *TenantRepository) List(ctx context.Context, page, pageSize int) ([]*tenant.Tenant, int64, error) {
	query := r.conn(ctx).Model(&models.TenantModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tenants: %w", err)
	}

	if page > 0 && pageSize > 0 {
		query = query.Offset((page - 1) * pageSize).Limit(pageSize)
	}

	var tenantModels []*models.TenantModel
	if err := query.Order("created_at DESC").Find(&tenantModels).Error; err != nil {
		r.logger.Errorw("failed to list tenants", "error", err)
		return nil, 0, fmt.Errorf("failed to list tenants: %w", err)
	}

	entities, err := r.mapper.ToEntities(tenantModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}
