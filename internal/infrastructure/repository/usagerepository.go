package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arbor-inc/arbor/internal/domain/subscription"
	"github.com/arbor-inc/arbor/internal/infrastructure/persistence/mappers"
	"github.com/arbor-inc/arbor/internal/infrastructure/persistence/models"
	"github.com/arbor-inc/arbor/internal/shared/db"
	"github.com/arbor-inc/arbor/internal/shared/logger"
)

// UsageRepository implements the usage repository interface
type UsageRepository struct {
	db     *gorm.DB
	mapper mappers.UsageMapper
	logger logger.Interface
}

// NewUsageRepository creates a new usage repository
func NewUsageRepository(gdb *gorm.DB, logger logger.Interface) subscription.UsageRepository {
	return &UsageRepository{
		db:     gdb,
		mapper: mappers.NewUsageMapper(),
		logger: logger,
	}
}

func (r *UsageRepository) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).WithContext(ctx)
}

// Create records a usage measurement
func (r *UsageRepository) Create(ctx context.Context, usage *subscription.Usage) error {
	model := r.mapper.ToModel(usage)

	if err := r.conn(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create usage record", "error", err)
		return fmt.Errorf("failed to create usage record: %w", err)
	}

	r.logger.Infow("usage recorded successfully",
		"id", model.ID, "metric", model.Metric, "subscription_id", model.SubscriptionID)
	return nil
}

// GetByID retrieves a usage record by ID
func (r *UsageRepository) GetByID(ctx context.Context, id uuid.UUID) (*subscription.Usage, error) {
	var model models.UsageModel

	if err := r.conn(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, subscription.ErrUsageNotFound
		}
		return nil, fmt.Errorf("failed to get usage record: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// Delete removes a usage record by ID
func (r *UsageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.conn(ctx).Where("id = ?", id).Delete(&models.UsageModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete usage record", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete usage record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return subscription.ErrUsageNotFound
	}

	return nil
}

// ListBySubscriptionID returns all usage records for a subscription
func (r *UsageRepository) ListBySubscriptionID(ctx context.Context, subscriptionID uuid.UUID) ([]*subscription.Usage, error) {
	var usageModels []*models.UsageModel
	if err := r.conn(ctx).Where("subscription_id = ?", subscriptionID).
		Order("recorded_at DESC").Find(&usageModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list usage records: %w", err)
	}
	return r.mapper.ToEntities(usageModels)
}

// SumByMetric totals usage values for a metric since a point in time
func (r *UsageRepository) SumByMetric(ctx context.Context, subscriptionID uuid.UUID, metric string, since time.Time) (int64, error) {
	var total int64
	err := r.conn(ctx).Model(&models.UsageModel{}).
		Where("subscription_id = ? AND metric = ? AND recorded_at >= ?", subscriptionID, metric, since).
		Select("COALESCE(SUM(value), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum usage: %w", err)
	}
	return total, nil
}
