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

// AttachmentRepository implements the attachment repository interface
type AttachmentRepository struct {
	db     *gorm.DB
	mapper mappers.AttachmentMapper
	logger logger.Interface
}

// NewAttachmentRepository creates a new attachment repository
func NewAttachmentRepository(gdb *gorm.DB, logger logger.Interface) plan.AttachmentRepository {
	return &AttachmentRepository{
		db:     gdb,
		mapper: mappers.NewAttachmentMapper(),
		logger: logger,
	}
}

func (r *AttachmentRepository) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).WithContext(ctx)
}

// Create creates a new attachment
func (r *AttachmentRepository) Create(ctx context.Context, attachment *plan.Attachment) error {
	model := r.mapper.ToModel(attachment)

	if err := r.conn(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create attachment", "error", err)
		return fmt.Errorf("failed to create attachment: %w", err)
	}

	r.logger.Infow("attachment created successfully",
		"id", model.ID, "plan_id", model.PlanID, "limit_policy_id", model.LimitPolicyID)
	return nil
}

// GetByID retrieves an attachment by ID
func (r *AttachmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*plan.Attachment, error) {
	var model models.PlanLimitPolicyModel

	if err := r.conn(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, plan.ErrAttachmentNotFound
		}
		return nil, fmt.Errorf("failed to get attachment: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// Delete removes an attachment by ID
func (r *AttachmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.conn(ctx).Where("id = ?", id).Delete(&models.PlanLimitPolicyModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete attachment", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete attachment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return plan.ErrAttachmentNotFound
	}

	return nil
}

// ListByPlanID returns all attachments for a plan
func (r *AttachmentRepository) ListByPlanID(ctx context.Context, planID uuid.UUID) ([]*plan.Attachment, error) {
	var attachmentModels []*models.PlanLimitPolicyModel
	if err := r.conn(ctx).Where("plan_id = ?", planID).Find(&attachmentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}
	return r.mapper.ToEntities(attachmentModels)
}

// Exists reports whether the limit policy is already attached to the plan
func (r *AttachmentRepository) Exists(ctx context.Context, planID, limitPolicyID uuid.UUID) (bool, error) {
	var count int64
	if err := r.conn(ctx).Model(&models.PlanLimitPolicyModel{}).
		Where("plan_id = ? AND limit_policy_id = ?", planID, limitPolicyID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check attachment existence: %w", err)
	}
	return count > 0, nil
}
