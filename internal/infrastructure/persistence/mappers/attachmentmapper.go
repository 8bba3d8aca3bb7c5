package mappers

import (
	"github.com/arbor-inc/arbor/internal/domain/plan"
	"github.com/arbor-inc/arbor/internal/infrastructure/persistence/models"
)

// AttachmentMapper handles the conversion between domain entities and persistence models
type AttachmentMapper interface {
	ToEntity(model *models.PlanLimitPolicyModel) (*plan.Attachment, error)
	ToModel(entity *plan.Attachment) *models.PlanLimitPolicyModel
	ToEntities(models []*models.PlanLimitPolicyModel) ([]*plan.Attachment, error)
}

type attachmentMapper struct{}

// NewAttachmentMapper creates a new attachment mapper
func NewAttachmentMapper() AttachmentMapper {
	return &attachmentMapper{}
}

func (m *attachmentMapper) ToEntity(model *models.PlanLimitPolicyModel) (*plan.Attachment, error) {
	if model == nil {
		return nil, nil
	}
	return plan.ReconstructAttachment(
		model.ID,
		model.PlanID,
		model.LimitPolicyID,
		model.TenantID,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *attachmentMapper) ToModel(entity *plan.Attachment) *models.PlanLimitPolicyModel {
	if entity == nil {
		return nil
	}
	return &models.PlanLimitPolicyModel{
		ID:            entity.ID(),
		PlanID:        entity.PlanID(),
		LimitPolicyID: entity.LimitPolicyID(),
		TenantID:      entity.TenantID(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}
}

func (m *attachmentMapper) ToEntities(attachmentModels []*models.PlanLimitPolicyModel) ([]*plan.Attachment, error) {
	entities := make([]*plan.Attachment, 0, len(attachmentModels))
	for _, model := range attachmentModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
