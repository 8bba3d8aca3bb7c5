package mappers

import (
	"github.com/arbor-inc/arbor/internal/domain/subscription"
	"github.com/arbor-inc/arbor/internal/infrastructure/persistence/models"
)

// UsageMapper handles the conversion between domain entities and persistence models
type UsageMapper interface {
	ToEntity(model *models.UsageModel) (*subscription.Usage, error)
	ToModel(entity *subscription.Usage) *models.UsageModel
	ToEntities(models []*models.UsageModel) ([]*subscription.Usage, error)
}

type usageMapper struct{}

// NewUsageMapper creates a new usage mapper
func NewUsageMapper() UsageMapper {
	return &usageMapper{}
}

func (m *usageMapper) ToEntity(model *models.UsageModel) (*subscription.Usage, error) {
	if model == nil {
		return nil, nil
	}
	return subscription.ReconstructUsage(
		model.ID,
		model.Metric,
		model.Value,
		model.RecordedAt,
		model.SubscriptionID,
		model.TenantID,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *usageMapper) ToModel(entity *subscription.Usage) *models.UsageModel {
	if entity == nil {
		return nil
	}
	return &models.UsageModel{
		ID:             entity.ID(),
		Metric:         entity.Metric(),
		Value:          entity.Value(),
		RecordedAt:     entity.RecordedAt(),
		SubscriptionID: entity.SubscriptionID(),
		TenantID:       entity.TenantID(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}
}

func (m *usageMapper) ToEntities(usageModels []*models.UsageModel) ([]*subscription.Usage, error) {
	entities := make([]*subscription.Usage, 0, len(usageModels))
	for _, model := range usageModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
