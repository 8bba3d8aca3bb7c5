package mappers

import (
	"github.com/arbor-inc/arbor/internal/domain/subscription"
	"github.com/arbor-inc/arbor/internal/infrastructure/persistence/models"
)

// SubscriptionMapper handles the conversion between domain entities and persistence models
type SubscriptionMapper interface {
	ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error)
	ToModel(entity *subscription.Subscription) *models.SubscriptionModel
	ToEntities(models []*models.SubscriptionModel) ([]*subscription.Subscription, error)
}

type subscriptionMapper struct{}

// NewSubscriptionMapper creates a new subscription mapper
func NewSubscriptionMapper() SubscriptionMapper {
	return &subscriptionMapper{}
}

func (m *subscriptionMapper) ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	if model == nil {
		return nil, nil
	}
	return subscription.ReconstructSubscription(
		model.ID,
		subscription.Status(model.Status),
		model.StartedAt,
		model.EndedAt,
		model.SubscribedBy,
		model.PlanID,
		model.TenantID,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *subscriptionMapper) ToModel(entity *subscription.Subscription) *models.SubscriptionModel {
	if entity == nil {
		return nil
	}
	return &models.SubscriptionModel{
		ID:           entity.ID(),
		Status:       string(entity.Status()),
		StartedAt:    entity.StartedAt(),
		EndedAt:      entity.EndedAt(),
		SubscribedBy: entity.SubscribedBy(),
		PlanID:       entity.PlanID(),
		TenantID:     entity.TenantID(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}

func (m *subscriptionMapper) ToEntities(subscriptionModels []*models.SubscriptionModel) ([]*subscription.Subscription, error) {
	entities := make([]*subscription.Subscription, 0, len(subscriptionModels))
	for _, model := range subscriptionModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
