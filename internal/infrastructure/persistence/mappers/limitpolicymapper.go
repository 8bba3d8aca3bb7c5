package mappers

import (
	"github.com/arbor-inc/arbor/internal/domain/plan"
	"github.com/arbor-inc/arbor/internal/infrastructure/persistence/models"
)

// LimitPolicyMapper handles the conversion between domain entities and persistence models
type LimitPolicyMapper interface {
	ToEntity(model *models.LimitPolicyModel) (*plan.LimitPolicy, error)
	ToModel(entity *plan.LimitPolicy) *models.LimitPolicyModel
	ToEntities(models []*models.LimitPolicyModel) ([]*plan.LimitPolicy, error)
}

type limitPolicyMapper struct{}

// NewLimitPolicyMapper creates a new limit policy mapper
func NewLimitPolicyMapper() LimitPolicyMapper {
	return &limitPolicyMapper{}
}

func (m *limitPolicyMapper) ToEntity(model *models.LimitPolicyModel) (*plan.LimitPolicy, error) {
	if model == nil {
		return nil, nil
	}
	return plan.ReconstructLimitPolicy(
		model.ID,
		model.Metric,
		model.Limit,
		model.TenantID,
		model.CreatedBy,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *limitPolicyMapper) ToModel(entity *plan.LimitPolicy) *models.LimitPolicyModel {
	if entity == nil {
		return nil
	}
	return &models.LimitPolicyModel{
		ID:        entity.ID(),
		Metric:    entity.Metric(),
		Limit:     entity.Limit(),
		TenantID:  entity.TenantID(),
		CreatedBy: entity.CreatedBy(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *limitPolicyMapper) ToEntities(policyModels []*models.LimitPolicyModel) ([]*plan.LimitPolicy, error) {
	entities := make([]*plan.LimitPolicy, 0, len(policyModels))
	for _, model := range policyModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
