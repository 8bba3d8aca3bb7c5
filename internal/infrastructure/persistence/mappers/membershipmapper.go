package mappers

import (
	"github.com/arbor-inc/arbor/internal/domain/tenant"
	"github.com/arbor-inc/arbor/internal/infrastructure/persistence/models"
)

// MembershipMapper handles the conversion between domain entities and persistence models
type MembershipMapper interface {
	ToEntity(model *models.UserTenantModel) (*tenant.Membership, error)
	ToModel(entity *tenant.Membership) *models.UserTenantModel
	ToEntities(models []*models.UserTenantModel) ([]*tenant.Membership, error)
}

type membershipMapper struct{}

// NewMembershipMapper creates a new membership mapper
func NewMembershipMapper() MembershipMapper {
	return &membershipMapper{}
}

func (m *membershipMapper) ToEntity(model *models.UserTenantModel) (*tenant.Membership, error) {
	if model == nil {
		return nil, nil
	}
	return tenant.ReconstructMembership(
		model.ID,
		model.UserID,
		model.TenantID,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *membershipMapper) ToModel(entity *tenant.Membership) *models.UserTenantModel {
	if entity == nil {
		return nil
	}
	return &models.UserTenantModel{
		ID:        entity.ID(),
		UserID:    entity.UserID(),
		TenantID:  entity.TenantID(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *membershipMapper) ToEntities(membershipModels []*models.UserTenantModel) ([]*tenant.Membership, error) {
	entities := make([]*tenant.Membership, 0, len(membershipModels))
	for _, model := range membershipModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
