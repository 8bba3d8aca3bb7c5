package mappers

import (
	"github.com/arbor-inc/arbor/internal/domain/tenant"
	"github.com/arbor-inc/arbor/internal/infrastructure/persistence/models"
)

// TenantMapper handles the conversion between domain entities and persistence models
type TenantMapper interface {
	ToEntity(model *models.TenantModel) (*tenant.Tenant, error)
	ToModel(entity *tenant.Tenant) *models.TenantModel
	ToEntities(models []*models.TenantModel) ([]*tenant.Tenant, error)
}

type tenantMapper struct{}

// NewTenantMapper creates a new tenant mapper
func NewTenantMapper() TenantMapper {
	return &tenantMapper{}
}

func (m *tenantMapper) ToEntity(model *models.TenantModel) (*tenant.Tenant, error) {
	if model == nil {
		return nil, nil
	}
	return tenant.ReconstructTenant(model.ID, model.Name, model.CreatedAt, model.UpdatedAt)
}

func (m *tenantMapper) ToModel(entity *tenant.Tenant) *models.TenantModel {
	if entity == nil {
		return nil
	}
	return &models.TenantModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *tenantMapper) ToEntities(tenantModels []*models.TenantModel) ([]*tenant.Tenant, error) {
	entities := make([]*tenant.Tenant, 0, len(tenantModels))
	for _, model := range tenantModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
