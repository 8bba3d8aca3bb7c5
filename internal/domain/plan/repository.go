package plan

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, plan *Plan) error
	GetByID(ctx context.Context, id uuid.UUID) (*Plan, error)
	Update(ctx context.Context, plan *Plan) error
	Delete(ctx context.Context, id uuid.UUID) error

	ListByTenantID(ctx context.Context, tenantID uuid.UUID) ([]*Plan, error)
	ExistsByNameAndTenant(ctx context.Context, name string, tenantID uuid.UUID) (bool, error)
}

type LimitPolicyRepository interface {
	Create(ctx context.Context, policy *LimitPolicy) error
	GetByID(ctx context.Context, id uuid.UUID) (*LimitPolicy, error)
	Update(ctx context.Context, policy *LimitPolicy) error
	Delete(ctx context.Context, id uuid.UUID) error

	ListByTenantID(ctx context.Context, tenantID uuid.UUID) ([]*LimitPolicy, error)
	ExistsByMetricAndTenant(ctx context.Context, metric string, tenantID uuid.UUID) (bool, error)
}

type AttachmentRepository interface {
	Create(ctx context.Context, attachment *Attachment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Attachment, error)
	Delete(ctx context.Context, id uuid.UUID) error

	ListByPlanID(ctx context.Context, planID uuid.UUID) ([]*Attachment, error)
	Exists(ctx context.Context, planID, limitPolicyID uuid.UUID) (bool, error)
}
