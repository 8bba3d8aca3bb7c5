package tenant

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, tenant *Tenant) error
	GetByID(ctx context.Context, id uuid.UUID) (*Tenant, error)
	GetByName(ctx context.Context, name string) (*Tenant, error)
	Update(ctx context.Context, tenant *Tenant) error
	Delete(ctx context.Context, id uuid.UUID) error

	List(ctx context.Context, page, pageSize int) ([]*Tenant, int64, error)
}

type MembershipRepository interface {
	Create(ctx context.Context, membership *Membership) error
	GetByID(ctx context.Context, id uuid.UUID) (*Membership, error)
	Delete(ctx context.Context, id uuid.UUID) error

	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*Membership, error)
	ListByTenantID(ctx context.Context, tenantID uuid.UUID) ([]*Membership, error)
	Exists(ctx context.Context, userID, tenantID uuid.UUID) (bool, error)
}
