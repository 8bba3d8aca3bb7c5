package subscription

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, subscription *Subscription) error
	GetByID(ctx context.Context, id uuid.UUID) (*Subscription, error)
	Update(ctx context.Context, subscription *Subscription) error
	Delete(ctx context.Context, id uuid.UUID) error

	ListByTenantID(ctx context.Context, tenantID uuid.UUID) ([]*Subscription, error)
	GetByPlanAndTenant(ctx context.Context, planID, tenantID uuid.UUID) (*Subscription, error)
}

type UsageRepository interface {
	Create(ctx context.Context, usage *Usage) error
	GetByID(ctx context.Context, id uuid.UUID) (*Usage, error)
	Delete(ctx context.Context, id uuid.UUID) error

	ListBySubscriptionID(ctx context.Context, subscriptionID uuid.UUID) ([]*Usage, error)
	SumByMetric(ctx context.Context, subscriptionID uuid.UUID, metric string, since time.Time) (int64, error)
}
