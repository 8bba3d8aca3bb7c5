package subscription

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Usage is a recorded measurement against a subscription. The tenant on a
// usage row must match the tenant of its subscription; NewUsage takes the
// subscription itself so the pair cannot diverge.
type Usage struct {
	id             uuid.UUID
	metric         string
	value          int
	recordedAt     time.Time
	subscriptionID uuid.UUID
	tenantID       uuid.UUID
	createdAt      time.Time
	updatedAt      time.Time
}

func NewUsage(sub *Subscription, metric string, value int, recordedAt time.Time) (*Usage, error) {
	if sub == nil {
		return nil, fmt.Errorf("subscription is required")
	}
	metric = strings.ToLower(strings.TrimSpace(metric))
	if metric == "" {
		return nil, fmt.Errorf("metric is required")
	}
	if len(metric) > 255 {
		return nil, fmt.Errorf("metric too long (max 255 characters)")
	}
	if value < 0 {
		return nil, fmt.Errorf("value cannot be negative")
	}
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	now := time.Now()
	return &Usage{
		id:             uuid.New(),
		metric:         metric,
		value:          value,
		recordedAt:     recordedAt,
		subscriptionID: sub.ID(),
		tenantID:       sub.TenantID(),
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructUsage(id uuid.UUID, metric string, value int, recordedAt time.Time,
	subscriptionID, tenantID uuid.UUID, createdAt, updatedAt time.Time) (*Usage, error) {

	if id == uuid.Nil {
		return nil, fmt.Errorf("usage ID cannot be nil")
	}

	return &Usage{
		id:             id,
		metric:         metric,
		value:          value,
		recordedAt:     recordedAt,
		subscriptionID: subscriptionID,
		tenantID:       tenantID,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (u *Usage) ID() uuid.UUID {
	return u.id
}

func (u *Usage) Metric() string {
	return u.metric
}

func (u *Usage) Value() int {
	return u.value
}

func (u *Usage) RecordedAt() time.Time {
	return u.recordedAt
}

func (u *Usage) SubscriptionID() uuid.UUID {
	return u.subscriptionID
}

func (u *Usage) TenantID() uuid.UUID {
	return u.tenantID
}

func (u *Usage) CreatedAt() time.Time {
	return u.createdAt
}

func (u *Usage) UpdatedAt() time.Time {
	return u.updatedAt
}
