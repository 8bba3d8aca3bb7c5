package plan

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LimitPolicy caps a named metric for a tenant. The (metric, tenant) pair is
// unique and the limit is always positive.
type LimitPolicy struct {
	id        uuid.UUID
	metric    string
	limit     int
	tenantID  uuid.UUID
	createdBy uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

func NewLimitPolicy(metric string, limit int, tenantID, createdBy uuid.UUID) (*LimitPolicy, error) {
	// Metrics are matched case-insensitively across policies and usage rows.
	metric = strings.ToLower(strings.TrimSpace(metric))
	if metric == "" {
		return nil, fmt.Errorf("metric is required")
	}
	if len(metric) > 255 {
		return nil, fmt.Errorf("metric too long (max 255 characters)")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than 0")
	}
	if tenantID == uuid.Nil {
		return nil, fmt.Errorf("tenant ID cannot be nil")
	}
	if createdBy == uuid.Nil {
		return nil, fmt.Errorf("creator ID cannot be nil")
	}

	now := time.Now()
	return &LimitPolicy{
		id:        uuid.New(),
		metric:    metric,
		limit:     limit,
		tenantID:  tenantID,
		createdBy: createdBy,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructLimitPolicy(id uuid.UUID, metric string, limit int,
	tenantID, createdBy uuid.UUID, createdAt, updatedAt time.Time) (*LimitPolicy, error) {

	if id == uuid.Nil {
		return nil, fmt.Errorf("limit policy ID cannot be nil")
	}

	return &LimitPolicy{
		id:        id,
		metric:    metric,
		limit:     limit,
		tenantID:  tenantID,
		createdBy: createdBy,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (lp *LimitPolicy) ID() uuid.UUID {
	return lp.id
}

func (lp *LimitPolicy) Metric() string {
	return lp.metric
}

func (lp *LimitPolicy) Limit() int {
	return lp.limit
}

func (lp *LimitPolicy) TenantID() uuid.UUID {
	return lp.tenantID
}

func (lp *LimitPolicy) CreatedBy() uuid.UUID {
	return lp.createdBy
}

func (lp *LimitPolicy) CreatedAt() time.Time {
	return lp.createdAt
}

func (lp *LimitPolicy) UpdatedAt() time.Time {
	return lp.updatedAt
}

func (lp *LimitPolicy) UpdateLimit(limit int) error {
	if limit <= 0 {
		return fmt.Errorf("limit must be greater than 0")
	}
	lp.limit = limit
	lp.updatedAt = time.Now()
	return nil
}
