package plan

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	MinBillingDuration = 1
	MaxBillingDuration = 365
)

// Plan is a priced offering scoped to a tenant. The (name, tenant) pair is
// unique; pricing is held in cents to avoid floating point in the domain.
type Plan struct {
	id              uuid.UUID
	name            string
	priceCents      uint64
	billingDuration int
	tenantID        uuid.UUID
	createdBy       uuid.UUID
	createdAt       time.Time
	updatedAt       time.Time
}

func NewPlan(name string, priceCents uint64, billingDuration int, tenantID, createdBy uuid.UUID) (*Plan, error) {
	if name == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	if len(name) > 255 {
		return nil, fmt.Errorf("plan name too long (max 255 characters)")
	}
	if billingDuration < MinBillingDuration || billingDuration > MaxBillingDuration {
		return nil, fmt.Errorf("billing duration must be between %d and %d days", MinBillingDuration, MaxBillingDuration)
	}
	if tenantID == uuid.Nil {
		return nil, fmt.Errorf("tenant ID cannot be nil")
	}
	if createdBy == uuid.Nil {
		return nil, fmt.Errorf("creator ID cannot be nil")
	}

	now := time.Now()
	return &Plan{
		id:              uuid.New(),
		name:            name,
		priceCents:      priceCents,
		billingDuration: billingDuration,
		tenantID:        tenantID,
		createdBy:       createdBy,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructPlan(id uuid.UUID, name string, priceCents uint64, billingDuration int,
	tenantID, createdBy uuid.UUID, createdAt, updatedAt time.Time) (*Plan, error) {

	if id == uuid.Nil {
		return nil, fmt.Errorf("plan ID cannot be nil")
	}

	return &Plan{
		id:              id,
		name:            name,
		priceCents:      priceCents,
		billingDuration: billingDuration,
		tenantID:        tenantID,
		createdBy:       createdBy,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (p *Plan) ID() uuid.UUID {
	return p.id
}

func (p *Plan) Name() string {
	return p.name
}

func (p *Plan) PriceCents() uint64 {
	return p.priceCents
}

func (p *Plan) BillingDuration() int {
	return p.billingDuration
}

func (p *Plan) TenantID() uuid.UUID {
	return p.tenantID
}

func (p *Plan) CreatedBy() uuid.UUID {
	return p.createdBy
}

func (p *Plan) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Plan) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Plan) Rename(name string) error {
	if name == "" {
		return fmt.Errorf("plan name is required")
	}
	if len(name) > 255 {
		return fmt.Errorf("plan name too long (max 255 characters)")
	}
	p.name = name
	p.updatedAt = time.Now()
	return nil
}

func (p *Plan) UpdatePrice(priceCents uint64) {
	p.priceCents = priceCents
	p.updatedAt = time.Now()
}

func (p *Plan) UpdateBillingDuration(days int) error {
	if days < MinBillingDuration || days > MaxBillingDuration {
		return fmt.Errorf("billing duration must be between %d and %d days", MinBillingDuration, MaxBillingDuration)
	}
	p.billingDuration = days
	p.updatedAt = time.Now()
	return nil
}
