package plan

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Attachment binds a limit policy to a plan. Both sides must belong to the
// same tenant as the attachment itself; NewAttachment enforces this so a
// cross-tenant binding can never be constructed.
type Attachment struct {
	id            uuid.UUID
	planID        uuid.UUID
	limitPolicyID uuid.UUID
	tenantID      uuid.UUID
	createdAt     time.Time
	updatedAt     time.Time
}

func NewAttachment(p *Plan, lp *LimitPolicy) (*Attachment, error) {
	if p == nil {
		return nil, fmt.Errorf("plan is required")
	}
	if lp == nil {
		return nil, fmt.Errorf("limit policy is required")
	}
	if p.TenantID() != lp.TenantID() {
		return nil, fmt.Errorf("plan and limit policy belong to different tenants")
	}

	now := time.Now()
	return &Attachment{
		id:            uuid.New(),
		planID:        p.ID(),
		limitPolicyID: lp.ID(),
		tenantID:      p.TenantID(),
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructAttachment(id, planID, limitPolicyID, tenantID uuid.UUID,
	createdAt, updatedAt time.Time) (*Attachment, error) {

	if id == uuid.Nil {
		return nil, fmt.Errorf("attachment ID cannot be nil")
	}

	return &Attachment{
		id:            id,
		planID:        planID,
		limitPolicyID: limitPolicyID,
		tenantID:      tenantID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (a *Attachment) ID() uuid.UUID {
	return a.id
}

func (a *Attachment) PlanID() uuid.UUID {
	return a.planID
}

func (a *Attachment) LimitPolicyID() uuid.UUID {
	return a.limitPolicyID
}

func (a *Attachment) TenantID() uuid.UUID {
	return a.tenantID
}

func (a *Attachment) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Attachment) UpdatedAt() time.Time {
	return a.updatedAt
}
