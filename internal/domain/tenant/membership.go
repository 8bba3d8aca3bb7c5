package tenant

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Membership links a user to a tenant. These rows are the single source of
// truth for tenant reach: every row filter that asks "which tenants can this
// caller see" resolves through them.
type Membership struct {
	id        uuid.UUID
	userID    uuid.UUID
	tenantID  uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

func NewMembership(userID, tenantID uuid.UUID) (*Membership, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("user ID cannot be nil")
	}
	if tenantID == uuid.Nil {
		return nil, fmt.Errorf("tenant ID cannot be nil")
	}

	now := time.Now()
	return &Membership{
		id:        uuid.New(),
		userID:    userID,
		tenantID:  tenantID,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructMembership(id, userID, tenantID uuid.UUID, createdAt, updatedAt time.Time) (*Membership, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("membership ID cannot be nil")
	}
	return &Membership{
		id:        id,
		userID:    userID,
		tenantID:  tenantID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (m *Membership) ID() uuid.UUID {
	return m.id
}

func (m *Membership) UserID() uuid.UUID {
	return m.userID
}

func (m *Membership) TenantID() uuid.UUID {
	return m.tenantID
}

func (m *Membership) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Membership) UpdatedAt() time.Time {
	return m.updatedAt
}
