package tenant

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Tenant struct {
	id        uuid.UUID
	name      string
	createdAt time.Time
	updatedAt time.Time
}

func NewTenant(name string) (*Tenant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("tenant name is required")
	}
	if len(name) > 255 {
		return nil, fmt.Errorf("tenant name too long (max 255 characters)")
	}

	now := time.Now()
	return &Tenant{
		id:        uuid.New(),
		name:      name,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructTenant(id uuid.UUID, name string, createdAt, updatedAt time.Time) (*Tenant, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("tenant ID cannot be nil")
	}
	return &Tenant{
		id:        id,
		name:      name,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (t *Tenant) ID() uuid.UUID {
	return t.id
}

func (t *Tenant) Name() string {
	return t.name
}

func (t *Tenant) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Tenant) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Tenant) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("tenant name is required")
	}
	if len(name) > 255 {
		return fmt.Errorf("tenant name too long (max 255 characters)")
	}
	t.name = name
	t.updatedAt = time.Now()
	return nil
}
