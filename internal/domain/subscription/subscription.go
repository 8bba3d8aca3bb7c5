package subscription

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusPending   Status = "pending"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
	StatusSuspended Status = "suspended"
	StatusTrial     Status = "trial"
	StatusPaused    Status = "paused"
	StatusRenewal   Status = "renewal"
	StatusFailed    Status = "failed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusPending, StatusCancelled,
		StatusExpired, StatusSuspended, StatusTrial, StatusPaused,
		StatusRenewal, StatusFailed:
		return true
	}
	return false
}

// Subscription ties a tenant to a plan. One subscription per (plan, tenant);
// a cancelled subscription is terminal and can never be reactivated.
type Subscription struct {
	id           uuid.UUID
	status       Status
	startedAt    time.Time
	endedAt      *time.Time
	subscribedBy uuid.UUID
	planID       uuid.UUID
	tenantID     uuid.UUID
	createdAt    time.Time
	updatedAt    time.Time
}

func NewSubscription(planID, tenantID, subscribedBy uuid.UUID) (*Subscription, error) {
	if planID == uuid.Nil {
		return nil, fmt.Errorf("plan ID cannot be nil")
	}
	if tenantID == uuid.Nil {
		return nil, fmt.Errorf("tenant ID cannot be nil")
	}
	if subscribedBy == uuid.Nil {
		return nil, fmt.Errorf("subscriber ID cannot be nil")
	}

	now := time.Now()
	return &Subscription{
		id:           uuid.New(),
		status:       StatusActive,
		startedAt:    now,
		subscribedBy: subscribedBy,
		planID:       planID,
		tenantID:     tenantID,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructSubscription(id uuid.UUID, status Status, startedAt time.Time,
	endedAt *time.Time, subscribedBy, planID, tenantID uuid.UUID,
	createdAt, updatedAt time.Time) (*Subscription, error) {

	if id == uuid.Nil {
		return nil, fmt.Errorf("subscription ID cannot be nil")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid subscription status: %s", status)
	}

	return &Subscription{
		id:           id,
		status:       status,
		startedAt:    startedAt,
		endedAt:      endedAt,
		subscribedBy: subscribedBy,
		planID:       planID,
		tenantID:     tenantID,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (s *Subscription) ID() uuid.UUID {
	return s.id
}

func (s *Subscription) Status() Status {
	return s.status
}

func (s *Subscription) StartedAt() time.Time {
	return s.startedAt
}

func (s *Subscription) EndedAt() *time.Time {
	return s.endedAt
}

func (s *Subscription) SubscribedBy() uuid.UUID {
	return s.subscribedBy
}

func (s *Subscription) PlanID() uuid.UUID {
	return s.planID
}

func (s *Subscription) TenantID() uuid.UUID {
	return s.tenantID
}

func (s *Subscription) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Subscription) UpdatedAt() time.Time {
	return s.updatedAt
}

func (s *Subscription) IsActive() bool {
	return s.status == StatusActive
}

func (s *Subscription) Activate() error {
	if s.status == StatusCancelled {
		return ErrInvalidTransition(string(s.status), string(StatusActive))
	}
	if s.status == StatusActive {
		return nil
	}
	s.status = StatusActive
	s.updatedAt = time.Now()
	return nil
}

func (s *Subscription) Deactivate() error {
	if s.status == StatusCancelled {
		return ErrInvalidTransition(string(s.status), string(StatusInactive))
	}
	if s.status == StatusInactive {
		return nil
	}
	s.status = StatusInactive
	s.updatedAt = time.Now()
	return nil
}

func (s *Subscription) Cancel() error {
	if s.status == StatusCancelled {
		return ErrSubscriptionCancelled
	}
	now := time.Now()
	s.status = StatusCancelled
	s.endedAt = &now
	s.updatedAt = now
	return nil
}
