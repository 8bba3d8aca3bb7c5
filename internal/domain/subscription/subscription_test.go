package subscription

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidSubscription(t *testing.T) *Subscription {
	t.Helper()
	s, err := NewSubscription(uuid.New(), uuid.New(), uuid.New())
	require.NoError(t, err)
	require.NotNil(t, s)
	return s
}

func TestNewSubscription_ValidInput(t *testing.T) {
	planID, tenantID, userID := uuid.New(), uuid.New(), uuid.New()

	s, err := NewSubscription(planID, tenantID, userID)

	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, StatusActive, s.Status())
	assert.Equal(t, planID, s.PlanID())
	assert.Equal(t, tenantID, s.TenantID())
	assert.Equal(t, userID, s.SubscribedBy())
	assert.Nil(t, s.EndedAt())
	assert.True(t, s.IsActive())
}

func TestSubscription_Cancel(t *testing.T) {
	s := newValidSubscription(t)

	require.NoError(t, s.Cancel())
	assert.Equal(t, StatusCancelled, s.Status())
	require.NotNil(t, s.EndedAt())

	assert.ErrorIs(t, s.Cancel(), ErrSubscriptionCancelled)
}

// Cancelled is terminal.
func TestSubscription_NoReactivationAfterCancel(t *testing.T) {
	s := newValidSubscription(t)
	require.NoError(t, s.Cancel())

	err := s.Activate()
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	assert.Equal(t, StatusCancelled, s.Status())

	err = s.Deactivate()
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestSubscription_ActivateDeactivate(t *testing.T) {
	s := newValidSubscription(t)

	require.NoError(t, s.Deactivate())
	assert.Equal(t, StatusInactive, s.Status())

	require.NoError(t, s.Activate())
	assert.Equal(t, StatusActive, s.Status())

	require.NoError(t, s.Activate(), "activating an active subscription is a no-op")
}

func TestNewUsage_TenantFollowsSubscription(t *testing.T) {
	s := newValidSubscription(t)

	u, err := NewUsage(s, "api_calls", 42, time.Now())

	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, s.ID(), u.SubscriptionID())
	assert.Equal(t, s.TenantID(), u.TenantID(), "usage tenant must match the subscription tenant")
}

func TestNewUsage_Validation(t *testing.T) {
	s := newValidSubscription(t)

	u, err := NewUsage(nil, "api_calls", 1, time.Now())
	assert.Error(t, err)
	assert.Nil(t, u)

	u, err = NewUsage(s, "", 1, time.Now())
	assert.Error(t, err)
	assert.Nil(t, u)

	u, err = NewUsage(s, "api_calls", -1, time.Now())
	assert.Error(t, err)
	assert.Nil(t, u)
}

func TestNewUsage_ZeroRecordedAtDefaultsToNow(t *testing.T) {
	s := newValidSubscription(t)

	u, err := NewUsage(s, "api_calls", 0, time.Time{})

	require.NoError(t, err)
	assert.False(t, u.RecordedAt().IsZero())
}
