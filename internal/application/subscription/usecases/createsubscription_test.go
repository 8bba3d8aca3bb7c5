package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbor-inc/arbor/internal/domain/plan"
	"github.com/arbor-inc/arbor/internal/domain/subscription"
	apperrors "github.com/arbor-inc/arbor/internal/shared/errors"
	"github.com/arbor-inc/arbor/internal/shared/logger"
)

func seedPlan(t *testing.T, repo *mockPlanRepo, tenantID uuid.UUID) *plan.Plan {
	t.Helper()
	p, err := plan.NewPlan("starter", 1999, 30, tenantID, uuid.New())
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func TestCreateSubscription_Success(t *testing.T) {
	subRepo := newMockSubscriptionRepo()
	planRepo := newMockPlanRepo()
	tenantID := uuid.New()
	p := seedPlan(t, planRepo, tenantID)

	uc := NewCreateSubscriptionUseCase(subRepo, planRepo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), CreateSubscriptionCommand{
		PlanID:       p.ID().String(),
		TenantID:     tenantID.String(),
		SubscribedBy: uuid.New().String(),
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, string(subscription.StatusActive), result.Status)
	assert.Equal(t, p.ID().String(), result.PlanID)
	assert.Equal(t, tenantID.String(), result.TenantID)
	assert.Nil(t, result.EndedAt)
}

func TestCreateSubscription_DuplicatePlanTenant(t *testing.T) {
	subRepo := newMockSubscriptionRepo()
	planRepo := newMockPlanRepo()
	tenantID := uuid.New()
	p := seedPlan(t, planRepo, tenantID)

	uc := NewCreateSubscriptionUseCase(subRepo, planRepo, logger.NewLogger())

	cmd := CreateSubscriptionCommand{
		PlanID:       p.ID().String(),
		TenantID:     tenantID.String(),
		SubscribedBy: uuid.New().String(),
	}

	_, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), cmd)
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)
}

func TestCreateSubscription_PlanNotFound(t *testing.T) {
	uc := NewCreateSubscriptionUseCase(newMockSubscriptionRepo(), newMockPlanRepo(), logger.NewLogger())

	_, err := uc.Execute(context.Background(), CreateSubscriptionCommand{
		PlanID:       uuid.New().String(),
		TenantID:     uuid.New().String(),
		SubscribedBy: uuid.New().String(),
	})
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
}

func TestCreateSubscription_CrossTenantPlanRejected(t *testing.T) {
	subRepo := newMockSubscriptionRepo()
	planRepo := newMockPlanRepo()
	p := seedPlan(t, planRepo, uuid.New())

	uc := NewCreateSubscriptionUseCase(subRepo, planRepo, logger.NewLogger())

	// The plan exists but belongs to another tenant.
	_, err := uc.Execute(context.Background(), CreateSubscriptionCommand{
		PlanID:       p.ID().String(),
		TenantID:     uuid.New().String(),
		SubscribedBy: uuid.New().String(),
	})
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
	assert.Contains(t, appErr.Message, "different tenant")
}

func TestCancelSubscription_Terminal(t *testing.T) {
	subRepo := newMockSubscriptionRepo()
	planRepo := newMockPlanRepo()
	tenantID := uuid.New()
	p := seedPlan(t, planRepo, tenantID)

	createUC := NewCreateSubscriptionUseCase(subRepo, planRepo, logger.NewLogger())
	created, err := createUC.Execute(context.Background(), CreateSubscriptionCommand{
		PlanID:       p.ID().String(),
		TenantID:     tenantID.String(),
		SubscribedBy: uuid.New().String(),
	})
	require.NoError(t, err)

	cancelUC := NewCancelSubscriptionUseCase(subRepo, logger.NewLogger())

	result, err := cancelUC.Execute(context.Background(), CancelSubscriptionCommand{SubscriptionID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, string(subscription.StatusCancelled), result.Status)
	require.NotNil(t, result.EndedAt)
	assert.WithinDuration(t, time.Now(), *result.EndedAt, 5*time.Second)

	// Cancellation is terminal.
	_, err = cancelUC.Execute(context.Background(), CancelSubscriptionCommand{SubscriptionID: created.ID})
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)
}

func TestRecordUsage_Success(t *testing.T) {
	subRepo := newMockSubscriptionRepo()
	usageRepo := newMockUsageRepo()

	sub, err := subscription.NewSubscription(uuid.New(), uuid.New(), uuid.New())
	require.NoError(t, err)
	require.NoError(t, subRepo.Create(context.Background(), sub))

	uc := NewRecordUsageUseCase(subRepo, usageRepo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), RecordUsageCommand{
		SubscriptionID: sub.ID().String(),
		Metric:         "api_calls",
		Value:          42,
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "api_calls", result.Metric)
	assert.Equal(t, 42, result.Value)
	assert.Equal(t, sub.TenantID().String(), result.TenantID)
	assert.False(t, result.RecordedAt.IsZero())
}

func TestRecordUsage_InactiveSubscription(t *testing.T) {
	subRepo := newMockSubscriptionRepo()
	usageRepo := newMockUsageRepo()

	sub, err := subscription.NewSubscription(uuid.New(), uuid.New(), uuid.New())
	require.NoError(t, err)
	require.NoError(t, sub.Deactivate())
	require.NoError(t, subRepo.Create(context.Background(), sub))

	uc := NewRecordUsageUseCase(subRepo, usageRepo, logger.NewLogger())

	_, err = uc.Execute(context.Background(), RecordUsageCommand{
		SubscriptionID: sub.ID().String(),
		Metric:         "api_calls",
		Value:          1,
	})
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)

	usages, err := usageRepo.ListBySubscriptionID(context.Background(), sub.ID())
	require.NoError(t, err)
	assert.Empty(t, usages)
}

func TestListUsage(t *testing.T) {
	subRepo := newMockSubscriptionRepo()
	usageRepo := newMockUsageRepo()

	sub, err := subscription.NewSubscription(uuid.New(), uuid.New(), uuid.New())
	require.NoError(t, err)
	require.NoError(t, subRepo.Create(context.Background(), sub))

	recordUC := NewRecordUsageUseCase(subRepo, usageRepo, logger.NewLogger())
	for i := 0; i < 3; i++ {
		_, err := recordUC.Execute(context.Background(), RecordUsageCommand{
			SubscriptionID: sub.ID().String(),
			Metric:         "api_calls",
			Value:          10,
		})
		require.NoError(t, err)
	}

	listUC := NewListUsageUseCase(usageRepo, logger.NewLogger())
	usages, err := listUC.Execute(context.Background(), ListUsageCommand{SubscriptionID: sub.ID().String()})
	require.NoError(t, err)
	assert.Len(t, usages, 3)
}
