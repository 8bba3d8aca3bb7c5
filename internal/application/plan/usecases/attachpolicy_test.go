package usecases

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbor-inc/arbor/internal/domain/plan"
	apperrors "github.com/arbor-inc/arbor/internal/shared/errors"
	"github.com/arbor-inc/arbor/internal/shared/logger"
)

func TestAttachPolicy_Success(t *testing.T) {
	planRepo := newMockPlanRepo()
	policyRepo := newMockLimitPolicyRepo()
	attachmentRepo := newMockAttachmentRepo()

	tenantID := uuid.New()
	createdBy := uuid.New()

	p, err := plan.NewPlan("starter", 1999, 30, tenantID, createdBy)
	require.NoError(t, err)
	require.NoError(t, planRepo.Create(context.Background(), p))

	lp, err := plan.NewLimitPolicy("api_calls", 1000, tenantID, createdBy)
	require.NoError(t, err)
	require.NoError(t, policyRepo.Create(context.Background(), lp))

	uc := NewAttachPolicyUseCase(planRepo, policyRepo, attachmentRepo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), AttachPolicyCommand{
		PlanID:        p.ID().String(),
		LimitPolicyID: lp.ID().String(),
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, p.ID().String(), result.PlanID)
	assert.Equal(t, lp.ID().String(), result.LimitPolicyID)
	assert.Equal(t, tenantID.String(), result.TenantID)
}

func TestAttachPolicy_CrossTenantRejected(t *testing.T) {
	planRepo := newMockPlanRepo()
	policyRepo := newMockLimitPolicyRepo()
	attachmentRepo := newMockAttachmentRepo()

	createdBy := uuid.New()

	p, err := plan.NewPlan("starter", 1999, 30, uuid.New(), createdBy)
	require.NoError(t, err)
	require.NoError(t, planRepo.Create(context.Background(), p))

	lp, err := plan.NewLimitPolicy("api_calls", 1000, uuid.New(), createdBy)
	require.NoError(t, err)
	require.NoError(t, policyRepo.Create(context.Background(), lp))

	uc := NewAttachPolicyUseCase(planRepo, policyRepo, attachmentRepo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), AttachPolicyCommand{
		PlanID:        p.ID().String(),
		LimitPolicyID: lp.ID().String(),
	})
	require.Error(t, err)
	assert.Nil(t, result)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
	assert.Contains(t, appErr.Message, "different tenants")

	// Nothing reached storage.
	attachments, err := attachmentRepo.ListByPlanID(context.Background(), p.ID())
	require.NoError(t, err)
	assert.Empty(t, attachments)
}

func TestAttachPolicy_AlreadyAttached(t *testing.T) {
	planRepo := newMockPlanRepo()
	policyRepo := newMockLimitPolicyRepo()
	attachmentRepo := newMockAttachmentRepo()

	tenantID := uuid.New()
	createdBy := uuid.New()

	p, err := plan.NewPlan("starter", 1999, 30, tenantID, createdBy)
	require.NoError(t, err)
	require.NoError(t, planRepo.Create(context.Background(), p))

	lp, err := plan.NewLimitPolicy("api_calls", 1000, tenantID, createdBy)
	require.NoError(t, err)
	require.NoError(t, policyRepo.Create(context.Background(), lp))

	uc := NewAttachPolicyUseCase(planRepo, policyRepo, attachmentRepo, logger.NewLogger())

	cmd := AttachPolicyCommand{
		PlanID:        p.ID().String(),
		LimitPolicyID: lp.ID().String(),
	}

	_, err = uc.Execute(context.Background(), cmd)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), cmd)
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)
}

func TestDetachPolicy(t *testing.T) {
	planRepo := newMockPlanRepo()
	policyRepo := newMockLimitPolicyRepo()
	attachmentRepo := newMockAttachmentRepo()

	tenantID := uuid.New()
	createdBy := uuid.New()

	p, err := plan.NewPlan("starter", 1999, 30, tenantID, createdBy)
	require.NoError(t, err)
	require.NoError(t, planRepo.Create(context.Background(), p))

	lp, err := plan.NewLimitPolicy("api_calls", 1000, tenantID, createdBy)
	require.NoError(t, err)
	require.NoError(t, policyRepo.Create(context.Background(), lp))

	attachUC := NewAttachPolicyUseCase(planRepo, policyRepo, attachmentRepo, logger.NewLogger())
	attached, err := attachUC.Execute(context.Background(), AttachPolicyCommand{
		PlanID:        p.ID().String(),
		LimitPolicyID: lp.ID().String(),
	})
	require.NoError(t, err)

	detachUC := NewDetachPolicyUseCase(attachmentRepo, logger.NewLogger())
	require.NoError(t, detachUC.Execute(context.Background(), DetachPolicyCommand{AttachmentID: attached.ID}))

	err = detachUC.Execute(context.Background(), DetachPolicyCommand{AttachmentID: attached.ID})
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
}
