package handlers

import (
	"context"

	"github.com/arbor-inc/arbor/internal/application/plan/dto"
	"github.com/arbor-inc/arbor/internal/application/plan/usecases"
)

// Use case interfaces for PlanHandler

type createPlanUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreatePlanCommand) (*dto.PlanDTO, error)
}

type updatePlanUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdatePlanCommand) (*dto.PlanDTO, error)
}

type deletePlanUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeletePlanCommand) error
}

type listPlansUseCase interface {
	Execute(ctx context.Context, cmd usecases.ListPlansCommand) ([]dto.PlanDTO, error)
}

type createLimitPolicyUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateLimitPolicyCommand) (*dto.LimitPolicyDTO, error)
}

type updateLimitPolicyUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateLimitPolicyCommand) (*dto.LimitPolicyDTO, error)
}

type deleteLimitPolicyUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeleteLimitPolicyCommand) error
}

type listLimitPoliciesUseCase interface {
	Execute(ctx context.Context, cmd usecases.ListLimitPoliciesCommand) ([]dto.LimitPolicyDTO, error)
}

type attachPolicyUseCase interface {
	Execute(ctx context.Context, cmd usecases.AttachPolicyCommand) (*dto.AttachmentDTO, error)
}

type detachPolicyUseCase interface {
	Execute(ctx context.Context, cmd usecases.DetachPolicyCommand) error
}
