package plan

import "errors"

var (
	ErrPlanNotFound        = errors.New("plan not found")
	ErrPlanNameExists      = errors.New("plan name already exists for tenant")
	ErrLimitPolicyNotFound = errors.New("limit policy not found")
	ErrMetricExists        = errors.New("metric already limited for tenant")
	ErrAttachmentNotFound  = errors.New("attachment not found")
	ErrAttachmentExists    = errors.New("limit policy already attached to plan")
)
