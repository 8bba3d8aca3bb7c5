package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/arbor-inc/arbor/internal/shared/constants"
)

// PlanLimitPolicyModel attaches a limit policy to a plan. The tenant column is
// denormalized on purpose so the association row carries its own scope.
type PlanLimitPolicyModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PlanID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:plans_limit_policies_triple_idx"`
	LimitPolicyID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:plans_limit_policies_triple_idx"`
	TenantID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:plans_limit_policies_triple_idx"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (PlanLimitPolicyModel) TableName() string {
	return constants.TablePlansLimitPolicies
}
