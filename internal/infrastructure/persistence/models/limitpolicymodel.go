package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/arbor-inc/arbor/internal/shared/constants"
)

// LimitPolicyModel represents the database persistence model for limit policies
type LimitPolicyModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Metric    string    `gorm:"not null;size:255;uniqueIndex:limit_policies_metric_tenant_idx"`
	Limit     int       `gorm:"column:limit;not null"`
	TenantID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:limit_policies_metric_tenant_idx;index:limit_policies_tenant_idx"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (LimitPolicyModel) TableName() string {
	return constants.TableLimitPolicies
}
