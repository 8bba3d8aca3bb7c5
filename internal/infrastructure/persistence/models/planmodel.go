package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/arbor-inc/arbor/internal/shared/constants"
)

// PlanModel represents the database persistence model for plans
type PlanModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name            string    `gorm:"not null;size:255;uniqueIndex:plans_name_tenant_idx"`
	Price           string    `gorm:"type:numeric(10,2);not null"`
	BillingDuration int       `gorm:"not null"`
	TenantID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:plans_name_tenant_idx;index:plans_tenant_idx"`
	CreatedBy       uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the table name for GORM
func (PlanModel) TableName() string {
	return constants.TablePlans
}
