package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/arbor-inc/arbor/internal/shared/constants"
)

// SubscriptionModel represents the database persistence model for subscriptions
type SubscriptionModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Status       string    `gorm:"not null;size:50;default:inactive;index:subscriptions_status_idx"`
	StartedAt    time.Time `gorm:"not null"`
	EndedAt      *time.Time
	SubscribedBy uuid.UUID `gorm:"type:uuid;not null"`
	PlanID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:subscriptions_plan_tenant_idx"`
	TenantID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:subscriptions_plan_tenant_idx;index:subscriptions_tenant_idx"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}
