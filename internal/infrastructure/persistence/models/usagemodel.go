package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/arbor-inc/arbor/internal/shared/constants"
)

// UsageModel represents the database persistence model for usage records
type UsageModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Metric         string    `gorm:"not null;size:255"`
	Value          int       `gorm:"not null"`
	RecordedAt     time.Time `gorm:"not null"`
	SubscriptionID uuid.UUID `gorm:"type:uuid;not null;index:usages_subscription_idx"`
	TenantID       uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (UsageModel) TableName() string {
	return constants.TableUsages
}
