package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/arbor-inc/arbor/internal/shared/constants"
)

// UserTenantModel links a user to a tenant. Membership rows are what the row
// security policies consult for tenant reach.
type UserTenantModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:user_tenants_pair_idx;index:user_tenants_user_idx"`
	TenantID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:user_tenants_pair_idx;index:user_tenants_tenant_idx"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (UserTenantModel) TableName() string {
	return constants.TableUserTenants
}
