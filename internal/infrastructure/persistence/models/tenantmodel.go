package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/arbor-inc/arbor/internal/shared/constants"
)

// TenantModel represents the database persistence model for tenants
// This is the anti-corruption layer between domain and database
type TenantModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"uniqueIndex;not null;size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (TenantModel) TableName() string {
	return constants.TableTenants
}
