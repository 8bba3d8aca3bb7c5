package dto

import (
	"time"

	"github.com/arbor-inc/arbor/internal/domain/tenant"
)

type TenantDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type MembershipDTO struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TenantID  string    `json:"tenant_id"`
	CreatedAt time.Time `json:"created_at"`
}

func ToTenantDTO(t *tenant.Tenant) TenantDTO {
	return TenantDTO{
		ID:        t.ID().String(),
		Name:      t.Name(),
		CreatedAt: t.CreatedAt(),
	}
}

func ToTenantDTOs(tenants []*tenant.Tenant) []TenantDTO {
	out := make([]TenantDTO, 0, len(tenants))
	for _, t := range tenants {
		out = append(out, ToTenantDTO(t))
	}
	return out
}

func ToMembershipDTO(m *tenant.Membership) MembershipDTO {
	return MembershipDTO{
		ID:        m.ID().String(),
		UserID:    m.UserID().String(),
		TenantID:  m.TenantID().String(),
		CreatedAt: m.CreatedAt(),
	}
}

func ToMembershipDTOs(memberships []*tenant.Membership) []MembershipDTO {
	out := make([]MembershipDTO, 0, len(memberships))
	for _, m := range memberships {
		out = append(out, ToMembershipDTO(m))
	}
	return out
}
