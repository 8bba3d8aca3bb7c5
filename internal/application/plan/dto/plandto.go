package dto

import (
	"time"

	"github.com/arbor-inc/arbor/internal/domain/plan"
)

type PlanDTO struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	PriceCents      uint64    `json:"price_cents"`
	BillingDuration int       `json:"billing_duration"`
	TenantID        string    `json:"tenant_id"`
	CreatedBy       string    `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
}

type LimitPolicyDTO struct {
	ID        string    `json:"id"`
	Metric    string    `json:"metric"`
	Limit     int       `json:"limit"`
	TenantID  string    `json:"tenant_id"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

type AttachmentDTO struct {
	ID            string    `json:"id"`
	PlanID        string    `json:"plan_id"`
	LimitPolicyID string    `json:"limit_policy_id"`
	TenantID      string    `json:"tenant_id"`
	CreatedAt     time.Time `json:"created_at"`
}

func ToPlanDTO(p *plan.Plan) PlanDTO {
	return PlanDTO{
		ID:              p.ID().String(),
		Name:            p.Name(),
		PriceCents:      p.PriceCents(),
		BillingDuration: p.BillingDuration(),
		TenantID:        p.TenantID().String(),
		CreatedBy:       p.CreatedBy().String(),
		CreatedAt:       p.CreatedAt(),
	}
}

func ToPlanDTOs(plans []*plan.Plan) []PlanDTO {
	out := make([]PlanDTO, 0, len(plans))
	for _, p := range plans {
		out = append(out, ToPlanDTO(p))
	}
	return out
}

func ToLimitPolicyDTO(lp *plan.LimitPolicy) LimitPolicyDTO {
	return LimitPolicyDTO{
		ID:        lp.ID().String(),
		Metric:    lp.Metric(),
		Limit:     lp.Limit(),
		TenantID:  lp.TenantID().String(),
		CreatedBy: lp.CreatedBy().String(),
		CreatedAt: lp.CreatedAt(),
	}
}

func ToLimitPolicyDTOs(policies []*plan.LimitPolicy) []LimitPolicyDTO {
	out := make([]LimitPolicyDTO, 0, len(policies))
	for _, lp := range policies {
		out = append(out, ToLimitPolicyDTO(lp))
	}
	return out
}

func ToAttachmentDTO(a *plan.Attachment) AttachmentDTO {
	return AttachmentDTO{
		ID:            a.ID().String(),
		PlanID:        a.PlanID().String(),
		LimitPolicyID: a.LimitPolicyID().String(),
		TenantID:      a.TenantID().String(),
		CreatedAt:     a.CreatedAt(),
	}
}
