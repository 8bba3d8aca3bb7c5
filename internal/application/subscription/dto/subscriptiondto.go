package dto

import (
	"time"

	"github.com/arbor-inc/arbor/internal/domain/subscription"
)

type SubscriptionDTO struct {
	ID           string     `json:"id"`
	Status       string     `json:"status"`
	StartedAt    time.Time  `json:"started_at"`
	EndedAt      *time.Time `json:"ended_at,omitempty"`
	SubscribedBy string     `json:"subscribed_by"`
	PlanID       string     `json:"plan_id"`
	TenantID     string     `json:"tenant_id"`
	CreatedAt    time.Time  `json:"created_at"`
}

type UsageDTO struct {
	ID             string    `json:"id"`
	Metric         string    `json:"metric"`
	Value          int       `json:"value"`
	RecordedAt     time.Time `json:"recorded_at"`
	SubscriptionID string    `json:"subscription_id"`
	TenantID       string    `json:"tenant_id"`
}

func ToSubscriptionDTO(s *subscription.Subscription) SubscriptionDTO {
	return SubscriptionDTO{
		ID:           s.ID().String(),
		Status:       string(s.Status()),
		StartedAt:    s.StartedAt(),
		EndedAt:      s.EndedAt(),
		SubscribedBy: s.SubscribedBy().String(),
		PlanID:       s.PlanID().String(),
		TenantID:     s.TenantID().String(),
		CreatedAt:    s.CreatedAt(),
	}
}

func ToSubscriptionDTOs(subs []*subscription.Subscription) []SubscriptionDTO {
	out := make([]SubscriptionDTO, 0, len(subs))
	for _, s := range subs {
		out = append(out, ToSubscriptionDTO(s))
	}
	return out
}

func ToUsageDTO(u *subscription.Usage) UsageDTO {
	return UsageDTO{
		ID:             u.ID().String(),
		Metric:         u.Metric(),
		Value:          u.Value(),
		RecordedAt:     u.RecordedAt(),
		SubscriptionID: u.SubscriptionID().String(),
		TenantID:       u.TenantID().String(),
	}
}

func ToUsageDTOs(usages []*subscription.Usage) []UsageDTO {
	out := make([]UsageDTO, 0, len(usages))
	for _, u := range usages {
		out = append(out, ToUsageDTO(u))
	}
	return out
}
