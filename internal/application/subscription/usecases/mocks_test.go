package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/arbor-inc/arbor/internal/domain/plan"
	"github.com/arbor-inc/arbor/internal/domain/subscription"
)

type mockSubscriptionRepo struct {
	subs map[uuid.UUID]*subscription.Subscription
}

func newMockSubscriptionRepo() *mockSubscriptionRepo {
	return &mockSubscriptionRepo{subs: make(map[uuid.UUID]*subscription.Subscription)}
}

func (m *mockSubscriptionRepo) Create(_ context.Context, s *subscription.Subscription) error {
	m.subs[s.ID()] = s
	return nil
}

func (m *mockSubscriptionRepo) GetByID(_ context.Context, id uuid.UUID) (*subscription.Subscription, error) {
	s, ok := m.subs[id]
	if !ok {
		return nil, subscription.ErrSubscriptionNotFound
	}
	return s, nil
}

func (m *mockSubscriptionRepo) Update(_ context.Context, s *subscription.Subscription) error {
	if _, ok := m.subs[s.ID()]; !ok {
		return subscription.ErrSubscriptionNotFound
	}
	m.subs[s.ID()] = s
	return nil
}

func (m *mockSubscriptionRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.subs[id]; !ok {
		return subscription.ErrSubscriptionNotFound
	}
	delete(m.subs, id)
	return nil
}

func (m *mockSubscriptionRepo) ListByTenantID(_ context.Context, tenantID uuid.UUID) ([]*subscription.Subscription, error) {
	var out []*subscription.Subscription
	for _, s := range m.subs {
		if s.TenantID() == tenantID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockSubscriptionRepo) GetByPlanAndTenant(_ context.Context, planID, tenantID uuid.UUID) (*subscription.Subscription, error) {
	for _, s := range m.subs {
		if s.PlanID() == planID && s.TenantID() == tenantID {
			return s, nil
		}
	}
	return nil, subscription.ErrSubscriptionNotFound
}

type mockUsageRepo struct {
	usages map[uuid.UUID]*subscription.Usage
}

func newMockUsageRepo() *mockUsageRepo {
	return &mockUsageRepo{usages: make(map[uuid.UUID]*subscription.Usage)}
}

func (m *mockUsageRepo) Create(_ context.Context, u *subscription.Usage) error {
	m.usages[u.ID()] = u
	return nil
}

func (m *mockUsageRepo) GetByID(_ context.Context, id uuid.UUID) (*subscription.Usage, error) {
	u, ok := m.usages[id]
	if !ok {
		return nil, subscription.ErrUsageNotFound
	}
	return u, nil
}

func (m *mockUsageRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.usages[id]; !ok {
		return subscription.ErrUsageNotFound
	}
	delete(m.usages, id)
	return nil
}

func (m *mockUsageRepo) ListBySubscriptionID(_ context.Context, subscriptionID uuid.UUID) ([]*subscription.Usage, error) {
	var out []*subscription.Usage
	for _, u := range m.usages {
		if u.SubscriptionID() == subscriptionID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *mockUsageRepo) SumByMetric(_ context.Context, subscriptionID uuid.UUID, metric string, since time.Time) (int64, error) {
	var sum int64
	for _, u := range m.usages {
		if u.SubscriptionID() == subscriptionID && u.Metric() == metric && !u.RecordedAt().Before(since) {
			sum += int64(u.Value())
		}
	}
	return sum, nil
}

type mockPlanRepo struct {
	plans map[uuid.UUID]*plan.Plan
}

func newMockPlanRepo() *mockPlanRepo {
	return &mockPlanRepo{plans: make(map[uuid.UUID]*plan.Plan)}
}

func (m *mockPlanRepo) Create(_ context.Context, p *plan.Plan) error {
	m.plans[p.ID()] = p
	return nil
}

func (m *mockPlanRepo) GetByID(_ context.Context, id uuid.UUID) (*plan.Plan, error) {
	p, ok := m.plans[id]
	if !ok {
		return nil, plan.ErrPlanNotFound
	}
	return p, nil
}

func (m *mockPlanRepo) Update(_ context.Context, p *plan.Plan) error {
	if _, ok := m.plans[p.ID()]; !ok {
		return plan.ErrPlanNotFound
	}
	m.plans[p.ID()] = p
	return nil
}

func (m *mockPlanRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.plans[id]; !ok {
		return plan.ErrPlanNotFound
	}
	delete(m.plans, id)
	return nil
}

func (m *mockPlanRepo) ListByTenantID(_ context.Context, tenantID uuid.UUID) ([]*plan.Plan, error) {
	var out []*plan.Plan
	for _, p := range m.plans {
		if p.TenantID() == tenantID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockPlanRepo) ExistsByNameAndTenant(_ context.Context, name string, tenantID uuid.UUID) (bool, error) {
	for _, p := range m.plans {
		if p.Name() == name && p.TenantID() == tenantID {
			return true, nil
		}
	}
	return false, nil
}
