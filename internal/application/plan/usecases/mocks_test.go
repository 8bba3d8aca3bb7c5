package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/arbor-inc/arbor/internal/domain/plan"
)

type mockPlanRepo struct {
	plans     map[uuid.UUID]*plan.Plan
	createErr error
	updateErr error
}

func newMockPlanRepo() *mockPlanRepo {
	return &mockPlanRepo{plans: make(map[uuid.UUID]*plan.Plan)}
}

func (m *mockPlanRepo) Create(_ context.Context, p *plan.Plan) error {
	if m.createErr != nil {
		return m.createErr
	}
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
	if m.updateErr != nil {
		return m.updateErr
	}
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

type mockLimitPolicyRepo struct {
	policies map[uuid.UUID]*plan.LimitPolicy
}

func newMockLimitPolicyRepo() *mockLimitPolicyRepo {
	return &mockLimitPolicyRepo{policies: make(map[uuid.UUID]*plan.LimitPolicy)}
}

func (m *mockLimitPolicyRepo) Create(_ context.Context, lp *plan.LimitPolicy) error {
	m.policies[lp.ID()] = lp
	return nil
}

func (m *mockLimitPolicyRepo) GetByID(_ context.Context, id uuid.UUID) (*plan.LimitPolicy, error) {
	lp, ok := m.policies[id]
	if !ok {
		return nil, plan.ErrLimitPolicyNotFound
	}
	return lp, nil
}

func (m *mockLimitPolicyRepo) Update(_ context.Context, lp *plan.LimitPolicy) error {
	if _, ok := m.policies[lp.ID()]; !ok {
		return plan.ErrLimitPolicyNotFound
	}
	m.policies[lp.ID()] = lp
	return nil
}

func (m *mockLimitPolicyRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.policies[id]; !ok {
		return plan.ErrLimitPolicyNotFound
	}
	delete(m.policies, id)
	return nil
}

func (m *mockLimitPolicyRepo) ListByTenantID(_ context.Context, tenantID uuid.UUID) ([]*plan.LimitPolicy, error) {
	var out []*plan.LimitPolicy
	for _, lp := range m.policies {
		if lp.TenantID() == tenantID {
			out = append(out, lp)
		}
	}
	return out, nil
}

func (m *mockLimitPolicyRepo) ExistsByMetricAndTenant(_ context.Context, metric string, tenantID uuid.UUID) (bool, error) {
	for _, lp := range m.policies {
		if lp.Metric() == metric && lp.TenantID() == tenantID {
			return true, nil
		}
	}
	return false, nil
}

type mockAttachmentRepo struct {
	attachments map[uuid.UUID]*plan.Attachment
}

func newMockAttachmentRepo() *mockAttachmentRepo {
	return &mockAttachmentRepo{attachments: make(map[uuid.UUID]*plan.Attachment)}
}

func (m *mockAttachmentRepo) Create(_ context.Context, a *plan.Attachment) error {
	m.attachments[a.ID()] = a
	return nil
}

func (m *mockAttachmentRepo) GetByID(_ context.Context, id uuid.UUID) (*plan.Attachment, error) {
	a, ok := m.attachments[id]
	if !ok {
		return nil, plan.ErrAttachmentNotFound
	}
	return a, nil
}

func (m *mockAttachmentRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.attachments[id]; !ok {
		return plan.ErrAttachmentNotFound
	}
	delete(m.attachments, id)
	return nil
}

func (m *mockAttachmentRepo) ListByPlanID(_ context.Context, planID uuid.UUID) ([]*plan.Attachment, error) {
	var out []*plan.Attachment
	for _, a := range m.attachments {
		if a.PlanID() == planID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockAttachmentRepo) Exists(_ context.Context, planID, limitPolicyID uuid.UUID) (bool, error) {
	for _, a := range m.attachments {
		if a.PlanID() == planID && a.LimitPolicyID() == limitPolicyID {
			return true, nil
		}
	}
	return false, nil
}
