package repository

import (
	"sync"

	"loan-planner/domain"
)

// PlanRepositoryMemory is an in-memory implementation of PlanRepository.
// Safe for concurrent handlers.
type PlanRepositoryMemory struct {
	mu    sync.RWMutex
	plans map[string]domain.LoanPlan
}

// NewPlanRepositoryMemory creates a new in-memory plan repository.
func NewPlanRepositoryMemory() *PlanRepositoryMemory {
	return &PlanRepositoryMemory{
		plans: make(map[string]domain.LoanPlan),
	}
}

// SavePlans stores the plans, overwriting existing entries with the same id.
func (r *PlanRepositoryMemory) SavePlans(plans []domain.LoanPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, plan := range plans {
		r.plans[plan.ID] = plan
	}
	return nil
}

// FindPlan returns the stored plan with the given id.
func (r *PlanRepositoryMemory) FindPlan(id string) (domain.LoanPlan, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	plan, ok := r.plans[id]
	return plan, ok
}
