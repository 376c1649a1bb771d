package repository

import "loan-planner/domain"

// PlanRepository records generated plan sets so later requests can reference
// plans by id (comparisons, chart overlays).
type PlanRepository interface {
	SavePlans(plans []domain.LoanPlan) error
	FindPlan(id string) (domain.LoanPlan, bool)
}
