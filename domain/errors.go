package domain

import "errors"

// Validation errors shared across the engine's services.
var (
	ErrInvalidAmount   = errors.New("loan amount must be positive")
	ErrNegativeAmount  = errors.New("amount cannot be negative")
	ErrInvalidRate     = errors.New("interest rate cannot be negative")
	ErrInvalidTerm     = errors.New("term must be a positive number of years")
	ErrInvalidInterval = errors.New("invalid summary interval")
	ErrInvalidPeriod   = errors.New("period is outside the schedule")
	ErrPlanNotFound    = errors.New("loan plan not found")
)
