package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// Not found errors
	ErrCategoryNotFound   = errors.New("category not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrMilestoneNotFound  = errors.New("milestone not found")
	ErrActionNotFound     = errors.New("action not found")
	ErrDependencyNotFound = errors.New("dependency not found")
	ErrReportNotFound     = errors.New("report not found")

	// Validation errors
	ErrInvalidInput      = errors.New("invalid input")
	ErrSelfDependency    = errors.New("a milestone cannot depend on itself")
	ErrMilestoneMismatch = errors.New("milestone belongs to a different project")
	ErrUnknownReportType = errors.New("unknown report type")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid or expired session")
)
