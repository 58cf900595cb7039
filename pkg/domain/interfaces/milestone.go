package interfaces

import (
	"context"
	"time"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/model"
)

// MilestoneRepository defines the interface for Milestone data access,
// including the milestone-side report aggregations. Milestones with
// status done are excluded from overdue, upcoming and risk results.
type MilestoneRepository interface {
	// Create creates a new milestone with auto-generated ID
	Create(ctx context.Context, milestone *model.Milestone) (*model.Milestone, error)

	// Get retrieves a milestone by ID
	Get(ctx context.Context, id int64) (*model.Milestone, error)

	// ListByProject retrieves a project's milestones ordered by end date
	// then name
	ListByProject(ctx context.Context, projectID int64) ([]*model.Milestone, error)

	// Update updates an existing milestone
	Update(ctx context.Context, milestone *model.Milestone) (*model.Milestone, error)

	// Delete deletes a milestone by ID
	Delete(ctx context.Context, id int64) error

	// HealthCounts returns per-project counts of overdue milestones
	// (end date before ref) and at-risk milestones (end date within
	// lookaheadDays of ref and completion under 60%).
	HealthCounts(ctx context.Context, ref time.Time, lookaheadDays int) (map[int64]model.MilestoneHealthCount, error)

	// Overdue returns milestones with end date before ref, ascending by
	// end date, joined with project and category. DaysLate is measured
	// against ref. A limit of 0 means no limit.
	Overdue(ctx context.Context, ref time.Time, limit int) ([]model.OverdueMilestone, error)

	// Upcoming returns milestones with end date in [start, end],
	// ascending by end date. A limit of 0 means no limit.
	Upcoming(ctx context.Context, start, end time.Time, limit int) ([]model.UpcomingMilestone, error)

	// ProgressOverview returns per-project average percent-complete and
	// milestone counts.
	ProgressOverview(ctx context.Context) (map[int64]model.ProjectProgress, error)
}
