package interfaces

import (
	"context"
	"time"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/model"
)

// ActionRepository defines the interface for Action data access and the
// action-side report aggregations. All ranges are closed inclusive
// [start, end]; no matching rows is a valid empty result, never an
// error.
type ActionRepository interface {
	// Create creates a new action with auto-generated ID
	Create(ctx context.Context, action *model.Action) (*model.Action, error)

	// ListByDate retrieves actions logged on one calendar day with
	// project and milestone names joined, newest first.
	ListByDate(ctx context.Context, day time.Time) ([]*model.ActionDetail, error)

	// Delete deletes an action by ID
	Delete(ctx context.Context, id int64) error

	// TotalMinutes sums all action minutes in the range
	TotalMinutes(ctx context.Context, start, end time.Time) (int, error)

	// MinutesByDate returns the sparse per-day sums for the range; days
	// without actions are absent from the map.
	MinutesByDate(ctx context.Context, start, end time.Time) (map[time.Time]int, error)

	// MinutesByProject returns per-project sums descending by minutes,
	// ties broken by ascending project ID. A limit of 0 means no limit.
	MinutesByProject(ctx context.Context, start, end time.Time, limit int) ([]model.ProjectMinutes, error)

	// MinutesByCategory returns per-category sums descending by minutes.
	// Projects without a category aggregate under a single nil-ID bucket.
	MinutesByCategory(ctx context.Context, start, end time.Time) ([]model.CategoryMinutes, error)
}
