package interfaces

import (
	"context"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/model"
)

// DependencyRepository defines the interface for Dependency data access
type DependencyRepository interface {
	// Create creates a new dependency edge with auto-generated ID
	Create(ctx context.Context, dep *model.Dependency) (*model.Dependency, error)

	// Find retrieves an edge by its (project, from, to) triple, or nil
	// when no such edge exists.
	Find(ctx context.Context, projectID, fromID, toID int64) (*model.Dependency, error)

	// ListByProject retrieves all edges of one project
	ListByProject(ctx context.Context, projectID int64) ([]*model.Dependency, error)

	// Delete deletes an edge by ID
	Delete(ctx context.Context, id int64) error
}
