package interfaces

import (
	"context"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/model"
)

// ProjectRepository defines the interface for Project data access
type ProjectRepository interface {
	// Create creates a new project with auto-generated ID
	Create(ctx context.Context, project *model.Project) (*model.Project, error)

	// Get retrieves a project by ID with its category name joined
	Get(ctx context.Context, id int64) (*model.Project, error)

	// List retrieves projects ordered by name, optionally filtered by
	// category. A nil categoryID returns all projects.
	List(ctx context.Context, categoryID *int64) ([]*model.Project, error)

	// Update updates an existing project
	Update(ctx context.Context, project *model.Project) (*model.Project, error)

	// Delete deletes a project by ID
	Delete(ctx context.Context, id int64) error
}
