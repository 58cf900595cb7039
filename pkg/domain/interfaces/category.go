package interfaces

import (
	"context"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/model"
)

// CategoryRepository defines the interface for Category data access
type CategoryRepository interface {
	// Create creates a new category with auto-generated ID
	Create(ctx context.Context, category *model.Category) (*model.Category, error)

	// Get retrieves a category by ID
	Get(ctx context.Context, id int64) (*model.Category, error)

	// List retrieves all categories ordered by name
	List(ctx context.Context) ([]*model.Category, error)

	// Update updates an existing category
	Update(ctx context.Context, category *model.Category) (*model.Category, error)

	// Delete deletes a category by ID
	Delete(ctx context.Context, id int64) error
}
