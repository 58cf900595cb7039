package interfaces

import (
	"context"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/model"
)

// ReportFileRepository defines the interface for the generated report
// registry. The registry is append-only.
type ReportFileRepository interface {
	// Create records a generated report file with auto-generated ID
	Create(ctx context.Context, file *model.ReportFile) (*model.ReportFile, error)

	// Get retrieves a registry entry by ID
	Get(ctx context.Context, id int64) (*model.ReportFile, error)

	// List retrieves all registry entries, newest first by ID
	List(ctx context.Context) ([]*model.ReportFile, error)
}
