package interfaces

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/model"
)

// ErrRecordNotFound is the shared not-found sentinel every repository
// backend wraps, so callers can test for it without knowing the backend.
var ErrRecordNotFound = goerr.New("record not found")

// Repository defines the interface for data persistence
type Repository interface {
	Categories() CategoryRepository
	Projects() ProjectRepository
	Milestones() MilestoneRepository
	Dependencies() DependencyRepository
	Actions() ActionRepository
	Reports() ReportFileRepository

	// Session token methods
	PutToken(ctx context.Context, token *model.SessionToken) error
	GetToken(ctx context.Context, tokenID string) (*model.SessionToken, error)
	DeleteToken(ctx context.Context, tokenID string) error

	Close() error
}
