package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/interfaces"
	"github.com/focuspoint-lab/focuspoint/pkg/repository/memory"
	"github.com/focuspoint-lab/focuspoint/pkg/repository/sqlite"
	"github.com/focuspoint-lab/focuspoint/pkg/utils/logging"
)

// Repository holds CLI flags for repository backend configuration
type Repository struct {
	backend string
	dbPath  string
}

// Flags returns CLI flags for repository configuration
func (r *Repository) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repository-backend",
			Usage:       "Repository backend type (sqlite or memory)",
			Category:    "Repository",
			Value:       "sqlite",
			Sources:     cli.EnvVars("FOCUSPOINT_REPOSITORY_BACKEND"),
			Destination: &r.backend,
		},
		&cli.StringFlag{
			Name:        "db-path",
			Usage:       "SQLite database file path",
			Category:    "Repository",
			Value:       "focuspoint.db",
			Sources:     cli.EnvVars("FOCUSPOINT_DB_PATH"),
			Destination: &r.dbPath,
		},
	}
}

// Backend returns the configured backend type
func (r *Repository) Backend() string {
	return r.backend
}

// DBPath returns the SQLite database file path
func (r *Repository) DBPath() string {
	return r.dbPath
}

// Configure initializes and returns a repository based on the configured
// backend. The caller is responsible for calling Close() on the returned
// repository.
func (r *Repository) Configure(ctx context.Context) (interfaces.Repository, error) {
	switch r.backend {
	case "sqlite", "":
		repo, err := sqlite.New(r.dbPath)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize sqlite repository")
		}
		logging.Default().Info("Using SQLite repository", "path", r.dbPath)
		return repo, nil

	case "memory":
		logging.Default().Info("Using in-memory repository (development mode)")
		return memory.New(), nil

	default:
		return nil, goerr.Wrap(ErrInvalidConfig, "unknown repository backend", goerr.V("backend", r.backend))
	}
}
