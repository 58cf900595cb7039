package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/focuspoint-lab/focuspoint/pkg/repository/sqlite"
	"github.com/focuspoint-lab/focuspoint/pkg/utils/logging"
)

func cmdMigrate() *cli.Command {
	var dbPath string

	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply database schema migrations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "db-path",
				Usage:       "SQLite database file path",
				Category:    "Repository",
				Value:       "focuspoint.db",
				Sources:     cli.EnvVars("FOCUSPOINT_DB_PATH"),
				Destination: &dbPath,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := sqlite.Migrate(dbPath); err != nil {
				return goerr.Wrap(err, "failed to apply migrations", goerr.V("path", dbPath))
			}
			logging.Default().Info("Migrations applied", "path", dbPath)
			return nil
		},
	}
}
