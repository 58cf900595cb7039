package config

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/interfaces"
	"github.com/focuspoint-lab/focuspoint/pkg/domain/model"
	"github.com/focuspoint-lab/focuspoint/pkg/utils/logging"
)

// AppConfig represents the application configuration, loadable from a
// TOML file. Flags override file values.
type AppConfig struct {
	path string

	AppName    string     `toml:"app_name"`
	ReportsDir string     `toml:"reports_dir"`
	Categories []Category `toml:"category"`
}

// Category represents a seed category created at startup when missing
type Category struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
}

// Validate checks if the Category is valid
func (c *Category) Validate() error {
	if c.Name == "" {
		return goerr.Wrap(ErrMissingName, "category name is required")
	}
	return nil
}

// Flags returns CLI flags for application configuration
func (a *AppConfig) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to TOML configuration file",
			Category:    "Application",
			Sources:     cli.EnvVars("FOCUSPOINT_CONFIG"),
			Destination: &a.path,
		},
		&cli.StringFlag{
			Name:        "app-name",
			Usage:       "Display name used in generated reports",
			Category:    "Application",
			Value:       "FocusPoint",
			Sources:     cli.EnvVars("FOCUSPOINT_APP_NAME"),
			Destination: &a.AppName,
		},
		&cli.StringFlag{
			Name:        "reports-dir",
			Usage:       "Directory generated report files are written to",
			Category:    "Application",
			Value:       "reports",
			Sources:     cli.EnvVars("FOCUSPOINT_REPORTS_DIR"),
			Destination: &a.ReportsDir,
		},
	}
}

// Validate checks if the AppConfig is valid
func (a *AppConfig) Validate() error {
	seen := make(map[string]bool)
	for _, cat := range a.Categories {
		if err := cat.Validate(); err != nil {
			return err
		}
		if seen[cat.Name] {
			return goerr.Wrap(ErrInvalidConfig, "duplicate category name", goerr.V(CategoryKey, cat.Name))
		}
		seen[cat.Name] = true
	}
	return nil
}

// Configure loads the TOML file when one is given. File values fill
// fields the flags left at their defaults, except the category seeds
// which come from the file only.
func (a *AppConfig) Configure() error {
	if a.path == "" {
		return nil
	}

	// #nosec G304 - path is provided by CLI argument
	data, err := os.ReadFile(a.path)
	if err != nil {
		return goerr.Wrap(ErrConfigNotFound, "failed to read config file", goerr.V(ConfigPathKey, a.path))
	}

	var fileCfg AppConfig
	if err := toml.Unmarshal(data, &fileCfg); err != nil {
		return goerr.Wrap(err, "failed to parse TOML config", goerr.V(ConfigPathKey, a.path))
	}

	if fileCfg.AppName != "" {
		a.AppName = fileCfg.AppName
	}
	if fileCfg.ReportsDir != "" {
		a.ReportsDir = fileCfg.ReportsDir
	}
	a.Categories = fileCfg.Categories

	return a.Validate()
}

// SeedCategories creates the configured categories that do not exist
// yet, matching by name.
func (a *AppConfig) SeedCategories(ctx context.Context, repo interfaces.Repository) error {
	if len(a.Categories) == 0 {
		return nil
	}

	existing, err := repo.Categories().List(ctx)
	if err != nil {
		return err
	}
	byName := make(map[string]bool, len(existing))
	for _, c := range existing {
		byName[c.Name] = true
	}

	for _, seed := range a.Categories {
		if byName[seed.Name] {
			continue
		}
		if _, err := repo.Categories().Create(ctx, &model.Category{
			Name:        seed.Name,
			Description: seed.Description,
		}); err != nil {
			return goerr.Wrap(err, "failed to seed category", goerr.V(CategoryKey, seed.Name))
		}
		logging.Default().Info("Seeded category", "name", seed.Name)
	}
	return nil
}
