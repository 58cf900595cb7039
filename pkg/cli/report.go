package cli

import (
	"context"
	"time"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/focuspoint-lab/focuspoint/pkg/cli/config"
	"github.com/focuspoint-lab/focuspoint/pkg/domain/types"
	"github.com/focuspoint-lab/focuspoint/pkg/service/render"
	"github.com/focuspoint-lab/focuspoint/pkg/usecase"
	"github.com/focuspoint-lab/focuspoint/pkg/utils/dates"
	"github.com/focuspoint-lab/focuspoint/pkg/utils/safe"
)

func cmdReport() *cli.Command {
	var period string
	var refDate string
	var appCfg config.AppConfig
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "period",
			Usage:       "Report period (weekly, monthly or yearly)",
			Value:       "weekly",
			Sources:     cli.EnvVars("FOCUSPOINT_REPORT_PERIOD"),
			Destination: &period,
		},
		&cli.StringFlag{
			Name:        "ref",
			Usage:       "Reference date in DD/MM/YYYY (default: today)",
			Destination: &refDate,
		},
	}
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:    "report",
		Aliases: []string{"r"},
		Usage:   "Generate a period report file without starting the server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			kind, err := types.ParsePeriodKind(period)
			if err != nil {
				return err
			}

			ref := dates.Midnight(time.Now().UTC())
			if refDate != "" {
				if ref, err = dates.ParseDate(refDate); err != nil {
					return err
				}
			}

			if err := appCfg.Configure(); err != nil {
				return err
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			renderer, err := render.NewHTML()
			if err != nil {
				return err
			}

			uc := usecase.New(repo,
				usecase.WithRenderer(renderer),
				usecase.WithAppName(appCfg.AppName),
				usecase.WithReportsDir(appCfg.ReportsDir),
			)

			report, err := uc.GenerateReport(ctx, kind, ref)
			if err != nil {
				return goerr.Wrap(err, "failed to generate report")
			}

			color.Green("✓ Report generated")
			color.White("  period: %s (%s to %s)",
				report.PeriodType,
				dates.FormatDate(report.PeriodStart),
				dates.FormatDate(report.PeriodEnd),
			)
			color.Cyan("  file:   %s", report.FilePath)
			return nil
		},
	}
}
