package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/focuspoint-lab/focuspoint/pkg/cli/config"
	httpctrl "github.com/focuspoint-lab/focuspoint/pkg/controller/http"
	"github.com/focuspoint-lab/focuspoint/pkg/service/render"
	"github.com/focuspoint-lab/focuspoint/pkg/usecase"
	"github.com/focuspoint-lab/focuspoint/pkg/utils/logging"
	"github.com/focuspoint-lab/focuspoint/pkg/utils/safe"
)

const shutdownTimeout = 10 * time.Second

func cmdServe() *cli.Command {
	var addr string
	var appCfg config.AppConfig
	var repoCfg config.Repository
	var authCfg config.Auth

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("FOCUSPOINT_ADDR"),
			Destination: &addr,
		},
	}
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, authCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := appCfg.Configure(); err != nil {
				return err
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			if err := appCfg.SeedCategories(ctx, repo); err != nil {
				return goerr.Wrap(err, "failed to seed categories")
			}

			renderer, err := render.NewHTML()
			if err != nil {
				return err
			}

			opts := []usecase.Option{
				usecase.WithRenderer(renderer),
				usecase.WithAppName(appCfg.AppName),
				usecase.WithReportsDir(appCfg.ReportsDir),
			}
			if auth := authCfg.Configure(repo); auth != nil {
				opts = append(opts, usecase.WithAuth(auth))
			} else {
				logging.Default().Warn("Authentication is disabled")
			}
			uc := usecase.New(repo, opts...)

			srv := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server",
					"addr", addr,
					"backend", repoCfg.Backend(),
					"auth", authCfg,
				)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
			}()

			select {
			case err := <-errCh:
				return goerr.Wrap(err, "HTTP server failed")
			case <-ctx.Done():
			}

			logging.Default().Info("Shutting down HTTP server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown HTTP server")
			}
			return nil
		},
	}
}
