package config

import (
	"log/slog"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/interfaces"
	"github.com/focuspoint-lab/focuspoint/pkg/usecase"
)

// Auth holds CLI flags for the single-user login. Leaving the
// credentials empty disables authentication entirely.
type Auth struct {
	Username string `masq:"secret"`
	Password string `masq:"secret"`
	ttl      time.Duration
}

// Flags returns CLI flags for auth configuration
func (x *Auth) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "auth-username",
			Usage:       "Login username (empty disables authentication)",
			Category:    "Authentication",
			Sources:     cli.EnvVars("FOCUSPOINT_AUTH_USERNAME"),
			Destination: &x.Username,
		},
		&cli.StringFlag{
			Name:        "auth-password",
			Usage:       "Login password",
			Category:    "Authentication",
			Sources:     cli.EnvVars("FOCUSPOINT_AUTH_PASSWORD"),
			Destination: &x.Password,
		},
		&cli.DurationFlag{
			Name:        "auth-session-ttl",
			Usage:       "Session lifetime",
			Category:    "Authentication",
			Value:       24 * time.Hour,
			Sources:     cli.EnvVars("FOCUSPOINT_AUTH_SESSION_TTL"),
			Destination: &x.ttl,
		},
	}
}

func (x Auth) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("username.len", len(x.Username)),
		slog.Int("password.len", len(x.Password)),
		slog.Duration("session-ttl", x.ttl),
	)
}

// Enabled reports whether credentials are configured
func (x *Auth) Enabled() bool {
	return x.Username != "" && x.Password != ""
}

// Configure creates the AuthUseCase, or nil when auth is disabled
func (x *Auth) Configure(repo interfaces.Repository) *usecase.AuthUseCase {
	if !x.Enabled() {
		return nil
	}
	return usecase.NewAuthUseCase(repo, x.Username, x.Password,
		usecase.WithSessionTTL(x.ttl))
}
