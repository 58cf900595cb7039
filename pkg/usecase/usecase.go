package usecase

import (
	"time"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/interfaces"
)

const defaultAppName = "FocusPoint"

type UseCases struct {
	repo       interfaces.Repository
	renderer   interfaces.Renderer
	appName    string
	reportsDir string
	now        func() time.Time

	Auth *AuthUseCase
}

type Option func(*UseCases)

// WithRenderer sets the report rendering collaborator
func WithRenderer(r interfaces.Renderer) Option {
	return func(uc *UseCases) {
		uc.renderer = r
	}
}

// WithAppName sets the display name used in generated reports
func WithAppName(name string) Option {
	return func(uc *UseCases) {
		uc.appName = name
	}
}

// WithReportsDir sets the directory generated report files are written to
func WithReportsDir(dir string) Option {
	return func(uc *UseCases) {
		uc.reportsDir = dir
	}
}

// WithAuth sets the authentication use case
func WithAuth(auth *AuthUseCase) Option {
	return func(uc *UseCases) {
		uc.Auth = auth
	}
}

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(uc *UseCases) {
		uc.now = now
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:       repo,
		appName:    defaultAppName,
		reportsDir: "reports",
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}
