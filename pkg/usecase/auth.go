package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/interfaces"
	"github.com/focuspoint-lab/focuspoint/pkg/domain/model"
	"github.com/focuspoint-lab/focuspoint/pkg/utils/logging"
	"github.com/focuspoint-lab/focuspoint/pkg/utils/safe"
)

const defaultSessionTTL = 24 * time.Hour

// AuthUseCase implements single-user credential login with opaque
// session tokens stored in the repository.
type AuthUseCase struct {
	repo     interfaces.Repository
	username string
	password string
	ttl      time.Duration
	now      func() time.Time
}

// AuthOption is a functional option for AuthUseCase
type AuthOption func(*AuthUseCase)

// WithSessionTTL sets the session lifetime
func WithSessionTTL(ttl time.Duration) AuthOption {
	return func(uc *AuthUseCase) {
		uc.ttl = ttl
	}
}

// WithAuthClock overrides the time source
func WithAuthClock(now func() time.Time) AuthOption {
	return func(uc *AuthUseCase) {
		uc.now = now
	}
}

func NewAuthUseCase(repo interfaces.Repository, username, password string, options ...AuthOption) *AuthUseCase {
	uc := &AuthUseCase{
		repo:     repo,
		username: username,
		password: password,
		ttl:      defaultSessionTTL,
		now:      time.Now,
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}

// Login verifies the credentials and issues a new session token
func (uc *AuthUseCase) Login(ctx context.Context, username, password string) (*model.SessionToken, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(uc.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(uc.password)) == 1
	if !userOK || !passOK {
		return nil, goerr.Wrap(ErrInvalidCredentials, "login rejected")
	}

	now := uc.now().UTC()
	token := &model.SessionToken{
		ID:        uuid.NewString(),
		ExpiresAt: now.Add(uc.ttl),
		CreatedAt: now,
	}
	if err := uc.repo.PutToken(ctx, token); err != nil {
		return nil, err
	}

	logging.From(ctx).Info("session issued", "expires_at", token.ExpiresAt)
	return token, nil
}

// ValidateToken checks that the session exists and is not expired.
// Expired sessions are removed as a side effect.
func (uc *AuthUseCase) ValidateToken(ctx context.Context, tokenID string) error {
	token, err := uc.repo.GetToken(ctx, tokenID)
	if err != nil {
		if errors.Is(err, interfaces.ErrRecordNotFound) {
			return goerr.Wrap(ErrInvalidSession, "unknown session")
		}
		return err
	}

	if token.IsExpired(uc.now()) {
		safe.Do(ctx, func() error {
			return uc.repo.DeleteToken(ctx, token.ID)
		})
		return goerr.Wrap(ErrInvalidSession, "session expired")
	}
	return nil
}

// Logout discards the session token
func (uc *AuthUseCase) Logout(ctx context.Context, tokenID string) error {
	return uc.repo.DeleteToken(ctx, tokenID)
}
