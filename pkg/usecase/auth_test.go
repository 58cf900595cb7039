package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/focuspoint-lab/focuspoint/pkg/repository/memory"
	"github.com/focuspoint-lab/focuspoint/pkg/usecase"
)

func TestAuthLoginAndValidate(t *testing.T) {
	repo := memory.New()
	auth := usecase.NewAuthUseCase(repo, "admin", "s3cret")
	ctx := context.Background()

	_, err := auth.Login(ctx, "admin", "wrong")
	gt.Error(t, err).Is(usecase.ErrInvalidCredentials)
	_, err = auth.Login(ctx, "someone", "s3cret")
	gt.Error(t, err).Is(usecase.ErrInvalidCredentials)

	token, err := auth.Login(ctx, "admin", "s3cret")
	gt.NoError(t, err).Required()
	gt.Value(t, token.ID).NotEqual("")

	gt.NoError(t, auth.ValidateToken(ctx, token.ID)).Required()

	gt.NoError(t, auth.Logout(ctx, token.ID)).Required()
	gt.Error(t, auth.ValidateToken(ctx, token.ID)).Is(usecase.ErrInvalidSession)
}

func TestAuthSessionExpiry(t *testing.T) {
	repo := memory.New()

	current := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	auth := usecase.NewAuthUseCase(repo, "admin", "s3cret",
		usecase.WithSessionTTL(time.Hour),
		usecase.WithAuthClock(func() time.Time { return current }),
	)
	ctx := context.Background()

	token, err := auth.Login(ctx, "admin", "s3cret")
	gt.NoError(t, err).Required()
	gt.NoError(t, auth.ValidateToken(ctx, token.ID)).Required()

	current = current.Add(2 * time.Hour)
	gt.Error(t, auth.ValidateToken(ctx, token.ID)).Is(usecase.ErrInvalidSession)

	// the expired session is removed, not just rejected
	_, err = repo.GetToken(ctx, token.ID)
	gt.Error(t, err).Is(memory.ErrNotFound)
}
