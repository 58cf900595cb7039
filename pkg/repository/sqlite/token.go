package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/model"
)

func (s *SQLite) PutToken(ctx context.Context, token *model.SessionToken) error {
	createdAt := token.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO session_tokens (id, expires_at, created_at) VALUES (?, ?, ?)`,
		token.ID, token.ExpiresAt.Format(time.RFC3339), createdAt.Format(time.RFC3339),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to store session token")
	}
	return nil
}

func (s *SQLite) GetToken(ctx context.Context, tokenID string) (*model.SessionToken, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, expires_at, created_at FROM session_tokens WHERE id = ?`, tokenID,
	)

	var (
		token     model.SessionToken
		expiresAt string
		createdAt string
	)
	if err := row.Scan(&token.ID, &expiresAt, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, goerr.Wrap(ErrNotFound, "session token not found")
		}
		return nil, goerr.Wrap(err, "failed to scan session token")
	}

	expires, err := time.Parse(time.RFC3339, expiresAt)
	if err != nil {
		return nil, goerr.Wrap(err, "corrupted expires_at column")
	}
	created, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, goerr.Wrap(err, "corrupted created_at column")
	}
	token.ExpiresAt = expires
	token.CreatedAt = created
	return &token, nil
}

func (s *SQLite) DeleteToken(ctx context.Context, tokenID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session_tokens WHERE id = ?`, tokenID)
	if err != nil {
		return goerr.Wrap(err, "failed to delete session token")
	}
	return nil
}
