package repository

import (
	"context"
	"database/sql"
	"time"
)

// TokenRepo persists and validates refresh tokens. Only the SHA-256
// hash of a token is stored. The subject column says whether the user
// id points at a customer ("GUEST") or an employee row.
type TokenRepo struct{ DB *sql.DB }

func NewTokenRepo(db *sql.DB) *TokenRepo { return &TokenRepo{DB: db} }

// StoreRefresh inserts a refresh token hash row for the given subject.
func (r *TokenRepo) StoreRefresh(ctx context.Context, userID uint64, subject, tokenHash string, exp time.Time) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO refresh_tokens (user_id, subject, token_hash, expires_at) VALUES (?,?,?,?)",
		userID, subject, tokenHash, exp)
	return err
}

// ValidateRefresh returns the owning user id and subject if a
// non-revoked, non-expired token with this hash exists.
func (r *TokenRepo) ValidateRefresh(ctx context.Context, tokenHash string) (uint64, string, error) {
	var (
		userID    uint64
		subject   string
		expiresAt time.Time
		revokedAt sql.NullTime
	)
	err := r.DB.QueryRowContext(ctx,
		"SELECT user_id, subject, expires_at, revoked_at FROM refresh_tokens WHERE token_hash=? LIMIT 1",
		tokenHash).Scan(&userID, &subject, &expiresAt, &revokedAt)
	if err != nil {
		return 0, "", err
	}
	if revokedAt.Valid {
		return 0, "", sql.ErrNoRows
	}
	if time.Now().UTC().After(expiresAt) {
		return 0, "", sql.ErrNoRows
	}
	return userID, subject, nil
}

// RevokeByHash marks a token as revoked.
func (r *TokenRepo) RevokeByHash(ctx context.Context, tokenHash string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE refresh_tokens SET revoked_at=NOW() WHERE token_hash=? AND revoked_at IS NULL",
		tokenHash)
	return err
}

// RevokeAllForUser revokes every active token the subject holds.
func (r *TokenRepo) RevokeAllForUser(ctx context.Context, userID uint64, subject string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE refresh_tokens SET revoked_at=NOW() WHERE user_id=? AND subject=? AND revoked_at IS NULL",
		userID, subject)
	return err
}
