// Package postgres implements the persistence interfaces against
// PostgreSQL: the per-account gateway API key store and the send log.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// APIKeyRepo stores gateway API keys keyed by account. Accounts may
// accumulate several keys over time; the active one is always the most
// recently created key still flagged active.
type APIKeyRepo struct{ db *sql.DB }

// NewAPIKeyRepo creates a Postgres-backed API key repository.
func NewAPIKeyRepo(db *sql.DB) *APIKeyRepo { return &APIKeyRepo{db: db} }

// ActiveKey returns the account's current API key, or "" when the
// account has none. Absence is not an error — the orchestrator turns it
// into its own user-facing condition.
func (r *APIKeyRepo) ActiveKey(ctx context.Context, accountID string) (string, error) {
	var key string
	err := r.db.QueryRowContext(ctx, `
		SELECT api_key FROM api_keys
		WHERE account_id = $1 AND is_active = true
		ORDER BY created_at DESC
		LIMIT 1
	`, accountID).Scan(&key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("active api key: %w", err)
	}
	return key, nil
}

// Upsert stores a new key for the account, deactivating any previous
// ones so ActiveKey always resolves to the latest.
func (r *APIKeyRepo) Upsert(ctx context.Context, accountID, key string) (uuid.UUID, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, fmt.Errorf("begin upsert: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`UPDATE api_keys SET is_active = false, updated_at = NOW() WHERE account_id = $1 AND is_active = true`,
		accountID,
	); err != nil {
		return uuid.Nil, fmt.Errorf("deactivate old keys: %w", err)
	}

	id := uuid.New()
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO api_keys (id, account_id, api_key, is_active, created_at)
		VALUES ($1, $2, $3, true, NOW())
	`, id, accountID, key); err != nil {
		return uuid.Nil, fmt.Errorf("insert api key: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("commit upsert: %w", err)
	}
	return id, nil
}
