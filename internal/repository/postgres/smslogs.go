package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ignite/mersal-sms/internal/sender"
)

// SendLogRepo implements sender.LogStore against PostgreSQL.
type SendLogRepo struct{ db *sql.DB }

// NewSendLogRepo creates a Postgres-backed send log repository.
func NewSendLogRepo(db *sql.DB) *SendLogRepo { return &SendLogRepo{db: db} }

func (r *SendLogRepo) Record(ctx context.Context, entry *sender.SendLog) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sms_logs (id, account_id, recipients_count, status, response_data, message_template, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, entry.ID, entry.AccountID, entry.RecipientCount, entry.Status,
		[]byte(entry.GatewayResponse), entry.TemplatePrefix, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("record send log: %w", err)
	}
	return nil
}

// List returns the account's most recent send logs, newest first.
func (r *SendLogRepo) List(ctx context.Context, accountID string, limit int) ([]sender.SendLog, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, account_id, recipients_count, status, response_data, message_template, created_at
		FROM sms_logs
		WHERE account_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("list send logs: %w", err)
	}
	defer rows.Close()

	var out []sender.SendLog
	for rows.Next() {
		var entry sender.SendLog
		var response sql.NullString
		var template sql.NullString
		if err := rows.Scan(&entry.ID, &entry.AccountID, &entry.RecipientCount,
			&entry.Status, &response, &template, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan send log: %w", err)
		}
		if response.Valid {
			entry.GatewayResponse = []byte(response.String)
		}
		entry.TemplatePrefix = template.String
		out = append(out, entry)
	}
	return out, rows.Err()
}
