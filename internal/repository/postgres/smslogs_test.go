package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignite/mersal-sms/internal/sender"
)

func TestRecord(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	entry := &sender.SendLog{
		ID:              uuid.New(),
		AccountID:       "acct-1",
		RecipientCount:  3,
		Status:          sender.StatusSent,
		GatewayResponse: []byte(`{"success":true}`),
		TemplatePrefix:  "Hi {name}",
		CreatedAt:       time.Now(),
	}

	mock.ExpectExec(`INSERT INTO sms_logs`).
		WithArgs(entry.ID, "acct-1", 3, sender.StatusSent, []byte(`{"success":true}`), "Hi {name}", entry.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewSendLogRepo(db)
	require.NoError(t, repo.Record(context.Background(), entry))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO sms_logs`).
		WillReturnError(errors.New("disk full"))

	repo := NewSendLogRepo(db)
	err = repo.Record(context.Background(), &sender.SendLog{ID: uuid.New(), AccountID: "acct-1"})
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	first := uuid.New()
	second := uuid.New()

	rows := sqlmock.NewRows([]string{
		"id", "account_id", "recipients_count", "status", "response_data", "message_template", "created_at",
	}).
		AddRow(first, "acct-1", 5, sender.StatusSent, `{"sent_count":5}`, "Hello {name}", now).
		AddRow(second, "acct-1", 2, sender.StatusFailed, nil, nil, now.Add(-time.Hour))

	mock.ExpectQuery(`SELECT id, account_id, recipients_count, status, response_data, message_template, created_at\s+FROM sms_logs`).
		WithArgs("acct-1", 10).
		WillReturnRows(rows)

	repo := NewSendLogRepo(db)
	logs, err := repo.List(context.Background(), "acct-1", 10)
	require.NoError(t, err)
	require.Len(t, logs, 2)

	assert.Equal(t, first, logs[0].ID)
	assert.Equal(t, 5, logs[0].RecipientCount)
	assert.JSONEq(t, `{"sent_count":5}`, string(logs[0].GatewayResponse))
	assert.Equal(t, "Hello {name}", logs[0].TemplatePrefix)

	assert.Equal(t, sender.StatusFailed, logs[1].Status)
	assert.Nil(t, logs[1].GatewayResponse)
	assert.Empty(t, logs[1].TemplatePrefix)
}

func TestListDefaultLimit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, account_id`).
		WithArgs("acct-1", 50).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "account_id", "recipients_count", "status", "response_data", "message_template", "created_at",
		}))

	repo := NewSendLogRepo(db)
	logs, err := repo.List(context.Background(), "acct-1", 0)
	require.NoError(t, err)
	assert.Empty(t, logs)
	assert.NoError(t, mock.ExpectationsWereMet())
}
