// Package testutil provides shared helpers for database-backed tests.
package testutil

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// NewSQLMock returns an sqlx database bound to a sqlmock connection. The
// connection is closed and its expectations asserted when the test ends.
func NewSQLMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})

	return sqlx.NewDb(db, "mysql"), mock
}

// ItemColumns is the review_items column set in schema order, for building
// sqlmock rows.
var ItemColumns = []string{
	"id", "user_id", "question_id", "repetitions", "easiness_factor",
	"interval_days", "next_review_at", "custom_reminder_active",
	"custom_reminder_at", "created_at", "updated_at",
}

// SnapshotColumns is the review_snapshots column set in schema order.
var SnapshotColumns = []string{
	"item_id", "user_id", "repetitions", "easiness_factor",
	"interval_days", "next_review_at", "taken_at",
}
