// Package activity maintains the per-user-per-day review counter backing
// streak displays.
package activity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// MySQL error numbers worth retrying: lock wait timeout and deadlock.
const (
	mysqlErrLockWaitTimeout = 1205
	mysqlErrDeadlock        = 1213
)

// DefaultRetryAttempts is how many times an increment is retried under
// lock contention before giving up.
const DefaultRetryAttempts uint = 2

// Counter is the sole writer of daily activity records. Increment is an
// atomic increment-or-create: concurrent reviews for the same user on the
// same day must all count.
type Counter struct {
	db               *sqlx.DB
	maxRetryAttempts uint
}

// NewCounter creates a Counter.
func NewCounter(db *sqlx.DB, retryAttempts uint) *Counter {
	return &Counter{db: db, maxRetryAttempts: retryAttempts}
}

// Increment adds one completed review for the user on the UTC calendar day
// containing at. The increment happens inside the upsert statement, never
// as a read-modify-write, so concurrent submissions cannot lose counts.
func (c *Counter) Increment(ctx context.Context, userID string, at time.Time) error {
	day := at.UTC().Format("2006-01-02")

	err := retry.Do(
		func() error {
			_, err := c.db.ExecContext(ctx,
				`INSERT INTO daily_activities (user_id, activity_date, reviews_completed)
				VALUES (?, ?, 1)
				ON DUPLICATE KEY UPDATE reviews_completed = reviews_completed + 1`,
				userID, day)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.maxRetryAttempts+1),
	)
	if err != nil {
		return fmt.Errorf("db.ExecContext(upsert daily_activity) > %w", err)
	}
	return nil
}

// ReviewsCompleted returns the count for the user on the UTC calendar day
// containing at, zero when no record exists.
func (c *Counter) ReviewsCompleted(ctx context.Context, userID string, at time.Time) (int, error) {
	day := at.UTC().Format("2006-01-02")

	var count int
	err := c.db.GetContext(ctx, &count,
		`SELECT COALESCE(SUM(reviews_completed), 0) FROM daily_activities
		WHERE user_id = ? AND activity_date = ?`,
		userID, day)
	if err != nil {
		return 0, fmt.Errorf("db.GetContext(daily_activity) > %w", err)
	}
	return count, nil
}

// isRetryableError reports whether err is a transient MySQL locking error.
func isRetryableError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) {
		return false
	}
	return mysqlErr.Number == mysqlErrLockWaitTimeout || mysqlErr.Number == mysqlErrDeadlock
}
