package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/quizkeep/quizkeep/internal/srs"
)

// ItemRepository defines persistence operations for review items and their
// undo snapshots. Methods take an sqlx.ExtContext so the service can run
// them inside a single transaction.
type ItemRepository interface {
	ResolveForUpdate(ctx context.Context, q sqlx.ExtContext, ref, userID string) (*Item, error)
	UpdateSchedule(ctx context.Context, q sqlx.ExtContext, itemID int64, state srs.ScheduleState, clearOverride bool) error
	SaveSnapshot(ctx context.Context, q sqlx.ExtContext, snapshot *Snapshot) error
	FindSnapshotForUpdate(ctx context.Context, q sqlx.ExtContext, itemID int64) (*Snapshot, error)
	DeleteSnapshot(ctx context.Context, q sqlx.ExtContext, itemID int64) error
	FindDue(ctx context.Context, q sqlx.ExtContext, userID string, until time.Time, limit int) ([]Item, error)
}

// DBItemRepository implements ItemRepository using MySQL.
type DBItemRepository struct{}

// NewDBItemRepository creates a new DBItemRepository.
func NewDBItemRepository() *DBItemRepository {
	return &DBItemRepository{}
}

// ResolveForUpdate locates the item for a user and locks its row. The ref
// is tried as the item's own id first, then as the id of the underlying
// question. Both misses collapse into ErrItemNotFound so ownership of
// other users' items is not leaked.
func (r *DBItemRepository) ResolveForUpdate(ctx context.Context, q sqlx.ExtContext, ref, userID string) (*Item, error) {
	id, err := strconv.ParseInt(ref, 10, 64)
	if err != nil {
		return nil, ErrItemNotFound
	}

	var item Item
	err = sqlx.GetContext(ctx, q, &item,
		"SELECT * FROM review_items WHERE id = ? AND user_id = ? FOR UPDATE",
		id, userID)
	if err == nil {
		return &item, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("sqlx.GetContext(review_items by id) > %w", err)
	}

	err = sqlx.GetContext(ctx, q, &item,
		"SELECT * FROM review_items WHERE question_id = ? AND user_id = ? FOR UPDATE",
		id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sqlx.GetContext(review_items by question) > %w", err)
	}
	return &item, nil
}

// UpdateSchedule writes a new ScheduleState to the item's row. When
// clearOverride is set, the custom reminder columns are reset in the same
// statement so the override clear and the schedule write commit together.
func (r *DBItemRepository) UpdateSchedule(ctx context.Context, q sqlx.ExtContext, itemID int64, state srs.ScheduleState, clearOverride bool) error {
	query := `UPDATE review_items
		SET repetitions = ?, easiness_factor = ?, interval_days = ?, next_review_at = ?`
	if clearOverride {
		query += `, custom_reminder_active = 0, custom_reminder_at = NULL`
	}
	query += ` WHERE id = ?`

	result, err := q.ExecContext(ctx, query,
		state.Repetitions, state.EaseFactor, state.IntervalDays, state.NextReviewDate, itemID)
	if err != nil {
		return fmt.Errorf("q.ExecContext(update review_items) > %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("result.RowsAffected() > %w", err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// SaveSnapshot stores the pre-review state for the item, replacing any
// snapshot from an earlier review.
func (r *DBItemRepository) SaveSnapshot(ctx context.Context, q sqlx.ExtContext, snapshot *Snapshot) error {
	_, err := q.ExecContext(ctx,
		`INSERT INTO review_snapshots (item_id, user_id, repetitions, easiness_factor, interval_days, next_review_at, taken_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			repetitions = VALUES(repetitions),
			easiness_factor = VALUES(easiness_factor),
			interval_days = VALUES(interval_days),
			next_review_at = VALUES(next_review_at),
			taken_at = VALUES(taken_at)`,
		snapshot.ItemID, snapshot.UserID, snapshot.Repetitions, snapshot.EaseFactor,
		snapshot.IntervalDays, snapshot.NextReviewAt, snapshot.TakenAt)
	if err != nil {
		return fmt.Errorf("q.ExecContext(upsert review_snapshot) > %w", err)
	}
	return nil
}

// FindSnapshotForUpdate returns the item's snapshot with its row locked, or
// nil if no snapshot exists.
func (r *DBItemRepository) FindSnapshotForUpdate(ctx context.Context, q sqlx.ExtContext, itemID int64) (*Snapshot, error) {
	var snapshot Snapshot
	err := sqlx.GetContext(ctx, q, &snapshot,
		"SELECT * FROM review_snapshots WHERE item_id = ? FOR UPDATE", itemID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sqlx.GetContext(review_snapshot) > %w", err)
	}
	return &snapshot, nil
}

// DeleteSnapshot removes the item's snapshot after an undo consumed it.
func (r *DBItemRepository) DeleteSnapshot(ctx context.Context, q sqlx.ExtContext, itemID int64) error {
	if _, err := q.ExecContext(ctx,
		"DELETE FROM review_snapshots WHERE item_id = ?", itemID); err != nil {
		return fmt.Errorf("q.ExecContext(delete review_snapshot) > %w", err)
	}
	return nil
}

// FindDue returns the user's items whose effective due date (custom
// reminder when active, scheduled date otherwise) falls on or before until.
func (r *DBItemRepository) FindDue(ctx context.Context, q sqlx.ExtContext, userID string, until time.Time, limit int) ([]Item, error) {
	var items []Item
	err := sqlx.SelectContext(ctx, q, &items,
		`SELECT * FROM review_items
		WHERE user_id = ?
			AND (CASE WHEN custom_reminder_active = 1 AND custom_reminder_at IS NOT NULL
				THEN custom_reminder_at ELSE next_review_at END) <= ?
		ORDER BY CASE WHEN custom_reminder_active = 1 AND custom_reminder_at IS NOT NULL
			THEN custom_reminder_at ELSE next_review_at END
		LIMIT ?`,
		userID, until, limit)
	if err != nil {
		return nil, fmt.Errorf("sqlx.SelectContext(due review_items) > %w", err)
	}
	return items, nil
}
