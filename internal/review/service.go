package review

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/quizkeep/quizkeep/internal/settings"
	"github.com/quizkeep/quizkeep/internal/srs"
)

// ActivityRecorder records one completed review for a user on a calendar
// day. Implemented by activity.Counter.
type ActivityRecorder interface {
	Increment(ctx context.Context, userID string, day time.Time) error
}

// Result reports one review submission: the state before and after the
// scheduler ran and whether an active custom reminder was cleared.
type Result struct {
	Previous        srs.ScheduleState
	Updated         srs.ScheduleState
	OverrideCleared bool
}

// Service applies review submissions and undos. It is the sole writer of
// item schedule state and snapshots; all writes for one submission commit
// in a single transaction with the item's row locked, so two concurrent
// submissions for the same item serialize instead of both deriving from
// the same before-state.
type Service struct {
	db       *sqlx.DB
	items    ItemRepository
	pacing   settings.PacingReader
	activity ActivityRecorder
	now      func() time.Time
}

// NewService creates a review Service.
func NewService(db *sqlx.DB, items ItemRepository, pacing settings.PacingReader, activity ActivityRecorder) *Service {
	return &Service{
		db:       db,
		items:    items,
		pacing:   pacing,
		activity: activity,
		now:      time.Now,
	}
}

// WithClock overrides the service clock. Tests use a fixed clock so
// computed review dates are reproducible.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// SubmitReview applies one review of an item. ref may be the item id or
// the id of the underlying question. Within one transaction it snapshots
// the current state, clears an active custom reminder, runs the scheduler
// with the user's pacing preference, and persists the result. The daily
// activity increment happens after commit and never fails the submission.
func (s *Service) SubmitReview(ctx context.Context, ref, userID string, rating srs.Rating) (*Result, error) {
	if !rating.IsValid() {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRating, rating)
	}

	pacing, err := s.pacing.PacingMode(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("pacing.PacingMode(%s) > %w", userID, err)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	item, err := s.items.ResolveForUpdate(ctx, tx, ref, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	previous := item.ScheduleState()

	if err := s.items.SaveSnapshot(ctx, tx, &Snapshot{
		ItemID:       item.ID,
		UserID:       item.UserID,
		Repetitions:  previous.Repetitions,
		EaseFactor:   previous.EaseFactor,
		IntervalDays: previous.IntervalDays,
		NextReviewAt: previous.NextReviewDate,
		TakenAt:      now,
	}); err != nil {
		return nil, err
	}

	decision := resolveOverride(item)
	updated := srs.Schedule(previous, rating, pacing, now)

	if err := s.items.UpdateSchedule(ctx, tx, item.ID, updated, decision.clearOverride); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("tx.Commit() > %w", err)
	}

	if err := s.activity.Increment(ctx, userID, now); err != nil {
		slog.Default().Warn("failed to record daily review activity",
			slog.String("userID", userID),
			slog.Any("error", err),
		)
	}

	return &Result{
		Previous:        previous,
		Updated:         updated,
		OverrideCleared: decision.clearOverride,
	}, nil
}

// UndoLastReview restores the item's ScheduleState from its snapshot and
// consumes the snapshot, so a second undo without an intervening review
// returns ErrNothingToUndo. The scheduler's transformation is lossy (ease
// clamping, interval rounding), so only snapshot restoration is correct.
func (s *Service) UndoLastReview(ctx context.Context, ref, userID string) (*srs.ScheduleState, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	item, err := s.items.ResolveForUpdate(ctx, tx, ref, userID)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.items.FindSnapshotForUpdate(ctx, tx, item.ID)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, ErrNothingToUndo
	}

	restored := snapshot.ScheduleState()
	if err := s.items.UpdateSchedule(ctx, tx, item.ID, restored, false); err != nil {
		return nil, err
	}
	if err := s.items.DeleteSnapshot(ctx, tx, item.ID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("tx.Commit() > %w", err)
	}

	return &restored, nil
}

// ListDue returns up to limit items due for the user at or before until.
// Read-only; used by the CLI and the review-queue consumer.
func (s *Service) ListDue(ctx context.Context, userID string, until time.Time, limit int) ([]Item, error) {
	return s.items.FindDue(ctx, s.db, userID, until, limit)
}
