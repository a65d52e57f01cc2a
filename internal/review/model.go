// Package review orchestrates review submissions for bookmarked questions:
// item resolution, snapshotting for undo, the custom-reminder override gate,
// scheduling, and the best-effort daily activity counter.
package review

import (
	"time"

	"github.com/quizkeep/quizkeep/internal/srs"
)

// Item is a bookmarked question together with its scheduling state.
// One row per (user, question).
type Item struct {
	ID                   int64      `db:"id"`
	UserID               string     `db:"user_id"`
	QuestionID           int64      `db:"question_id"`
	Repetitions          int        `db:"repetitions"`
	EaseFactor           float64    `db:"easiness_factor"`
	IntervalDays         int        `db:"interval_days"`
	NextReviewAt         time.Time  `db:"next_review_at"`
	CustomReminderActive bool       `db:"custom_reminder_active"`
	CustomReminderAt     *time.Time `db:"custom_reminder_at"`
	CreatedAt            time.Time  `db:"created_at"`
	UpdatedAt            time.Time  `db:"updated_at"`
}

// ScheduleState returns the item's memory-model state as scheduler input.
func (i *Item) ScheduleState() srs.ScheduleState {
	return srs.ScheduleState{
		Repetitions:    i.Repetitions,
		EaseFactor:     i.EaseFactor,
		IntervalDays:   i.IntervalDays,
		NextReviewDate: i.NextReviewAt,
	}
}

// DueAt returns the date the item should surface for review. An active
// custom reminder takes precedence over the scheduler-computed date.
func (i *Item) DueAt() time.Time {
	if i.CustomReminderActive && i.CustomReminderAt != nil {
		return *i.CustomReminderAt
	}
	return i.NextReviewAt
}

// Snapshot is the ScheduleState of an item immediately before its most
// recent review. At most one exists per item; each review overwrites it and
// an undo consumes it.
type Snapshot struct {
	ItemID       int64     `db:"item_id"`
	UserID       string    `db:"user_id"`
	Repetitions  int       `db:"repetitions"`
	EaseFactor   float64   `db:"easiness_factor"`
	IntervalDays int       `db:"interval_days"`
	NextReviewAt time.Time `db:"next_review_at"`
	TakenAt      time.Time `db:"taken_at"`
}

// ScheduleState returns the snapshotted state for restoration.
func (s *Snapshot) ScheduleState() srs.ScheduleState {
	return srs.ScheduleState{
		Repetitions:    s.Repetitions,
		EaseFactor:     s.EaseFactor,
		IntervalDays:   s.IntervalDays,
		NextReviewDate: s.NextReviewAt,
	}
}
