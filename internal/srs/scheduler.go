// Package srs implements the spaced-repetition scheduler for bookmarked
// questions. Schedule is a pure function: no clock, no database, no logger.
package srs

import (
	"math"
	"time"
)

const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3

	// Ease adjustments per rating, clamped at MinEaseFactor.
	lapseEasePenalty = 0.20
	hardEasePenalty  = 0.15
	easyEaseBonus    = 0.15
)

// Rating is the learner's self-reported recall quality for one review.
type Rating int

const (
	RatingForgot Rating = 1
	RatingHard   Rating = 2
	RatingGood   Rating = 3
	RatingEasy   Rating = 4
)

// IsValid reports whether r is one of the four accepted ratings.
func (r Rating) IsValid() bool {
	return r >= RatingForgot && r <= RatingEasy
}

// ScheduleState is the persisted memory-model state for one reviewable item.
type ScheduleState struct {
	Repetitions    int       `json:"repetitions" db:"repetitions"`
	EaseFactor     float64   `json:"easeFactor" db:"easiness_factor"`
	IntervalDays   int       `json:"intervalDays" db:"interval_days"`
	NextReviewDate time.Time `json:"nextReviewDate" db:"next_review_at"`
}

// Schedule computes the state after one review. rating must be a valid
// Rating (the caller validates; see review.Service). pacing is the user's
// pacing mode in [-1, 1]: -1 halves success intervals, +1 stretches them by
// half, 0 leaves them unchanged. Lapses are never stretched or compressed.
// The caller supplies now so results are reproducible in tests.
func Schedule(current ScheduleState, rating Rating, pacing float64, now time.Time) ScheduleState {
	ease := current.EaseFactor
	if ease == 0 {
		// Rows created before the scheduler ran for the first time.
		ease = DefaultEaseFactor
	}

	next := ScheduleState{}

	if rating == RatingForgot {
		next.Repetitions = 0
		next.EaseFactor = math.Max(MinEaseFactor, ease-lapseEasePenalty)
		next.IntervalDays = 1
	} else {
		next.Repetitions = current.Repetitions + 1

		switch rating {
		case RatingHard:
			ease -= hardEasePenalty
		case RatingEasy:
			ease += easyEaseBonus
		}
		next.EaseFactor = math.Max(MinEaseFactor, ease)

		var base float64
		switch next.Repetitions {
		case 1:
			base = 1
		case 2:
			base = 3
		default:
			base = float64(current.IntervalDays) * next.EaseFactor
		}

		multiplier := 1 + 0.5*pacing
		next.IntervalDays = roundIntervalDays(base * multiplier)
	}

	next.NextReviewDate = now.AddDate(0, 0, next.IntervalDays)
	return next
}

// roundIntervalDays rounds to the nearest whole day with a floor of one day.
func roundIntervalDays(days float64) int {
	rounded := int(math.Round(days))
	if rounded < 1 {
		return 1
	}
	return rounded
}
