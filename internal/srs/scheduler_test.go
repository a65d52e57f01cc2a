package srs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedule(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		current ScheduleState
		rating  Rating
		pacing  float64
		want    ScheduleState
	}{
		{
			name:    "good answer grows interval by ease factor",
			current: ScheduleState{Repetitions: 2, EaseFactor: 2.5, IntervalDays: 3},
			rating:  RatingGood,
			want: ScheduleState{
				Repetitions:    3,
				EaseFactor:     2.5,
				IntervalDays:   8, // round(3 * 2.5)
				NextReviewDate: now.AddDate(0, 0, 8),
			},
		},
		{
			name:    "lapse resets repetitions and requeues for tomorrow",
			current: ScheduleState{Repetitions: 2, EaseFactor: 2.5, IntervalDays: 3},
			rating:  RatingForgot,
			want: ScheduleState{
				Repetitions:    0,
				EaseFactor:     2.3,
				IntervalDays:   1,
				NextReviewDate: now.AddDate(0, 0, 1),
			},
		},
		{
			name:    "easy answer with relaxed pacing",
			current: ScheduleState{Repetitions: 2, EaseFactor: 2.5, IntervalDays: 3},
			rating:  RatingEasy,
			pacing:  1,
			want: ScheduleState{
				Repetitions:    3,
				EaseFactor:     2.65,
				IntervalDays:   12, // round(3 * 2.65 * 1.5)
				NextReviewDate: now.AddDate(0, 0, 12),
			},
		},
		{
			name:    "first success is always one day at standard pacing",
			current: ScheduleState{},
			rating:  RatingGood,
			want: ScheduleState{
				Repetitions:    1,
				EaseFactor:     2.5,
				IntervalDays:   1,
				NextReviewDate: now.AddDate(0, 0, 1),
			},
		},
		{
			name:    "second success is three days",
			current: ScheduleState{Repetitions: 1, EaseFactor: 2.5, IntervalDays: 1},
			rating:  RatingGood,
			want: ScheduleState{
				Repetitions:    2,
				EaseFactor:     2.5,
				IntervalDays:   3,
				NextReviewDate: now.AddDate(0, 0, 3),
			},
		},
		{
			name:    "intensive pacing halves the interval",
			current: ScheduleState{Repetitions: 2, EaseFactor: 2.5, IntervalDays: 3},
			rating:  RatingGood,
			pacing:  -1,
			want: ScheduleState{
				Repetitions:    3,
				EaseFactor:     2.5,
				IntervalDays:   4, // round(3 * 2.5 * 0.5)
				NextReviewDate: now.AddDate(0, 0, 4),
			},
		},
		{
			name:    "intensive pacing never drops below one day",
			current: ScheduleState{EaseFactor: 2.5},
			rating:  RatingGood,
			pacing:  -1,
			want: ScheduleState{
				Repetitions:    1,
				EaseFactor:     2.5,
				IntervalDays:   1, // round(1 * 0.5) floored to 1
				NextReviewDate: now.AddDate(0, 0, 1),
			},
		},
		{
			name:    "hard answer tightens ease",
			current: ScheduleState{Repetitions: 4, EaseFactor: 2.0, IntervalDays: 10},
			rating:  RatingHard,
			want: ScheduleState{
				Repetitions:    5,
				EaseFactor:     1.85,
				IntervalDays:   19, // round(10 * 1.85)
				NextReviewDate: now.AddDate(0, 0, 19),
			},
		},
		{
			name:    "ease factor is clamped at the floor on lapse",
			current: ScheduleState{Repetitions: 1, EaseFactor: 1.35, IntervalDays: 1},
			rating:  RatingForgot,
			want: ScheduleState{
				Repetitions:    0,
				EaseFactor:     MinEaseFactor,
				IntervalDays:   1,
				NextReviewDate: now.AddDate(0, 0, 1),
			},
		},
		{
			name:    "ease factor is clamped at the floor on hard answer",
			current: ScheduleState{Repetitions: 3, EaseFactor: 1.4, IntervalDays: 5},
			rating:  RatingHard,
			want: ScheduleState{
				Repetitions:    4,
				EaseFactor:     MinEaseFactor,
				IntervalDays:   7, // round(5 * 1.3)
				NextReviewDate: now.AddDate(0, 0, 7),
			},
		},
		{
			name:    "zero ease from a legacy row falls back to the default",
			current: ScheduleState{Repetitions: 2, IntervalDays: 3},
			rating:  RatingGood,
			want: ScheduleState{
				Repetitions:    3,
				EaseFactor:     2.5,
				IntervalDays:   8,
				NextReviewDate: now.AddDate(0, 0, 8),
			},
		},
		{
			name:    "lapse ignores pacing",
			current: ScheduleState{Repetitions: 5, EaseFactor: 2.5, IntervalDays: 30},
			rating:  RatingForgot,
			pacing:  1,
			want: ScheduleState{
				Repetitions:    0,
				EaseFactor:     2.3,
				IntervalDays:   1,
				NextReviewDate: now.AddDate(0, 0, 1),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Schedule(tt.current, tt.rating, tt.pacing, now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSchedule_Invariants(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	states := []ScheduleState{
		{},
		{Repetitions: 1, EaseFactor: 1.3, IntervalDays: 1},
		{Repetitions: 2, EaseFactor: 2.5, IntervalDays: 3},
		{Repetitions: 10, EaseFactor: 3.1, IntervalDays: 120},
	}
	pacings := []float64{-1, -0.5, 0, 0.5, 1}

	for _, state := range states {
		for rating := RatingForgot; rating <= RatingEasy; rating++ {
			for _, pacing := range pacings {
				got := Schedule(state, rating, pacing, now)

				assert.GreaterOrEqual(t, got.EaseFactor, MinEaseFactor)
				assert.GreaterOrEqual(t, got.IntervalDays, 1)
				assert.GreaterOrEqual(t, got.Repetitions, 0)
				assert.Equal(t, now.AddDate(0, 0, got.IntervalDays), got.NextReviewDate)

				if rating == RatingForgot {
					assert.Zero(t, got.Repetitions)
					assert.Equal(t, 1, got.IntervalDays)
				}
			}
		}
	}
}

func TestSchedule_PacingMonotonicity(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	current := ScheduleState{Repetitions: 3, EaseFactor: 2.2, IntervalDays: 7}

	for rating := RatingHard; rating <= RatingEasy; rating++ {
		previous := 0
		for pacing := -1.0; pacing <= 1.0; pacing += 0.1 {
			got := Schedule(current, rating, pacing, now)
			require.GreaterOrEqual(t, got.IntervalDays, previous,
				"interval must not shrink as pacing relaxes (rating %d, pacing %.1f)", rating, pacing)
			previous = got.IntervalDays
		}
	}
}

func TestSchedule_DoesNotMutateInput(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	current := ScheduleState{Repetitions: 2, EaseFactor: 2.5, IntervalDays: 3}
	before := current

	Schedule(current, RatingForgot, 0.5, now)
	assert.Equal(t, before, current)
}

func TestRating_IsValid(t *testing.T) {
	assert.False(t, Rating(0).IsValid())
	assert.False(t, Rating(5).IsValid())
	for rating := RatingForgot; rating <= RatingEasy; rating++ {
		assert.True(t, rating.IsValid())
	}
}
