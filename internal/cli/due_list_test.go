package cli

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizkeep/quizkeep/internal/review"
)

type stubDueLister struct {
	items     []review.Item
	err       error
	gotUserID string
	gotUntil  time.Time
	gotLimit  int
}

func (s *stubDueLister) ListDue(ctx context.Context, userID string, until time.Time, limit int) ([]review.Item, error) {
	s.gotUserID = userID
	s.gotUntil = until
	s.gotLimit = limit
	return s.items, s.err
}

func TestDueListCLI_Run(t *testing.T) {
	color.NoColor = true

	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	reminderAt := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)

	t.Run("lists items due within a week", func(t *testing.T) {
		lister := &stubDueLister{
			items: []review.Item{
				{
					QuestionID:   101,
					Repetitions:  4,
					IntervalDays: 8,
					NextReviewAt: time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC),
				},
				{
					QuestionID:   102,
					Repetitions:  1,
					IntervalDays: 1,
					NextReviewAt: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
				},
				{
					QuestionID:           103,
					Repetitions:          2,
					IntervalDays:         3,
					NextReviewAt:         time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC),
					CustomReminderActive: true,
					CustomReminderAt:     &reminderAt,
				},
			},
		}

		var out bytes.Buffer
		cli := NewDueListCLI(lister, &out).WithClock(func() time.Time { return now })
		require.NoError(t, cli.Run(context.Background(), "user-1", 20))

		assert.Equal(t, "user-1", lister.gotUserID)
		assert.Equal(t, now.AddDate(0, 0, 7), lister.gotUntil)
		assert.Equal(t, 20, lister.gotLimit)

		assert.Equal(t,
			"question 101\tdue 2025-06-08\t(4 reps, every 8 days)\n"+
				"question 102\tdue 2025-06-10\t(1 reps, every 1 days)\n"+
				"question 103\tdue 2025-06-12\t(2 reps, every 3 days)\t[custom reminder]\n",
			out.String())
	})

	t.Run("custom reminder date replaces the scheduled date", func(t *testing.T) {
		lister := &stubDueLister{
			items: []review.Item{
				{
					QuestionID:           103,
					NextReviewAt:         time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
					CustomReminderActive: true,
					CustomReminderAt:     &reminderAt,
				},
			},
		}

		var out bytes.Buffer
		cli := NewDueListCLI(lister, &out).WithClock(func() time.Time { return now })
		require.NoError(t, cli.Run(context.Background(), "user-1", 20))

		assert.Contains(t, out.String(), "due 2025-06-12")
		assert.NotContains(t, out.String(), "2025-07-01")
	})

	t.Run("empty queue", func(t *testing.T) {
		var out bytes.Buffer
		cli := NewDueListCLI(&stubDueLister{}, &out).WithClock(func() time.Time { return now })
		require.NoError(t, cli.Run(context.Background(), "user-1", 20))

		assert.Equal(t, "No items due in the next 7 days.\n", out.String())
	})

	t.Run("lister failure", func(t *testing.T) {
		lister := &stubDueLister{err: fmt.Errorf("connection refused")}

		var out bytes.Buffer
		cli := NewDueListCLI(lister, &out).WithClock(func() time.Time { return now })
		err := cli.Run(context.Background(), "user-1", 20)
		require.Error(t, err)
		assert.ErrorContains(t, err, "connection refused")
	})
}
