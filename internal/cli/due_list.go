// Package cli implements the interactive and reporting commands of the
// quizkeep binary.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/quizkeep/quizkeep/internal/review"
)

// DueLister returns a user's items ordered by effective due date.
// Implemented by review.Service.
type DueLister interface {
	ListDue(ctx context.Context, userID string, until time.Time, limit int) ([]review.Item, error)
}

// DueListCLI prints a user's review queue: overdue items in red, items due
// today in green, upcoming ones unstyled.
type DueListCLI struct {
	lister DueLister
	out    io.Writer
	now    func() time.Time
}

// NewDueListCLI creates a DueListCLI writing to out.
func NewDueListCLI(lister DueLister, out io.Writer) *DueListCLI {
	return &DueListCLI{
		lister: lister,
		out:    out,
		now:    time.Now,
	}
}

// WithClock overrides the clock for tests.
func (c *DueListCLI) WithClock(now func() time.Time) *DueListCLI {
	c.now = now
	return c
}

// Run lists up to limit items due within the coming week.
func (c *DueListCLI) Run(ctx context.Context, userID string, limit int) error {
	now := c.now()
	items, err := c.lister.ListDue(ctx, userID, now.AddDate(0, 0, 7), limit)
	if err != nil {
		return fmt.Errorf("lister.ListDue(%s) > %w", userID, err)
	}

	if len(items) == 0 {
		fmt.Fprintln(c.out, "No items due in the next 7 days.")
		return nil
	}

	red := color.New(color.FgRed)
	green := color.New(color.FgGreen)
	today := now.UTC().Truncate(24 * time.Hour)

	for _, item := range items {
		due := item.DueAt()
		line := fmt.Sprintf("question %d\tdue %s\t(%d reps, every %d days)",
			item.QuestionID, due.Format("2006-01-02"), item.Repetitions, item.IntervalDays)
		if item.CustomReminderActive {
			line += "\t[custom reminder]"
		}

		dueDay := due.UTC().Truncate(24 * time.Hour)
		switch {
		case dueDay.Before(today):
			red.Fprintln(c.out, line)
		case dueDay.Equal(today):
			green.Fprintln(c.out, line)
		default:
			fmt.Fprintln(c.out, line)
		}
	}

	return nil
}
