// Package settings reads per-user preferences consumed by the scheduler.
// The scheduler core only reads these; user-settings storage owns them.
package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=pacing.go -destination=../mocks/settings/mock_pacing.go -package=mock_settings

// PacingReader returns a user's pacing mode: a dial in [-1, 1] where -1 is
// the most intensive (shorter intervals) and +1 the most relaxed. Users
// without a stored preference get 0, the standard pace.
type PacingReader interface {
	PacingMode(ctx context.Context, userID string) (float64, error)
}

// DBPacingReader reads pacing preferences from the user_settings table.
type DBPacingReader struct {
	db *sqlx.DB
}

// NewDBPacingReader creates a new DBPacingReader.
func NewDBPacingReader(db *sqlx.DB) *DBPacingReader {
	return &DBPacingReader{db: db}
}

// PacingMode implements PacingReader.
func (r *DBPacingReader) PacingMode(ctx context.Context, userID string) (float64, error) {
	var pacing float64
	err := r.db.GetContext(ctx, &pacing,
		"SELECT pacing_mode FROM user_settings WHERE user_id = ?", userID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("db.GetContext(user_settings) > %w", err)
	}
	return clampPacing(pacing), nil
}

// clampPacing guards against out-of-range values written by older clients.
func clampPacing(pacing float64) float64 {
	if pacing < -1 {
		return -1
	}
	if pacing > 1 {
		return 1
	}
	return pacing
}
