package review

import "errors"

var (
	// ErrInvalidRating is returned when a rating is outside {1, 2, 3, 4}.
	// Rejected before any lookup; nothing is mutated.
	ErrInvalidRating = errors.New("rating must be between 1 and 4")

	// ErrItemNotFound is returned when neither the item id nor the
	// underlying question id resolves to an item owned by the requesting
	// user. Items owned by other users also report not found.
	ErrItemNotFound = errors.New("review item not found")

	// ErrNothingToUndo is returned when no snapshot exists for the item,
	// either because it was never reviewed or a previous undo consumed it.
	ErrNothingToUndo = errors.New("nothing to undo")
)
