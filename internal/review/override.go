package review

// overrideDecision is the outcome of the custom-reminder gate for one
// review submission.
type overrideDecision struct {
	// clearOverride is set when the item carries an active custom
	// reminder. The reminder is a one-shot manual override: the first
	// review after it is set clears it and algorithmic scheduling
	// resumes. The scheduler itself always runs; the stored
	// ScheduleState was never suspended, only the surfaced date was.
	clearOverride bool
}

// resolveOverride decides whether this review must clear an active custom
// reminder as part of its transaction.
func resolveOverride(item *Item) overrideDecision {
	return overrideDecision{clearOverride: item.CustomReminderActive}
}
