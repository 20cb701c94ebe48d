package availability

// CheckConflicts evaluates a proposed interval against the professional's
// existing appointments and group sessions on the same date. All overlapping
// commitments are collected, not just the first, so the caller can show the
// user every clash. Cancelled entries never conflict, and the entry whose ID
// equals excludeID is skipped — that is the booking being rescheduled.
//
// The caller must already have scoped appointments and sessions to a single
// professional and the target day; the engine does no coarse filtering.
func CheckConflicts(proposed Interval, appointments, sessions []Booked, excludeID string) (ConflictResult, error) {
	if proposed.Start >= proposed.End {
		return ConflictResult{}, errValidation("proposed interval %s-%s is not chronological",
			FormatClock(proposed.Start), FormatClock(proposed.End))
	}

	result := ConflictResult{Conflicts: []Conflict{}}
	collect := func(entries []Booked, kind string) {
		for _, b := range entries {
			if b.ID == excludeID || b.Cancelled {
				continue
			}
			if !Overlaps(proposed.Start, proposed.End, b.Start, b.End) {
				continue
			}
			result.Conflicts = append(result.Conflicts, Conflict{
				ID:           b.ID,
				Type:         kind,
				Title:        b.Title,
				Counterparty: b.Counterparty,
				StartTime:    FormatClock(b.Start),
				EndTime:      FormatClock(b.End),
			})
		}
	}
	collect(appointments, KindAppointment)
	collect(sessions, KindGroupSession)

	result.HasConflicts = len(result.Conflicts) > 0
	return result, nil
}
