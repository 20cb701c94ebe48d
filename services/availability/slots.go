package availability

import "time"

// DefaultGranularity is the candidate tick, in minutes, used when a
// professional has not configured one.
const DefaultGranularity = 15

// GenerateSlots computes the bookable start times on date for a service of
// durationMin minutes, honoring the professional's bufferMin gap between
// consecutive bookings.
//
// Candidates are generated per matching window at every granularityMin tick
// from the window start while candidate+duration+buffer still fits inside the
// window. A candidate is rejected when its implied interval
// [candidate, candidate+duration) overlaps any active booked interval.
// Windows are processed in input order and are not deduplicated, so two
// overlapping windows on the same weekday may yield duplicate candidates.
//
// An empty result is not an error: it means the professional does not work
// that day, or every candidate is taken.
func GenerateSlots(windows []Window, date time.Time, durationMin, bufferMin, granularityMin int, booked []Booked) ([]string, error) {
	if durationMin <= 0 {
		return nil, errValidation("service duration must be positive, got %d", durationMin)
	}
	if bufferMin < 0 {
		return nil, errValidation("buffer must not be negative, got %d", bufferMin)
	}
	if granularityMin <= 0 {
		return nil, errValidation("slot granularity must be positive, got %d", granularityMin)
	}
	for _, w := range windows {
		if w.DayOfWeek < time.Sunday || w.DayOfWeek > time.Saturday {
			return nil, errValidation("window day-of-week %d out of range", w.DayOfWeek)
		}
		if w.Start >= w.End {
			return nil, errValidation("window %s-%s is not chronological", FormatClock(w.Start), FormatClock(w.End))
		}
	}
	for _, b := range booked {
		if b.Start >= b.End {
			return nil, errValidation("booked interval %s-%s is not chronological", FormatClock(b.Start), FormatClock(b.End))
		}
	}

	slots := []string{}
	for _, w := range windows {
		if w.DayOfWeek != date.Weekday() {
			continue
		}
		for cand := w.Start; cand+durationMin+bufferMin <= w.End; cand += granularityMin {
			if conflictsAny(cand, cand+durationMin, booked) {
				continue
			}
			slots = append(slots, FormatClock(cand))
		}
	}
	return slots, nil
}

// conflictsAny reports whether [start,end) overlaps any active commitment.
func conflictsAny(start, end int, booked []Booked) bool {
	for _, b := range booked {
		if b.Cancelled {
			continue
		}
		if Overlaps(start, end, b.Start, b.End) {
			return true
		}
	}
	return false
}
