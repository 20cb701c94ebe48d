package availability

import (
	"fmt"
	"time"
)

// Booked kinds.
const (
	KindAppointment  = "appointment"
	KindGroupSession = "group-session"
)

// Window is a recurring weekly block during which a professional accepts
// bookings. Start and End are minutes from midnight, half-open [Start, End).
type Window struct {
	DayOfWeek time.Weekday
	Start     int
	End       int
}

// Interval is a half-open [Start, End) block in minutes from midnight.
type Interval struct {
	Start int
	End   int
}

// Booked is an existing commitment on the target date: an individual
// appointment or a group-class session.
type Booked struct {
	ID           string
	Kind         string // KindAppointment or KindGroupSession
	Title        string
	Counterparty string // client name for appointments, class label for sessions
	Start        int
	End          int
	Cancelled    bool
}

// Conflict describes one commitment overlapping a proposed interval, with
// enough detail to render a human-readable explanation.
type Conflict struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	Title        string `json:"title"`
	Counterparty string `json:"counterpartyLabel"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
}

// ConflictResult is the outcome of a conflict probe.
type ConflictResult struct {
	HasConflicts bool       `json:"hasConflicts"`
	Conflicts    []Conflict `json:"conflicts"`
}

// ValidationError marks caller input errors: malformed clock strings,
// non-chronological windows or intervals, non-positive durations.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Message)
}

func errValidation(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// Overlaps reports whether the half-open intervals [a0,a1) and [b0,b1)
// overlap. Touching intervals do not overlap. This is the single overlap
// predicate shared by slot generation and conflict detection.
func Overlaps(a0, a1, b0, b1 int) bool {
	return a0 < b1 && a1 > b0
}

// ParseClock converts a wall-clock "HH:MM" string to minutes from midnight.
// Exactly five bytes, zero-padded digits; anything else is a ValidationError.
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, errValidation("malformed time %q, want HH:MM", s)
	}
	for _, i := range [...]int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, errValidation("malformed time %q, want HH:MM", s)
		}
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	if h > 23 || m > 59 {
		return 0, errValidation("time %q out of range", s)
	}
	return h*60 + m, nil
}

// FormatClock converts minutes from midnight to a wall-clock "HH:MM" string.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
