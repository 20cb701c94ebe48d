package availability

import "testing"

func TestCheckConflicts_BoundaryTouchingIsNotAConflict(t *testing.T) {
	appointments := []Booked{
		{ID: "b1", Kind: KindAppointment, Title: "Shiatsu", Counterparty: "Alice Martin", Start: 10*60 + 30, End: 11 * 60},
	}

	res, err := CheckConflicts(Interval{Start: 10 * 60, End: 10*60 + 30}, appointments, nil, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.HasConflicts {
		t.Fatalf("touching intervals must not conflict, got %+v", res.Conflicts)
	}
}

func TestCheckConflicts_PartialOverlap(t *testing.T) {
	appointments := []Booked{
		{ID: "b1", Kind: KindAppointment, Title: "Shiatsu", Counterparty: "Alice Martin", Start: 9*60 + 45, End: 10*60 + 15},
	}

	res, err := CheckConflicts(Interval{Start: 10 * 60, End: 10*60 + 30}, appointments, nil, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.HasConflicts || len(res.Conflicts) != 1 {
		t.Fatalf("expected exactly one conflict, got %+v", res.Conflicts)
	}
	c := res.Conflicts[0]
	if c.ID != "b1" || c.Type != KindAppointment || c.StartTime != "09:45" || c.EndTime != "10:15" {
		t.Fatalf("conflict detail mismatch: %+v", c)
	}
}

func TestCheckConflicts_CollectsAllOverlaps(t *testing.T) {
	appointments := []Booked{
		{ID: "b1", Kind: KindAppointment, Counterparty: "Alice Martin", Start: 9 * 60, End: 10 * 60},
		{ID: "b2", Kind: KindAppointment, Counterparty: "Paul Durand", Start: 13 * 60, End: 14 * 60},
	}
	sessions := []Booked{
		{ID: "s1", Kind: KindGroupSession, Title: "Group relaxation", Start: 9*60 + 30, End: 10*60 + 30},
	}

	res, err := CheckConflicts(Interval{Start: 9 * 60, End: 10*60 + 30}, appointments, sessions, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Conflicts) != 2 {
		t.Fatalf("expected 2 conflicts, got %+v", res.Conflicts)
	}
	// Appointments are reported before sessions, each in input order.
	if res.Conflicts[0].ID != "b1" || res.Conflicts[1].ID != "s1" {
		t.Fatalf("conflict ordering mismatch: %+v", res.Conflicts)
	}
	if res.Conflicts[1].Type != KindGroupSession {
		t.Fatalf("expected group-session type, got %q", res.Conflicts[1].Type)
	}
}

func TestCheckConflicts_ExcludeID(t *testing.T) {
	appointments := []Booked{
		{ID: "b1", Kind: KindAppointment, Start: 10 * 60, End: 11 * 60},
	}

	// Rescheduling b1 onto its own current interval must not clash with itself.
	res, err := CheckConflicts(Interval{Start: 10 * 60, End: 11 * 60}, appointments, nil, "b1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.HasConflicts {
		t.Fatalf("excluded booking reported as conflict: %+v", res.Conflicts)
	}
}

func TestCheckConflicts_CancelledEntriesIgnored(t *testing.T) {
	appointments := []Booked{
		{ID: "b1", Kind: KindAppointment, Start: 10 * 60, End: 11 * 60, Cancelled: true},
	}

	res, err := CheckConflicts(Interval{Start: 10 * 60, End: 11 * 60}, appointments, nil, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.HasConflicts {
		t.Fatalf("cancelled booking reported as conflict: %+v", res.Conflicts)
	}
}

func TestCheckConflicts_RejectsNonChronologicalInterval(t *testing.T) {
	_, err := CheckConflicts(Interval{Start: 11 * 60, End: 10 * 60}, nil, nil, "")
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if _, ok := err.(*ValidationError); !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
}
