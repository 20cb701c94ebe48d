package scheduling

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"serenibook/models"
	"serenibook/services/availability"
)

type fakeProfessionalRepo struct {
	profs map[string]*models.Professional
}

func (f *fakeProfessionalRepo) Create(p *models.Professional) error { f.profs[p.ID] = p; return nil }
func (f *fakeProfessionalRepo) GetByID(id string) (*models.Professional, error) {
	p, ok := f.profs[id]
	if !ok {
		return nil, fmt.Errorf("professional with id %s not found", id)
	}
	return p, nil
}
func (f *fakeProfessionalRepo) GetByEmail(email string) (*models.Professional, error) {
	for _, p := range f.profs {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, errors.New("not found")
}
func (f *fakeProfessionalRepo) Update(id string, p *models.Professional) error { return nil }
func (f *fakeProfessionalRepo) Delete(id string) error                         { return nil }
func (f *fakeProfessionalRepo) SetAvailability(id string, w []models.AvailabilityWindow) error {
	f.profs[id].Availability = w
	return nil
}
func (f *fakeProfessionalRepo) UpdateSettings(id string, s models.ProfessionalSettings) error {
	return nil
}
func (f *fakeProfessionalRepo) UpdateTokenHash(id, hash string) error { return nil }
func (f *fakeProfessionalRepo) EnsureIndexes() error                  { return nil }

type fakeCatalogRepo struct {
	services map[string]*models.Service
	clients  map[string]*models.Client
}

func (f *fakeCatalogRepo) CreateService(s *models.Service) error { f.services[s.ID] = s; return nil }
func (f *fakeCatalogRepo) GetServiceByID(id string) (*models.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, fmt.Errorf("service with id %s not found", id)
	}
	return s, nil
}
func (f *fakeCatalogRepo) ListServices(pid string) ([]models.Service, error) { return nil, nil }
func (f *fakeCatalogRepo) UpdateService(id string, s *models.Service) error  { return nil }
func (f *fakeCatalogRepo) DeleteService(id string) error                     { return nil }
func (f *fakeCatalogRepo) CreateClient(c *models.Client) error               { f.clients[c.ID] = c; return nil }
func (f *fakeCatalogRepo) GetClientByID(id string) (*models.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, fmt.Errorf("client with id %s not found", id)
	}
	return c, nil
}
func (f *fakeCatalogRepo) ListClients(pid string) ([]models.Client, error) { return nil, nil }
func (f *fakeCatalogRepo) UpdateClient(id string, c *models.Client) error  { return nil }
func (f *fakeCatalogRepo) DeleteClient(id string) error                    { return nil }

type fakeSchedulerRepo struct {
	bookings map[string]*models.Booking
	sessions map[string]*models.GroupSession
}

func (f *fakeSchedulerRepo) CreateBooking(b *models.Booking) error { f.bookings[b.ID] = b; return nil }
func (f *fakeSchedulerRepo) GetBookingByID(id string) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, errors.New("booking not found")
	}
	return b, nil
}
func (f *fakeSchedulerRepo) CancelBooking(id string) error {
	f.bookings[id].Status = models.BookingStatusCancelled
	return nil
}
func (f *fakeSchedulerRepo) GetActiveBookingsForDay(pid, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.ProfessionalID == pid && b.Date == date && b.Status != models.BookingStatusCancelled {
			out = append(out, *b)
		}
	}
	return out, nil
}
func (f *fakeSchedulerRepo) CreateSession(s *models.GroupSession) error {
	f.sessions[s.ID] = s
	return nil
}
func (f *fakeSchedulerRepo) GetSessionByID(id string) (*models.GroupSession, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, errors.New("group session not found")
	}
	return s, nil
}
func (f *fakeSchedulerRepo) CancelSession(id string) error {
	f.sessions[id].Status = models.SessionStatusCancelled
	return nil
}
func (f *fakeSchedulerRepo) GetActiveSessionsForDay(pid, date string) ([]models.GroupSession, error) {
	var out []models.GroupSession
	for _, s := range f.sessions {
		if s.ProfessionalID == pid && s.Date == date && s.Status != models.SessionStatusCancelled {
			out = append(out, *s)
		}
	}
	return out, nil
}
func (f *fakeSchedulerRepo) AddSessionRegistration(sessionID, clientID string) error {
	s, ok := f.sessions[sessionID]
	if !ok || len(s.RegisteredIDs) >= s.Capacity {
		return errors.New("session full or missing")
	}
	s.RegisteredIDs = append(s.RegisteredIDs, clientID)
	return nil
}
func (f *fakeSchedulerRepo) EnsureIndexes() error { return nil }

func newTestService() (*DefaultScheduleService, *fakeSchedulerRepo) {
	profRepo := &fakeProfessionalRepo{profs: map[string]*models.Professional{
		"pro-1": {
			ID:    "pro-1",
			Email: "sophie@serenibook.test",
			Name:  "Sophie",
			Availability: []models.AvailabilityWindow{
				{DayOfWeek: time.Monday, Start: "09:00", End: "12:00"},
			},
			BufferMinutes:   15,
			SlotGranularity: 15,
		},
	}}
	catRepo := &fakeCatalogRepo{
		services: map[string]*models.Service{
			"svc-1": {ID: "svc-1", ProfessionalID: "pro-1", Name: "Sophrology session", DurationMinutes: 30, Active: true},
		},
		clients: map[string]*models.Client{
			"cli-1": {ID: "cli-1", ProfessionalID: "pro-1", Name: "Alice Martin"},
		},
	}
	schedRepo := &fakeSchedulerRepo{
		bookings: map[string]*models.Booking{},
		sessions: map[string]*models.GroupSession{},
	}
	return &DefaultScheduleService{
		ProfessionalRepo: profRepo,
		CatalogRepo:      catRepo,
		SchedulerRepo:    schedRepo,
	}, schedRepo
}

const testMonday = "2026-09-07"

func TestGetDayAvailability(t *testing.T) {
	svc, schedRepo := newTestService()
	schedRepo.bookings["b1"] = &models.Booking{
		ID: "b1", ProfessionalID: "pro-1", ClientName: "Alice Martin",
		Date: testMonday, Start: 10 * 60, End: 10*60 + 30,
		Status: models.BookingStatusConfirmed,
	}

	got, err := svc.GetDayAvailability(context.Background(), "pro-1", testMonday, "svc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"09:00", "09:15", "09:30", "10:30", "10:45", "11:00", "11:15"}
	if !reflect.DeepEqual(got.Slots, want) {
		t.Fatalf("expected slots %v, got %v", want, got.Slots)
	}
}

func TestGetDayAvailability_OffDay(t *testing.T) {
	svc, _ := newTestService()

	got, err := svc.GetDayAvailability(context.Background(), "pro-1", "2026-09-06", "svc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Slots) != 0 {
		t.Fatalf("expected no slots on an off day, got %v", got.Slots)
	}
}

func TestGetDayAvailability_MalformedDate(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetDayAvailability(context.Background(), "pro-1", "07/09/2026", "svc-1")
	var vErr *availability.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected a validation error, got %v", err)
	}
}

func TestCreateBooking_RejectsConflicts(t *testing.T) {
	svc, schedRepo := newTestService()
	schedRepo.bookings["b1"] = &models.Booking{
		ID: "b1", ProfessionalID: "pro-1", ClientName: "Paul Durand", ServiceName: "Massage",
		Date: testMonday, Start: 10 * 60, End: 11 * 60,
		Status: models.BookingStatusConfirmed,
	}

	_, err := svc.CreateBooking(context.Background(), models.BookingInput{
		ProfessionalID: "pro-1",
		ClientID:       "cli-1",
		ServiceID:      "svc-1",
		Date:           testMonday,
		Start:          "10:30",
	})
	var cErr *ConflictError
	if !errors.As(err, &cErr) {
		t.Fatalf("expected *ConflictError, got %v", err)
	}
	if len(cErr.Result.Conflicts) != 1 || cErr.Result.Conflicts[0].ID != "b1" {
		t.Fatalf("expected conflict against b1, got %+v", cErr.Result.Conflicts)
	}
}

func TestCreateBooking_Succeeds(t *testing.T) {
	svc, schedRepo := newTestService()

	booking, err := svc.CreateBooking(context.Background(), models.BookingInput{
		ProfessionalID: "pro-1",
		ClientID:       "cli-1",
		ServiceID:      "svc-1",
		Date:           testMonday,
		Start:          "09:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.End != 9*60+30 {
		t.Fatalf("expected end derived from service duration, got %d", booking.End)
	}
	if booking.ClientName != "Alice Martin" || booking.ServiceName != "Sophrology session" {
		t.Fatalf("expected denormalized names, got %+v", booking)
	}
	if _, ok := schedRepo.bookings[booking.ID]; !ok {
		t.Fatal("booking was not persisted")
	}
}

func TestCancelBooking_FreesSlot(t *testing.T) {
	svc, schedRepo := newTestService()
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, models.BookingInput{
		ProfessionalID: "pro-1", ClientID: "cli-1", ServiceID: "svc-1",
		Date: testMonday, Start: "09:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.CancelBooking(ctx, booking.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if schedRepo.bookings[booking.ID].Status != models.BookingStatusCancelled {
		t.Fatal("booking was not cancelled")
	}

	// The slot must be bookable again.
	res, err := svc.CheckBookingConflicts(ctx, models.ConflictCheckInput{
		ProfessionalID: "pro-1", Date: testMonday, Start: "09:00", End: "09:30",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.HasConflicts {
		t.Fatalf("cancelled booking still conflicts: %+v", res.Conflicts)
	}
}

func TestCreateGroupSession_ConflictsWithBookings(t *testing.T) {
	svc, schedRepo := newTestService()
	schedRepo.bookings["b1"] = &models.Booking{
		ID: "b1", ProfessionalID: "pro-1", ClientName: "Alice Martin", ServiceName: "Massage",
		Date: testMonday, Start: 9 * 60, End: 10 * 60,
		Status: models.BookingStatusConfirmed,
	}

	_, err := svc.CreateGroupSession(context.Background(), models.GroupSessionInput{
		ProfessionalID: "pro-1",
		Title:          "Group relaxation",
		Date:           testMonday,
		Start:          "09:30",
		End:            "10:30",
		Capacity:       8,
	})
	var cErr *ConflictError
	if !errors.As(err, &cErr) {
		t.Fatalf("expected *ConflictError, got %v", err)
	}
}

func TestRegisterForSession_CapacityEnforced(t *testing.T) {
	svc, schedRepo := newTestService()
	schedRepo.sessions["s1"] = &models.GroupSession{
		ID: "s1", ProfessionalID: "pro-1", Title: "Group relaxation",
		Date: testMonday, Start: 14 * 60, End: 15 * 60,
		Capacity: 1, Status: models.SessionStatusScheduled,
	}

	session, err := svc.RegisterForSession(context.Background(), "s1", "cli-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(session.RegisteredIDs) != 1 {
		t.Fatalf("expected one registration, got %v", session.RegisteredIDs)
	}

	if _, err := svc.RegisterForSession(context.Background(), "s1", "cli-1"); err == nil {
		t.Fatal("expected registration beyond capacity to fail")
	}
}
