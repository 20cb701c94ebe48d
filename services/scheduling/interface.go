package scheduling

import (
	"context"

	"serenibook/models"
	"serenibook/services/availability"
)

// DayAvailability is the bookable start times of one professional for one
// service on one date.
type DayAvailability struct {
	ProfessionalID string   `json:"professionalId"`
	ServiceID      string   `json:"serviceId"`
	Date           string   `json:"date"`
	Slots          []string `json:"slots"` // "HH:MM" wall-clock start times
}

// ScheduleService orchestrates the availability engine against the stored
// windows, bookings and sessions of a professional.
type ScheduleService interface {
	GetDayAvailability(ctx context.Context, professionalID, date, serviceID string) (DayAvailability, error)
	CheckBookingConflicts(ctx context.Context, input models.ConflictCheckInput) (availability.ConflictResult, error)
	CreateBooking(ctx context.Context, input models.BookingInput) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID string) error
	CreateGroupSession(ctx context.Context, input models.GroupSessionInput) (*models.GroupSession, error)
	RegisterForSession(ctx context.Context, sessionID, clientID string) (*models.GroupSession, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// ReminderScheduler enqueues an appointment reminder for later delivery.
type ReminderScheduler interface {
	ScheduleReminder(booking *models.Booking) error
}
