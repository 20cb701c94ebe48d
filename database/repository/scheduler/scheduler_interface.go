package schedulerRepo

import "serenibook/models"

// SchedulerRepository defines persistence operations for individual bookings
// and group-class sessions. Day queries return only active (non-cancelled)
// entries, scoped to one professional and one local date — the contract the
// availability engine expects its inputs to satisfy.
type SchedulerRepository interface {
	CreateBooking(booking *models.Booking) error
	GetBookingByID(bookingID string) (*models.Booking, error)
	CancelBooking(bookingID string) error
	GetActiveBookingsForDay(professionalID, date string) ([]models.Booking, error)

	CreateSession(session *models.GroupSession) error
	GetSessionByID(sessionID string) (*models.GroupSession, error)
	CancelSession(sessionID string) error
	GetActiveSessionsForDay(professionalID, date string) ([]models.GroupSession, error)
	AddSessionRegistration(sessionID, clientID string) error

	EnsureIndexes() error
}
