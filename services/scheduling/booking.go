package scheduling

import (
	"context"
	"fmt"
	"time"

	"serenibook/models"
	"serenibook/services/availability"
	"serenibook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking validates the request, runs the conflict check, persists the
// booking, drops the day's cached availability and enqueues a reminder.
//
// The conflict check is a pure decision over a snapshot; the unique
// confirmed-slot index in the scheduler repository is what actually serializes
// two concurrent requests racing for the same start time.
func (s *DefaultScheduleService) CreateBooking(ctx context.Context, input models.BookingInput) (*models.Booking, error) {
	logger := utils.GetLogger()

	start, err := availability.ParseClock(input.Start)
	if err != nil {
		return nil, err
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return nil, &availability.ValidationError{Message: fmt.Sprintf("malformed date %q, want YYYY-MM-DD", input.Date)}
	}

	svc, err := s.CatalogRepo.GetServiceByID(input.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load service: %w", err)
	}
	if svc.ProfessionalID != input.ProfessionalID {
		return nil, NewScheduleError("serviceMismatch", "service does not belong to this professional")
	}
	client, err := s.CatalogRepo.GetClientByID(input.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load client: %w", err)
	}

	end := start + svc.DurationMinutes
	check, err := s.CheckBookingConflicts(ctx, models.ConflictCheckInput{
		ProfessionalID: input.ProfessionalID,
		Date:           input.Date,
		Start:          input.Start,
		End:            availability.FormatClock(end),
	})
	if err != nil {
		return nil, err
	}
	if check.HasConflicts {
		return nil, &ConflictError{Result: check}
	}

	booking := &models.Booking{
		ID:             uuid.New().String(),
		ProfessionalID: input.ProfessionalID,
		ClientID:       client.ID,
		ClientName:     client.Name,
		ServiceID:      svc.ID,
		ServiceName:    svc.Name,
		Date:           input.Date,
		Start:          start,
		End:            end,
		Status:         models.BookingStatusConfirmed,
		CreatedAt:      time.Now(),
	}
	if err := s.SchedulerRepo.CreateBooking(booking); err != nil {
		return nil, err
	}

	s.invalidateDay(ctx, input.ProfessionalID, input.Date)

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleReminder(booking); err != nil {
			logger.Warn("failed to schedule reminder",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}

	logger.Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("professionalID", booking.ProfessionalID),
		zap.String("date", booking.Date),
		zap.String("start", input.Start))
	return booking, nil
}

// CancelBooking flips the booking to cancelled and frees its slot in the
// cached availability.
func (s *DefaultScheduleService) CancelBooking(ctx context.Context, bookingID string) error {
	booking, err := s.SchedulerRepo.GetBookingByID(bookingID)
	if err != nil {
		return err
	}
	if booking.Status == models.BookingStatusCancelled {
		return NewScheduleError("alreadyCancelled", "booking is already cancelled")
	}
	if err := s.SchedulerRepo.CancelBooking(bookingID); err != nil {
		return err
	}
	s.invalidateDay(ctx, booking.ProfessionalID, booking.Date)
	return nil
}
