package notification

import (
	"context"

	"serenibook/models"
	"serenibook/utils"

	"go.uber.org/zap"
)

// Service delivers appointment reminders. Push and email transports live
// outside this repository; the default implementation records the reminder in
// the structured log.
type Service interface {
	SendBookingReminder(ctx context.Context, payload models.ReminderPayload) error
}

// LogNotificationService writes reminders to the application log.
type LogNotificationService struct{}

func (s *LogNotificationService) SendBookingReminder(ctx context.Context, payload models.ReminderPayload) error {
	logger := utils.GetLogger()
	logger.Info("booking reminder",
		zap.String("bookingID", payload.BookingID),
		zap.String("professionalID", payload.ProfessionalID),
		zap.String("client", payload.ClientName),
		zap.String("service", payload.ServiceName),
		zap.String("date", payload.Date),
		zap.String("start", payload.Start))
	return nil
}
