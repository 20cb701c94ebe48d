package cron

import (
	"encoding/json"
	"fmt"
	"time"

	"serenibook/config"
	"serenibook/models"
	"serenibook/services/availability"

	"github.com/hibiken/asynq"
)

// AsynqReminderScheduler enqueues reminder tasks for future delivery.
type AsynqReminderScheduler struct {
	client *asynq.Client
}

// NewAsynqReminderScheduler constructs a scheduler backed by the reminder queue.
func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	return &AsynqReminderScheduler{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

// ScheduleReminder enqueues a reminder to fire before the appointment starts.
// Appointments starting within the lead window get no reminder.
func (s *AsynqReminderScheduler) ScheduleReminder(booking *models.Booking) error {
	day, err := time.ParseInLocation("2006-01-02", booking.Date, time.Local)
	if err != nil {
		return fmt.Errorf("invalid booking date %q: %w", booking.Date, err)
	}
	startAt := day.Add(time.Duration(booking.Start) * time.Minute)
	fireAt := startAt.Add(-time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute)
	if fireAt.Before(time.Now()) {
		return nil
	}

	payload, err := json.Marshal(models.ReminderPayload{
		BookingID:      booking.ID,
		ProfessionalID: booking.ProfessionalID,
		ClientName:     booking.ClientName,
		ServiceName:    booking.ServiceName,
		Date:           booking.Date,
		Start:          availability.FormatClock(booking.Start),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeReminderSend, payload)
	if _, err := s.client.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder for booking %s: %w", booking.ID, err)
	}
	return nil
}
