package models

// ReminderPayload is the asynq task body for an appointment reminder.
type ReminderPayload struct {
	BookingID      string `json:"bookingId"`
	ProfessionalID string `json:"professionalId"`
	ClientName     string `json:"clientName"`
	ServiceName    string `json:"serviceName"`
	Date           string `json:"date"`
	Start          string `json:"start"` // "HH:MM"
}
