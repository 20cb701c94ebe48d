package models

import "time"

// Booking statuses.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking represents a confirmed individual appointment.
type Booking struct {
	ID             string    `bson:"id" json:"id"`
	ProfessionalID string    `bson:"professional_id" json:"professionalId"`
	ClientID       string    `bson:"client_id" json:"clientId"`
	ClientName     string    `bson:"client_name" json:"clientName"`
	ServiceID      string    `bson:"service_id" json:"serviceId"`
	ServiceName    string    `bson:"service_name" json:"serviceName"`
	Date           string    `bson:"date" json:"date"`   // "YYYY-MM-DD", professional-local
	Start          int       `bson:"start" json:"start"` // minutes from midnight
	End            int       `bson:"end" json:"end"`     // minutes from midnight
	Status         string    `bson:"status" json:"status"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
}

// BookingInput is the creation payload. Start is a wall-clock "HH:MM" string;
// the end is derived from the service duration.
type BookingInput struct {
	ProfessionalID string `json:"professionalId" binding:"required"`
	ClientID       string `json:"clientId" binding:"required"`
	ServiceID      string `json:"serviceId" binding:"required"`
	Date           string `json:"date" binding:"required"` // "YYYY-MM-DD"
	Start          string `json:"start" binding:"required"`
}

// ConflictCheckInput is the payload for an explicit conflict probe, used when
// creating or rescheduling a booking from the agenda UI.
type ConflictCheckInput struct {
	ProfessionalID string `json:"professionalId" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Start          string `json:"start" binding:"required"`
	End            string `json:"end" binding:"required"`
	ExcludeID      string `json:"excludeId,omitempty"`
}
