package models

import "time"

// Professional represents a wellness professional offering bookable services.
type Professional struct {
	ID              string               `bson:"id" json:"id"`
	Email           string               `bson:"email" json:"email"`
	Name            string               `bson:"name" json:"name"`
	HashedPassword  string               `bson:"hashed_password" json:"-"`
	Profession      string               `bson:"profession,omitempty" json:"profession,omitempty"` // e.g. "sophrologist", "naturopath"
	BufferMinutes   int                  `bson:"buffer_minutes" json:"bufferMinutes"`              // minimum gap between consecutive bookings
	SlotGranularity int                  `bson:"slot_granularity" json:"slotGranularity"`          // candidate tick in minutes, defaults to 15
	Availability    []AvailabilityWindow `bson:"availability" json:"availability"`
	CreatedAt       time.Time            `bson:"created_at" json:"createdAt"`
	TokenHash       string               `bson:"token_hash,omitempty" json:"-"`
}

// AvailabilityWindow is a recurring weekly block during which a professional
// accepts bookings. Start and End are wall-clock "HH:MM" strings; the engine
// converts them to minutes from midnight.
type AvailabilityWindow struct {
	DayOfWeek time.Weekday `bson:"day_of_week" json:"dayOfWeek"` // Sunday = 0
	Start     string       `bson:"start" json:"start"`           // e.g. "09:00"
	End       string       `bson:"end" json:"end"`               // e.g. "12:30"
}

// ProfessionalSettings carries the tunable scheduling knobs.
type ProfessionalSettings struct {
	BufferMinutes   int `json:"bufferMinutes" binding:"min=0"`
	SlotGranularity int `json:"slotGranularity" binding:"min=0"`
}

// ProfessionalRegistration is the signup payload.
type ProfessionalRegistration struct {
	Email      string `json:"email" binding:"required,email"`
	Name       string `json:"name" binding:"required"`
	Password   string `json:"password" binding:"required,min=8"`
	Profession string `json:"profession"`
}
