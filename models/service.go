package models

// Service is a bookable offering (e.g. "Sophrology session, 60 min").
type Service struct {
	ID              string  `bson:"id" json:"id"`
	ProfessionalID  string  `bson:"professional_id" json:"professionalId"`
	Name            string  `bson:"name" json:"name"`
	DurationMinutes int     `bson:"duration_minutes" json:"durationMinutes"`
	Price           float64 `bson:"price" json:"price"`
	Currency        string  `bson:"currency,omitempty" json:"currency,omitempty"`
	Active          bool    `bson:"active" json:"active"`
}
