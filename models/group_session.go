package models

import "time"

// Group session statuses.
const (
	SessionStatusScheduled = "scheduled"
	SessionStatusCancelled = "cancelled"
)

// GroupSession represents a group class (e.g. a collective relaxation class)
// with a fixed capacity.
type GroupSession struct {
	ID             string    `bson:"id" json:"id"`
	ProfessionalID string    `bson:"professional_id" json:"professionalId"`
	Title          string    `bson:"title" json:"title"`
	Date           string    `bson:"date" json:"date"`   // "YYYY-MM-DD"
	Start          int       `bson:"start" json:"start"` // minutes from midnight
	End            int       `bson:"end" json:"end"`
	Capacity       int       `bson:"capacity" json:"capacity"`
	RegisteredIDs  []string  `bson:"registered_ids,omitempty" json:"registeredIds,omitempty"`
	Status         string    `bson:"status" json:"status"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
}

// GroupSessionInput is the creation payload.
type GroupSessionInput struct {
	ProfessionalID string `json:"professionalId" binding:"required"`
	Title          string `json:"title" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Start          string `json:"start" binding:"required"`
	End            string `json:"end" binding:"required"`
	Capacity       int    `json:"capacity" binding:"required,min=1"`
}
