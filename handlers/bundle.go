package handlers

import (
	professionalRepo "serenibook/database/repository/professional"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups every handler the router needs, plus the repositories
// the auth middleware depends on.
type HandlerBundle struct {
	ProfessionalRepo professionalRepo.ProfessionalRepository

	// Availability endpoints.
	GetDayAvailability gin.HandlerFunc
	CheckConflicts     gin.HandlerFunc

	// Booking endpoints.
	CreateBooking gin.HandlerFunc
	CancelBooking gin.HandlerFunc

	// Group-session endpoints.
	CreateGroupSession gin.HandlerFunc
	RegisterForSession gin.HandlerFunc
	CancelGroupSession gin.HandlerFunc

	// Professional endpoints.
	RegisterProfessional     gin.HandlerFunc
	AuthenticateProfessional gin.HandlerFunc
	GetProfessionalProfile   gin.HandlerFunc
	SetAvailability          gin.HandlerFunc
	UpdateSettings           gin.HandlerFunc
	RevokeProfessionalToken  gin.HandlerFunc

	// Catalog endpoints.
	CreateService gin.HandlerFunc
	ListServices  gin.HandlerFunc
	DeleteService gin.HandlerFunc
	CreateClient  gin.HandlerFunc
	ListClients   gin.HandlerFunc
	DeleteClient  gin.HandlerFunc
}
