package professional

import "serenibook/models"

// AuthResult carries the signed token and the authenticated professional.
type AuthResult struct {
	Token        string               `json:"token"`
	Professional *models.Professional `json:"professional"`
}

// AvailabilityInvalidator drops any cached availability of a professional.
// Window and settings changes reshape every day's slots, so the whole cache
// entry set for the professional goes.
type AvailabilityInvalidator interface {
	InvalidateAvailability(professionalID string)
}

// ProfessionalService manages professional accounts, their weekly
// availability and their scheduling settings.
type ProfessionalService interface {
	Register(input models.ProfessionalRegistration) (*AuthResult, error)
	Authenticate(email, password string) (*AuthResult, error)
	GetByID(id string) (*models.Professional, error)
	SetAvailability(id string, windows []models.AvailabilityWindow) error
	UpdateSettings(id string, settings models.ProfessionalSettings) error
	RevokeToken(id string) error
}
