package professionalRepo

import "serenibook/models"

// ProfessionalRepository defines persistence operations for professionals,
// including their weekly availability windows and scheduling settings.
type ProfessionalRepository interface {
	Create(prof *models.Professional) error
	GetByID(id string) (*models.Professional, error)
	GetByEmail(email string) (*models.Professional, error)
	Update(id string, updated *models.Professional) error
	Delete(id string) error
	SetAvailability(id string, windows []models.AvailabilityWindow) error
	UpdateSettings(id string, settings models.ProfessionalSettings) error
	UpdateTokenHash(id, tokenHash string) error
	EnsureIndexes() error
}
