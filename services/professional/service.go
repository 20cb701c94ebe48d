package professional

import (
	"time"

	professionalRepo "serenibook/database/repository/professional"
	"serenibook/models"
	"serenibook/services/availability"
	"serenibook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 72 * time.Hour

// DefaultProfessionalService is the production implementation.
type DefaultProfessionalService struct {
	Repo  professionalRepo.ProfessionalRepository
	Cache AvailabilityInvalidator // optional; nil skips cache drops
}

// Register creates a professional account and signs them in.
func (s *DefaultProfessionalService) Register(input models.ProfessionalRegistration) (*AuthResult, error) {
	logger := utils.GetLogger()

	if existing, _ := s.Repo.GetByEmail(input.Email); existing != nil {
		return nil, NewAccountError("emailTaken", "an account with this email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, NewAccountError("hashFailure", err.Error())
	}

	prof := &models.Professional{
		ID:              uuid.New().String(),
		Email:           input.Email,
		Name:            input.Name,
		HashedPassword:  string(hashed),
		Profession:      input.Profession,
		BufferMinutes:   0,
		SlotGranularity: availability.DefaultGranularity,
		Availability:    []models.AvailabilityWindow{},
		CreatedAt:       time.Now(),
	}
	if err := s.Repo.Create(prof); err != nil {
		return nil, err
	}

	logger.Info("professional registered", zap.String("professionalID", prof.ID))
	return s.issueToken(prof)
}

// Authenticate verifies credentials and issues a fresh token.
func (s *DefaultProfessionalService) Authenticate(email, password string) (*AuthResult, error) {
	prof, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, NewAccountError("invalidCredentials", "unknown email or wrong password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(prof.HashedPassword), []byte(password)); err != nil {
		return nil, NewAccountError("invalidCredentials", "unknown email or wrong password")
	}
	return s.issueToken(prof)
}

func (s *DefaultProfessionalService) issueToken(prof *models.Professional) (*AuthResult, error) {
	token, err := utils.GenerateToken(prof.ID, prof.Email, tokenLifetime)
	if err != nil {
		return nil, NewAccountError("tokenFailure", err.Error())
	}
	if err := s.Repo.UpdateTokenHash(prof.ID, utils.HashToken(token)); err != nil {
		return nil, err
	}
	prof.TokenHash = utils.HashToken(token)
	return &AuthResult{Token: token, Professional: prof}, nil
}

// GetByID returns the professional with the given ID.
func (s *DefaultProfessionalService) GetByID(id string) (*models.Professional, error) {
	return s.Repo.GetByID(id)
}

// SetAvailability validates and replaces the weekly availability windows.
func (s *DefaultProfessionalService) SetAvailability(id string, windows []models.AvailabilityWindow) error {
	for _, w := range windows {
		start, err := availability.ParseClock(w.Start)
		if err != nil {
			return err
		}
		end, err := availability.ParseClock(w.End)
		if err != nil {
			return err
		}
		if start >= end {
			return &availability.ValidationError{
				Message: "window " + w.Start + "-" + w.End + " is not chronological",
			}
		}
	}
	if err := s.Repo.SetAvailability(id, windows); err != nil {
		return err
	}
	if s.Cache != nil {
		s.Cache.InvalidateAvailability(id)
	}
	return nil
}

// UpdateSettings updates the buffer and granularity knobs.
func (s *DefaultProfessionalService) UpdateSettings(id string, settings models.ProfessionalSettings) error {
	if settings.BufferMinutes < 0 {
		return &availability.ValidationError{Message: "buffer must not be negative"}
	}
	if settings.SlotGranularity <= 0 {
		settings.SlotGranularity = availability.DefaultGranularity
	}
	if err := s.Repo.UpdateSettings(id, settings); err != nil {
		return err
	}
	if s.Cache != nil {
		s.Cache.InvalidateAvailability(id)
	}
	return nil
}

// RevokeToken invalidates the professional's current token.
func (s *DefaultProfessionalService) RevokeToken(id string) error {
	return s.Repo.UpdateTokenHash(id, "")
}
