package scheduling

import (
	"context"
	"fmt"
	"time"

	"serenibook/models"
	"serenibook/services/availability"
	"serenibook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateGroupSession creates a group class after checking it against both the
// individual bookings and the other sessions of that day.
func (s *DefaultScheduleService) CreateGroupSession(ctx context.Context, input models.GroupSessionInput) (*models.GroupSession, error) {
	logger := utils.GetLogger()

	start, err := availability.ParseClock(input.Start)
	if err != nil {
		return nil, err
	}
	end, err := availability.ParseClock(input.End)
	if err != nil {
		return nil, err
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return nil, &availability.ValidationError{Message: fmt.Sprintf("malformed date %q, want YYYY-MM-DD", input.Date)}
	}

	check, err := s.CheckBookingConflicts(ctx, models.ConflictCheckInput{
		ProfessionalID: input.ProfessionalID,
		Date:           input.Date,
		Start:          input.Start,
		End:            input.End,
	})
	if err != nil {
		return nil, err
	}
	if check.HasConflicts {
		return nil, &ConflictError{Result: check}
	}

	session := &models.GroupSession{
		ID:             uuid.New().String(),
		ProfessionalID: input.ProfessionalID,
		Title:          input.Title,
		Date:           input.Date,
		Start:          start,
		End:            end,
		Capacity:       input.Capacity,
		Status:         models.SessionStatusScheduled,
		CreatedAt:      time.Now(),
	}
	if err := s.SchedulerRepo.CreateSession(session); err != nil {
		return nil, err
	}

	s.invalidateDay(ctx, input.ProfessionalID, input.Date)
	logger.Info("group session created",
		zap.String("sessionID", session.ID),
		zap.String("professionalID", session.ProfessionalID),
		zap.String("date", session.Date))
	return session, nil
}

// RegisterForSession adds a client to a session, enforcing capacity and
// duplicate protection at the repository level.
func (s *DefaultScheduleService) RegisterForSession(ctx context.Context, sessionID, clientID string) (*models.GroupSession, error) {
	if _, err := s.CatalogRepo.GetClientByID(clientID); err != nil {
		return nil, fmt.Errorf("failed to load client: %w", err)
	}
	if err := s.SchedulerRepo.AddSessionRegistration(sessionID, clientID); err != nil {
		return nil, NewScheduleError("registrationRejected", err.Error())
	}
	return s.SchedulerRepo.GetSessionByID(sessionID)
}

// CancelSession flips the session to cancelled and frees its interval.
func (s *DefaultScheduleService) CancelSession(ctx context.Context, sessionID string) error {
	session, err := s.SchedulerRepo.GetSessionByID(sessionID)
	if err != nil {
		return err
	}
	if session.Status == models.SessionStatusCancelled {
		return NewScheduleError("alreadyCancelled", "session is already cancelled")
	}
	if err := s.SchedulerRepo.CancelSession(sessionID); err != nil {
		return err
	}
	s.invalidateDay(ctx, session.ProfessionalID, session.Date)
	return nil
}
