package scheduling

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	catalogRepo "serenibook/database/repository/catalog"
	professionalRepo "serenibook/database/repository/professional"
	schedulerRepo "serenibook/database/repository/scheduler"
	"serenibook/models"
	"serenibook/services/availability"
	"serenibook/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// DefaultScheduleService is the production scheduler. All collaborators are
// injected; the availability engine itself is pure and holds no state.
type DefaultScheduleService struct {
	ProfessionalRepo professionalRepo.ProfessionalRepository
	CatalogRepo      catalogRepo.CatalogRepository
	SchedulerRepo    schedulerRepo.SchedulerRepository
	Reminders        ReminderScheduler
	Cache            *redis.Client
	CacheTTL         time.Duration
}

// GetDayAvailability computes the bookable start times for a professional,
// date and service. Results are cached per (professional, date, service) with
// a short TTL and invalidated on any booking or session mutation for that day.
func (s *DefaultScheduleService) GetDayAvailability(ctx context.Context, professionalID, date, serviceID string) (DayAvailability, error) {
	logger := utils.GetLogger()

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return DayAvailability{}, &availability.ValidationError{Message: fmt.Sprintf("malformed date %q, want YYYY-MM-DD", date)}
	}

	result := DayAvailability{ProfessionalID: professionalID, ServiceID: serviceID, Date: date}

	cacheKey := availabilityCacheKey(professionalID, date, serviceID)
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			if jsonErr := json.Unmarshal([]byte(cached), &result.Slots); jsonErr == nil {
				return result, nil
			}
		}
	}

	prof, err := s.ProfessionalRepo.GetByID(professionalID)
	if err != nil {
		return DayAvailability{}, fmt.Errorf("failed to load professional: %w", err)
	}
	svc, err := s.CatalogRepo.GetServiceByID(serviceID)
	if err != nil {
		return DayAvailability{}, fmt.Errorf("failed to load service: %w", err)
	}
	if svc.ProfessionalID != professionalID {
		return DayAvailability{}, NewScheduleError("serviceMismatch", "service does not belong to this professional")
	}

	windows, err := engineWindows(prof.Availability)
	if err != nil {
		return DayAvailability{}, err
	}
	booked, err := s.loadDayCommitments(professionalID, date)
	if err != nil {
		return DayAvailability{}, err
	}

	granularity := prof.SlotGranularity
	if granularity == 0 {
		granularity = availability.DefaultGranularity
	}

	slots, err := availability.GenerateSlots(windows, day, svc.DurationMinutes, prof.BufferMinutes, granularity, booked)
	if err != nil {
		return DayAvailability{}, err
	}
	result.Slots = slots

	if s.Cache != nil {
		if payload, err := json.Marshal(slots); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, payload, s.CacheTTL).Err(); err != nil {
				logger.Warn("failed to cache availability", zap.String("key", cacheKey), zap.Error(err))
			}
		}
	}
	return result, nil
}

// CheckBookingConflicts probes a proposed interval against the professional's
// active commitments on that date.
func (s *DefaultScheduleService) CheckBookingConflicts(ctx context.Context, input models.ConflictCheckInput) (availability.ConflictResult, error) {
	start, err := availability.ParseClock(input.Start)
	if err != nil {
		return availability.ConflictResult{}, err
	}
	end, err := availability.ParseClock(input.End)
	if err != nil {
		return availability.ConflictResult{}, err
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return availability.ConflictResult{}, &availability.ValidationError{Message: fmt.Sprintf("malformed date %q, want YYYY-MM-DD", input.Date)}
	}

	appointments, sessions, err := s.loadDayCommitmentsSplit(input.ProfessionalID, input.Date)
	if err != nil {
		return availability.ConflictResult{}, err
	}
	return availability.CheckConflicts(
		availability.Interval{Start: start, End: end},
		appointments, sessions, input.ExcludeID,
	)
}

// loadDayCommitments returns appointments and sessions merged into one slice,
// appointments first, for slot generation.
func (s *DefaultScheduleService) loadDayCommitments(professionalID, date string) ([]availability.Booked, error) {
	appointments, sessions, err := s.loadDayCommitmentsSplit(professionalID, date)
	if err != nil {
		return nil, err
	}
	return append(appointments, sessions...), nil
}

func (s *DefaultScheduleService) loadDayCommitmentsSplit(professionalID, date string) (appointments, sessions []availability.Booked, err error) {
	bookings, err := s.SchedulerRepo.GetActiveBookingsForDay(professionalID, date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	for _, b := range bookings {
		appointments = append(appointments, availability.Booked{
			ID:           b.ID,
			Kind:         availability.KindAppointment,
			Title:        b.ServiceName,
			Counterparty: b.ClientName,
			Start:        b.Start,
			End:          b.End,
			Cancelled:    b.Status == models.BookingStatusCancelled,
		})
	}

	groupSessions, err := s.SchedulerRepo.GetActiveSessionsForDay(professionalID, date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load group sessions: %w", err)
	}
	for _, gs := range groupSessions {
		sessions = append(sessions, availability.Booked{
			ID:           gs.ID,
			Kind:         availability.KindGroupSession,
			Title:        gs.Title,
			Counterparty: fmt.Sprintf("%d/%d registered", len(gs.RegisteredIDs), gs.Capacity),
			Start:        gs.Start,
			End:          gs.End,
			Cancelled:    gs.Status == models.SessionStatusCancelled,
		})
	}
	return appointments, sessions, nil
}

// engineWindows converts stored wall-clock windows into engine windows.
func engineWindows(stored []models.AvailabilityWindow) ([]availability.Window, error) {
	windows := make([]availability.Window, 0, len(stored))
	for _, w := range stored {
		start, err := availability.ParseClock(w.Start)
		if err != nil {
			return nil, err
		}
		end, err := availability.ParseClock(w.End)
		if err != nil {
			return nil, err
		}
		windows = append(windows, availability.Window{DayOfWeek: w.DayOfWeek, Start: start, End: end})
	}
	return windows, nil
}

func availabilityCacheKey(professionalID, date, serviceID string) string {
	return fmt.Sprintf("avail:%s:%s:%s", professionalID, date, serviceID)
}

// invalidateDay drops every cached availability entry of a professional for a
// date, across all services.
func (s *DefaultScheduleService) invalidateDay(ctx context.Context, professionalID, date string) {
	s.dropCachedKeys(ctx, fmt.Sprintf("avail:%s:%s:*", professionalID, date))
}

// InvalidateAvailability drops every cached availability entry of a
// professional across all dates and services. Window and settings changes
// reshape the whole calendar, not just one day.
func (s *DefaultScheduleService) InvalidateAvailability(professionalID string) {
	s.dropCachedKeys(context.Background(), fmt.Sprintf("avail:%s:*", professionalID))
}

func (s *DefaultScheduleService) dropCachedKeys(ctx context.Context, pattern string) {
	if s.Cache == nil {
		return
	}
	logger := utils.GetLogger()
	keys, err := s.Cache.Keys(ctx, pattern).Result()
	if err != nil {
		logger.Warn("failed to scan availability cache", zap.String("pattern", pattern), zap.Error(err))
		return
	}
	if len(keys) > 0 {
		if err := s.Cache.Del(ctx, keys...).Err(); err != nil {
			logger.Warn("failed to invalidate availability cache", zap.Strings("keys", keys), zap.Error(err))
		}
	}
}
