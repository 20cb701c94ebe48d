package professional

import (
	"errors"
	"fmt"
	"testing"

	"serenibook/models"
	"serenibook/services/availability"
)

type fakeProfessionalRepo struct {
	profs       map[string]*models.Professional
	setWindows  []models.AvailabilityWindow
	setSettings *models.ProfessionalSettings
}

func newFakeProfessionalRepo() *fakeProfessionalRepo {
	return &fakeProfessionalRepo{profs: map[string]*models.Professional{}}
}

func (f *fakeProfessionalRepo) Create(prof *models.Professional) error {
	f.profs[prof.ID] = prof
	return nil
}

func (f *fakeProfessionalRepo) GetByID(id string) (*models.Professional, error) {
	prof, ok := f.profs[id]
	if !ok {
		return nil, fmt.Errorf("professional %s not found", id)
	}
	return prof, nil
}

func (f *fakeProfessionalRepo) GetByEmail(email string) (*models.Professional, error) {
	for _, prof := range f.profs {
		if prof.Email == email {
			return prof, nil
		}
	}
	return nil, fmt.Errorf("professional with email %s not found", email)
}

func (f *fakeProfessionalRepo) Update(id string, updated *models.Professional) error {
	f.profs[id] = updated
	return nil
}

func (f *fakeProfessionalRepo) Delete(id string) error {
	delete(f.profs, id)
	return nil
}

func (f *fakeProfessionalRepo) SetAvailability(id string, windows []models.AvailabilityWindow) error {
	f.setWindows = windows
	return nil
}

func (f *fakeProfessionalRepo) UpdateSettings(id string, settings models.ProfessionalSettings) error {
	f.setSettings = &settings
	return nil
}

func (f *fakeProfessionalRepo) UpdateTokenHash(id, tokenHash string) error {
	if prof, ok := f.profs[id]; ok {
		prof.TokenHash = tokenHash
	}
	return nil
}

func (f *fakeProfessionalRepo) EnsureIndexes() error { return nil }

type fakeInvalidator struct {
	invalidated []string
}

func (f *fakeInvalidator) InvalidateAvailability(professionalID string) {
	f.invalidated = append(f.invalidated, professionalID)
}

func TestSetAvailabilityRejectsMalformedWindows(t *testing.T) {
	cases := []struct {
		name   string
		window models.AvailabilityWindow
	}{
		{"unpadded hour", models.AvailabilityWindow{DayOfWeek: 1, Start: "9:00", End: "12:00"}},
		{"garbage minute", models.AvailabilityWindow{DayOfWeek: 1, Start: "09:00", End: "12:3a"}},
		{"leading space", models.AvailabilityWindow{DayOfWeek: 1, Start: " 9:00", End: "12:00"}},
		{"trailing space", models.AvailabilityWindow{DayOfWeek: 1, Start: "09:00", End: "09:5 "}},
		{"not chronological", models.AvailabilityWindow{DayOfWeek: 1, Start: "12:00", End: "09:00"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeProfessionalRepo()
			cache := &fakeInvalidator{}
			svc := &DefaultProfessionalService{Repo: repo, Cache: cache}

			err := svc.SetAvailability("pro-1", []models.AvailabilityWindow{tc.window})
			var vErr *availability.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if repo.setWindows != nil {
				t.Fatal("rejected windows must not be persisted")
			}
			if len(cache.invalidated) != 0 {
				t.Fatal("rejected windows must not touch the cache")
			}
		})
	}
}

func TestSetAvailabilityPersistsAndDropsCache(t *testing.T) {
	repo := newFakeProfessionalRepo()
	cache := &fakeInvalidator{}
	svc := &DefaultProfessionalService{Repo: repo, Cache: cache}

	windows := []models.AvailabilityWindow{
		{DayOfWeek: 1, Start: "09:00", End: "12:00"},
		{DayOfWeek: 3, Start: "14:00", End: "18:00"},
	}
	if err := svc.SetAvailability("pro-1", windows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.setWindows) != 2 {
		t.Fatalf("expected 2 windows persisted, got %d", len(repo.setWindows))
	}
	if len(cache.invalidated) != 1 || cache.invalidated[0] != "pro-1" {
		t.Fatalf("expected cached availability of pro-1 dropped, got %v", cache.invalidated)
	}
}

func TestUpdateSettingsDropsCache(t *testing.T) {
	repo := newFakeProfessionalRepo()
	cache := &fakeInvalidator{}
	svc := &DefaultProfessionalService{Repo: repo, Cache: cache}

	err := svc.UpdateSettings("pro-1", models.ProfessionalSettings{BufferMinutes: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.setSettings == nil {
		t.Fatal("expected settings to be persisted")
	}
	if repo.setSettings.SlotGranularity != availability.DefaultGranularity {
		t.Fatalf("expected granularity defaulted to %d, got %d",
			availability.DefaultGranularity, repo.setSettings.SlotGranularity)
	}
	if len(cache.invalidated) != 1 || cache.invalidated[0] != "pro-1" {
		t.Fatalf("expected cached availability of pro-1 dropped, got %v", cache.invalidated)
	}
}

func TestUpdateSettingsRejectsNegativeBuffer(t *testing.T) {
	repo := newFakeProfessionalRepo()
	cache := &fakeInvalidator{}
	svc := &DefaultProfessionalService{Repo: repo, Cache: cache}

	err := svc.UpdateSettings("pro-1", models.ProfessionalSettings{BufferMinutes: -5})
	var vErr *availability.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if repo.setSettings != nil || len(cache.invalidated) != 0 {
		t.Fatal("rejected settings must not be persisted or touch the cache")
	}
}
