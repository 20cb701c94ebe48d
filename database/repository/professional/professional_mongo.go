package professionalRepo

import (
	"context"
	"fmt"
	"time"

	"serenibook/database"
	"serenibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoProfessionalRepo implements ProfessionalRepository using MongoDB.
type MongoProfessionalRepo struct {
	coll *mongo.Collection
}

// NewMongoProfessionalRepo constructs a new instance of MongoProfessionalRepo.
func NewMongoProfessionalRepo() ProfessionalRepository {
	return &MongoProfessionalRepo{
		coll: database.DB().Collection("professionals"),
	}
}

// Create inserts a new professional document.
func (repo *MongoProfessionalRepo) Create(prof *models.Professional) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := repo.coll.InsertOne(ctx, prof)
	if err != nil {
		return fmt.Errorf("error creating professional: %w", err)
	}
	return nil
}

// GetByID retrieves a professional document by ID.
func (repo *MongoProfessionalRepo) GetByID(id string) (*models.Professional, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var prof models.Professional
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&prof); err != nil {
		return nil, fmt.Errorf("error fetching professional with id %s: %w", id, err)
	}
	return &prof, nil
}

// GetByEmail retrieves a professional document by email.
func (repo *MongoProfessionalRepo) GetByEmail(email string) (*models.Professional, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var prof models.Professional
	if err := repo.coll.FindOne(ctx, bson.M{"email": email}).Decode(&prof); err != nil {
		return nil, fmt.Errorf("error fetching professional with email %s: %w", email, err)
	}
	return &prof, nil
}

// Update modifies an existing professional document.
func (repo *MongoProfessionalRepo) Update(id string, updated *models.Professional) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": updated}
	_, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating professional %s: %w", id, err)
	}
	return nil
}

// Delete removes a professional document.
func (repo *MongoProfessionalRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := repo.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting professional %s: %w", id, err)
	}
	return nil
}

// SetAvailability replaces the professional's weekly availability windows.
func (repo *MongoProfessionalRepo) SetAvailability(id string, windows []models.AvailabilityWindow) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"availability": windows}}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error setting availability for professional %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("professional with id %s not found", id)
	}
	return nil
}

// UpdateSettings updates the buffer and slot-granularity settings.
func (repo *MongoProfessionalRepo) UpdateSettings(id string, settings models.ProfessionalSettings) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{
		"buffer_minutes":   settings.BufferMinutes,
		"slot_granularity": settings.SlotGranularity,
	}}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating settings for professional %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("professional with id %s not found", id)
	}
	return nil
}

// UpdateTokenHash stores the hash of the currently valid auth token.
func (repo *MongoProfessionalRepo) UpdateTokenHash(id, tokenHash string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"token_hash": tokenHash}}
	_, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating token hash for professional %s: %w", id, err)
	}
	return nil
}
