package schedulerRepo

import (
	"context"
	"fmt"
	"time"

	"serenibook/database"
	"serenibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoSchedulerRepo implements SchedulerRepository using MongoDB.
type MongoSchedulerRepo struct {
	bookingColl *mongo.Collection
	sessionColl *mongo.Collection
}

// NewMongoSchedulerRepo constructs a new instance of MongoSchedulerRepo.
func NewMongoSchedulerRepo() SchedulerRepository {
	db := database.DB()
	return &MongoSchedulerRepo{
		bookingColl: db.Collection("bookings"),
		sessionColl: db.Collection("group_sessions"),
	}
}

// CreateBooking inserts a new booking document. The unique slot index rejects
// a second confirmed booking for the same professional, date and start, which
// closes the read-decide-write race between concurrent conflict checks.
func (repo *MongoSchedulerRepo) CreateBooking(booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := repo.bookingColl.InsertOne(ctx, booking)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("slot at %d on %s was just taken: %w", booking.Start, booking.Date, err)
		}
		return fmt.Errorf("error creating booking: %w", err)
	}
	return nil
}

// GetBookingByID retrieves a booking by its ID.
func (repo *MongoSchedulerRepo) GetBookingByID(bookingID string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := repo.bookingColl.FindOne(ctx, bson.M{"id": bookingID}).Decode(&booking); err != nil {
		return nil, fmt.Errorf("booking not found: %w", err)
	}
	return &booking, nil
}

// CancelBooking flips the booking status to cancelled. Cancelled bookings are
// kept for history; day queries exclude them.
func (repo *MongoSchedulerRepo) CancelBooking(bookingID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"id": bookingID}
	update := bson.M{"$set": bson.M{"status": models.BookingStatusCancelled}}
	res, err := repo.bookingColl.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error cancelling booking %s: %w", bookingID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("booking with id %s not found", bookingID)
	}
	return nil
}

// GetActiveBookingsForDay returns the non-cancelled bookings of a professional
// for a given date, ordered by start time.
func (repo *MongoSchedulerRepo) GetActiveBookingsForDay(professionalID, date string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"professional_id": professionalID,
		"date":            date,
		"status":          bson.M{"$ne": models.BookingStatusCancelled},
	}
	cursor, err := repo.bookingColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings for %s on %s: %w", professionalID, date, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

// CreateSession inserts a new group-session document.
func (repo *MongoSchedulerRepo) CreateSession(session *models.GroupSession) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := repo.sessionColl.InsertOne(ctx, session)
	if err != nil {
		return fmt.Errorf("error creating group session: %w", err)
	}
	return nil
}

// GetSessionByID retrieves a group session by its ID.
func (repo *MongoSchedulerRepo) GetSessionByID(sessionID string) (*models.GroupSession, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var session models.GroupSession
	if err := repo.sessionColl.FindOne(ctx, bson.M{"id": sessionID}).Decode(&session); err != nil {
		return nil, fmt.Errorf("group session not found: %w", err)
	}
	return &session, nil
}

// CancelSession flips the session status to cancelled.
func (repo *MongoSchedulerRepo) CancelSession(sessionID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"id": sessionID}
	update := bson.M{"$set": bson.M{"status": models.SessionStatusCancelled}}
	res, err := repo.sessionColl.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error cancelling session %s: %w", sessionID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("group session with id %s not found", sessionID)
	}
	return nil
}

// GetActiveSessionsForDay returns the non-cancelled group sessions of a
// professional for a given date.
func (repo *MongoSchedulerRepo) GetActiveSessionsForDay(professionalID, date string) ([]models.GroupSession, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"professional_id": professionalID,
		"date":            date,
		"status":          bson.M{"$ne": models.SessionStatusCancelled},
	}
	cursor, err := repo.sessionColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching sessions for %s on %s: %w", professionalID, date, err)
	}
	defer cursor.Close(ctx)

	var sessions []models.GroupSession
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("error decoding sessions: %w", err)
	}
	return sessions, nil
}

// AddSessionRegistration registers a client onto a session. The filter
// enforces capacity and duplicate protection atomically: the update only
// matches while the session is scheduled, the client is not yet registered,
// and the registration count is below capacity.
func (repo *MongoSchedulerRepo) AddSessionRegistration(sessionID, clientID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":             sessionID,
		"status":         models.SessionStatusScheduled,
		"registered_ids": bson.M{"$ne": clientID},
		"$expr": bson.M{"$lt": bson.A{
			bson.M{"$size": bson.M{"$ifNull": bson.A{"$registered_ids", bson.A{}}}},
			"$capacity",
		}},
	}
	update := bson.M{"$addToSet": bson.M{"registered_ids": clientID}}
	res, err := repo.sessionColl.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error registering client %s on session %s: %w", clientID, sessionID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("session %s is full, cancelled, or client %s already registered", sessionID, clientID)
	}
	return nil
}
