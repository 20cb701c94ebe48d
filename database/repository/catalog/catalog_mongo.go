package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"serenibook/database"
	"serenibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	serviceColl *mongo.Collection
	clientColl  *mongo.Collection
}

// NewMongoCatalogRepo constructs a new instance of MongoCatalogRepo.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.DB()
	return &MongoCatalogRepo{
		serviceColl: db.Collection("services"),
		clientColl:  db.Collection("clients"),
	}
}

// CreateService inserts a new service document.
func (repo *MongoCatalogRepo) CreateService(svc *models.Service) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := repo.serviceColl.InsertOne(ctx, svc)
	if err != nil {
		return fmt.Errorf("error creating service: %w", err)
	}
	return nil
}

// GetServiceByID retrieves a service document by ID.
func (repo *MongoCatalogRepo) GetServiceByID(id string) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var svc models.Service
	if err := repo.serviceColl.FindOne(ctx, bson.M{"id": id}).Decode(&svc); err != nil {
		return nil, fmt.Errorf("error fetching service with id %s: %w", id, err)
	}
	return &svc, nil
}

// ListServices returns all services offered by a professional.
func (repo *MongoCatalogRepo) ListServices(professionalID string) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.serviceColl.Find(ctx, bson.M{"professional_id": professionalID})
	if err != nil {
		return nil, fmt.Errorf("error listing services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("error decoding services: %w", err)
	}
	return services, nil
}

// UpdateService modifies an existing service document.
func (repo *MongoCatalogRepo) UpdateService(id string, updated *models.Service) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": updated}
	_, err := repo.serviceColl.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating service %s: %w", id, err)
	}
	return nil
}

// DeleteService removes a service document.
func (repo *MongoCatalogRepo) DeleteService(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := repo.serviceColl.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting service %s: %w", id, err)
	}
	return nil
}

// CreateClient inserts a new client document.
func (repo *MongoCatalogRepo) CreateClient(client *models.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := repo.clientColl.InsertOne(ctx, client)
	if err != nil {
		return fmt.Errorf("error creating client: %w", err)
	}
	return nil
}

// GetClientByID retrieves a client document by ID.
func (repo *MongoCatalogRepo) GetClientByID(id string) (*models.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var client models.Client
	if err := repo.clientColl.FindOne(ctx, bson.M{"id": id}).Decode(&client); err != nil {
		return nil, fmt.Errorf("error fetching client with id %s: %w", id, err)
	}
	return &client, nil
}

// ListClients returns all clients belonging to a professional.
func (repo *MongoCatalogRepo) ListClients(professionalID string) ([]models.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.clientColl.Find(ctx, bson.M{"professional_id": professionalID})
	if err != nil {
		return nil, fmt.Errorf("error listing clients: %w", err)
	}
	defer cursor.Close(ctx)

	var clients []models.Client
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, fmt.Errorf("error decoding clients: %w", err)
	}
	return clients, nil
}

// UpdateClient modifies an existing client document.
func (repo *MongoCatalogRepo) UpdateClient(id string, updated *models.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": updated}
	_, err := repo.clientColl.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating client %s: %w", id, err)
	}
	return nil
}

// DeleteClient removes a client document.
func (repo *MongoCatalogRepo) DeleteClient(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := repo.clientColl.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting client %s: %w", id, err)
	}
	return nil
}
