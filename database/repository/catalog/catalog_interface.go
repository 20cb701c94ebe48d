package catalogRepo

import "serenibook/models"

// CatalogRepository defines persistence operations for a professional's
// service offerings and client records.
type CatalogRepository interface {
	CreateService(svc *models.Service) error
	GetServiceByID(id string) (*models.Service, error)
	ListServices(professionalID string) ([]models.Service, error)
	UpdateService(id string, updated *models.Service) error
	DeleteService(id string) error

	CreateClient(client *models.Client) error
	GetClientByID(id string) (*models.Client, error)
	ListClients(professionalID string) ([]models.Client, error)
	UpdateClient(id string, updated *models.Client) error
	DeleteClient(id string) error
}
