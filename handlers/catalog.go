package handlers

import (
	"net/http"
	"time"

	catalogRepo "serenibook/database/repository/catalog"
	"serenibook/middleware"
	"serenibook/models"
	"serenibook/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogHandler exposes service-offering and client management.
type CatalogHandler struct {
	Repo catalogRepo.CatalogRepository
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(repo catalogRepo.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{Repo: repo}
}

// CreateService adds a service offering for the authenticated professional.
func (h *CatalogHandler) CreateService(c *gin.Context) {
	professionalID := c.GetString(middleware.ContextProfessionalID)
	var input struct {
		Name            string  `json:"name" binding:"required"`
		DurationMinutes int     `json:"durationMinutes" binding:"required,min=1"`
		Price           float64 `json:"price"`
		Currency        string  `json:"currency"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	svc := &models.Service{
		ID:              uuid.New().String(),
		ProfessionalID:  professionalID,
		Name:            input.Name,
		DurationMinutes: input.DurationMinutes,
		Price:           input.Price,
		Currency:        input.Currency,
		Active:          true,
	}
	if err := h.Repo.CreateService(svc); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// ListServices returns the professional's service offerings.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	professionalID := c.GetString(middleware.ContextProfessionalID)
	services, err := h.Repo.ListServices(professionalID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// DeleteService removes a service offering.
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	professionalID := c.GetString(middleware.ContextProfessionalID)
	svc, err := h.Repo.GetServiceByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if svc.ProfessionalID != professionalID {
		c.JSON(http.StatusForbidden, gin.H{"error": "service belongs to another professional"})
		return
	}
	if err := h.Repo.DeleteService(svc.ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// CreateClient adds a client record for the authenticated professional.
func (h *CatalogHandler) CreateClient(c *gin.Context) {
	professionalID := c.GetString(middleware.ContextProfessionalID)
	var input struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email"`
		Phone string `json:"phone"`
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	client := &models.Client{
		ID:             uuid.New().String(),
		ProfessionalID: professionalID,
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		Notes:          input.Notes,
		CreatedAt:      time.Now(),
	}
	if err := h.Repo.CreateClient(client); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

// ListClients returns the professional's clients.
func (h *CatalogHandler) ListClients(c *gin.Context) {
	professionalID := c.GetString(middleware.ContextProfessionalID)
	clients, err := h.Repo.ListClients(professionalID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

// DeleteClient removes a client record.
func (h *CatalogHandler) DeleteClient(c *gin.Context) {
	professionalID := c.GetString(middleware.ContextProfessionalID)
	client, err := h.Repo.GetClientByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if client.ProfessionalID != professionalID {
		c.JSON(http.StatusForbidden, gin.H{"error": "client belongs to another professional"})
		return
	}
	if err := h.Repo.DeleteClient(client.ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
