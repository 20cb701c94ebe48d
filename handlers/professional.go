package handlers

import (
	"net/http"

	"serenibook/middleware"
	"serenibook/models"
	"serenibook/services/professional"
	"serenibook/utils"

	"github.com/gin-gonic/gin"
)

// ProfessionalHandler exposes account, availability and settings management.
type ProfessionalHandler struct {
	Service professional.ProfessionalService
}

// NewProfessionalHandler constructs a ProfessionalHandler.
func NewProfessionalHandler(svc professional.ProfessionalService) *ProfessionalHandler {
	return &ProfessionalHandler{Service: svc}
}

// Register creates a professional account.
func (h *ProfessionalHandler) Register(c *gin.Context) {
	var input models.ProfessionalRegistration
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Service.Register(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// Authenticate signs a professional in.
func (h *ProfessionalHandler) Authenticate(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Service.Authenticate(input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetProfile returns the authenticated professional's account.
func (h *ProfessionalHandler) GetProfile(c *gin.Context) {
	professionalID := c.GetString(middleware.ContextProfessionalID)
	prof, err := h.Service.GetByID(professionalID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prof)
}

// SetAvailability replaces the weekly availability windows.
func (h *ProfessionalHandler) SetAvailability(c *gin.Context) {
	professionalID := c.GetString(middleware.ContextProfessionalID)
	var input struct {
		Windows []models.AvailabilityWindow `json:"windows" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Service.SetAvailability(professionalID, input.Windows); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// UpdateSettings updates buffer time and slot granularity.
func (h *ProfessionalHandler) UpdateSettings(c *gin.Context) {
	professionalID := c.GetString(middleware.ContextProfessionalID)
	var input models.ProfessionalSettings
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Service.UpdateSettings(professionalID, input); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// RevokeToken signs the professional out everywhere.
func (h *ProfessionalHandler) RevokeToken(c *gin.Context) {
	professionalID := c.GetString(middleware.ContextProfessionalID)
	if err := h.Service.RevokeToken(professionalID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "revoked"})
}
