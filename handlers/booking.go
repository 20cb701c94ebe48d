package handlers

import (
	"net/http"

	"serenibook/models"
	"serenibook/services/scheduling"
	"serenibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes booking and group-session operations.
type BookingHandler struct {
	Service scheduling.ScheduleService
	Logger  *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc scheduling.ScheduleService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBooking creates an individual appointment after a conflict check.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	booking, err := h.Service.CreateBooking(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

// CancelBooking flips a booking to cancelled.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	bookingID := c.Param("id")
	if err := h.Service.CancelBooking(c.Request.Context(), bookingID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// CreateGroupSession creates a group class.
func (h *BookingHandler) CreateGroupSession(c *gin.Context) {
	var input models.GroupSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.CreateGroupSession(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": session})
}

// RegisterForSession registers a client onto a group session.
func (h *BookingHandler) RegisterForSession(c *gin.Context) {
	sessionID := c.Param("id")
	var input struct {
		ClientID string `json:"clientId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.RegisterForSession(c.Request.Context(), sessionID, input.ClientID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// CancelGroupSession flips a session to cancelled.
func (h *BookingHandler) CancelGroupSession(c *gin.Context) {
	sessionID := c.Param("id")
	if err := h.Service.CancelSession(c.Request.Context(), sessionID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
