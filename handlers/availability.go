package handlers

import (
	"net/http"

	"serenibook/models"
	"serenibook/services/scheduling"
	"serenibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes the availability engine over HTTP.
type AvailabilityHandler struct {
	Service scheduling.ScheduleService
	Logger  *zap.Logger
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(svc scheduling.ScheduleService, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc, Logger: logger}
}

// GetDayAvailability returns the bookable start times for a professional,
// date and service. An empty list is a normal outcome, not an error.
func (h *AvailabilityHandler) GetDayAvailability(c *gin.Context) {
	professionalID := c.Param("professionalID")
	date := c.Query("date")
	serviceID := c.Query("serviceId")
	if date == "" || serviceID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "date and serviceId query parameters are required")
		return
	}

	result, err := h.Service.GetDayAvailability(c.Request.Context(), professionalID, date, serviceID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CheckConflicts probes a proposed interval against the professional's
// commitments and returns every overlapping one.
func (h *AvailabilityHandler) CheckConflicts(c *gin.Context) {
	var input models.ConflictCheckInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Service.CheckBookingConflicts(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
