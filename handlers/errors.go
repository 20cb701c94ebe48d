package handlers

import (
	"errors"
	"net/http"

	"serenibook/services/availability"
	"serenibook/services/professional"
	"serenibook/services/scheduling"
	"serenibook/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP responses. Validation errors are
// the caller's fault; conflicts carry the full conflict list so the UI can
// explain the clash.
func respondError(c *gin.Context, err error) {
	var vErr *availability.ValidationError
	if errors.As(err, &vErr) {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", vErr.Message)
		return
	}
	var cErr *scheduling.ConflictError
	if errors.As(err, &cErr) {
		c.JSON(http.StatusConflict, gin.H{
			"error":        "scheduling conflict",
			"hasConflicts": cErr.Result.HasConflicts,
			"conflicts":    cErr.Result.Conflicts,
		})
		return
	}
	var sErr *scheduling.ScheduleError
	if errors.As(err, &sErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": sErr.Code, "details": sErr.Message})
		return
	}
	var aErr *professional.AccountError
	if errors.As(err, &aErr) {
		status := http.StatusUnprocessableEntity
		if aErr.Code == "invalidCredentials" {
			status = http.StatusUnauthorized
		}
		c.JSON(status, gin.H{"error": aErr.Code, "details": aErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
