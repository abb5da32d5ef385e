package handlers

import (
	"errors"
	"net/http"

	ratingSvc "stilrandevu/services/rating"
	"stilrandevu/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RatingHandler serves the appointment rating endpoint.
type RatingHandler struct {
	RatingService ratingSvc.RatingService
}

// RateAppointmentHandler handles POST /api/appointments/:id/rating.
func (h *RatingHandler) RateAppointmentHandler(c *gin.Context) {
	var req struct {
		Stars int `json:"stars" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.RatingService.RateAppointment(c.Request.Context(), currentUserID(c), c.Param("id"), req.Stars)
	if err != nil {
		var re *ratingSvc.RatingError
		if errors.As(err, &re) {
			status := http.StatusBadRequest
			switch re {
			case ratingSvc.ErrNotOwner:
				status = http.StatusForbidden
			case ratingSvc.ErrAlreadyRated:
				status = http.StatusConflict
			}
			c.JSON(status, gin.H{"error": re.Message, "code": re.Code})
			return
		}
		utils.GetLogger().Error("Rating failed", zap.String("appointmentID", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to apply rating"})
		return
	}
	c.JSON(http.StatusOK, result)
}
