package handlers

import (
	"errors"
	"net/http"

	appointmentRepo "stilrandevu/database/repository/appointment"
	"stilrandevu/models"
	appointmentSvc "stilrandevu/services/appointment"
	"stilrandevu/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler serves the customer and provider appointment views.
type AppointmentHandler struct {
	AppointmentService appointmentSvc.AppointmentService
}

// ListMyAppointmentsHandler handles GET /api/appointments/mine.
func (h *AppointmentHandler) ListMyAppointmentsHandler(c *gin.Context) {
	appts, err := h.AppointmentService.ListMine(currentUserID(c))
	if err != nil {
		utils.GetLogger().Error("Failed to list appointments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list appointments"})
		return
	}
	if appts == nil {
		appts = []models.Appointment{}
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// ListIncomingAppointmentsHandler handles GET /api/appointments/incoming/:providerID.
func (h *AppointmentHandler) ListIncomingAppointmentsHandler(c *gin.Context) {
	appts, err := h.AppointmentService.ListIncoming(c.Param("providerID"))
	if err != nil {
		utils.GetLogger().Error("Failed to list incoming appointments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list appointments"})
		return
	}
	if appts == nil {
		appts = []models.Appointment{}
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// CompleteAppointmentHandler handles PUT /api/appointments/:id/complete.
func (h *AppointmentHandler) CompleteAppointmentHandler(c *gin.Context) {
	var req struct {
		ProviderID string `json:"providerId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.AppointmentService.Complete(req.ProviderID, c.Param("id")); err != nil {
		switch {
		case errors.Is(err, appointmentSvc.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "appointment belongs to another provider"})
		case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to complete appointment"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "appointment completed"})
}

// CancelAppointmentHandler handles DELETE /api/appointments/:id.
func (h *AppointmentHandler) CancelAppointmentHandler(c *gin.Context) {
	if err := h.AppointmentService.Cancel(currentUserID(c), c.Param("id")); err != nil {
		switch {
		case errors.Is(err, appointmentSvc.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "appointment belongs to another account"})
		case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel appointment"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "appointment cancelled"})
}
