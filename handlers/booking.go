package handlers

import (
	"errors"
	"net/http"

	providerRepo "stilrandevu/database/repository/provider"
	bookingSvc "stilrandevu/services/booking"
	"stilrandevu/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the stateful booking-session endpoints.
type BookingHandler struct {
	SessionService bookingSvc.SessionService
}

// writeBookingError maps booking failures onto HTTP statuses: validation
// failures are the client's to fix, remote failures are ours.
func writeBookingError(c *gin.Context, err error) {
	var be *bookingSvc.BookingError
	if errors.As(err, &be) {
		status := http.StatusBadRequest
		if be == bookingSvc.ErrUnauthenticated {
			status = http.StatusUnauthorized
		}
		c.JSON(status, gin.H{"error": be.Message, "code": be.Code})
		return
	}
	var re *bookingSvc.RemoteError
	if errors.As(err, &re) {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "provider not found"})
			return
		}
		utils.GetLogger().Error("Booking remote failure", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "booking service temporarily unavailable"})
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
}

// InitiateSessionHandler handles POST /api/booking/session.
func (h *BookingHandler) InitiateSessionHandler(c *gin.Context) {
	var req struct {
		ProviderID string `json:"providerId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	view, err := h.SessionService.InitiateSession(currentUserID(c), currentUserEmail(c), req.ProviderID)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ToggleServiceHandler handles PUT /api/booking/session/:sessionID/services.
func (h *BookingHandler) ToggleServiceHandler(c *gin.Context) {
	var req struct {
		ServiceID string `json:"serviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	view, err := h.SessionService.ToggleService(c.Param("sessionID"), req.ServiceID)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ChooseSlotHandler handles PUT /api/booking/session/:sessionID/slot.
func (h *BookingHandler) ChooseSlotHandler(c *gin.Context) {
	var req struct {
		Date string `json:"date" binding:"required"`
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	view, err := h.SessionService.ChooseSlot(c.Param("sessionID"), req.Date, req.Time)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ConfirmBookingHandler handles POST /api/booking/confirm.
func (h *BookingHandler) ConfirmBookingHandler(c *gin.Context) {
	var req struct {
		SessionID string `json:"sessionId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	appt, err := h.SessionService.Confirm(req.SessionID)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"appointment": appt})
}

// CancelSessionHandler handles DELETE /api/booking/session/:sessionID.
func (h *BookingHandler) CancelSessionHandler(c *gin.Context) {
	if err := h.SessionService.Cancel(c.Param("sessionID")); err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session discarded"})
}
