package handlers

import (
	"errors"
	"net/http"
	"strconv"

	providerRepo "stilrandevu/database/repository/provider"
	"stilrandevu/models"
	providerSvc "stilrandevu/services/provider"
	"stilrandevu/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProviderHandler serves provider browsing and management endpoints.
type ProviderHandler struct {
	ProviderService providerSvc.ProviderService
}

// ListProvidersHandler handles GET /api/providers. Supports ?name= substring
// filtering and ?favorites=true to limit to the caller's saved providers.
func (h *ProviderHandler) ListProvidersHandler(c *gin.Context) {
	filter := providerSvc.ListFilter{Name: c.Query("name")}
	if c.Query("favorites") == "true" {
		filter.FavoritesOf = currentUserID(c)
	}

	providers, err := h.ProviderService.List(filter)
	if err != nil {
		utils.GetLogger().Error("Failed to list providers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list providers"})
		return
	}
	if providers == nil {
		providers = []models.Provider{}
	}
	c.JSON(http.StatusOK, gin.H{"providers": providers})
}

// NearbyProvidersHandler handles GET /api/providers/nearby?lat=&lon=.
func (h *ProviderHandler) NearbyProvidersHandler(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	if errLat != nil || errLon != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon query parameters are required"})
		return
	}

	providers, err := h.ProviderService.Nearby(lat, lon)
	if err != nil {
		utils.GetLogger().Error("Failed to list nearby providers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list providers"})
		return
	}
	if providers == nil {
		providers = []providerSvc.ProviderDistance{}
	}
	c.JSON(http.StatusOK, gin.H{"providers": providers})
}

// GetProviderByIDHandler handles GET /api/providers/id/:id.
func (h *ProviderHandler) GetProviderByIDHandler(c *gin.Context) {
	id := c.Param("id")
	p, err := h.ProviderService.GetByID(id)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "provider not found"})
			return
		}
		utils.GetLogger().Error("Failed to fetch provider", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch provider"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// RegisterProviderHandler handles POST /api/providers/register.
func (h *ProviderHandler) RegisterProviderHandler(c *gin.Context) {
	var p models.Provider
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if p.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "provider name is required"})
		return
	}

	if err := h.ProviderService.Register(&p); err != nil {
		utils.GetLogger().Error("Failed to register provider", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register provider"})
		return
	}
	c.JSON(http.StatusCreated, p)
}

// UpdateProviderHandler handles PATCH /api/providers/update/:id.
func (h *ProviderHandler) UpdateProviderHandler(c *gin.Context) {
	var p models.Provider
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	p.ID = c.Param("id")

	if err := h.ProviderService.Update(&p); err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "provider not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update provider"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeleteProviderHandler handles DELETE /api/providers/delete/:id.
func (h *ProviderHandler) DeleteProviderHandler(c *gin.Context) {
	if err := h.ProviderService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "provider not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete provider"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "provider deleted"})
}

// AddServiceHandler handles POST /api/providers/:id/services.
func (h *ProviderHandler) AddServiceHandler(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if svc.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "service name is required"})
		return
	}

	created, err := h.ProviderService.AddService(c.Param("id"), svc)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "provider not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// RemoveServiceHandler handles DELETE /api/providers/:id/services/:serviceID.
func (h *ProviderHandler) RemoveServiceHandler(c *gin.Context) {
	if err := h.ProviderService.RemoveService(c.Param("id"), c.Param("serviceID")); err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "provider not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove service"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "service removed"})
}
