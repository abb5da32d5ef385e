package handlers

import (
	"errors"
	"net/http"

	favoriteSvc "stilrandevu/services/favorite"
	"stilrandevu/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FavoriteHandler serves the favorite-provider endpoints.
type FavoriteHandler struct {
	FavoriteService favoriteSvc.FavoriteService
}

// ToggleFavoriteHandler handles POST /api/favorites/toggle. The response
// always reports the membership state after the call, so a rolled-back toggle
// returns the pre-toggle state alongside the error.
func (h *FavoriteHandler) ToggleFavoriteHandler(c *gin.Context) {
	var req struct {
		ProviderID string `json:"providerId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	isFavorite, err := h.FavoriteService.Toggle(currentUserID(c), req.ProviderID)
	if err != nil {
		var fe *favoriteSvc.FavoriteError
		if errors.As(err, &fe) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": fe.Message, "code": fe.Code})
			return
		}
		utils.GetLogger().Error("Favorite toggle failed", zap.String("providerID", req.ProviderID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not save favorite, please try again", "isFavorite": isFavorite})
		return
	}
	c.JSON(http.StatusOK, gin.H{"isFavorite": isFavorite})
}

// ListFavoritesHandler handles GET /api/favorites.
func (h *FavoriteHandler) ListFavoritesHandler(c *gin.Context) {
	ids := h.FavoriteService.Favorites(currentUserID(c))
	if ids == nil {
		ids = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"favorites": ids})
}
