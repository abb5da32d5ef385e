package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	providerSvc "stilrandevu/services/provider"
	"stilrandevu/services/storage"
	"stilrandevu/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StorageHandler serves provider image uploads.
type StorageHandler struct {
	StorageSvc      storage.StorageService
	ProviderService providerSvc.ProviderService
}

// UploadProviderImageHandler handles POST /api/providers/:id/image. The file
// is staged to a temp path, pushed to the media store and its delivery URL
// saved on the provider record.
func (h *StorageHandler) UploadProviderImageHandler(c *gin.Context) {
	providerID := c.Param("id")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.StorageSvc.UploadFile(c, tempFilePath, "providers/images")
	if err != nil {
		utils.GetLogger().Error("Image upload failed", zap.String("providerID", providerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image"})
		return
	}

	downloadURL, err := h.StorageSvc.DownloadURL(publicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to construct download URL"})
		return
	}

	if err := h.ProviderService.SetImage(providerID, downloadURL); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save provider image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "image uploaded successfully",
		"downloadURL": downloadURL,
	})
}
