package handlers

import (
	"net/http"

	apperrors "football-roster-backend/internal/errors"
	"football-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UploadHandler handles player image uploads
type UploadHandler struct {
	assetService service.AssetServiceInterface
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(assetService service.AssetServiceInterface) *UploadHandler {
	return &UploadHandler{
		assetService: assetService,
	}
}

// UploadPlayerImage handles POST /upload_player_image/:id
// @Summary Upload a player image
// @Description Accepts a multipart "file" field (png/jpg/jpeg/gif) and records its path on the player
// @Tags players
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Player ID"
// @Param file formData file true "Image file"
// @Success 200 {object} map[string]interface{} "message and image_url"
// @Failure 400 {object} map[string]interface{} "Missing file or disallowed extension"
// @Failure 404 {object} map[string]interface{} "Player not found"
// @Router /upload_player_image/{id} [post]
func (h *UploadHandler) UploadPlayerImage(c *gin.Context) {
	id, ok := parseID(c, "player")
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file supplied"})
		return
	}

	imageURL, err := h.assetService.SavePlayerImage(id, file)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Image uploaded successfully", "image_url": imageURL})
}
