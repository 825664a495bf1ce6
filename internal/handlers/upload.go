package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linkfolio-dev/linkfolio/db"
	"github.com/linkfolio-dev/linkfolio/internal/logger"
	"github.com/linkfolio-dev/linkfolio/internal/models"
	"go.uber.org/zap"
)

// UploadDir is where uploaded images land; served statically at /uploads.
// Set from config during boot.
var UploadDir = "uploads"

const maxUploadSize = 5 << 20 // 5MB

var allowedImageTypes = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

// UploadImage stores a generic image and returns its public URL.
func UploadImage(ctx *gin.Context) {
	url, ok := saveUploadedImage(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"url": url})
}

// UploadProfileImage stores an image and points the profile at it.
func UploadProfileImage(ctx *gin.Context) {
	profileID, ok := parseIDParam(ctx, "profileId")
	if !ok {
		return
	}

	if !requireProfileOwnership(ctx, profileID) {
		return
	}

	url, ok := saveUploadedImage(ctx)
	if !ok {
		return
	}

	if err := db.DB.Model(&models.Profile{}).Where("id = ?", profileID).Update("image_url", url).Error; err != nil {
		logger.Log.Error("Failed to update profile image", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	BroadcastProfileRefresh(profileID)
	ctx.JSON(http.StatusCreated, gin.H{"url": url})
}

func saveUploadedImage(ctx *gin.Context) (string, bool) {
	file, err := ctx.FormFile("image")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return "", false
	}

	if file.Size > maxUploadSize {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Image must be smaller than 5MB"})
		return "", false
	}

	contentType := file.Header.Get("Content-Type")
	ext, allowed := allowedImageTypes[contentType]
	if !allowed {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported image type: " + contentType})
		return "", false
	}

	// Never trust the client-supplied filename.
	filename := uuid.NewString() + ext
	destination := filepath.Join(UploadDir, filename)

	if err := ctx.SaveUploadedFile(file, destination); err != nil {
		logger.Log.Error("Failed to save uploaded file", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
		return "", false
	}

	return "/uploads/" + filename, true
}
