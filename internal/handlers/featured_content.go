package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linkfolio-dev/linkfolio/db"
	"github.com/linkfolio-dev/linkfolio/internal/logger"
	"github.com/linkfolio-dev/linkfolio/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CreateFeaturedContentRequest struct {
	Title     string `json:"title" binding:"required"`
	ImageURL  string `json:"image_url"`
	LinkURL   string `json:"link_url" binding:"omitempty,url"`
	Order     int    `json:"order"`
	IsVisible *bool  `json:"is_visible"`
}

type UpdateFeaturedContentRequest struct {
	Title     *string `json:"title"`
	ImageURL  *string `json:"image_url"`
	LinkURL   *string `json:"link_url" binding:"omitempty,url"`
	Order     *int    `json:"order"`
	IsVisible *bool   `json:"is_visible"`
}

func CreateFeaturedContent(ctx *gin.Context) {
	var body CreateFeaturedContentRequest
	if !bindJSON(ctx, &body) {
		return
	}

	profile, ok := currentProfile(ctx)
	if !ok {
		return
	}

	isVisible := true
	if body.IsVisible != nil {
		isVisible = *body.IsVisible
	}

	content := models.FeaturedContent{
		ProfileID: profile.ID,
		Title:     body.Title,
		ImageURL:  body.ImageURL,
		LinkURL:   body.LinkURL,
		Order:     body.Order,
		IsVisible: isVisible,
	}

	if err := db.DB.Create(&content).Error; err != nil {
		logger.Log.Error("Failed to create featured content", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create featured content"})
		return
	}

	BroadcastProfileRefresh(profile.ID)
	ctx.JSON(http.StatusCreated, content)
}

func ListFeaturedContents(ctx *gin.Context) {
	profileID, ok := parseIDParam(ctx, "profileId")
	if !ok {
		return
	}

	var contents []models.FeaturedContent
	if err := db.DB.Where("profile_id = ?", profileID).Order("\"order\" asc").Find(&contents).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve featured contents"})
		return
	}

	ctx.JSON(http.StatusOK, contents)
}

func UpdateFeaturedContent(ctx *gin.Context) {
	contentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var content models.FeaturedContent
	if err := db.DB.First(&content, contentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Featured content not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if !requireProfileOwnership(ctx, content.ProfileID) {
		return
	}

	var body UpdateFeaturedContentRequest
	if !bindJSON(ctx, &body) {
		return
	}

	updates := map[string]interface{}{}
	if body.Title != nil {
		updates["title"] = *body.Title
	}
	if body.ImageURL != nil {
		updates["image_url"] = *body.ImageURL
	}
	if body.LinkURL != nil {
		updates["link_url"] = *body.LinkURL
	}
	if body.Order != nil {
		updates["order"] = *body.Order
	}
	if body.IsVisible != nil {
		updates["is_visible"] = *body.IsVisible
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&content).Updates(updates).Error; err != nil {
			logger.Log.Error("Failed to update featured content", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update featured content"})
			return
		}
		if err := db.DB.First(&content, contentID).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		BroadcastProfileRefresh(content.ProfileID)
	}

	ctx.JSON(http.StatusOK, content)
}

func DeleteFeaturedContent(ctx *gin.Context) {
	contentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var content models.FeaturedContent
	if err := db.DB.First(&content, contentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Featured content not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if !requireProfileOwnership(ctx, content.ProfileID) {
		return
	}

	if err := db.DB.Delete(&content).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete featured content"})
		return
	}

	BroadcastProfileRefresh(content.ProfileID)
	ctx.Status(http.StatusNoContent)
}
