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

type CreateSocialLinkRequest struct {
	Platform  string `json:"platform" binding:"required"`
	Username  string `json:"username"`
	URL       string `json:"url" binding:"required,url"`
	IconName  string `json:"icon_name"`
	Order     int    `json:"order"`
	Category  string `json:"category" binding:"omitempty,oneof=social knowledge"`
	IsVisible *bool  `json:"is_visible"`
}

type UpdateSocialLinkRequest struct {
	Platform  *string `json:"platform"`
	Username  *string `json:"username"`
	URL       *string `json:"url" binding:"omitempty,url"`
	IconName  *string `json:"icon_name"`
	Order     *int    `json:"order"`
	Category  *string `json:"category" binding:"omitempty,oneof=social knowledge"`
	IsVisible *bool   `json:"is_visible"`
}

func CreateSocialLink(ctx *gin.Context) {
	var body CreateSocialLinkRequest
	if !bindJSON(ctx, &body) {
		return
	}

	profile, ok := currentProfile(ctx)
	if !ok {
		return
	}

	category := body.Category
	if category == "" {
		category = "social"
	}

	isVisible := true
	if body.IsVisible != nil {
		isVisible = *body.IsVisible
	}

	link := models.SocialLink{
		ProfileID: profile.ID,
		Platform:  body.Platform,
		Username:  body.Username,
		URL:       body.URL,
		IconName:  body.IconName,
		Order:     body.Order,
		Category:  category,
		IsVisible: isVisible,
	}

	if err := db.DB.Create(&link).Error; err != nil {
		logger.Log.Error("Failed to create social link", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create social link"})
		return
	}

	BroadcastProfileRefresh(profile.ID)
	ctx.JSON(http.StatusCreated, link)
}

func ListSocialLinks(ctx *gin.Context) {
	profileID, ok := parseIDParam(ctx, "profileId")
	if !ok {
		return
	}

	var links []models.SocialLink
	query := db.DB.Where("profile_id = ?", profileID)

	if category := ctx.Param("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Order("\"order\" asc").Find(&links).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve social links"})
		return
	}

	ctx.JSON(http.StatusOK, links)
}

func UpdateSocialLink(ctx *gin.Context) {
	linkID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var link models.SocialLink
	if err := db.DB.First(&link, linkID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Social link not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if !requireProfileOwnership(ctx, link.ProfileID) {
		return
	}

	var body UpdateSocialLinkRequest
	if !bindJSON(ctx, &body) {
		return
	}

	updates := map[string]interface{}{}
	if body.Platform != nil {
		updates["platform"] = *body.Platform
	}
	if body.Username != nil {
		updates["username"] = *body.Username
	}
	if body.URL != nil {
		updates["url"] = *body.URL
	}
	if body.IconName != nil {
		updates["icon_name"] = *body.IconName
	}
	if body.Order != nil {
		updates["order"] = *body.Order
	}
	if body.Category != nil {
		updates["category"] = *body.Category
	}
	if body.IsVisible != nil {
		updates["is_visible"] = *body.IsVisible
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&link).Updates(updates).Error; err != nil {
			logger.Log.Error("Failed to update social link", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update social link"})
			return
		}
		if err := db.DB.First(&link, linkID).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		BroadcastProfileRefresh(link.ProfileID)
	}

	ctx.JSON(http.StatusOK, link)
}

func DeleteSocialLink(ctx *gin.Context) {
	linkID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var link models.SocialLink
	if err := db.DB.First(&link, linkID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Social link not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if !requireProfileOwnership(ctx, link.ProfileID) {
		return
	}

	if err := db.DB.Delete(&link).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete social link"})
		return
	}

	BroadcastProfileRefresh(link.ProfileID)
	ctx.Status(http.StatusNoContent)
}
