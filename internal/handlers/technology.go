package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linkfolio-dev/linkfolio/db"
	"github.com/linkfolio-dev/linkfolio/internal/logger"
	"github.com/linkfolio-dev/linkfolio/internal/models"
	"github.com/linkfolio-dev/linkfolio/internal/types"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CreateTechnologyRequest struct {
	Name              string `json:"name" binding:"required"`
	LogoURL           string `json:"logo_url"`
	Category          string `json:"category" binding:"required"`
	ProficiencyLevel  int    `json:"proficiency_level" binding:"min=0,max=100"`
	YearsOfExperience int    `json:"years_of_experience" binding:"min=0"`
	IsVisible         *bool  `json:"is_visible"`
	Order             *int   `json:"order"`
}

type UpdateTechnologyRequest struct {
	Name              *string `json:"name"`
	LogoURL           *string `json:"logo_url"`
	Category          *string `json:"category"`
	ProficiencyLevel  *int    `json:"proficiency_level" binding:"omitempty,min=0,max=100"`
	YearsOfExperience *int    `json:"years_of_experience" binding:"omitempty,min=0"`
	IsVisible         *bool   `json:"is_visible"`
	Order             *int    `json:"order"`
}

type ReorderTechnologiesRequest struct {
	OrderedIDs []uint `json:"orderedIds" binding:"required"`
}

func CreateTechnology(ctx *gin.Context) {
	var body CreateTechnologyRequest
	if !bindJSON(ctx, &body) {
		return
	}

	if !types.IsTechnologyCategory(body.Category) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Unknown technology category: " + body.Category})
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

	tech := models.Technology{
		ProfileID:         profile.ID,
		Name:              body.Name,
		LogoURL:           body.LogoURL,
		Category:          body.Category,
		ProficiencyLevel:  body.ProficiencyLevel,
		YearsOfExperience: body.YearsOfExperience,
		IsVisible:         isVisible,
	}

	if body.Order != nil {
		tech.Order = *body.Order
	} else {
		// Default to the end of the category.
		var count int64
		db.DB.Model(&models.Technology{}).
			Where("profile_id = ? AND category = ?", profile.ID, body.Category).
			Count(&count)
		tech.Order = int(count)
	}

	if err := db.DB.Create(&tech).Error; err != nil {
		logger.Log.Error("Failed to create technology", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create technology"})
		return
	}

	BroadcastProfileRefresh(profile.ID)
	ctx.JSON(http.StatusCreated, tech)
}

func ListTechnologies(ctx *gin.Context) {
	profileID, ok := parseIDParam(ctx, "profileId")
	if !ok {
		return
	}

	var technologies []models.Technology
	query := db.DB.Where("profile_id = ?", profileID)

	if category := ctx.Param("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Order("\"order\" asc").Find(&technologies).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve technologies"})
		return
	}

	ctx.JSON(http.StatusOK, technologies)
}

func UpdateTechnology(ctx *gin.Context) {
	techID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var tech models.Technology
	if err := db.DB.First(&tech, techID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Technology not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if !requireProfileOwnership(ctx, tech.ProfileID) {
		return
	}

	var body UpdateTechnologyRequest
	if !bindJSON(ctx, &body) {
		return
	}

	if body.Category != nil && !types.IsTechnologyCategory(*body.Category) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Unknown technology category: " + *body.Category})
		return
	}

	updates := map[string]interface{}{}
	if body.Name != nil {
		updates["name"] = *body.Name
	}
	if body.LogoURL != nil {
		updates["logo_url"] = *body.LogoURL
	}
	if body.Category != nil {
		updates["category"] = *body.Category
	}
	if body.ProficiencyLevel != nil {
		updates["proficiency_level"] = *body.ProficiencyLevel
	}
	if body.YearsOfExperience != nil {
		updates["years_of_experience"] = *body.YearsOfExperience
	}
	if body.IsVisible != nil {
		updates["is_visible"] = *body.IsVisible
	}
	if body.Order != nil {
		updates["order"] = *body.Order
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&tech).Updates(updates).Error; err != nil {
			logger.Log.Error("Failed to update technology", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update technology"})
			return
		}
		if err := db.DB.First(&tech, techID).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		BroadcastProfileRefresh(tech.ProfileID)
	}

	ctx.JSON(http.StatusOK, tech)
}

func DeleteTechnology(ctx *gin.Context) {
	techID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var tech models.Technology
	if err := db.DB.First(&tech, techID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Technology not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if !requireProfileOwnership(ctx, tech.ProfileID) {
		return
	}

	if err := db.DB.Delete(&tech).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete technology"})
		return
	}

	BroadcastProfileRefresh(tech.ProfileID)
	ctx.Status(http.StatusNoContent)
}

// ReorderTechnologies assigns each technology's order to its index in the
// submitted id list, scoped to one (profile, category) pair. Ids that do not
// belong to that pair are ignored; other categories are untouched.
func ReorderTechnologies(ctx *gin.Context) {
	profileID, ok := parseIDParam(ctx, "profileId")
	if !ok {
		return
	}

	category := ctx.Param("category")
	if !types.IsTechnologyCategory(category) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Unknown technology category: " + category})
		return
	}

	if !requireProfileOwnership(ctx, profileID) {
		return
	}

	var body ReorderTechnologiesRequest
	if !bindJSON(ctx, &body) {
		return
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		for index, techID := range body.OrderedIDs {
			result := tx.Model(&models.Technology{}).
				Where("id = ? AND profile_id = ? AND category = ?", techID, profileID, category).
				Update("order", index)
			if result.Error != nil {
				return result.Error
			}
		}
		return nil
	})

	if err != nil {
		logger.Log.Error("Failed to reorder technologies", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder technologies"})
		return
	}

	var technologies []models.Technology
	if err := db.DB.
		Where("profile_id = ? AND category = ?", profileID, category).
		Order("\"order\" asc").
		Find(&technologies).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve technologies"})
		return
	}

	BroadcastProfileRefresh(profileID)
	ctx.JSON(http.StatusOK, technologies)
}
