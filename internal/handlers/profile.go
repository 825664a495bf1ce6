package handlers

import (
	"encoding/json"
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

// DemoUserID backs GET /api/profile. Set from config during boot.
var DemoUserID uint = 5

type UpdateProfileRequest struct {
	Name     *string `json:"name"`
	Bio      *string `json:"bio"`
	Location *string `json:"location"`
}

type UpdateContactRequest struct {
	Email *string `json:"email" binding:"omitempty,email"`
	Phone *string `json:"phone"`
	CVUrl *string `json:"cv_url" binding:"omitempty,url"`
}

type UpdateImageRequest struct {
	ImageIndex *int    `json:"image_index" binding:"omitempty,min=0"`
	ImageURL   *string `json:"image_url"`
}

type UpdateBackgroundRequest struct {
	BackgroundIndex    *int                       `json:"background_index" binding:"omitempty,min=0"`
	BackgroundGradient *models.BackgroundGradient `json:"background_gradient"`
}

type UpdateGithubSettingsRequest struct {
	GithubUsername  *string `json:"github_username"`
	TryHackMeUserID *string `json:"tryhackme_user_id"`
}

type UpdateSectionVisibilityRequest struct {
	ShowImage        *bool `json:"show_image"`
	ShowContact      *bool `json:"show_contact"`
	ShowSocial       *bool `json:"show_social"`
	ShowKnowledge    *bool `json:"show_knowledge"`
	ShowFeatured     *bool `json:"show_featured"`
	ShowTechnologies *bool `json:"show_technologies"`
	ShowGithubStats  *bool `json:"show_github_stats"`
	ShowTryHackMe    *bool `json:"show_tryhackme"`
}

type UpdateSectionOrderRequest struct {
	SectionOrder []string `json:"section_order" binding:"required"`
}

// GetDemoProfile serves the single public demo profile with its visible
// nested content. The demo user id is a deployment setting, not a route
// parameter; GetProfileByUsername is the multi-profile path.
func GetDemoProfile(ctx *gin.Context) {
	var profile models.Profile

	err := db.DB.Where("user_id = ?", DemoUserID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	renderPublicProfile(ctx, &profile)
}

func GetProfileByUsername(ctx *gin.Context) {
	username := ctx.Param("username")

	var user models.User
	err := db.DB.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	var profile models.Profile
	if err := db.DB.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	renderPublicProfile(ctx, &profile)
}

func renderPublicProfile(ctx *gin.Context, profile *models.Profile) {
	err := db.DB.
		Preload("SocialLinks", "is_visible = ?", true).
		Preload("FeaturedContents", "is_visible = ?", true).
		Preload("Technologies", "is_visible = ?", true).
		First(profile, profile.ID).Error

	if err != nil {
		logger.Log.Error("Failed to load profile relations", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"profile":       profile,
		"section_order": EffectiveSectionOrder(profile),
	})
}

// EffectiveSectionOrder returns the stored order with unknown identifiers
// dropped and missing ones appended in default position.
func EffectiveSectionOrder(profile *models.Profile) []string {
	var stored []string
	if len(profile.SectionOrder) > 0 {
		if err := json.Unmarshal(profile.SectionOrder, &stored); err != nil {
			stored = nil
		}
	}

	seen := make(map[string]bool, len(types.DefaultSectionOrder))
	order := make([]string, 0, len(types.DefaultSectionOrder))

	for _, id := range stored {
		if types.IsKnownSection(id) && !seen[id] {
			order = append(order, id)
			seen[id] = true
		}
	}

	for _, id := range types.DefaultSectionOrder {
		if !seen[id] {
			order = append(order, id)
		}
	}

	return order
}

// UpdateProfile applies a partial update: only submitted fields change.
func UpdateProfile(ctx *gin.Context) {
	var body UpdateProfileRequest
	if !bindJSON(ctx, &body) {
		return
	}

	updates := map[string]interface{}{}
	if body.Name != nil {
		updates["name"] = *body.Name
	}
	if body.Bio != nil {
		updates["bio"] = *body.Bio
	}
	if body.Location != nil {
		updates["location"] = *body.Location
	}

	applyProfileUpdates(ctx, updates)
}

func UpdateProfileContact(ctx *gin.Context) {
	var body UpdateContactRequest
	if !bindJSON(ctx, &body) {
		return
	}

	updates := map[string]interface{}{}
	if body.Email != nil {
		updates["email"] = *body.Email
	}
	if body.Phone != nil {
		updates["phone"] = *body.Phone
	}
	if body.CVUrl != nil {
		updates["cv_url"] = *body.CVUrl
	}

	applyProfileUpdates(ctx, updates)
}

func UpdateProfileImage(ctx *gin.Context) {
	var body UpdateImageRequest
	if !bindJSON(ctx, &body) {
		return
	}

	updates := map[string]interface{}{}
	if body.ImageIndex != nil {
		updates["image_index"] = *body.ImageIndex
	}
	if body.ImageURL != nil {
		updates["image_url"] = *body.ImageURL
	}

	applyProfileUpdates(ctx, updates)
}

func UpdateProfileBackground(ctx *gin.Context) {
	var body UpdateBackgroundRequest
	if !bindJSON(ctx, &body) {
		return
	}

	updates := map[string]interface{}{}
	if body.BackgroundIndex != nil {
		updates["background_index"] = *body.BackgroundIndex
	}
	if body.BackgroundGradient != nil {
		gradient, err := json.Marshal(body.BackgroundGradient)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid background gradient"})
			return
		}
		updates["background_gradient"] = gradient
	}

	applyProfileUpdates(ctx, updates)
}

func UpdateGithubSettings(ctx *gin.Context) {
	var body UpdateGithubSettingsRequest
	if !bindJSON(ctx, &body) {
		return
	}

	updates := map[string]interface{}{}
	if body.GithubUsername != nil {
		updates["github_username"] = *body.GithubUsername
	}
	if body.TryHackMeUserID != nil {
		updates["try_hack_me_user_id"] = *body.TryHackMeUserID
	}

	applyProfileUpdates(ctx, updates)
}

func UpdateSectionVisibility(ctx *gin.Context) {
	var body UpdateSectionVisibilityRequest
	if !bindJSON(ctx, &body) {
		return
	}

	updates := map[string]interface{}{}
	flags := map[string]*bool{
		"show_image":        body.ShowImage,
		"show_contact":      body.ShowContact,
		"show_social":       body.ShowSocial,
		"show_knowledge":    body.ShowKnowledge,
		"show_featured":     body.ShowFeatured,
		"show_technologies": body.ShowTechnologies,
		"show_github_stats": body.ShowGithubStats,
		"show_try_hack_me":  body.ShowTryHackMe,
	}
	for column, value := range flags {
		if value != nil {
			updates[column] = *value
		}
	}

	applyProfileUpdates(ctx, updates)
}

// UpdateSectionOrder validates the submitted identifiers against the known
// section set. Partial lists are allowed; rendering appends the rest in
// default order.
func UpdateSectionOrder(ctx *gin.Context) {
	var body UpdateSectionOrderRequest
	if !bindJSON(ctx, &body) {
		return
	}

	for _, id := range body.SectionOrder {
		if !types.IsKnownSection(id) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Unknown section identifier: " + id})
			return
		}
	}

	order, err := json.Marshal(body.SectionOrder)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	applyProfileUpdates(ctx, map[string]interface{}{"section_order": order})
}

func applyProfileUpdates(ctx *gin.Context, updates map[string]interface{}) {
	profileID, ok := parseIDParam(ctx, "profileId")
	if !ok {
		return
	}

	if !requireProfileOwnership(ctx, profileID) {
		return
	}

	var profile models.Profile
	if err := db.DB.First(&profile, profileID).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&profile).Updates(updates).Error; err != nil {
			logger.Log.Error("Failed to update profile", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		if err := db.DB.First(&profile, profileID).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		BroadcastProfileRefresh(profileID)
	}

	ctx.JSON(http.StatusOK, profile)
}
