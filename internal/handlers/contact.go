package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linkfolio-dev/linkfolio/db"
	"github.com/linkfolio-dev/linkfolio/internal/logger"
	"github.com/linkfolio-dev/linkfolio/internal/models"
	"github.com/linkfolio-dev/linkfolio/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CreateContactRequest struct {
	ContactProfileID uint   `json:"contact_profile_id" binding:"required"`
	Category         string `json:"category"`
	Notes            string `json:"notes"`
}

type UpdateContactEntryRequest struct {
	Category *string `json:"category"`
	Notes    *string `json:"notes"`
}

// CreateContact stores a business card captured via QR scan: a reference to
// another user's profile in the caller's contact book.
func CreateContact(ctx *gin.Context) {
	var body CreateContactRequest
	if !bindJSON(ctx, &body) {
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var profile models.Profile
	if err := db.DB.First(&profile, body.ContactProfileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Contact profile not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	contact := models.Contact{
		UserID:           userID,
		ContactProfileID: body.ContactProfileID,
		Category:         body.Category,
		Notes:            body.Notes,
		AddedAt:          time.Now(),
	}

	if err := db.DB.Create(&contact).Error; err != nil {
		logger.Log.Error("Failed to create contact", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contact"})
		return
	}

	ctx.JSON(http.StatusCreated, contact)
}

func ListContacts(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var contacts []models.Contact
	if err := db.DB.
		Preload("ContactProfile").
		Where("user_id = ?", userID).
		Order("added_at desc").
		Find(&contacts).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve contacts"})
		return
	}

	ctx.JSON(http.StatusOK, contacts)
}

func UpdateContact(ctx *gin.Context) {
	contact, ok := loadOwnedContact(ctx)
	if !ok {
		return
	}

	var body UpdateContactEntryRequest
	if !bindJSON(ctx, &body) {
		return
	}

	updates := map[string]interface{}{}
	if body.Category != nil {
		updates["category"] = *body.Category
	}
	if body.Notes != nil {
		updates["notes"] = *body.Notes
	}

	if len(updates) > 0 {
		if err := db.DB.Model(contact).Updates(updates).Error; err != nil {
			logger.Log.Error("Failed to update contact", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contact"})
			return
		}
		if err := db.DB.First(contact, contact.ID).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}

	ctx.JSON(http.StatusOK, contact)
}

func DeleteContact(ctx *gin.Context) {
	contact, ok := loadOwnedContact(ctx)
	if !ok {
		return
	}

	if err := db.DB.Delete(contact).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contact"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// TouchContact records that the caller just viewed the card.
func TouchContact(ctx *gin.Context) {
	contact, ok := loadOwnedContact(ctx)
	if !ok {
		return
	}

	now := time.Now()
	if err := db.DB.Model(contact).Update("last_viewed_at", now).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contact"})
		return
	}
	contact.LastViewedAt = &now

	ctx.JSON(http.StatusOK, contact)
}

func loadOwnedContact(ctx *gin.Context) (*models.Contact, bool) {
	contactID, ok := parseIDParam(ctx, "id")
	if !ok {
		return nil, false
	}

	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return nil, false
	}

	var contact models.Contact
	if err := db.DB.First(&contact, contactID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return nil, false
	}

	if contact.UserID != userID {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "You do not own this contact"})
		return nil, false
	}

	return &contact, true
}
