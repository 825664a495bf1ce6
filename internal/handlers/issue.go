package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linkfolio-dev/linkfolio/db"
	"github.com/linkfolio-dev/linkfolio/internal/logger"
	"github.com/linkfolio-dev/linkfolio/internal/models"
	"github.com/linkfolio-dev/linkfolio/internal/types"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CreateIssueRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Severity    string `json:"severity" binding:"omitempty,oneof=low medium high critical"`
}

type UpdateIssueRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	Severity    *string `json:"severity" binding:"omitempty,oneof=low medium high critical"`
	Status      *string `json:"status" binding:"omitempty,oneof=open in_progress resolved"`
}

func CreateIssue(ctx *gin.Context) {
	var body CreateIssueRequest
	if !bindJSON(ctx, &body) {
		return
	}

	profile, ok := currentProfile(ctx)
	if !ok {
		return
	}

	severity := body.Severity
	if severity == "" {
		severity = types.SeverityLow
	}

	issue := models.Issue{
		ProfileID:   profile.ID,
		Title:       body.Title,
		Description: body.Description,
		ImageURL:    body.ImageURL,
		Severity:    severity,
		Status:      types.IssueStatusOpen,
	}

	if err := db.DB.Create(&issue).Error; err != nil {
		logger.Log.Error("Failed to create issue", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create issue"})
		return
	}

	ctx.JSON(http.StatusCreated, issue)
}

func ListIssues(ctx *gin.Context) {
	profileID, ok := parseIDParam(ctx, "profileId")
	if !ok {
		return
	}

	var issues []models.Issue
	if err := db.DB.Where("profile_id = ?", profileID).Order("created_at desc").Find(&issues).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issues"})
		return
	}

	ctx.JSON(http.StatusOK, issues)
}

func UpdateIssue(ctx *gin.Context) {
	issue, ok := loadOwnedIssue(ctx)
	if !ok {
		return
	}

	var body UpdateIssueRequest
	if !bindJSON(ctx, &body) {
		return
	}

	updates := map[string]interface{}{}
	if body.Title != nil {
		updates["title"] = *body.Title
	}
	if body.Description != nil {
		updates["description"] = *body.Description
	}
	if body.ImageURL != nil {
		updates["image_url"] = *body.ImageURL
	}
	if body.Severity != nil {
		updates["severity"] = *body.Severity
	}
	if body.Status != nil {
		updates["status"] = *body.Status
		switch *body.Status {
		case types.IssueStatusResolved:
			updates["is_resolved"] = true
			updates["resolved_at"] = time.Now()
		default:
			updates["is_resolved"] = false
			updates["resolved_at"] = nil
		}
	}

	if len(updates) > 0 {
		if err := db.DB.Model(issue).Updates(updates).Error; err != nil {
			logger.Log.Error("Failed to update issue", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update issue"})
			return
		}
		if err := db.DB.First(issue, issue.ID).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}

	ctx.JSON(http.StatusOK, issue)
}

func DeleteIssue(ctx *gin.Context) {
	issue, ok := loadOwnedIssue(ctx)
	if !ok {
		return
	}

	if err := db.DB.Delete(issue).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete issue"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ResolveIssue moves an issue to resolved. Resolving an already-resolved
// issue is idempotent and keeps the original resolvedAt.
func ResolveIssue(ctx *gin.Context) {
	issue, ok := loadOwnedIssue(ctx)
	if !ok {
		return
	}

	if issue.Status != types.IssueStatusResolved {
		now := time.Now()
		updates := map[string]interface{}{
			"status":      types.IssueStatusResolved,
			"is_resolved": true,
			"resolved_at": now,
		}
		if err := db.DB.Model(issue).Updates(updates).Error; err != nil {
			logger.Log.Error("Failed to resolve issue", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve issue"})
			return
		}
		if err := db.DB.First(issue, issue.ID).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}

	ctx.JSON(http.StatusOK, issue)
}

// ReopenIssue sets a resolved issue back to open and clears resolvedAt.
func ReopenIssue(ctx *gin.Context) {
	issue, ok := loadOwnedIssue(ctx)
	if !ok {
		return
	}

	updates := map[string]interface{}{
		"status":      types.IssueStatusOpen,
		"is_resolved": false,
		"resolved_at": nil,
	}

	if err := db.DB.Model(issue).Updates(updates).Error; err != nil {
		logger.Log.Error("Failed to reopen issue", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reopen issue"})
		return
	}
	if err := db.DB.First(issue, issue.ID).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, issue)
}

func loadOwnedIssue(ctx *gin.Context) (*models.Issue, bool) {
	issueID, ok := parseIDParam(ctx, "id")
	if !ok {
		return nil, false
	}

	var issue models.Issue
	if err := db.DB.First(&issue, issueID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return nil, false
	}

	if !requireProfileOwnership(ctx, issue.ProfileID) {
		return nil, false
	}

	return &issue, true
}
