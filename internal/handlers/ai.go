package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linkfolio-dev/linkfolio/db"
	"github.com/linkfolio-dev/linkfolio/internal/ai"
	"github.com/linkfolio-dev/linkfolio/internal/logger"
	"github.com/linkfolio-dev/linkfolio/internal/models"
	"github.com/linkfolio-dev/linkfolio/internal/types"
	"go.uber.org/zap"
)

// AIClient is configured during boot with the Perplexity API key.
var AIClient *ai.Client

// AnalyzeIssue forwards one issue to the AI and returns its free-text
// analysis plus the heading-split sections. Upstream failure degrades to the
// generic failure message, not an error status.
func AnalyzeIssue(ctx *gin.Context) {
	issue, ok := loadOwnedIssue(ctx)
	if !ok {
		return
	}

	system, user := ai.AnalysisPrompts(*issue)

	text, err := AIClient.Complete(ctx.Request.Context(), system, user)
	if err != nil {
		logger.Log.Error("AI analysis failed", zap.Uint("issue_id", issue.ID), zap.Error(err))
		ctx.JSON(http.StatusOK, gin.H{
			"issue_id": issue.ID,
			"analysis": ai.FailureMessage,
			"sections": []ai.Section{},
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"issue_id": issue.ID,
		"analysis": text,
		"sections": ai.SplitSections(text),
	})
}

// SummarizeIssues runs the AI over the caller's open issue backlog.
func SummarizeIssues(ctx *gin.Context) {
	profile, ok := currentProfile(ctx)
	if !ok {
		return
	}

	var issues []models.Issue
	if err := db.DB.
		Where("profile_id = ? AND status <> ?", profile.ID, types.IssueStatusResolved).
		Order("created_at desc").
		Find(&issues).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issues"})
		return
	}

	if len(issues) == 0 {
		ctx.JSON(http.StatusOK, gin.H{
			"summary":  "",
			"sections": []ai.Section{},
			"count":    0,
		})
		return
	}

	system, user := ai.SummaryPrompts(issues)

	text, err := AIClient.Complete(ctx.Request.Context(), system, user)
	if err != nil {
		logger.Log.Error("AI summary failed", zap.Uint("profile_id", profile.ID), zap.Error(err))
		ctx.JSON(http.StatusOK, gin.H{
			"summary":  ai.FailureMessage,
			"sections": []ai.Section{},
			"count":    len(issues),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"summary":  text,
		"sections": ai.SplitSections(text),
		"count":    len(issues),
	})
}
