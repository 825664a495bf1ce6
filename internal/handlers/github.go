package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linkfolio-dev/linkfolio/internal/github"
)

// Contributions is the active contribution source. The scraper is the
// default; tests (or a future GraphQL implementation) swap it out.
var Contributions github.ContributionSource = github.NewScraper()

// GetGithubContributions is a read-through endpoint: every call re-fetches.
// Fetch failures degrade to an empty calendar rather than an error status.
func GetGithubContributions(ctx *gin.Context) {
	username := ctx.Param("username")

	days, err := Contributions.FetchContributions(ctx.Request.Context(), username)
	if err != nil || days == nil {
		days = []github.ContributionDay{}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"username":      username,
		"contributions": days,
		"weeks":         github.BuildWeeks(days),
	})
}

func GetGithubContributionStats(ctx *gin.Context) {
	username := ctx.Param("username")

	days, err := Contributions.FetchContributions(ctx.Request.Context(), username)
	if err != nil || days == nil {
		days = []github.ContributionDay{}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"username": username,
		"stats":    github.ComputeStats(days),
	})
}
