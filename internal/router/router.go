package router

import (
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/linkfolio-dev/linkfolio/internal/handlers"
	"github.com/linkfolio-dev/linkfolio/internal/middleware"
	"github.com/linkfolio-dev/linkfolio/internal/types"
)

type Options struct {
	UploadDir    string
	SentryActive bool
}

func NewRouter(opts Options) *gin.Engine {
	r := gin.Default()

	if opts.SentryActive {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Static("/uploads", opts.UploadDir)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/ws/profile/:profileId", handlers.ProfileWebSocket)

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)
			auth.POST("/logout", middleware.AuthMiddleware(), handlers.Logout)
			auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
		}

		// Public profile surface
		api.GET("/profile", handlers.GetDemoProfile)
		api.GET("/profiles/:username", handlers.GetProfileByUsername)

		profile := api.Group("/profile/:profileId")
		{
			profile.GET("/social-links", handlers.ListSocialLinks)
			profile.GET("/social-links/category/:category", handlers.ListSocialLinks)
			profile.GET("/featured-contents", handlers.ListFeaturedContents)
			profile.GET("/technologies", handlers.ListTechnologies)
			profile.GET("/technologies/category/:category", handlers.ListTechnologies)
			profile.GET("/issues", handlers.ListIssues)

			authed := profile.Group("", middleware.AuthMiddleware())
			{
				authed.PATCH("", handlers.UpdateProfile)
				authed.PATCH("/image", handlers.UpdateProfileImage)
				authed.PATCH("/background", handlers.UpdateProfileBackground)
				authed.PATCH("/contact", handlers.UpdateProfileContact)
				authed.PATCH("/github-settings", handlers.UpdateGithubSettings)
				authed.PATCH("/section-visibility", handlers.UpdateSectionVisibility)
				authed.PATCH("/section-order", handlers.UpdateSectionOrder)
				authed.POST("/upload-image", handlers.UploadProfileImage)
				authed.POST("/technologies/category/:category/reorder", handlers.ReorderTechnologies)
			}
		}

		socialLinks := api.Group("/social-links", middleware.AuthMiddleware())
		{
			socialLinks.POST("", handlers.CreateSocialLink)
			socialLinks.PATCH("/:id", handlers.UpdateSocialLink)
			socialLinks.DELETE("/:id", handlers.DeleteSocialLink)
		}

		featured := api.Group("/featured-contents", middleware.AuthMiddleware())
		{
			featured.POST("", handlers.CreateFeaturedContent)
			featured.PATCH("/:id", handlers.UpdateFeaturedContent)
			featured.DELETE("/:id", handlers.DeleteFeaturedContent)
		}

		technologies := api.Group("/technologies", middleware.AuthMiddleware())
		{
			technologies.POST("", handlers.CreateTechnology)
			technologies.PATCH("/:id", handlers.UpdateTechnology)
			technologies.DELETE("/:id", handlers.DeleteTechnology)
		}

		issues := api.Group("/issues", middleware.AuthMiddleware())
		{
			issues.POST("", handlers.CreateIssue)
			issues.PATCH("/:id", handlers.UpdateIssue)
			issues.DELETE("/:id", handlers.DeleteIssue)
			issues.POST("/:id/resolve", handlers.ResolveIssue)
			issues.POST("/:id/reopen", handlers.ReopenIssue)
		}

		contacts := api.Group("/contacts", middleware.AuthMiddleware())
		{
			contacts.GET("", handlers.ListContacts)
			contacts.POST("", handlers.CreateContact)
			contacts.PATCH("/:id", handlers.UpdateContact)
			contacts.DELETE("/:id", handlers.DeleteContact)
			contacts.POST("/:id/viewed", handlers.TouchContact)
		}

		api.GET("/github-contributions/:username", handlers.GetGithubContributions)
		api.GET("/github-contributions/:username/stats", handlers.GetGithubContributionStats)

		ai := api.Group("/ai", middleware.AuthMiddleware())
		{
			ai.GET("/issues/:id/analyze", handlers.AnalyzeIssue)
			ai.GET("/issues/summary", handlers.SummarizeIssues)
		}

		api.POST("/upload/image", middleware.AuthMiddleware(), handlers.UploadImage)
	}

	return r
}
