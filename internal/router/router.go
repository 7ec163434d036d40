package router

import (
	"time"

	"github.com/quintus06/Clipbox-sub000/internal/handlers"
	"github.com/quintus06/Clipbox-sub000/internal/middleware"
	"github.com/quintus06/Clipbox-sub000/internal/models"
	"github.com/quintus06/Clipbox-sub000/internal/services"
	"github.com/quintus06/Clipbox-sub000/internal/services/auth"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin router with all marketplace routes
func SetupRouter(db *gorm.DB, events *services.EventsService) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Create a new router
	r := gin.New()

	// Use middleware
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Create services
	authService := auth.NewAuthService(db)

	// Create middleware with services
	authTokenMiddleware := middleware.NewAuthTokenMiddleware(authService, db)

	// Create handlers with services
	authHandler := handlers.NewAuthHandler(authService)
	submissionHandler := handlers.NewSubmissionHandler(db, events)
	campaignHandler := handlers.NewCampaignHandler(db, events)
	socialAccountHandler := handlers.NewSocialAccountHandler(db)
	balanceHandler := handlers.NewBalanceHandler(db, events)
	adminHandler := handlers.NewAdminHandler(db)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	logrus.Info("Swagger UI endpoint registered at /swagger/index.html")

	// API v1 routes
	api := r.Group("/api/v1")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
				"time":   time.Now().Format(time.RFC3339),
			})
		})

		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
		}

		// Campaign discovery is public so clippers can browse before login
		api.GET("/campaigns/discover", campaignHandler.DiscoverCampaigns)

		// Protected routes
		protected := api.Group("")
		protected.Use(authTokenMiddleware.RequireAuth())
		{
			// Auth protected routes
			authProtected := protected.Group("/auth")
			{
				authProtected.POST("/logout", authHandler.Logout)
				authProtected.GET("/profile", authHandler.GetProfile)
				authProtected.POST("/change-password", authHandler.ChangePassword)
			}

			// Submission routes
			submissions := protected.Group("/submissions")
			{
				submissions.POST("", middleware.RequireRole(models.RoleClipper), submissionHandler.CreateSubmission)
				submissions.GET("", middleware.RequireRole(models.RoleClipper), submissionHandler.GetMySubmissions)
				submissions.PATCH("/:id/approve", middleware.RequireRole(models.RoleAdvertiser, models.RoleAdmin), submissionHandler.ApproveSubmission)
				submissions.PATCH("/:id/reject", middleware.RequireRole(models.RoleAdvertiser, models.RoleAdmin), submissionHandler.RejectSubmission)
				submissions.PATCH("/:id/metrics", middleware.RequireRole(models.RoleAdmin), submissionHandler.UpdateSubmissionMetrics)
			}

			// Campaign routes
			campaigns := protected.Group("/campaigns")
			{
				campaigns.POST("", middleware.RequireRole(models.RoleAdvertiser), campaignHandler.CreateCampaign)
				campaigns.GET("", middleware.RequireRole(models.RoleAdvertiser, models.RoleAdmin), campaignHandler.GetMyCampaigns)
				campaigns.GET("/:id", campaignHandler.GetCampaignByID)
				campaigns.PATCH("/:id/increase-budget", middleware.RequireRole(models.RoleAdvertiser, models.RoleAdmin), campaignHandler.IncreaseBudget)
				campaigns.PATCH("/:id/pause", middleware.RequireRole(models.RoleAdvertiser, models.RoleAdmin), campaignHandler.PauseCampaign)
				campaigns.PATCH("/:id/resume", middleware.RequireRole(models.RoleAdvertiser, models.RoleAdmin), campaignHandler.ResumeCampaign)
				campaigns.PATCH("/:id/complete", middleware.RequireRole(models.RoleAdvertiser, models.RoleAdmin), campaignHandler.CompleteCampaign)
				campaigns.GET("/:id/submissions", middleware.RequireRole(models.RoleAdvertiser, models.RoleAdmin), campaignHandler.GetCampaignSubmissions)
			}

			// Social account routes
			socialAccounts := protected.Group("/social-accounts")
			socialAccounts.Use(middleware.RequireRole(models.RoleClipper))
			{
				socialAccounts.POST("", socialAccountHandler.ConnectAccount)
				socialAccounts.GET("", socialAccountHandler.GetMyAccounts)
				socialAccounts.DELETE("/:id", socialAccountHandler.DeleteAccount)
			}

			// Balance routes
			balance := protected.Group("/balance")
			balance.Use(middleware.RequireRole(models.RoleAdvertiser, models.RoleAdmin))
			{
				balance.GET("", balanceHandler.GetBalance)
				balance.POST("/deposit", balanceHandler.Deposit)
			}

			// Admin routes (requires admin privileges)
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/campaigns/:id/submissions/export", adminHandler.ExportCampaignSubmissions)
			}
		}
	}

	return r
}
