package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ruangpeduli/donation-backend/config"
	"github.com/ruangpeduli/donation-backend/internal/adminauth"
	"github.com/ruangpeduli/donation-backend/internal/disbursement"
	"github.com/ruangpeduli/donation-backend/internal/donation"
	"github.com/ruangpeduli/donation-backend/internal/payment"
	"github.com/ruangpeduli/donation-backend/internal/stats"
	"github.com/ruangpeduli/donation-backend/internal/upload"
	"github.com/ruangpeduli/donation-backend/middleware"
	"github.com/ruangpeduli/donation-backend/utils"
)

// SetupRouter wires every handler onto the gin engine. Public routes
// sit under /api, admin routes under /api/admin behind bearer auth.
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	r.Use(cors.New(corsCfg))

	gateway := payment.NewMidtransGateway(cfg.MidtransServerKey, cfg.SiteURL)

	donationRepo := donation.NewRepository(db)
	donationSvc := donation.NewService(donationRepo, gateway)
	donationHandler := donation.NewHandler(donationSvc)

	disbursementRepo := disbursement.NewRepository(db)
	disbursementSvc := disbursement.NewService(disbursementRepo)
	disbursementHandler := disbursement.NewHandler(disbursementSvc)

	statsHandler := stats.NewHandler(stats.NewService(stats.NewRepository(db)))

	authRepo := adminauth.NewRepository(db)
	sessionTTL := time.Duration(cfg.SessionTTLHours) * time.Hour
	authSvc := adminauth.NewService(
		adminauth.NewCredentialValidator(cfg.AdminPassword, cfg.AdminPasswordHash),
		adminauth.NewTokenStore(cfg.AdminTokenMode, cfg.AdminTokenSecret, authRepo, sessionTTL),
	)
	authHandler := adminauth.NewHandler(authSvc)

	uploadHandler := upload.NewHandler(cfg.UploadDir, cfg.UploadBaseURL)

	r.GET("/api/health", func(c *gin.Context) {
		utils.JSON(c, http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/stats", statsHandler.Summary)
		api.GET("/donations", donationHandler.Feed)
		api.POST("/donations", middleware.RateLimiter(cfg, 10, time.Minute), donationHandler.Create)
		api.GET("/disbursements", disbursementHandler.Feed)
		api.POST("/midtrans/notification", donationHandler.Notification)

		api.POST("/admin/login", authHandler.Login)
	}

	admin := r.Group("/api/admin")
	admin.Use(middleware.AdminAuth(authSvc))
	{
		admin.GET("/donations", donationHandler.AdminList)
		admin.GET("/donations/export", donationHandler.Export)
		admin.GET("/disbursements", disbursementHandler.AdminList)
		admin.POST("/disbursements", disbursementHandler.Create)
		admin.GET("/disbursements/:id/activities", disbursementHandler.Activities)
		admin.POST("/disbursements/:id/activities", disbursementHandler.CreateActivity)
		admin.POST("/upload", uploadHandler.Upload)
	}

	// uploaded evidence files are served straight from disk
	r.Static("/uploads", cfg.UploadDir)

	return r
}
