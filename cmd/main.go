package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ruangpeduli/donation-backend/config"
	"github.com/ruangpeduli/donation-backend/database"
	"github.com/ruangpeduli/donation-backend/internal/adminauth"
	"github.com/ruangpeduli/donation-backend/internal/disbursement"
	"github.com/ruangpeduli/donation-backend/internal/donation"
	"github.com/ruangpeduli/donation-backend/routes"
	"github.com/ruangpeduli/donation-backend/utils"
)

func main() {
	cfg := config.Load()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	db := database.Connect(cfg)
	if err := db.AutoMigrate(
		&donation.Donation{},
		&disbursement.Disbursement{},
		&disbursement.DisbursementActivity{},
		&disbursement.ActivityFile{},
		&adminauth.AdminSession{},
	); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	utils.InitTelemetry(cfg.KafkaBroker, cfg.KafkaTopic)
	defer utils.CloseTelemetry()

	router := routes.SetupRouter(db, cfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("server stopped")
}
