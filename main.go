package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DhavalSuthar-24/crease/config"
	_ "github.com/DhavalSuthar-24/crease/docs"
	"github.com/DhavalSuthar-24/crease/internal/live"
	"github.com/DhavalSuthar-24/crease/internal/logger"
	"github.com/DhavalSuthar-24/crease/internal/match"
	"github.com/DhavalSuthar-24/crease/internal/report"
	"github.com/DhavalSuthar-24/crease/routes"
)

// @title Crease Live Scoring API
// @version 1.0
// @description Limited-overs cricket scoring with live spectator feeds.
// @host localhost:8088
// @BasePath /api
func main() {
	log := logger.New(os.Getenv("LOG_LEVEL"))

	if err := config.Initialize(log); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()
	log = logger.New(cfg.App.LogLevel)

	var repo match.MatchRepository
	if config.DB != nil {
		if err := config.DB.AutoMigrate(&match.MatchRecord{}); err != nil {
			log.Fatalf("AutoMigrate failed: %v", err)
		}
		log.Info("AutoMigrate successful")
		repo = match.NewGormMatchRepository(config.DB)
	}

	store := match.NewStore(repo, log)
	loaded, err := store.Load(context.Background())
	if err != nil {
		log.Fatalf("Failed to load matches: %v", err)
	}
	log.WithField("matches", loaded).Info("Match store ready")

	hubs := live.NewHubManager(log, cfg.App.FrontendURL)
	defer hubs.Shutdown()

	pdf := &report.PDFRenderer{
		Timeout:  time.Duration(cfg.Report.ChromeTimeoutSeconds) * time.Second,
		ExecPath: cfg.Report.ChromePath,
	}

	matchController := match.NewMatchController(store, hubs, pdf, cfg, log)
	r := routes.SetupRoutes(cfg, matchController)

	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: r,
	}

	go func() {
		// Use port from loaded configuration
		log.Infof("Starting server on port %s in %s mode", cfg.App.Port, cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to run server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}
}
