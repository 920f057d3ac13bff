package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tvaleev/studypath/internal/api"
	"github.com/tvaleev/studypath/internal/clock"
	"github.com/tvaleev/studypath/internal/config"
	"github.com/tvaleev/studypath/internal/db"
	"github.com/tvaleev/studypath/internal/logger"
	"github.com/tvaleev/studypath/internal/repository/sqlite"
	"github.com/tvaleev/studypath/internal/services"
)

func main() {
	cfg := config.Load()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("StudyPath Server Starting")
	log.Info("===========================================")

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("forecast_days=%d", cfg.ForecastDays)
	log.Debug("insight_limit=%d", cfg.InsightLimit)
	log.Debug("due_card_cap=%d", cfg.DueCardCap)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Wire repositories and services
	cardRepo := sqlite.NewCardRepository(database.DB)
	packRepo := sqlite.NewPackRepository(database.DB)
	reviewRepo := sqlite.NewReviewRepository(database.DB)
	clk := clock.Real{}

	srv := &api.Server{
		CardService:    services.NewCardService(cardRepo, reviewRepo, clk, cfg.DueCardCap),
		PackService:    services.NewPackService(packRepo, cardRepo, clk),
		InsightService: services.NewInsightService(cardRepo, clk),
		ForecastDays:   cfg.ForecastDays,
		InsightLimit:   cfg.InsightLimit,
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("===========================================")
	log.Info("StudyPath Server Stopped")
	log.Info("===========================================")
}
