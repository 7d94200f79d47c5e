// @title        Anvaya CRM API
// @version      1.0
// @description  Sales lead tracking: agents, leads, comments, tags and reports.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anvaya/crm-backend/internal/api"
	"github.com/anvaya/crm-backend/internal/core/service"
	mongodb "github.com/anvaya/crm-backend/internal/infrastructure/db/mongo"
	"github.com/anvaya/crm-backend/internal/pkg/config"
	"github.com/anvaya/crm-backend/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "anvaya-api",
	})

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
		AppName:  "anvaya-api",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

	// --- Repositories ---
	agentRepo := mongodb.NewAgentRepository(db)
	leadRepo := mongodb.NewLeadRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	tagRepo := mongodb.NewTagRepository(db)

	if err := mongodb.EnsureIndexes(ctx, agentRepo, leadRepo, commentRepo, tagRepo); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}

	// --- Services ---
	router := api.NewRouter(api.Config{
		Agents:   service.NewAgentService(agentRepo, log),
		Leads:    service.NewLeadService(leadRepo, agentRepo, log),
		Comments: service.NewCommentService(commentRepo, leadRepo, agentRepo, log),
		Tags:     service.NewTagService(tagRepo, log),
		Reports:  service.NewReportService(leadRepo, agentRepo),
		Mongo:    client,
		Logger:   log,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
	log.Info().Msg("server stopped")
}
