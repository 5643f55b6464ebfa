package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/health-portal/internal/config"
	"github.com/MKhiriev/health-portal/internal/handler"
	"github.com/MKhiriev/health-portal/internal/logger"
	"github.com/MKhiriev/health-portal/internal/server"
	"github.com/MKhiriev/health-portal/internal/service"
	"github.com/MKhiriev/health-portal/internal/store"
	"github.com/MKhiriev/health-portal/internal/workers"
	"github.com/MKhiriev/health-portal/models"
	"github.com/joho/godotenv"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	// a missing .env file is normal outside local development
	_ = godotenv.Load()

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("health-portal", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("health-portal", cfg.LogLevel)
	log.Info().Stringer("build", buildInfo).Msg("starting health portal")
	if cfg.UsesInsecureSecretKey() {
		log.Warn().Msg("SECRET_KEY is not set: sessions are signed with an insecure development key")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	connector := store.NewConnector(cfg.Cloudant, log)

	storages, err := store.NewStorages(ctx, cfg.Fallback, connector, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, connector, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, connector, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	go workers.NewWorkers(
		workers.NewStoreBootstrapWorker(connector, cfg.Cloudant.Collections, log),
	).Run(ctx)

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}
