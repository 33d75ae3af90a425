package main

import (
	"context"
	"fmt"

	"github.com/jb131997/gymdesk/internal/cache"
	"github.com/jb131997/gymdesk/internal/config"
	"github.com/jb131997/gymdesk/internal/connect"
	"github.com/jb131997/gymdesk/internal/events"
	handler "github.com/jb131997/gymdesk/internal/handler/http"
	"github.com/jb131997/gymdesk/internal/logger"
	"github.com/jb131997/gymdesk/internal/server"
	"github.com/jb131997/gymdesk/internal/service"
	"github.com/jb131997/gymdesk/internal/store"
	"github.com/jb131997/gymdesk/internal/stripe"
	"github.com/jb131997/gymdesk/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("gymdesk-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	metricsCache, err := cache.NewMetricsCache(ctx, cfg.Cache, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting metrics cache")
	}
	defer metricsCache.Close()

	publisher := events.NewProducer(cfg.Events, log)
	defer publisher.Close()

	stripeClient := stripe.NewClient(stripe.ClientConfig{
		SecretKey: cfg.Stripe.SecretKey,
		BaseURL:   cfg.Stripe.BaseURL,
		Timeout:   cfg.Stripe.RequestTimeout,
	})

	services := service.NewServices(storages, stripeClient, metricsCache, publisher, *cfg, log)

	sessions := connect.NewRegistry(services.AccountService, cfg.Stripe.PublishableKey, log)

	version := cfg.App.Version
	if version == "" {
		version = buildVersion
	}

	handlers := handler.NewHandler(services, sessions, version, log)

	background := workers.NewWorkers(
		workers.NewStatusRefreshWorker(storages.MemberRepository, publisher, cfg.Workers, log),
		workers.NewReconcileWorker(storages.ProductRepository, cfg.Workers, log),
	)
	background.Run()

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
