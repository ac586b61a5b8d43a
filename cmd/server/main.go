package main

import (
	"context"
	"fmt"

	"github.com/okarpov/paramgate/internal/config"
	httphandler "github.com/okarpov/paramgate/internal/handler/http"
	"github.com/okarpov/paramgate/internal/logger"
	"github.com/okarpov/paramgate/internal/server"
	"github.com/okarpov/paramgate/internal/service"
	"github.com/okarpov/paramgate/internal/store"
	"github.com/okarpov/paramgate/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("paramgate-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, db, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer db.Close()

	services := service.NewServices(storages, *cfg, log)

	handler := httphandler.NewHandler(services, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if cfg.Workers.RefreshInterval > 0 {
		refresher := workers.NewCacheRefreshWorker(services.ContractService, cfg.Workers.RefreshInterval, log)
		workers.NewWorkers(refresher).Run(ctx)
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
