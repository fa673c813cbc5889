package main

import (
	"context"
	"fmt"

	"github.com/molecule-insight/insight-server/internal/adapter"
	"github.com/molecule-insight/insight-server/internal/config"
	httphandler "github.com/molecule-insight/insight-server/internal/handler/http"
	"github.com/molecule-insight/insight-server/internal/logger"
	"github.com/molecule-insight/insight-server/internal/server"
	"github.com/molecule-insight/insight-server/internal/service"
	"github.com/molecule-insight/insight-server/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("insight-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	adapters, err := adapter.NewAdapters(cfg.Adapter, cfg.OAuth, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating adapters")
	}

	services, err := service.NewServices(storages, adapters, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handler := httphandler.NewHandler(services, cfg, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
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
