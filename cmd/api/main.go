package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/deppfellow/catalog-service/internal/config"
	"github.com/deppfellow/catalog-service/internal/database"
	"github.com/deppfellow/catalog-service/internal/handler"
	"github.com/deppfellow/catalog-service/internal/logger"
	"github.com/deppfellow/catalog-service/internal/repository"
	"github.com/deppfellow/catalog-service/internal/router"
	"github.com/deppfellow/catalog-service/internal/server"
	"github.com/deppfellow/catalog-service/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, loggerService, err := logger.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	// Migrations run before the server takes traffic, so a schema the
	// code doesn't match never serves a request.
	if err := database.Migrate(context.Background(), log, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	srv, err := server.New(cfg, log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewServices(srv, repos)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize services")
	}

	handlers := handler.NewHandlers(srv, services)

	e := router.NewRouter(srv, handlers)
	srv.SetupHTTPServer(e)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	if loggerService != nil {
		loggerService.Shutdown(5 * time.Second)
	}
}
