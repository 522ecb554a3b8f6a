package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"

	"bookmarks_api/internal/config"
	"bookmarks_api/internal/handlers"
	"bookmarks_api/internal/logger"
	"bookmarks_api/internal/repository"
	"bookmarks_api/internal/repository/db"
	"bookmarks_api/internal/server"
	"bookmarks_api/internal/service"
)

// @title                       Bookmarks API
// @version                     1.0
// @description                 Accounts, profiles and per-user bookmarks behind bearer-token auth.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the access token.
func main() {
	// load configs/config.yml (+ .env, env overrides)
	cfg, err := config.Load("configs")
	if err != nil {
		logger.New(logger.InfoLevel, logger.ConsoleEncoding).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	defer func() { _ = log.Sync() }()

	// open DB
	conn, err := openDB(cfg.DB, log)
	if err != nil {
		log.Fatalw("failed to open database", "driver", cfg.DB.Driver, "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close database", "err", cerr)
		}
	}()

	dialect, err := repository.DialectFor(cfg.DB.Driver)
	if err != nil {
		log.Fatalw("unsupported database driver", "err", err)
	}

	// wire dependencies
	repos := repository.NewRepository(conn, dialect)
	tokens, err := service.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		log.Fatalw("failed to init token service", "err", err)
	}
	services := service.NewService(repos, tokens)
	apiHandler := handlers.NewHandler(services, log)

	// start HTTP server
	srv := server.New(cfg.Port, cfg.Server, apiHandler.InitRoutes())
	runHTTPServer(srv, log)

	// graceful shutdown
	waitForShutdown(srv, cfg.Server, log)
}

// openDB opens the configured database and bootstraps its schema.
func openDB(cfg config.DBConfig, log *logger.Logger) (*sql.DB, error) {
	log.Infow("opening database", "driver", cfg.Driver, "path", cfg.Path)
	return db.Open(db.Options{Driver: cfg.Driver, Path: cfg.Path, DSN: cfg.DSN})
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, log *logger.Logger) {
	go func() {
		log.Infow("http server listening", "addr", srv.Addr())
		if err := srv.Run(); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, cfg config.ServerConfig, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
