package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/webroot/core/config"
	"github.com/dmitrymomot/webroot/core/logger"
	"github.com/dmitrymomot/webroot/core/server"
	"github.com/dmitrymomot/webroot/core/static"
	"github.com/dmitrymomot/webroot/middleware"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg Config
	config.MustLoad(&cfg) // panic on error

	env := logger.WithProduction(cfg.AppName)
	if cfg.Development {
		env = logger.WithDevelopment(cfg.AppName)
	}
	log := logger.New(env, logger.WithContextExtractors(middleware.RequestIDExtractor))

	files, err := static.NewFromConfig(cfg.Static, static.WithLogger(log))
	if err != nil {
		log.Error("Failed to create file server", logger.Component("static"), logger.Error(err))
		os.Exit(1)
	}

	handler := middleware.Chain(files,
		middleware.RequestID(),
		middleware.Logging(log),
		middleware.Recover(log),
	)

	s, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
	if err != nil {
		log.Error("Failed to create server", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}

	log.Info("Serving static files",
		logger.Component("static"),
		logger.Path(files.Root()),
		logger.Key("encodings", cfg.Static.Encodings),
	)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(s.Run(ctx, handler))

	if err := eg.Wait(); err != nil {
		log.Error("Failed to run server", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}

	log.Info("Application stopped")
}
