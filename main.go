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

	"restaurant/auth"
	"restaurant/config"
	"restaurant/database"
	"restaurant/events"
	"restaurant/logger"
	"restaurant/repository"
	"restaurant/route"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: cfg.Log.Output})
	defer log.Close()

	db, err := database.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer database.Close(db)
	if err := database.Migrate(db); err != nil {
		return err
	}
	log.Info("database ready", "driver", cfg.Database.Driver)

	var publisher events.Publisher = events.Nop{}
	if cfg.Broker.URL != "" {
		mq, err := events.NewRabbitMQ(cfg.Broker)
		if err != nil {
			return err
		}
		publisher = mq
		log.Info("publishing events", "exchange", cfg.Broker.Exchange)
	}
	defer publisher.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	issuer := auth.NewTokenIssuer(cfg.Auth)
	services := route.NewServices(repository.NewStore(db), publisher, issuer, log)
	if err := services.Staff.EnsureAdmin(ctx, cfg.Admin); err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}

	router := route.NewEngine(cfg.Server, log)
	route.RegisterRoutes(router, issuer, route.NewControllers(services, log))

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
