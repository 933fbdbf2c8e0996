// Package bootstrap wires storage, sessions, auth, telemetry and the HTTP
// server together and runs them until the context ends.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/lebohangkhonkhe/Savezar-taxi/internal/api"
	"github.com/lebohangkhonkhe/Savezar-taxi/internal/auth"
	"github.com/lebohangkhonkhe/Savezar-taxi/internal/session"
	"github.com/lebohangkhonkhe/Savezar-taxi/internal/shared/config"
	db_conn "github.com/lebohangkhonkhe/Savezar-taxi/internal/shared/db"
	"github.com/lebohangkhonkhe/Savezar-taxi/internal/shared/logger"
	"github.com/lebohangkhonkhe/Savezar-taxi/internal/shared/mq"
	"github.com/lebohangkhonkhe/Savezar-taxi/internal/storage"
	"github.com/lebohangkhonkhe/Savezar-taxi/internal/telemetry"
)

// Run starts the dashboard service.
func Run(ctx context.Context, cfg config.Config, log *logger.Logger) {
	log.Info(logger.Entry{Action: "service_starting", Message: "initializing fleet dashboard"})

	// 1. Storage backend
	store, cleanup, err := newStore(ctx, cfg, log)
	if err != nil {
		log.Fatal(logger.Entry{
			Action:  "storage_init_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
		})
	}
	defer cleanup()

	if err := store.Seed(ctx); err != nil {
		log.Fatal(logger.Entry{
			Action:  "seed_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
		})
	}

	// 2. Sessions
	sessionStore, err := newSessionStore(ctx, cfg)
	if err != nil {
		log.Fatal(logger.Entry{
			Action:  "session_store_init_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
		})
	}
	sessions := session.NewManager(sessionStore, cfg.Session, cfg.DevMode)

	// 3. Auth service
	authSvc := auth.NewService(store, sessions, log)

	// 4. Telemetry ingest (optional)
	if cfg.Telemetry.ConsumerEnabled {
		broker, err := mq.NewRabbitMQ(ctx, cfg.RabbitMQ, log)
		if err != nil {
			log.Fatal(logger.Entry{
				Action:  "rabbitmq_init_failed",
				Message: err.Error(),
				Error:   &logger.ErrObj{Msg: err.Error()},
			})
		}
		defer broker.Close()

		consumer := telemetry.NewConsumer(broker, store, cfg.Telemetry.Queue, log)
		if err := consumer.Start(ctx); err != nil {
			log.Fatal(logger.Entry{
				Action:  "telemetry_consumer_failed",
				Message: err.Error(),
				Error:   &logger.ErrObj{Msg: err.Error()},
			})
		}
	}

	if cfg.Telemetry.SimulatorEnabled {
		interval := time.Duration(cfg.Telemetry.SimulatorSeconds) * time.Second
		sim := telemetry.NewSimulator(store, interval, log)
		go sim.Run(ctx)
	}

	// 5. HTTP server
	handler := api.NewHandler(store, authSvc, sessions, log)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           handler.Routes(),
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info(logger.Entry{
			Action:  "http_server_starting",
			Message: fmt.Sprintf("listening on %s", addr),
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(logger.Entry{
				Action:  "http_server_failed",
				Message: err.Error(),
				Error:   &logger.ErrObj{Msg: err.Error()},
			})
		}
	}()

	<-ctx.Done()
	log.Info(logger.Entry{Action: "service_stopping", Message: "shutting down"})

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error(logger.Entry{
			Action:  "http_server_shutdown_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
		})
	} else {
		log.Info(logger.Entry{Action: "http_server_stopped", Message: "http server stopped gracefully"})
	}

	log.Info(logger.Entry{Action: "service_stopped", Message: "fleet dashboard stopped"})
}

// newStore builds the configured storage backend. The returned cleanup
// closes the backing pool when there is one.
func newStore(ctx context.Context, cfg config.Config, log *logger.Logger) (storage.Store, func(), error) {
	switch cfg.Storage.Backend {
	case "postgres":
		pool, err := db_conn.NewPool(ctx, cfg.Database, log)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := db_conn.Migrate(ctx, pool); err != nil {
			db_conn.Close(pool, log)
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		return storage.NewPostgresStore(pool), func() { db_conn.Close(pool, log) }, nil

	case "memory", "":
		return storage.NewMemoryStore(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func newSessionStore(ctx context.Context, cfg config.Config) (session.Store, error) {
	switch cfg.Session.Store {
	case "redis":
		return session.NewRedisStore(ctx, cfg.Redis)
	case "memory", "":
		return session.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown session store %q", cfg.Session.Store)
	}
}
