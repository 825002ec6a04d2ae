// Package main runs the EasyBank cards service, which issues credit cards
// keyed by customer mobile number.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/easybank/easybank-services/internal/config"
	"github.com/easybank/easybank-services/internal/platform/logger"
	"github.com/easybank/easybank-services/internal/platform/postgres"
	"github.com/easybank/easybank-services/internal/platform/server"
	"github.com/easybank/easybank-services/internal/redact"
)

func main() {
	migrate := flag.String("migrate", "", "run a migration command (up, down, status, version) and exit")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *migrate); err != nil {
		slog.Error("cards service stopped", slog.String("error", redact.Error(err)))
		os.Exit(1)
	}
}

func run(ctx context.Context, migrateCommand string) error {
	cfg, err := config.Load(config.ServiceCards)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Service, cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	log.Info("configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.Bool("jwt_actor_tokens", cfg.Audit.JWTSecret != ""))

	db, err := postgres.Open(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("failed to close database", slog.String("error", err.Error()))
		}
	}()

	if migrateCommand != "" {
		return postgres.Migrate(ctx, db, cfg.Service, migrateCommand, log)
	}
	if err := postgres.Migrate(ctx, db, cfg.Service, postgres.MigrateUp, log); err != nil {
		return err
	}

	app, err := newApplication(cfg, log, db)
	if err != nil {
		return err
	}

	return server.New(cfg.Server, app.router(), log).Run(ctx)
}
