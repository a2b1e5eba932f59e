// Package main runs the TeamForge tracker service: it loads the profile's
// configuration, wires the adapter graph with samber/do and serves HTTP until
// SIGINT or SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/teamforge-tracker/internal/adapters/clients/acl"
	adapthttp "github.com/jsamuelsen11/teamforge-tracker/internal/adapters/http"
	"github.com/jsamuelsen11/teamforge-tracker/internal/platform/config"
	"github.com/jsamuelsen11/teamforge-tracker/internal/platform/credential"
	"github.com/jsamuelsen11/teamforge-tracker/internal/platform/logging"
	"github.com/jsamuelsen11/teamforge-tracker/internal/platform/telemetry"
	"github.com/jsamuelsen11/teamforge-tracker/internal/ports"
)

const (
	drainTimeout = 15 * time.Second
	flushTimeout = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "teamforge-tracker: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile, ok := os.LookupEnv("APP_PROFILE")
	if !ok || profile == "" {
		return errors.New("APP_PROFILE must name a config profile (local, dev, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading %s profile: %w", profile, err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	password, err := credential.Password(cfg.TeamForge)
	if err != nil {
		return fmt.Errorf("resolving TeamForge password: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	providers, err := telemetry.Start(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("starting telemetry: %w", err)
	}
	defer flush(providers, logger)

	injector := do.New(bootstrap(cfg, logger, providers.Metrics(), password), adapters, application, transport)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("wiring server: %w", err)
	}
	do.MustInvoke[ports.HealthRegistry](injector).Register(do.MustInvoke[*acl.TeamForgeClient](injector))

	if err := server.Listen(); err != nil {
		return err
	}
	logger.Info("TeamForge tracker ready",
		slog.String("profile", profile),
		slog.String("teamforge_url", cfg.TeamForge.BaseURL),
		slog.String("user", cfg.TeamForge.Username),
		slog.Bool("keyring", cfg.TeamForge.Keyring.Enabled),
		slog.String("release_field", cfg.TeamForge.ReleaseField),
	)

	served := make(chan error, 1)
	go func() { served <- server.Start() }()

	select {
	case <-ctx.Done():
		logger.Info("stopping", slog.Any("cause", context.Cause(ctx)))
	case err := <-served:
		return fmt.Errorf("serving: %w", err)
	}

	// Shutdown waits for every handler, including ones Timeout already
	// answered with a 504, so their TeamForge logoff completes unless the
	// drain deadline passes first.
	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), drainTimeout)
	defer cancel()
	if err := server.Shutdown(drainCtx); err != nil {
		logger.Error("draining HTTP server", slog.Any("error", err))
	}
	<-served

	logger.Info("stopped")
	return nil
}

func flush(p *telemetry.Providers, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()
	if err := p.Shutdown(ctx); err != nil {
		logger.Error("flushing telemetry", slog.Any("error", err))
	}
}
