package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/serviceflow/serviceflow-api/internal/bootstrap"
	"github.com/serviceflow/serviceflow-api/internal/modules/repo"
	"github.com/serviceflow/serviceflow-api/internal/modules/service"
	"github.com/serviceflow/serviceflow-api/internal/router"
	"github.com/serviceflow/serviceflow-api/internal/telemetry"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	inj := bootstrap.BuildContainer(cfg)
	log := do.MustInvoke[*zap.Logger](inj)
	defer bootstrap.Close(inj, cfg)

	// tracing must be installed before the db and redis plugins are registered
	if _, err := telemetry.SetupTracing(cfg); err != nil {
		log.Sugar().Warnw("tracing disabled", "err", err)
	}
	if _, err := telemetry.SetupMetrics(cfg); err != nil {
		log.Sugar().Warnw("metrics disabled", "err", err)
	}
	if err := telemetry.InitResourceMetrics(); err != nil {
		log.Sugar().Warnw("resource metrics disabled", "err", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = telemetry.Shutdown(sctx)
		_ = telemetry.ShutdownMetrics(sctx)
	}()

	if err := bootstrap.EnsureSuperuserExists(ctx,
		do.MustInvoke[repo.UserRepo](inj),
		do.MustInvoke[service.CredentialService](inj),
		cfg, log,
	); err != nil {
		return fmt.Errorf("seed superuser: %w", err)
	}

	deps := do.MustInvoke[*router.RouterDeps](inj)
	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port),
		Handler:           router.NewRouter(*deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Sugar().Infow("listening", "addr", srv.Addr, "env", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Sugar().Infow("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(sctx)
}
