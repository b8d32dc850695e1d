// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jobdeck Contributors

package main

import (
	"context"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"

	"github.com/jobdeck/jobdeck/internal/access"
	"github.com/jobdeck/jobdeck/internal/auth"
	authmem "github.com/jobdeck/jobdeck/internal/auth/memory"
	"github.com/jobdeck/jobdeck/internal/board"
	boardmem "github.com/jobdeck/jobdeck/internal/board/memory"
	"github.com/jobdeck/jobdeck/internal/config"
	"github.com/jobdeck/jobdeck/internal/httpapi"
	"github.com/jobdeck/jobdeck/internal/logging"
	"github.com/jobdeck/jobdeck/internal/observability"
	"github.com/jobdeck/jobdeck/pkg/errutil"
)

const shutdownTimeout = 10 * time.Second

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the jobdeck API server",
		Long: `Start the jobdeck API server: account sessions, companies,
job applications, and user profiles, with metrics and health probes.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configFile, cmd.Flags())
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "config file path")
	cmd.Flags().String("log.format", "json", "log format: json or text")
	cmd.Flags().String("log.level", "info", "log level: debug, info, warn, or error")
	cmd.Flags().String("http.addr", "127.0.0.1:8080", "API listen address")
	cmd.Flags().String("metrics.addr", "127.0.0.1:9100", "metrics/health listen address (empty = disabled)")
	cmd.Flags().String("auth.token_strategy", config.StrategyOpaque, "session token strategy: opaque or signed")
	cmd.Flags().Duration("auth.token_ttl", auth.DefaultTokenTTL, "signed token validity window")
	cmd.Flags().String("auth.secret", "", "signed token secret (required for the signed strategy)")

	return cmd
}

// buildSessionLayer constructs the issuer and session store for the
// configured strategy. A missing secret fails here, not per request.
func buildSessionLayer(cfg config.AuthConfig) (auth.TokenIssuer, auth.SessionStore, error) {
	if cfg.TokenStrategy == config.StrategySigned {
		issuer, err := auth.NewSignedIssuer(cfg.Secret, cfg.TokenTTL)
		if err != nil {
			return nil, nil, err
		}
		store, err := authmem.NewSignedSessionStore(issuer, cfg.TokenTTL)
		if err != nil {
			return nil, nil, err
		}
		return issuer, store, nil
	}
	return auth.NewCounterIssuer(), authmem.NewSessionStore(), nil
}

func runServe(ctx context.Context, cfg config.Config) error {
	logging.SetDefault("jobdeck", version, cfg.Log.Format, cfg.Log.Level)
	logger := slog.Default()

	var ready atomic.Bool

	var obs *observability.Server
	var metrics *auth.Metrics
	var obsErrCh <-chan error
	if cfg.Metrics.Addr != "" {
		obs = observability.NewServer(cfg.Metrics.Addr, ready.Load)
		metrics = auth.NewMetrics(obs.Registry())

		errCh, err := obs.Start()
		if err != nil {
			errutil.LogError(logger, "observability server failed to start", err)
			return err
		}
		obsErrCh = errCh
	}

	hasher := auth.NewArgon2idHasher()
	accountStore := authmem.NewAccountStore(hasher)

	issuer, sessionStore, err := buildSessionLayer(cfg.Auth)
	if err != nil {
		errutil.LogError(logger, "session layer construction failed", err)
		return err
	}

	accounts, err := auth.NewAccountService(accountStore, sessionStore, issuer, hasher, logger, metrics)
	if err != nil {
		return err
	}

	ledger, err := access.NewLedger(accountStore)
	if err != nil {
		return err
	}

	companyRepo := boardmem.NewCompanyRepo()
	applicationRepo := boardmem.NewApplicationRepo()
	userRepo := boardmem.NewUserRepo()

	companies, err := board.NewCompanyService(companyRepo, accounts, ledger, logger)
	if err != nil {
		return err
	}
	applications, err := board.NewApplicationService(applicationRepo, companyRepo, accounts, ledger, logger)
	if err != nil {
		return err
	}
	users, err := board.NewUserService(userRepo, accounts, logger)
	if err != nil {
		return err
	}

	handler, err := httpapi.NewHandler(accounts, companies, applications, users, logger)
	if err != nil {
		return err
	}

	apiServer := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	apiErrCh := make(chan error, 1)
	go func() {
		logger.Info("api server started",
			"addr", cfg.HTTP.Addr,
			"token_strategy", cfg.Auth.TokenStrategy)
		if serveErr := apiServer.ListenAndServe(); serveErr != nil && serveErr != http.ErrServerClosed {
			apiErrCh <- serveErr
		}
	}()

	ready.Store(true)

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-apiErrCh:
		errutil.LogError(logger, "api server failed", err)
		return err
	case err := <-obsErrCh:
		errutil.LogError(logger, "observability server failed", err)
		return err
	}

	ready.Store(false)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		errutil.LogError(logger, "api server shutdown failed", err)
	}
	if obs != nil {
		if err := obs.Stop(shutdownCtx); err != nil {
			errutil.LogError(logger, "observability server shutdown failed", err)
		}
	}

	logger.Info("server stopped")
	return nil
}
