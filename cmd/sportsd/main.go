package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sportreg/internal/app"
	"sportreg/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		addr        string
		dbPath      string
		catalogPath string
		logLevel    string
		dev         bool
		secure      bool
		sessionTTL  time.Duration
	)

	cmd := &cobra.Command{
		Use:          "sportsd",
		Short:        "Sports registration web server",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadServerConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("addr") {
				cfg.Addr = addr
			}
			if flags.Changed("db") {
				cfg.DBPath = dbPath
			}
			if flags.Changed("catalog") {
				cfg.CatalogPath = catalogPath
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if flags.Changed("dev") {
				cfg.LogDev = dev
			}
			if flags.Changed("secure-cookies") {
				cfg.SecureCookies = secure
			}
			if flags.Changed("session-ttl") {
				cfg.SessionTTL = sessionTTL
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (env SPORTREG_ADDR)")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (env SPORTREG_DB_PATH)")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "YAML file listing sports and years (env SPORTREG_CATALOG_PATH)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (env SPORTREG_LOG_LEVEL)")
	cmd.Flags().BoolVar(&dev, "dev", false, "human-readable logs (env SPORTREG_LOG_DEV)")
	cmd.Flags().BoolVar(&secure, "secure-cookies", false, "mark the session cookie Secure (env SPORTREG_SECURE_COOKIES)")
	cmd.Flags().DurationVar(&sessionTTL, "session-ttl", 0, "session lifetime (env SPORTREG_SESSION_TTL)")
	return cmd
}

func run(parent context.Context, cfg app.ServerConfig) error {
	logger, err := logging.New(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := app.NewWire(ctx, cfg, logger)
	if err != nil {
		logger.Error("startup failed", zap.Error(err))
		return err
	}
	defer func() {
		if err := w.Close(); err != nil {
			logger.Warn("close store", zap.Error(err))
		}
	}()

	logger.Info("sportsd starting",
		zap.String("addr", cfg.Addr),
		zap.String("db", cfg.DBPath),
		zap.Int("sports", len(w.Catalog.Sports)),
	)
	if err := w.Server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	logger.Info("sportsd stopped")
	return nil
}
