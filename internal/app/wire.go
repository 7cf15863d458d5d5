package app

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"sportreg/internal/catalog"
	"sportreg/internal/server"
	"sportreg/internal/services/account"
	"sportreg/internal/services/enrollment"
	"sportreg/internal/services/session"
	"sportreg/internal/store/sqlite"
)

// Wire bundles the store, services and HTTP server for sportsd.
type Wire struct {
	Store   *sqlite.Store
	Catalog *catalog.Catalog
	Server  *server.Server
}

// NewWire constructs the server dependency graph from cfg. Close releases
// the store.
func NewWire(ctx context.Context, cfg ServerConfig, logger *zap.Logger) (*Wire, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	sports := catalog.Default()
	if cfg.CatalogPath != "" {
		c, err := catalog.Load(cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
		sports = c
	}

	secret := []byte(cfg.SessionSecret)
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("generate session secret: %w", err)
		}
		logger.Warn("SPORTREG_SESSION_SECRET not set; sessions will not survive a restart")
	}
	sessions, err := session.New(secret, cfg.SessionTTL)
	if err != nil {
		return nil, err
	}

	db, err := sqlite.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, err
	}

	srv, err := server.New(server.Config{
		Addr:            cfg.Addr,
		SecureCookies:   cfg.SecureCookies,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, server.Deps{
		Accounts:   account.New(db, account.WithBcryptCost(cfg.BcryptCost)),
		Enrollment: enrollment.New(db, sports),
		Sessions:   sessions,
		Users:      db,
		Catalog:    sports,
		Logger:     logger,
	})
	if err != nil {
		return nil, errors.Join(err, db.Close())
	}

	return &Wire{Store: db, Catalog: sports, Server: srv}, nil
}

// Close releases the store.
func (w *Wire) Close() error { return w.Store.Close() }
