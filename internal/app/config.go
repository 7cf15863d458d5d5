package app

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ServerConfig is the sportsd configuration, read from SPORTREG_* variables.
type ServerConfig struct {
	Addr            string        `env:"SPORTREG_ADDR"             envDefault:"127.0.0.1:5000"`
	DBPath          string        `env:"SPORTREG_DB_PATH"          envDefault:"sportreg.db"`
	SessionSecret   string        `env:"SPORTREG_SESSION_SECRET"`
	SessionTTL      time.Duration `env:"SPORTREG_SESSION_TTL"      envDefault:"12h"`
	SecureCookies   bool          `env:"SPORTREG_SECURE_COOKIES"`
	CatalogPath     string        `env:"SPORTREG_CATALOG_PATH"`
	BcryptCost      int           `env:"SPORTREG_BCRYPT_COST"      envDefault:"10"`
	LogLevel        string        `env:"SPORTREG_LOG_LEVEL"        envDefault:"info"`
	LogDev          bool          `env:"SPORTREG_LOG_DEV"`
	ShutdownTimeout time.Duration `env:"SPORTREG_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LoadServerConfig parses the environment and validates the result.
func LoadServerConfig() (ServerConfig, error) {
	var cfg ServerConfig
	if err := env.Parse(&cfg); err != nil {
		return ServerConfig{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c ServerConfig) Validate() error {
	switch {
	case strings.TrimSpace(c.Addr) == "":
		return errors.New("config: address is required")
	case strings.TrimSpace(c.DBPath) == "":
		return errors.New("config: database path is required")
	case c.SessionTTL <= 0:
		return fmt.Errorf("config: session ttl must be positive, got %s", c.SessionTTL)
	case c.ShutdownTimeout <= 0:
		return fmt.Errorf("config: shutdown timeout must be positive, got %s", c.ShutdownTimeout)
	case c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost:
		return fmt.Errorf("config: bcrypt cost must be between %d and %d, got %d",
			bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost)
	}
	return nil
}

// ClientConfig holds runtime wiring options for the sportreg client.
type ClientConfig struct {
	Home          string        // state directory, e.g. $HOME/.sportreg
	ServerURL     string        // sportsd base URL, e.g. http://127.0.0.1:5000
	HTTP          *http.Client  // optional; copied and given a cookie jar
	Timeout       time.Duration // per-request timeout; 0 keeps the client's
	RedirectDelay time.Duration // logout redirect delay; 0 keeps the page default
	Logger        *zap.Logger   // optional; defaults to a no-op logger
}
