package app

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"sportreg/internal/api"
	"sportreg/internal/domain"
	"sportreg/internal/flash"
	"sportreg/internal/store"
)

// App is the sportreg client.
type App struct {
	API      *api.HTTP
	Sessions domain.ClientSessionStore

	// OnFlash, when set, sees every message a page flow renders.
	OnFlash func(flash.Element)

	base          *url.URL
	jar           http.CookieJar
	redirectDelay time.Duration
	logger        *zap.Logger
	now           func() time.Time
}

// New builds the client from cfg, creating cfg.Home if needed.
func New(cfg ClientConfig) (*App, error) {
	base, err := url.Parse(strings.TrimRight(strings.TrimSpace(cfg.ServerURL), "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid server url %q", cfg.ServerURL)
	}
	if cfg.Home == "" {
		return nil, errors.New("client home directory is required")
	}
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	httpClient := &http.Client{}
	if cfg.HTTP != nil {
		c := *cfg.HTTP
		httpClient = &c
	}
	httpClient.Jar = jar
	if cfg.Timeout > 0 {
		httpClient.Timeout = cfg.Timeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &App{
		API:           api.NewHTTP(base.String(), httpClient),
		Sessions:      store.NewSessionFileStore(cfg.Home),
		base:          base,
		jar:           jar,
		redirectDelay: cfg.RedirectDelay,
		logger:        logger,
		now:           time.Now,
	}, nil
}

// ServerURL returns the normalized server base URL.
func (a *App) ServerURL() string { return a.base.String() }

func (a *App) cookieURL() *url.URL {
	u := *a.base
	u.Path = "/"
	return &u
}

// Restore loads saved cookies for the server into the jar.
func (a *App) Restore() error {
	s, ok, err := a.Sessions.LoadClientSession(a.ServerURL())
	if err != nil || !ok {
		return err
	}
	cookies := make([]*http.Cookie, 0, len(s.Cookies))
	for _, c := range s.Cookies {
		cookies = append(cookies, &http.Cookie{Name: c.Name, Value: c.Value, Path: "/"})
	}
	a.jar.SetCookies(a.cookieURL(), cookies)
	a.logger.Debug("session restored", zap.Int("cookies", len(cookies)))
	return nil
}

// Persist saves the jar's cookies for the server. An empty jar removes the
// saved session.
func (a *App) Persist() error {
	jarCookies := a.jar.Cookies(a.cookieURL())
	cookies := make([]domain.ClientCookie, 0, len(jarCookies))
	for _, c := range jarCookies {
		cookies = append(cookies, domain.ClientCookie{Name: c.Name, Value: c.Value})
	}
	return a.Sessions.SaveClientSession(domain.ClientSession{
		ServerURL: a.ServerURL(),
		Cookies:   cookies,
		SavedAt:   a.now().UTC(),
	})
}
