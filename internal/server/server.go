package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"sportreg/internal/catalog"
	"sportreg/internal/domain"
	"sportreg/web"
)

const (
	defaultShutdownTimeout   = 10 * time.Second
	defaultReadHeaderTimeout = 10 * time.Second
)

// Config holds the listener and cookie settings.
type Config struct {
	Addr              string
	SecureCookies     bool
	ShutdownTimeout   time.Duration
	ReadHeaderTimeout time.Duration
}

// Deps are the services the handlers call.
type Deps struct {
	Accounts   domain.AccountService
	Enrollment domain.EnrollmentService
	Sessions   domain.SessionService
	Users      domain.UserStore
	Catalog    *catalog.Catalog
	Logger     *zap.Logger
}

// Server hosts the sportsd HTTP application.
type Server struct {
	cfg        Config
	accounts   domain.AccountService
	enrollment domain.EnrollmentService
	sessions   domain.SessionService
	users      domain.UserStore
	catalog    *catalog.Catalog
	logger     *zap.Logger
	pages      *pageSet
	handler    http.Handler
}

// New validates deps, parses the page templates and builds the routes.
func New(cfg Config, deps Deps) (*Server, error) {
	switch {
	case deps.Accounts == nil:
		return nil, errors.New("server: account service is required")
	case deps.Enrollment == nil:
		return nil, errors.New("server: enrollment service is required")
	case deps.Sessions == nil:
		return nil, errors.New("server: session service is required")
	case deps.Users == nil:
		return nil, errors.New("server: user store is required")
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
	if cfg.ReadHeaderTimeout <= 0 {
		cfg.ReadHeaderTimeout = defaultReadHeaderTimeout
	}
	if deps.Catalog == nil {
		deps.Catalog = catalog.Default()
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	pages, err := parsePages(web.Templates())
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}

	s := &Server{
		cfg:        cfg,
		accounts:   deps.Accounts,
		enrollment: deps.Enrollment,
		sessions:   deps.Sessions,
		users:      deps.Users,
		catalog:    deps.Catalog,
		logger:     deps.Logger,
		pages:      pages,
	}
	s.handler = Chain(s.routes(),
		RequestID(),
		AccessLog(s.logger),
		RecoverPanic(s.logger),
	)
	return s, nil
}

// Handler returns the root handler with middleware applied.
func (s *Server) Handler() http.Handler { return s.handler }

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(web.Static()))))

	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /home", s.handleSportForm)

	mux.HandleFunc("GET /register", s.handleSignupPage)
	mux.HandleFunc("POST /register", s.handleSignup)
	mux.HandleFunc("GET /login", s.handleLoginPage)
	mux.HandleFunc("POST /login", s.handleLogin)

	mux.Handle("GET /logout", s.requireUser(jsonRoute, s.handleLogout))
	mux.Handle("GET /dashboard", s.requireUser(pageRoute, s.handleDashboard))
	mux.Handle("POST /register_sport", s.requireUser(jsonRoute, s.handleRegisterSport))
	mux.Handle("GET /registrants", s.requireUser(pageRoute, s.handleRegistrantsPage))
	mux.Handle("GET /api/registrants", s.requireUser(jsonRoute, s.handleRegistrantsAPI))
	return mux
}

// ListenAndServe listens on the configured address and serves until ctx is
// done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done. In-flight requests get
// ShutdownTimeout to finish.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
		ErrorLog:          zap.NewStdLog(s.logger.Named("http")),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("listening", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ShutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
