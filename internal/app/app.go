package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/ferdiebergado/inkwell/internal/auth"
	"github.com/ferdiebergado/inkwell/internal/config"
	"github.com/ferdiebergado/inkwell/internal/platform/db"
	"github.com/ferdiebergado/inkwell/internal/platform/email"
	"github.com/ferdiebergado/inkwell/internal/platform/hash"
	"github.com/ferdiebergado/inkwell/internal/platform/router"
	"github.com/ferdiebergado/inkwell/internal/platform/validation"
	"github.com/ferdiebergado/inkwell/internal/post"
	"github.com/ferdiebergado/inkwell/internal/session"
	"github.com/ferdiebergado/inkwell/internal/user"
	"github.com/ferdiebergado/inkwell/internal/verification"
)

type App struct {
	server          *http.Server
	config          *config.Config
	middlewares     []func(http.Handler) http.Handler
	stop            context.CancelFunc
	shutdownTimeout time.Duration
	db              *sql.DB
	mailer          email.Mailer
	validator       validation.Validator
	hasher          hash.Hasher
	router          router.Router
	txManager       db.TxManager
	sessions        *session.Manager
}

func (a *App) registerMiddlewares() {
	for _, mw := range a.middlewares {
		a.router.Use(mw)
	}
}

func (a *App) setupRoutes() {
	userRepo := user.NewRepository(a.db)
	userService := user.NewService(userRepo, a.hasher)
	userHandler := user.NewHandler(userService)

	codeRepo := verification.NewRepository(a.db)
	codeService := verification.NewService(codeRepo, a.config.Verification)

	accountProviders := &auth.Providers{
		Hasher: a.hasher,
		Mailer: a.mailer,
		TxMgr:  a.txManager,
	}
	accountService := auth.NewService(userRepo, codeService, accountProviders, a.config)
	accountHandler := auth.NewHandler(accountService, a.sessions)

	postRepo := post.NewRepository(a.db)
	postService := post.NewService(postRepo)
	postHandler := post.NewHandler(postService)

	maxBodySize := a.config.Server.MaxBodyBytes
	mountAccountRoutes(a.router, accountHandler, a.validator, a.sessions, maxBodySize)
	mountPostRoutes(a.router, postHandler, a.validator, a.sessions, maxBodySize)
	mountAdminRoutes(a.router, userHandler, a.validator, a.sessions, maxBodySize)
}

func (a *App) Start(ctx context.Context) error {
	a.registerMiddlewares()
	a.setupRoutes()

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening...", "address", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("listen and serve: %w", err)
			return
		}
		slog.Info("Server has stopped.")
		serverErr <- nil
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received.")
		return nil
	case err := <-serverErr:
		return err
	}
}

func (a *App) Shutdown() error {
	slog.Info("Shutting down server...")
	a.stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}

func New(cfg *config.Config, provider *Provider, middlewares []func(http.Handler) http.Handler) *App {
	serverCtx, stop := context.WithCancel(context.Background())
	serverCfg := cfg.Server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", serverCfg.Port),
		Handler: provider.Router,
		BaseContext: func(_ net.Listener) context.Context {
			return serverCtx
		},
		ReadTimeout:  serverCfg.ReadTimeout.Duration,
		WriteTimeout: serverCfg.WriteTimeout.Duration,
		IdleTimeout:  serverCfg.IdleTimeout.Duration,
	}

	return &App{
		config:          cfg,
		db:              provider.DB,
		txManager:       provider.TxMgr,
		mailer:          provider.Mailer,
		validator:       provider.Validator,
		hasher:          provider.Hasher,
		router:          provider.Router,
		sessions:        provider.Sessions,
		server:          server,
		middlewares:     middlewares,
		stop:            stop,
		shutdownTimeout: serverCfg.ShutdownTimeout.Duration,
	}
}
