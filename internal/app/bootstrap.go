package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/gopherkit/env"
	"github.com/ferdiebergado/inkwell/internal/config"
	"github.com/ferdiebergado/inkwell/internal/middleware"
	"github.com/ferdiebergado/inkwell/internal/pkg/logging"
	"github.com/ferdiebergado/inkwell/internal/pkg/message"
	"github.com/ferdiebergado/inkwell/internal/platform/db"
)

func getEnv(envVar string) (string, error) {
	val, ok := os.LookupEnv(envVar)
	if !ok {
		return "", fmt.Errorf(message.EnvErrFmt, envVar)
	}
	return val, nil
}

// Run wires the whole application together and blocks until shutdown.
func Run(baseCtx context.Context) error {
	slog.Info("Initializing...")

	signalCtx, stop := signal.NotifyContext(baseCtx, os.Interrupt, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	appEnv := os.Getenv("ENV")
	if appEnv != "production" {
		if err := env.Load(".env"); err != nil {
			return fmt.Errorf("load env: %w", err)
		}
	}
	logging.SetupLogger(appEnv, os.Getenv("LOG_LEVEL"), os.Stdout)

	cfg, err := config.Load("config.json")
	if err != nil {
		return err
	}

	dbConn, err := db.NewConnection(signalCtx, cfg.DB)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	if err := db.Migrate(signalCtx, dbConn); err != nil {
		return err
	}

	// KEY peppers the password hashes; SESSION_KEY authenticates the session
	// cookies. They are separate secrets so one can rotate without the other.
	securityKey, err := getEnv("KEY")
	if err != nil {
		return err
	}

	sessionKey, err := getEnv("SESSION_KEY")
	if err != nil {
		return err
	}

	provider, err := newProvider(cfg, securityKey, sessionKey, dbConn)
	if err != nil {
		return err
	}

	middlewares := []func(http.Handler) http.Handler{
		goexpress.RecoverFromPanic,
		middleware.LogRequest,
		middleware.CheckContentType,
	}

	apiServer := New(cfg, provider, middlewares)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- apiServer.Start(signalCtx)
	}()

	select {
	case <-signalCtx.Done():
		stop()
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("start server: %w", err)
		}
	}

	return apiServer.Shutdown()
}
