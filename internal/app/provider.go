package app

import (
	"database/sql"
	"fmt"

	"github.com/ferdiebergado/inkwell/internal/config"
	"github.com/ferdiebergado/inkwell/internal/platform/db"
	"github.com/ferdiebergado/inkwell/internal/platform/email"
	"github.com/ferdiebergado/inkwell/internal/platform/hash"
	"github.com/ferdiebergado/inkwell/internal/platform/router"
	"github.com/ferdiebergado/inkwell/internal/platform/validation"
	"github.com/ferdiebergado/inkwell/internal/session"
)

// Provider bundles the infrastructure the app wires into the domain packages.
type Provider struct {
	DB        *sql.DB
	Mailer    email.Mailer
	Validator validation.Validator
	Hasher    hash.Hasher
	Router    router.Router
	TxMgr     db.TxManager
	Sessions  *session.Manager
}

func newProvider(cfg *config.Config, securityKey, sessionKey string, dbConn *sql.DB) (*Provider, error) {
	smtpCfg, err := email.NewSMTPConfig()
	if err != nil {
		return nil, fmt.Errorf("new smtp config: %w", err)
	}

	mailer, err := email.NewSMTPMailer(smtpCfg, cfg.Email)
	if err != nil {
		return nil, fmt.Errorf("new smtp mailer: %w", err)
	}

	sessions := session.NewManager(session.NewPostgresStore(dbConn), cfg.Session, []byte(sessionKey))

	return &Provider{
		DB:        dbConn,
		Mailer:    mailer,
		Validator: validation.NewPlaygroundValidator(),
		Hasher:    hash.NewArgon2Hasher(cfg.Argon2, securityKey),
		Router:    router.NewGoexpressRouter(),
		TxMgr:     db.NewSQLTxManager(dbConn),
		Sessions:  sessions,
	}, nil
}
