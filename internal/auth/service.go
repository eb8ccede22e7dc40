package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ferdiebergado/inkwell/internal/config"
	"github.com/ferdiebergado/inkwell/internal/platform/db"
	"github.com/ferdiebergado/inkwell/internal/platform/email"
	"github.com/ferdiebergado/inkwell/internal/platform/hash"
	"github.com/ferdiebergado/inkwell/internal/user"
	"github.com/ferdiebergado/inkwell/internal/verification"
)

var (
	ErrUserExists         = errors.New("auth service: user already exists")
	ErrUserNotFound       = errors.New("auth service: user not found")
	ErrInvalidCredentials = errors.New("auth service: invalid credentials")
	ErrUserNotVerified    = errors.New("auth service: user not verified")

	// ErrCodeInvalid deliberately collapses not-found, expired and
	// already-used codes into one externally visible error so callers cannot
	// probe which case occurred.
	ErrCodeInvalid = errors.New("auth service: invalid or expired verification code")
)

// AccountService orchestrates registration, login, verification and password
// reset. Every user it returns is sanitized.
type AccountService interface {
	RegisterUser(ctx context.Context, params RegisterUserParams) (user.SessionUser, error)
	LoginUser(ctx context.Context, params LoginUserParams) (user.SessionUser, error)
	VerifyUser(ctx context.Context, code string) error
	RequestPasswordReset(ctx context.Context, emailAddr string) error
	VerifyPasswordReset(ctx context.Context, code string) error
	ChangePassword(ctx context.Context, params ChangePasswordParams) error
}

type Providers struct {
	Hasher hash.Hasher
	Mailer email.Mailer
	TxMgr  db.TxManager
}

type Service struct {
	users  user.Repository
	codes  verification.Service
	hasher hash.Hasher
	mailer email.Mailer
	txMgr  db.TxManager
	cfg    *config.Config
}

var _ AccountService = (*Service)(nil)

func NewService(users user.Repository, codes verification.Service, providers *Providers, cfg *config.Config) *Service {
	return &Service{
		users:  users,
		codes:  codes,
		hasher: providers.Hasher,
		mailer: providers.Mailer,
		txMgr:  providers.TxMgr,
		cfg:    cfg,
	}
}

type RegisterUserParams struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

func (p *RegisterUserParams) LogValue() slog.Value {
	return slog.AnyValue(nil)
}

// RegisterUser creates an unverified account and a register-purpose
// verification code in a single transaction, then dispatches the code by
// email. The email pre-check is only a fast path; the unique index on the
// email column is the authoritative conflict signal, so a concurrent
// duplicate registration still loses cleanly inside the transaction.
func (s *Service) RegisterUser(ctx context.Context, params RegisterUserParams) (user.SessionUser, error) {
	_, err := s.users.FindByEmail(ctx, params.Email)
	if err == nil {
		return user.SessionUser{}, ErrUserExists
	}
	if !errors.Is(err, user.ErrNotFound) {
		return user.SessionUser{}, fmt.Errorf("find user with email %s: %w", params.Email, err)
	}

	passwordHash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return user.SessionUser{}, fmt.Errorf("hasher hash: %w", err)
	}

	var (
		newUser user.User
		code    verification.Code
	)
	err = s.txMgr.RunInTx(ctx, func(txCtx context.Context) error {
		newUser, err = s.users.Create(txCtx, user.CreateUserParams{
			Role:         user.RoleUser,
			FirstName:    params.FirstName,
			LastName:     params.LastName,
			Email:        params.Email,
			PasswordHash: passwordHash,
		})
		if err != nil {
			return err
		}

		code, err = s.codes.Issue(txCtx, newUser.ID, verification.PurposeRegister)
		return err
	})
	if err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			return user.SessionUser{}, ErrUserExists
		}
		return user.SessionUser{}, fmt.Errorf("register user %s: %w", params.Email, err)
	}

	// Delivery is best-effort; a failed send never unwinds the committed
	// registration.
	go s.sendVerificationEmail(newUser.Email, code.Code)

	return user.Sanitize(newUser), nil
}

type LoginUserParams struct {
	Email    string
	Password string
}

func (p *LoginUserParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", "*"),
		slog.String("password", "*"),
	)
}

// LoginUser checks the credentials and the verified flag. It returns the
// sanitized user for the session layer to adopt; it does not create the
// session itself.
func (s *Service) LoginUser(ctx context.Context, params LoginUserParams) (user.SessionUser, error) {
	u, err := s.users.FindByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.SessionUser{}, ErrUserNotFound
		}
		return user.SessionUser{}, fmt.Errorf("find user by email: %w", err)
	}

	ok, err := s.hasher.Verify(params.Password, u.PasswordHash)
	if err != nil {
		return user.SessionUser{}, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return user.SessionUser{}, ErrInvalidCredentials
	}

	if !u.IsVerified {
		return user.SessionUser{}, ErrUserNotVerified
	}

	return user.Sanitize(u), nil
}

// lookupValidCode loads the code and checks purpose, expiry and the used
// flag. Every failure collapses to ErrCodeInvalid.
func (s *Service) lookupValidCode(ctx context.Context, code string, purpose verification.Purpose) (verification.Code, error) {
	c, err := s.codes.Lookup(ctx, code)
	if err != nil {
		if errors.Is(err, verification.ErrNotFound) {
			return verification.Code{}, ErrCodeInvalid
		}
		return verification.Code{}, fmt.Errorf("lookup verification code: %w", err)
	}

	if c.Purpose != purpose {
		return verification.Code{}, ErrCodeInvalid
	}

	if err := s.codes.Validate(c); err != nil {
		return verification.Code{}, ErrCodeInvalid
	}

	return c, nil
}

// VerifyUser consumes a register-purpose code and flips the owning user to
// verified. Both writes happen in one transaction; a failure in either leaves
// no partial state.
func (s *Service) VerifyUser(ctx context.Context, code string) error {
	c, err := s.lookupValidCode(ctx, code, verification.PurposeRegister)
	if err != nil {
		return err
	}

	err = s.txMgr.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.codes.Consume(txCtx, c.ID); err != nil {
			return err
		}
		return s.users.SetVerified(txCtx, c.UserID)
	})
	if err != nil {
		return fmt.Errorf("verify user %s: %w", c.UserID, err)
	}

	return nil
}

// RequestPasswordReset issues a passwordReset code for a verified account and
// dispatches it by email. The plaintext code never reaches the caller.
func (s *Service) RequestPasswordReset(ctx context.Context, emailAddr string) error {
	u, err := s.users.FindByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("find user by email: %w", err)
	}

	if !u.IsVerified {
		return ErrUserNotVerified
	}

	code, err := s.codes.Issue(ctx, u.ID, verification.PurposePasswordReset)
	if err != nil {
		return fmt.Errorf("issue password reset code: %w", err)
	}

	go s.sendPasswordResetEmail(u.Email, code.Code)

	return nil
}

// VerifyPasswordReset is a pure pre-check: it validates the code without
// consuming it or touching the user, so the client can proceed to the
// change-password step.
func (s *Service) VerifyPasswordReset(ctx context.Context, code string) error {
	_, err := s.lookupValidCode(ctx, code, verification.PurposePasswordReset)
	return err
}

type ChangePasswordParams struct {
	Code     string
	Password string
}

func (p *ChangePasswordParams) LogValue() slog.Value {
	return slog.AnyValue(nil)
}

// ChangePassword re-validates the reset code, then updates the password hash
// and consumes the code in a single transaction.
func (s *Service) ChangePassword(ctx context.Context, params ChangePasswordParams) error {
	c, err := s.lookupValidCode(ctx, params.Code, verification.PurposePasswordReset)
	if err != nil {
		return err
	}

	u, err := s.users.Find(ctx, c.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("find user %s: %w", c.UserID, err)
	}

	passwordHash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return fmt.Errorf("hasher hash: %w", err)
	}

	err = s.txMgr.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.UpdatePassword(txCtx, u.ID, passwordHash); err != nil {
			return err
		}
		return s.codes.Consume(txCtx, c.ID)
	})
	if err != nil {
		return fmt.Errorf("change password for user %s: %w", u.ID, err)
	}

	return nil
}

func (s *Service) sendVerificationEmail(to, code string) {
	link := s.cfg.Server.URL + "/account/verify?code=" + code
	data := map[string]string{
		"Title":  "Email verification",
		"Header": "Verify your email address",
		"Link":   link,
	}
	if err := s.mailer.SendHTML([]string{to}, "Verify your email address", "verification", data); err != nil {
		slog.Error("failed to send verification email", "reason", err)
	}
}

func (s *Service) sendPasswordResetEmail(to, code string) {
	link := s.cfg.Server.URL + "/account/password-reset/verify?code=" + code
	data := map[string]string{
		"Title":  "Password reset",
		"Header": "Reset your password",
		"Link":   link,
	}
	if err := s.mailer.SendHTML([]string{to}, "Reset your password", "reset_password", data); err != nil {
		slog.Error("failed to send password reset email", "reason", err)
	}
}
