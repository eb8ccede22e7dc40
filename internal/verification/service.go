package verification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ferdiebergado/inkwell/internal/config"
	"github.com/ferdiebergado/inkwell/internal/pkg/security"
)

var (
	// ErrCodeExpired is returned by Validate when the code's expiry has passed.
	ErrCodeExpired = errors.New("verification: code has expired")
	// ErrCodeUsed is returned by Validate when the code was already consumed.
	ErrCodeUsed = errors.New("verification: code already used")
)

// Service manages the lifecycle of verification codes: issue, lookup,
// validate, consume. Consume must run inside the same transaction as the
// account mutation it authorizes; the caller owns the transaction scope.
type Service interface {
	Issue(ctx context.Context, userID string, purpose Purpose) (Code, error)
	Lookup(ctx context.Context, code string) (Code, error)
	Validate(code Code) error
	Consume(ctx context.Context, codeID string) error
}

type service struct {
	repo Repository
	cfg  *config.Verification
	now  func() time.Time
}

var _ Service = (*service)(nil)

func NewService(repo Repository, cfg *config.Verification) *service {
	return &service{
		repo: repo,
		cfg:  cfg,
		now:  time.Now,
	}
}

// Issue generates a fresh opaque code for the user and persists it with an
// expiry of now + the configured TTL. The caller is responsible for
// delivering the code out-of-band.
func (s *service) Issue(ctx context.Context, userID string, purpose Purpose) (Code, error) {
	code := security.Token(s.cfg.TokenLength)
	expiresAt := s.now().Add(s.cfg.CodeTTL.Duration)

	created, err := s.repo.Create(ctx, CreateCodeParams{
		UserID:    userID,
		Purpose:   purpose,
		Code:      code,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return Code{}, fmt.Errorf("issue %s code for user %s: %w", purpose, userID, err)
	}

	return created, nil
}

func (s *service) Lookup(ctx context.Context, code string) (Code, error) {
	return s.repo.FindByCode(ctx, code)
}

// Validate is a pure check with no mutation. Expiry is checked before the
// used flag so a code that is both expired and used reports expiry.
func (s *service) Validate(code Code) error {
	if s.now().After(code.ExpiresAt) {
		return ErrCodeExpired
	}
	if code.IsUsed {
		return ErrCodeUsed
	}
	return nil
}

// Consume marks the code used with a timestamp. It must be called inside the
// same transaction as the paired account mutation.
func (s *service) Consume(ctx context.Context, codeID string) error {
	if err := s.repo.MarkUsed(ctx, codeID, s.now()); err != nil {
		return fmt.Errorf("consume code %s: %w", codeID, err)
	}
	return nil
}
