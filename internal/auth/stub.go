package auth

import (
	"context"

	"github.com/ferdiebergado/inkwell/internal/user"
)

// StubAccountService is a configurable AccountService test double. Methods
// without a configured func return zero values.
type StubAccountService struct {
	RegisterUserFunc         func(ctx context.Context, params RegisterUserParams) (user.SessionUser, error)
	LoginUserFunc            func(ctx context.Context, params LoginUserParams) (user.SessionUser, error)
	VerifyUserFunc           func(ctx context.Context, code string) error
	RequestPasswordResetFunc func(ctx context.Context, email string) error
	VerifyPasswordResetFunc  func(ctx context.Context, code string) error
	ChangePasswordFunc       func(ctx context.Context, params ChangePasswordParams) error
}

var _ AccountService = (*StubAccountService)(nil)

func (s *StubAccountService) RegisterUser(ctx context.Context, params RegisterUserParams) (user.SessionUser, error) {
	if s.RegisterUserFunc != nil {
		return s.RegisterUserFunc(ctx, params)
	}
	return user.SessionUser{}, nil
}

func (s *StubAccountService) LoginUser(ctx context.Context, params LoginUserParams) (user.SessionUser, error) {
	if s.LoginUserFunc != nil {
		return s.LoginUserFunc(ctx, params)
	}
	return user.SessionUser{}, nil
}

func (s *StubAccountService) VerifyUser(ctx context.Context, code string) error {
	if s.VerifyUserFunc != nil {
		return s.VerifyUserFunc(ctx, code)
	}
	return nil
}

func (s *StubAccountService) RequestPasswordReset(ctx context.Context, email string) error {
	if s.RequestPasswordResetFunc != nil {
		return s.RequestPasswordResetFunc(ctx, email)
	}
	return nil
}

func (s *StubAccountService) VerifyPasswordReset(ctx context.Context, code string) error {
	if s.VerifyPasswordResetFunc != nil {
		return s.VerifyPasswordResetFunc(ctx, code)
	}
	return nil
}

func (s *StubAccountService) ChangePassword(ctx context.Context, params ChangePasswordParams) error {
	if s.ChangePasswordFunc != nil {
		return s.ChangePasswordFunc(ctx, params)
	}
	return nil
}
