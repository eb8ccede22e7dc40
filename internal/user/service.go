package user

import (
	"context"
	"fmt"

	"github.com/ferdiebergado/inkwell/internal/platform/hash"
)

// Service exposes the admin-facing user operations. Every returned user is a
// sanitized SessionUser; the password hash stays behind this boundary.
type Service interface {
	Create(ctx context.Context, params CreateParams) (SessionUser, error)
	List(ctx context.Context) ([]SessionUser, error)
	Get(ctx context.Context, userID string) (SessionUser, error)
	Update(ctx context.Context, userID string, params UpdateParams) (SessionUser, error)
	Delete(ctx context.Context, userID string) (SessionUser, error)
}

type service struct {
	repo   Repository
	hasher hash.Hasher
}

var _ Service = (*service)(nil)

func NewService(repo Repository, hasher hash.Hasher) *service {
	return &service{
		repo:   repo,
		hasher: hasher,
	}
}

type CreateParams struct {
	Role      Role
	FirstName string
	LastName  string
	Email     string
	Password  string
}

func (s *service) Create(ctx context.Context, params CreateParams) (SessionUser, error) {
	passwordHash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return SessionUser{}, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.repo.Create(ctx, CreateUserParams{
		Role:         params.Role,
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		Email:        params.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		return SessionUser{}, err
	}

	return Sanitize(u), nil
}

func (s *service) List(ctx context.Context) ([]SessionUser, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	sanitized := make([]SessionUser, 0, len(users))
	for _, u := range users {
		sanitized = append(sanitized, Sanitize(u))
	}
	return sanitized, nil
}

func (s *service) Get(ctx context.Context, userID string) (SessionUser, error) {
	u, err := s.repo.Find(ctx, userID)
	if err != nil {
		return SessionUser{}, err
	}
	return Sanitize(u), nil
}

type UpdateParams struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

func (s *service) Update(ctx context.Context, userID string, params UpdateParams) (SessionUser, error) {
	// The unique index on email settles concurrent updates; this lookup only
	// confirms the target exists before hashing.
	if _, err := s.repo.Find(ctx, userID); err != nil {
		return SessionUser{}, err
	}

	passwordHash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return SessionUser{}, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.repo.Update(ctx, userID, UpdateUserParams{
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		Email:        params.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		return SessionUser{}, err
	}

	return Sanitize(u), nil
}

func (s *service) Delete(ctx context.Context, userID string) (SessionUser, error) {
	u, err := s.repo.Delete(ctx, userID)
	if err != nil {
		return SessionUser{}, err
	}
	return Sanitize(u), nil
}
