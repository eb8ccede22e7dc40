package user

import (
	"context"
	"errors"
)

// StubRepository is a func-field test double for Repository.
type StubRepository struct {
	CreateFunc         func(ctx context.Context, params CreateUserParams) (User, error)
	ListFunc           func(ctx context.Context) ([]User, error)
	FindFunc           func(ctx context.Context, userID string) (User, error)
	FindByEmailFunc    func(ctx context.Context, email string) (User, error)
	UpdateFunc         func(ctx context.Context, userID string, params UpdateUserParams) (User, error)
	UpdatePasswordFunc func(ctx context.Context, userID, passwordHash string) error
	SetVerifiedFunc    func(ctx context.Context, userID string) error
	DeleteFunc         func(ctx context.Context, userID string) (User, error)
}

var _ Repository = (*StubRepository)(nil)

func (r *StubRepository) Create(ctx context.Context, params CreateUserParams) (User, error) {
	if r.CreateFunc == nil {
		return User{}, errors.New("Create not implemented in stub")
	}
	return r.CreateFunc(ctx, params)
}

func (r *StubRepository) List(ctx context.Context) ([]User, error) {
	if r.ListFunc == nil {
		return nil, errors.New("List not implemented in stub")
	}
	return r.ListFunc(ctx)
}

func (r *StubRepository) Find(ctx context.Context, userID string) (User, error) {
	if r.FindFunc == nil {
		return User{}, errors.New("Find not implemented in stub")
	}
	return r.FindFunc(ctx, userID)
}

func (r *StubRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	if r.FindByEmailFunc == nil {
		return User{}, errors.New("FindByEmail not implemented in stub")
	}
	return r.FindByEmailFunc(ctx, email)
}

func (r *StubRepository) Update(ctx context.Context, userID string, params UpdateUserParams) (User, error) {
	if r.UpdateFunc == nil {
		return User{}, errors.New("Update not implemented in stub")
	}
	return r.UpdateFunc(ctx, userID, params)
}

func (r *StubRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	if r.UpdatePasswordFunc == nil {
		return errors.New("UpdatePassword not implemented in stub")
	}
	return r.UpdatePasswordFunc(ctx, userID, passwordHash)
}

func (r *StubRepository) SetVerified(ctx context.Context, userID string) error {
	if r.SetVerifiedFunc == nil {
		return errors.New("SetVerified not implemented in stub")
	}
	return r.SetVerifiedFunc(ctx, userID)
}

func (r *StubRepository) Delete(ctx context.Context, userID string) (User, error) {
	if r.DeleteFunc == nil {
		return User{}, errors.New("Delete not implemented in stub")
	}
	return r.DeleteFunc(ctx, userID)
}

// StubService is a func-field test double for Service.
type StubService struct {
	CreateFunc func(ctx context.Context, params CreateParams) (SessionUser, error)
	ListFunc   func(ctx context.Context) ([]SessionUser, error)
	GetFunc    func(ctx context.Context, userID string) (SessionUser, error)
	UpdateFunc func(ctx context.Context, userID string, params UpdateParams) (SessionUser, error)
	DeleteFunc func(ctx context.Context, userID string) (SessionUser, error)
}

var _ Service = (*StubService)(nil)

func (s *StubService) Create(ctx context.Context, params CreateParams) (SessionUser, error) {
	if s.CreateFunc == nil {
		return SessionUser{}, errors.New("Create not implemented in stub")
	}
	return s.CreateFunc(ctx, params)
}

func (s *StubService) List(ctx context.Context) ([]SessionUser, error) {
	if s.ListFunc == nil {
		return nil, errors.New("List not implemented in stub")
	}
	return s.ListFunc(ctx)
}

func (s *StubService) Get(ctx context.Context, userID string) (SessionUser, error) {
	if s.GetFunc == nil {
		return SessionUser{}, errors.New("Get not implemented in stub")
	}
	return s.GetFunc(ctx, userID)
}

func (s *StubService) Update(ctx context.Context, userID string, params UpdateParams) (SessionUser, error) {
	if s.UpdateFunc == nil {
		return SessionUser{}, errors.New("Update not implemented in stub")
	}
	return s.UpdateFunc(ctx, userID, params)
}

func (s *StubService) Delete(ctx context.Context, userID string) (SessionUser, error) {
	if s.DeleteFunc == nil {
		return SessionUser{}, errors.New("Delete not implemented in stub")
	}
	return s.DeleteFunc(ctx, userID)
}
