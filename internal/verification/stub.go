package verification

import (
	"context"
	"errors"
	"time"
)

// StubRepository is a func-field test double for Repository.
type StubRepository struct {
	CreateFunc     func(ctx context.Context, params CreateCodeParams) (Code, error)
	FindByCodeFunc func(ctx context.Context, code string) (Code, error)
	MarkUsedFunc   func(ctx context.Context, codeID string, usedAt time.Time) error
}

var _ Repository = (*StubRepository)(nil)

func (r *StubRepository) Create(ctx context.Context, params CreateCodeParams) (Code, error) {
	if r.CreateFunc == nil {
		return Code{}, errors.New("Create not implemented in stub")
	}
	return r.CreateFunc(ctx, params)
}

func (r *StubRepository) FindByCode(ctx context.Context, code string) (Code, error) {
	if r.FindByCodeFunc == nil {
		return Code{}, errors.New("FindByCode not implemented in stub")
	}
	return r.FindByCodeFunc(ctx, code)
}

func (r *StubRepository) MarkUsed(ctx context.Context, codeID string, usedAt time.Time) error {
	if r.MarkUsedFunc == nil {
		return errors.New("MarkUsed not implemented in stub")
	}
	return r.MarkUsedFunc(ctx, codeID, usedAt)
}

// StubService is a func-field test double for Service.
type StubService struct {
	IssueFunc    func(ctx context.Context, userID string, purpose Purpose) (Code, error)
	LookupFunc   func(ctx context.Context, code string) (Code, error)
	ValidateFunc func(code Code) error
	ConsumeFunc  func(ctx context.Context, codeID string) error
}

var _ Service = (*StubService)(nil)

func (s *StubService) Issue(ctx context.Context, userID string, purpose Purpose) (Code, error) {
	if s.IssueFunc == nil {
		return Code{}, errors.New("Issue not implemented in stub")
	}
	return s.IssueFunc(ctx, userID, purpose)
}

func (s *StubService) Lookup(ctx context.Context, code string) (Code, error) {
	if s.LookupFunc == nil {
		return Code{}, errors.New("Lookup not implemented in stub")
	}
	return s.LookupFunc(ctx, code)
}

func (s *StubService) Validate(code Code) error {
	if s.ValidateFunc == nil {
		return errors.New("Validate not implemented in stub")
	}
	return s.ValidateFunc(code)
}

func (s *StubService) Consume(ctx context.Context, codeID string) error {
	if s.ConsumeFunc == nil {
		return errors.New("Consume not implemented in stub")
	}
	return s.ConsumeFunc(ctx, codeID)
}
