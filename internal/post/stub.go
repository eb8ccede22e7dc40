package post

import (
	"context"

	"github.com/ferdiebergado/inkwell/internal/user"
)

// StubRepository is a configurable Repository test double.
type StubRepository struct {
	CreateFunc      func(ctx context.Context, params CreatePostParams) (Post, error)
	ListFunc        func(ctx context.Context) ([]Post, error)
	ListVisibleFunc func(ctx context.Context, userID string) ([]Post, error)
	FindFunc        func(ctx context.Context, postID string) (Post, error)
	UpdateFunc      func(ctx context.Context, postID string, params UpdatePostParams) (Post, error)
	DeleteFunc      func(ctx context.Context, postID string) (Post, error)
}

var _ Repository = (*StubRepository)(nil)

func (s *StubRepository) Create(ctx context.Context, params CreatePostParams) (Post, error) {
	if s.CreateFunc != nil {
		return s.CreateFunc(ctx, params)
	}
	return Post{}, nil
}

func (s *StubRepository) List(ctx context.Context) ([]Post, error) {
	if s.ListFunc != nil {
		return s.ListFunc(ctx)
	}
	return nil, nil
}

func (s *StubRepository) ListVisible(ctx context.Context, userID string) ([]Post, error) {
	if s.ListVisibleFunc != nil {
		return s.ListVisibleFunc(ctx, userID)
	}
	return nil, nil
}

func (s *StubRepository) Find(ctx context.Context, postID string) (Post, error) {
	if s.FindFunc != nil {
		return s.FindFunc(ctx, postID)
	}
	return Post{}, nil
}

func (s *StubRepository) Update(ctx context.Context, postID string, params UpdatePostParams) (Post, error) {
	if s.UpdateFunc != nil {
		return s.UpdateFunc(ctx, postID, params)
	}
	return Post{}, nil
}

func (s *StubRepository) Delete(ctx context.Context, postID string) (Post, error) {
	if s.DeleteFunc != nil {
		return s.DeleteFunc(ctx, postID)
	}
	return Post{}, nil
}

// StubService is a configurable Service test double.
type StubService struct {
	CreateFunc func(ctx context.Context, actor user.SessionUser, params CreateParams) (Post, error)
	ListFunc   func(ctx context.Context, actor user.SessionUser) ([]Post, error)
	GetFunc    func(ctx context.Context, actor user.SessionUser, postID string) (Post, error)
	UpdateFunc func(ctx context.Context, actor user.SessionUser, postID string, params UpdateParams) (Post, error)
	DeleteFunc func(ctx context.Context, actor user.SessionUser, postID string) (Post, error)
}

var _ Service = (*StubService)(nil)

func (s *StubService) Create(ctx context.Context, actor user.SessionUser, params CreateParams) (Post, error) {
	if s.CreateFunc != nil {
		return s.CreateFunc(ctx, actor, params)
	}
	return Post{}, nil
}

func (s *StubService) List(ctx context.Context, actor user.SessionUser) ([]Post, error) {
	if s.ListFunc != nil {
		return s.ListFunc(ctx, actor)
	}
	return nil, nil
}

func (s *StubService) Get(ctx context.Context, actor user.SessionUser, postID string) (Post, error) {
	if s.GetFunc != nil {
		return s.GetFunc(ctx, actor, postID)
	}
	return Post{}, nil
}

func (s *StubService) Update(ctx context.Context, actor user.SessionUser, postID string, params UpdateParams) (Post, error) {
	if s.UpdateFunc != nil {
		return s.UpdateFunc(ctx, actor, postID, params)
	}
	return Post{}, nil
}

func (s *StubService) Delete(ctx context.Context, actor user.SessionUser, postID string) (Post, error) {
	if s.DeleteFunc != nil {
		return s.DeleteFunc(ctx, actor, postID)
	}
	return Post{}, nil
}
