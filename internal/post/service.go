package post

import (
	"context"
	"errors"

	"github.com/ferdiebergado/inkwell/internal/user"
)

// ErrForbidden is returned when the acting user is neither the post owner nor
// an admin.
var ErrForbidden = errors.New("post service: forbidden")

// Service applies the ownership rules on top of the repository: drafts are
// visible to their author and admins only, and mutations require the owner or
// an admin.
type Service interface {
	Create(ctx context.Context, actor user.SessionUser, params CreateParams) (Post, error)
	List(ctx context.Context, actor user.SessionUser) ([]Post, error)
	Get(ctx context.Context, actor user.SessionUser, postID string) (Post, error)
	Update(ctx context.Context, actor user.SessionUser, postID string, params UpdateParams) (Post, error)
	Delete(ctx context.Context, actor user.SessionUser, postID string) (Post, error)
}

type service struct {
	repo Repository
}

var _ Service = (*service)(nil)

func NewService(repo Repository) *service {
	return &service{repo: repo}
}

func isAdmin(actor user.SessionUser) bool {
	return actor.Role == user.RoleAdmin
}

func canSee(actor user.SessionUser, p Post) bool {
	return !p.IsDraft || p.UserID == actor.ID || isAdmin(actor)
}

func canMutate(actor user.SessionUser, p Post) bool {
	return p.UserID == actor.ID || isAdmin(actor)
}

type CreateParams struct {
	Title      string
	Content    string
	CoverImage string
	IsDraft    bool
}

func (s *service) Create(ctx context.Context, actor user.SessionUser, params CreateParams) (Post, error) {
	return s.repo.Create(ctx, CreatePostParams{
		Title:      params.Title,
		Content:    params.Content,
		CoverImage: params.CoverImage,
		IsDraft:    params.IsDraft,
		UserID:     actor.ID,
	})
}

// List returns every post the actor may see. Admins see everything; other
// users see published posts plus their own drafts. The filtering happens in
// the repository query, not in memory.
func (s *service) List(ctx context.Context, actor user.SessionUser) ([]Post, error) {
	if isAdmin(actor) {
		return s.repo.List(ctx)
	}
	return s.repo.ListVisible(ctx, actor.ID)
}

// Get hides invisible drafts behind ErrNotFound so a caller cannot tell a
// hidden post from a missing one.
func (s *service) Get(ctx context.Context, actor user.SessionUser, postID string) (Post, error) {
	p, err := s.repo.Find(ctx, postID)
	if err != nil {
		return Post{}, err
	}

	if !canSee(actor, p) {
		return Post{}, ErrNotFound
	}

	return p, nil
}

type UpdateParams struct {
	Title      string
	Content    string
	CoverImage string
	IsDraft    bool
}

func (s *service) Update(ctx context.Context, actor user.SessionUser, postID string, params UpdateParams) (Post, error) {
	p, err := s.repo.Find(ctx, postID)
	if err != nil {
		return Post{}, err
	}

	if !canMutate(actor, p) {
		return Post{}, ErrForbidden
	}

	return s.repo.Update(ctx, postID, UpdatePostParams{
		Title:      params.Title,
		Content:    params.Content,
		CoverImage: params.CoverImage,
		IsDraft:    params.IsDraft,
	})
}

func (s *service) Delete(ctx context.Context, actor user.SessionUser, postID string) (Post, error) {
	p, err := s.repo.Find(ctx, postID)
	if err != nil {
		return Post{}, err
	}

	if !canMutate(actor, p) {
		return Post{}, ErrForbidden
	}

	return s.repo.Delete(ctx, postID)
}
