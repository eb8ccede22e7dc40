package post

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ferdiebergado/inkwell/internal/platform/db"
	"github.com/google/uuid"
)

var (
	ErrNotFound    = errors.New("post repository: post not found")
	ErrQueryFailed = errors.New("post repository: query failed")
)

// Repository is the interface for post persistence.
type Repository interface {
	Create(ctx context.Context, params CreatePostParams) (Post, error)
	List(ctx context.Context) ([]Post, error)
	ListVisible(ctx context.Context, userID string) ([]Post, error)
	Find(ctx context.Context, postID string) (Post, error)
	Update(ctx context.Context, postID string, params UpdatePostParams) (Post, error)
	Delete(ctx context.Context, postID string) (Post, error)
}

type SQLRepository struct {
	db *sql.DB
}

var _ Repository = (*SQLRepository)(nil)

func NewRepository(conn *sql.DB) *SQLRepository {
	return &SQLRepository{db: conn}
}

//nolint:ireturn //Executor resolution is shared by every query.
func (r *SQLRepository) exec(ctx context.Context) db.Executor {
	return db.ExecutorFromContext(ctx, r.db)
}

const postColumns = "id, title, content, cover_image, is_draft, user_id, created_at, updated_at"

func scanPost(row *sql.Row) (Post, error) {
	var p Post
	err := row.Scan(&p.ID, &p.Title, &p.Content, &p.CoverImage, &p.IsDraft,
		&p.UserID, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

type CreatePostParams struct {
	Title      string
	Content    string
	CoverImage string
	IsDraft    bool
	UserID     string
}

const queryPostCreate = `
INSERT INTO posts (id, title, content, cover_image, is_draft, user_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + postColumns

func (r *SQLRepository) Create(ctx context.Context, params CreatePostParams) (Post, error) {
	row := r.exec(ctx).QueryRowContext(ctx, queryPostCreate,
		uuid.NewString(), params.Title, params.Content, params.CoverImage, params.IsDraft, params.UserID)
	p, err := scanPost(row)
	if err != nil {
		return Post{}, fmt.Errorf("%w: create post: %v", ErrQueryFailed, err)
	}
	return p, nil
}

func (r *SQLRepository) queryPosts(ctx context.Context, query string, args ...any) ([]Post, error) {
	rows, err := r.exec(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list posts: %v", ErrQueryFailed, err)
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		var p Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.CoverImage, &p.IsDraft,
			&p.UserID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("post repository: scan row: %w", err)
		}
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("post repository: iterate over post rows: %w", err)
	}

	return posts, nil
}

const queryPostList = "SELECT " + postColumns + " FROM posts ORDER BY created_at DESC"

func (r *SQLRepository) List(ctx context.Context) ([]Post, error) {
	return r.queryPosts(ctx, queryPostList)
}

const queryPostListVisible = "SELECT " + postColumns +
	" FROM posts WHERE is_draft = FALSE OR user_id = $1 ORDER BY created_at DESC"

// ListVisible returns the posts visible to the given user: every published
// post plus the user's own drafts.
func (r *SQLRepository) ListVisible(ctx context.Context, userID string) ([]Post, error) {
	return r.queryPosts(ctx, queryPostListVisible, userID)
}

const queryPostFind = "SELECT " + postColumns + " FROM posts WHERE id = $1 LIMIT 1"

func (r *SQLRepository) Find(ctx context.Context, postID string) (Post, error) {
	row := r.exec(ctx).QueryRowContext(ctx, queryPostFind, postID)
	p, err := scanPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Post{}, ErrNotFound
		}
		return Post{}, fmt.Errorf("%w: find post with id %s: %v", ErrQueryFailed, postID, err)
	}
	return p, nil
}

type UpdatePostParams struct {
	Title      string
	Content    string
	CoverImage string
	IsDraft    bool
}

const queryPostUpdate = `
UPDATE posts
SET title = $1, content = $2, cover_image = $3, is_draft = $4, updated_at = NOW()
WHERE id = $5
RETURNING ` + postColumns

func (r *SQLRepository) Update(ctx context.Context, postID string, params UpdatePostParams) (Post, error) {
	row := r.exec(ctx).QueryRowContext(ctx, queryPostUpdate,
		params.Title, params.Content, params.CoverImage, params.IsDraft, postID)
	p, err := scanPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Post{}, ErrNotFound
		}
		return Post{}, fmt.Errorf("%w: update post with id %s: %v", ErrQueryFailed, postID, err)
	}
	return p, nil
}

const queryPostDelete = "DELETE FROM posts WHERE id = $1 RETURNING " + postColumns

func (r *SQLRepository) Delete(ctx context.Context, postID string) (Post, error) {
	row := r.exec(ctx).QueryRowContext(ctx, queryPostDelete, postID)
	p, err := scanPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Post{}, ErrNotFound
		}
		return Post{}, fmt.Errorf("%w: delete post with id %s: %v", ErrQueryFailed, postID, err)
	}
	return p, nil
}
