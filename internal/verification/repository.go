package verification

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ferdiebergado/inkwell/internal/platform/db"
	"github.com/google/uuid"
)

var (
	ErrNotFound    = errors.New("verification repository: code not found")
	ErrQueryFailed = errors.New("verification repository: query failed")
)

type Repository interface {
	Create(ctx context.Context, params CreateCodeParams) (Code, error)
	FindByCode(ctx context.Context, code string) (Code, error)
	MarkUsed(ctx context.Context, codeID string, usedAt time.Time) error
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

const codeColumns = "id, user_id, purpose, code, is_used, used_at, created_at, expires_at"

func scanCode(row *sql.Row) (Code, error) {
	var c Code
	err := row.Scan(&c.ID, &c.UserID, &c.Purpose, &c.Code, &c.IsUsed, &c.UsedAt, &c.CreatedAt, &c.ExpiresAt)
	return c, err
}

type CreateCodeParams struct {
	UserID    string
	Purpose   Purpose
	Code      string
	ExpiresAt time.Time
}

const queryCodeCreate = `
INSERT INTO verification_codes (id, user_id, purpose, code, expires_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + codeColumns

func (r *SQLRepository) Create(ctx context.Context, params CreateCodeParams) (Code, error) {
	row := r.exec(ctx).QueryRowContext(ctx, queryCodeCreate,
		uuid.NewString(), params.UserID, params.Purpose, params.Code, params.ExpiresAt)
	c, err := scanCode(row)
	if err != nil {
		return Code{}, fmt.Errorf("%w: create %s code for user %s: %v", ErrQueryFailed, params.Purpose, params.UserID, err)
	}
	return c, nil
}

const queryCodeFind = "SELECT " + codeColumns + " FROM verification_codes WHERE code = $1 LIMIT 1"

func (r *SQLRepository) FindByCode(ctx context.Context, code string) (Code, error) {
	row := r.exec(ctx).QueryRowContext(ctx, queryCodeFind, code)
	c, err := scanCode(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Code{}, ErrNotFound
		}
		return Code{}, fmt.Errorf("%w: find verification code: %v", ErrQueryFailed, err)
	}
	return c, nil
}

const queryCodeMarkUsed = `
UPDATE verification_codes
SET is_used = TRUE, used_at = $1
WHERE id = $2 AND is_used = FALSE
`

func (r *SQLRepository) MarkUsed(ctx context.Context, codeID string, usedAt time.Time) error {
	res, err := r.exec(ctx).ExecContext(ctx, queryCodeMarkUsed, usedAt, codeID)
	if err != nil {
		return fmt.Errorf("%w: mark code %s used: %v", ErrQueryFailed, codeID, err)
	}

	numRows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if numRows == 0 {
		return ErrNotFound
	}

	return nil
}
