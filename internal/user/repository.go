package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ferdiebergado/inkwell/internal/platform/db"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound       = errors.New("user repository: user not found")
	ErrDuplicateEmail = errors.New("user repository: email already exists")
	ErrQueryFailed    = errors.New("user repository: query failed")
)

// Repository is the interface for user persistence.
type Repository interface {
	Create(ctx context.Context, params CreateUserParams) (User, error)
	List(ctx context.Context) ([]User, error)
	Find(ctx context.Context, userID string) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	Update(ctx context.Context, userID string, params UpdateUserParams) (User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	SetVerified(ctx context.Context, userID string) error
	Delete(ctx context.Context, userID string) (User, error)
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

const userColumns = "id, role, first_name, last_name, email, password_hash, is_verified, created_at, updated_at"

func scanUser(row *sql.Row) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Role, &u.FirstName, &u.LastName, &u.Email,
		&u.PasswordHash, &u.IsVerified, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// isUniqueViolation reports whether err is a postgres unique-constraint
// violation. The constraint is the authoritative duplicate-email signal;
// pre-checks in the service layer are only a fast path.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type CreateUserParams struct {
	Role         Role
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
}

const queryUserCreate = `
INSERT INTO users (id, role, first_name, last_name, email, password_hash)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + userColumns

func (r *SQLRepository) Create(ctx context.Context, params CreateUserParams) (User, error) {
	role := params.Role
	if role == "" {
		role = RoleUser
	}

	row := r.exec(ctx).QueryRowContext(ctx, queryUserCreate,
		uuid.NewString(), role, params.FirstName, params.LastName, params.Email, params.PasswordHash)
	u, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return User{}, ErrDuplicateEmail
		}
		return User{}, fmt.Errorf("%w: create user with email %s: %v", ErrQueryFailed, params.Email, err)
	}
	return u, nil
}

const queryUserList = "SELECT " + userColumns + " FROM users ORDER BY created_at"

func (r *SQLRepository) List(ctx context.Context) ([]User, error) {
	rows, err := r.exec(ctx).QueryContext(ctx, queryUserList)
	if err != nil {
		return nil, fmt.Errorf("%w: list users: %v", ErrQueryFailed, err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Role, &u.FirstName, &u.LastName, &u.Email,
			&u.PasswordHash, &u.IsVerified, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("user repository: scan row: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("user repository: iterate over user rows: %w", err)
	}

	return users, nil
}

const queryUserFind = "SELECT " + userColumns + " FROM users WHERE id = $1 LIMIT 1"

func (r *SQLRepository) Find(ctx context.Context, userID string) (User, error) {
	row := r.exec(ctx).QueryRowContext(ctx, queryUserFind, userID)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("%w: find user with id %s: %v", ErrQueryFailed, userID, err)
	}
	return u, nil
}

const queryUserFindByEmail = "SELECT " + userColumns + " FROM users WHERE email = $1 LIMIT 1"

func (r *SQLRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	row := r.exec(ctx).QueryRowContext(ctx, queryUserFindByEmail, email)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("%w: find user with email %s: %v", ErrQueryFailed, email, err)
	}
	return u, nil
}

type UpdateUserParams struct {
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
}

const queryUserUpdate = `
UPDATE users
SET first_name = $1, last_name = $2, email = $3, password_hash = $4, updated_at = NOW()
WHERE id = $5
RETURNING ` + userColumns

func (r *SQLRepository) Update(ctx context.Context, userID string, params UpdateUserParams) (User, error) {
	row := r.exec(ctx).QueryRowContext(ctx, queryUserUpdate,
		params.FirstName, params.LastName, params.Email, params.PasswordHash, userID)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		if isUniqueViolation(err) {
			return User{}, ErrDuplicateEmail
		}
		return User{}, fmt.Errorf("%w: update user with id %s: %v", ErrQueryFailed, userID, err)
	}
	return u, nil
}

const queryUserUpdatePassword = "UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2"

func (r *SQLRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	res, err := r.exec(ctx).ExecContext(ctx, queryUserUpdatePassword, passwordHash, userID)
	if err != nil {
		return fmt.Errorf("%w: change password for user %s: %v", ErrQueryFailed, userID, err)
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

const queryUserSetVerified = "UPDATE users SET is_verified = TRUE, updated_at = NOW() WHERE id = $1"

func (r *SQLRepository) SetVerified(ctx context.Context, userID string) error {
	res, err := r.exec(ctx).ExecContext(ctx, queryUserSetVerified, userID)
	if err != nil {
		return fmt.Errorf("%w: verify user %s: %v", ErrQueryFailed, userID, err)
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

const queryUserDelete = "DELETE FROM users WHERE id = $1 RETURNING " + userColumns

func (r *SQLRepository) Delete(ctx context.Context, userID string) (User, error) {
	row := r.exec(ctx).QueryRowContext(ctx, queryUserDelete, userID)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("%w: delete user with id %s: %v", ErrQueryFailed, userID, err)
	}
	return u, nil
}
