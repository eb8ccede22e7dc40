package user_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ferdiebergado/inkwell/internal/user"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userColumns = "id, role, first_name, last_name, email, password_hash, is_verified, created_at, updated_at"

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return mockDB, mock
}

func userRow(id, email string, verified bool) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "role", "first_name", "last_name", "email",
		"password_hash", "is_verified", "created_at", "updated_at",
	}).AddRow(id, "user", "Juan", "Dela Cruz", email, "hash", verified, now, now)
}

func TestSQLRepository_Create(t *testing.T) {
	t.Parallel()

	mockDB, mock := newMockDB(t)
	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(userRow("user-1", "juan@example.com", false))

	repo := user.NewRepository(mockDB)
	created, err := repo.Create(context.Background(), user.CreateUserParams{
		FirstName:    "Juan",
		LastName:     "Dela Cruz",
		Email:        "juan@example.com",
		PasswordHash: "hash",
	})
	require.NoError(t, err)

	assert.Equal(t, "user-1", created.ID)
	assert.False(t, created.IsVerified, "a freshly created user starts unverified")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRepository_Create_DuplicateEmail(t *testing.T) {
	t.Parallel()

	mockDB, mock := newMockDB(t)
	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	repo := user.NewRepository(mockDB)
	_, err := repo.Create(context.Background(), user.CreateUserParams{Email: "juan@example.com"})
	assert.ErrorIs(t, err, user.ErrDuplicateEmail)
}

func TestSQLRepository_FindByEmail(t *testing.T) {
	t.Parallel()

	mockDB, mock := newMockDB(t)
	mock.ExpectQuery("SELECT " + userColumns + " FROM users WHERE email").
		WithArgs("juan@example.com").
		WillReturnRows(userRow("user-1", "juan@example.com", true))

	repo := user.NewRepository(mockDB)
	found, err := repo.FindByEmail(context.Background(), "juan@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user-1", found.ID)
	assert.Equal(t, "hash", found.PasswordHash, "repository returns the full record including the hash")
}

func TestSQLRepository_FindByEmail_NotFound(t *testing.T) {
	t.Parallel()

	mockDB, mock := newMockDB(t)
	mock.ExpectQuery("SELECT " + userColumns + " FROM users WHERE email").
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	repo := user.NewRepository(mockDB)
	_, err := repo.FindByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestSQLRepository_SetVerified(t *testing.T) {
	t.Parallel()

	mockDB, mock := newMockDB(t)
	mock.ExpectExec("UPDATE users SET is_verified = TRUE").
		WithArgs("user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := user.NewRepository(mockDB)
	require.NoError(t, repo.SetVerified(context.Background(), "user-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRepository_SetVerified_NotFound(t *testing.T) {
	t.Parallel()

	mockDB, mock := newMockDB(t)
	mock.ExpectExec("UPDATE users SET is_verified = TRUE").
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := user.NewRepository(mockDB)
	err := repo.SetVerified(context.Background(), "ghost")
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestSQLRepository_UpdatePassword_NotFound(t *testing.T) {
	t.Parallel()

	mockDB, mock := newMockDB(t)
	mock.ExpectExec("UPDATE users SET password_hash").
		WithArgs("new-hash", "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := user.NewRepository(mockDB)
	err := repo.UpdatePassword(context.Background(), "ghost", "new-hash")
	assert.ErrorIs(t, err, user.ErrNotFound)
}
