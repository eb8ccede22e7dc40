package verification_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ferdiebergado/inkwell/internal/verification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return mockDB, mock
}

func codeRow(id, userID, code string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "user_id", "purpose", "code", "is_used", "used_at", "created_at", "expires_at",
	}).AddRow(id, userID, "register", code, false, nil, now, now.Add(15*time.Minute))
}

func TestSQLRepository_Create(t *testing.T) {
	t.Parallel()

	mockDB, mock := newMockDB(t)
	mock.ExpectQuery("INSERT INTO verification_codes").
		WillReturnRows(codeRow("code-1", "user-1", "abc123"))

	repo := verification.NewRepository(mockDB)
	created, err := repo.Create(context.Background(), verification.CreateCodeParams{
		UserID:    "user-1",
		Purpose:   verification.PurposeRegister,
		Code:      "abc123",
		ExpiresAt: time.Now().Add(15 * time.Minute),
	})
	require.NoError(t, err)

	assert.Equal(t, "code-1", created.ID)
	assert.False(t, created.IsUsed)
	assert.Nil(t, created.UsedAt)
}

func TestSQLRepository_FindByCode_NotFound(t *testing.T) {
	t.Parallel()

	mockDB, mock := newMockDB(t)
	mock.ExpectQuery("SELECT (.+) FROM verification_codes WHERE code").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	repo := verification.NewRepository(mockDB)
	_, err := repo.FindByCode(context.Background(), "ghost")
	assert.ErrorIs(t, err, verification.ErrNotFound)
}

func TestSQLRepository_MarkUsed(t *testing.T) {
	t.Parallel()

	usedAt := time.Now()
	mockDB, mock := newMockDB(t)
	mock.ExpectExec("UPDATE verification_codes").
		WithArgs(usedAt, "code-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := verification.NewRepository(mockDB)
	require.NoError(t, repo.MarkUsed(context.Background(), "code-1", usedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A second consume hits the is_used guard in the query and affects no rows.
func TestSQLRepository_MarkUsed_AlreadyUsed(t *testing.T) {
	t.Parallel()

	usedAt := time.Now()
	mockDB, mock := newMockDB(t)
	mock.ExpectExec("UPDATE verification_codes").
		WithArgs(usedAt, "code-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := verification.NewRepository(mockDB)
	err := repo.MarkUsed(context.Background(), "code-1", usedAt)
	assert.ErrorIs(t, err, verification.ErrNotFound)
}
