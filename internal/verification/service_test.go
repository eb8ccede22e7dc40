package verification_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ferdiebergado/inkwell/internal/config"
	"github.com/ferdiebergado/inkwell/internal/pkg/timex"
	"github.com/ferdiebergado/inkwell/internal/verification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCfg() *config.Verification {
	return &config.Verification{
		CodeTTL:     timex.Duration{Duration: 15 * time.Minute},
		TokenLength: 32,
	}
}

func TestService_Issue(t *testing.T) {
	t.Parallel()

	var created verification.CreateCodeParams
	repo := &verification.StubRepository{
		CreateFunc: func(_ context.Context, params verification.CreateCodeParams) (verification.Code, error) {
			created = params
			return verification.Code{
				ID:        "code-1",
				UserID:    params.UserID,
				Purpose:   params.Purpose,
				Code:      params.Code,
				ExpiresAt: params.ExpiresAt,
			}, nil
		},
	}

	svc := verification.NewService(repo, testCfg())
	before := time.Now()
	code, err := svc.Issue(context.Background(), "user-1", verification.PurposeRegister)
	require.NoError(t, err)

	assert.Equal(t, "user-1", code.UserID)
	assert.Equal(t, verification.PurposeRegister, code.Purpose)
	assert.Len(t, created.Code, 64, "32 random bytes encode to 64 hex chars")

	wantExpiry := before.Add(15 * time.Minute)
	assert.WithinDuration(t, wantExpiry, created.ExpiresAt, time.Minute)
}

func TestService_Issue_RepoError(t *testing.T) {
	t.Parallel()

	repo := &verification.StubRepository{
		CreateFunc: func(_ context.Context, _ verification.CreateCodeParams) (verification.Code, error) {
			return verification.Code{}, verification.ErrQueryFailed
		},
	}

	svc := verification.NewService(repo, testCfg())
	_, err := svc.Issue(context.Background(), "user-1", verification.PurposePasswordReset)
	assert.ErrorIs(t, err, verification.ErrQueryFailed)
}

func TestService_Validate(t *testing.T) {
	t.Parallel()

	now := time.Now()
	usedAt := now.Add(-time.Minute)

	tests := []struct {
		name    string
		code    verification.Code
		wantErr error
	}{
		{
			name:    "valid code",
			code:    verification.Code{ExpiresAt: now.Add(10 * time.Minute)},
			wantErr: nil,
		},
		{
			name:    "expired code",
			code:    verification.Code{ExpiresAt: now.Add(-time.Minute)},
			wantErr: verification.ErrCodeExpired,
		},
		{
			name:    "used code",
			code:    verification.Code{ExpiresAt: now.Add(10 * time.Minute), IsUsed: true, UsedAt: &usedAt},
			wantErr: verification.ErrCodeUsed,
		},
		{
			name:    "expired and used reports expiry",
			code:    verification.Code{ExpiresAt: now.Add(-time.Minute), IsUsed: true, UsedAt: &usedAt},
			wantErr: verification.ErrCodeExpired,
		},
	}

	svc := verification.NewService(&verification.StubRepository{}, testCfg())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := svc.Validate(tt.code)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_Consume(t *testing.T) {
	t.Parallel()

	var markedID string
	var markedAt time.Time
	repo := &verification.StubRepository{
		MarkUsedFunc: func(_ context.Context, codeID string, usedAt time.Time) error {
			markedID = codeID
			markedAt = usedAt
			return nil
		},
	}

	svc := verification.NewService(repo, testCfg())
	require.NoError(t, svc.Consume(context.Background(), "code-1"))
	assert.Equal(t, "code-1", markedID)
	assert.WithinDuration(t, time.Now(), markedAt, time.Minute)
}

func TestService_Consume_AlreadyUsed(t *testing.T) {
	t.Parallel()

	repo := &verification.StubRepository{
		MarkUsedFunc: func(_ context.Context, _ string, _ time.Time) error {
			return verification.ErrNotFound
		},
	}

	svc := verification.NewService(repo, testCfg())
	err := svc.Consume(context.Background(), "code-1")
	assert.True(t, errors.Is(err, verification.ErrNotFound))
}
