package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerificationCode_IssueAndVerifyOnce(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := services.NewVerificationCodeService(10, time.Minute, services.WithClock(fixedClock(now)))

	vc, err := svc.Issue(ctx, "+989121234567")
	require.NoError(t, err)
	assert.Regexp(t, `^\d{6}$`, vc.Code)
	assert.Equal(t, now.Add(time.Minute), vc.ExpiresAt)

	ok, err := svc.Verify(ctx, "+989121234567", vc.Code)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Verify(ctx, "+989121234567", vc.Code)
	require.NoError(t, err)
	assert.False(t, ok, "codes are single use")
}

func TestVerificationCode_WrongCodeKeepsEntry(t *testing.T) {
	ctx := context.Background()
	svc := services.NewVerificationCodeService(10, time.Minute)

	vc, err := svc.Issue(ctx, "user@example.com")
	require.NoError(t, err)

	wrong := "000000"
	if vc.Code == wrong {
		wrong = "111111"
	}
	ok, err := svc.Verify(ctx, "user@example.com", wrong)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.Verify(ctx, "user@example.com", vc.Code)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerificationCode_ReissueReplaces(t *testing.T) {
	ctx := context.Background()
	svc := services.NewVerificationCodeService(10, time.Minute)

	first, err := svc.Issue(ctx, "k")
	require.NoError(t, err)
	second, err := svc.Issue(ctx, "k")
	require.NoError(t, err)

	if first.Code != second.Code {
		ok, err := svc.Verify(ctx, "k", first.Code)
		require.NoError(t, err)
		assert.False(t, ok)
	}
	ok, err := svc.Verify(ctx, "k", second.Code)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerificationCode_Expired(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	current := now
	svc := services.NewVerificationCodeService(10, time.Hour, services.WithClock(func() time.Time { return current }))

	vc, err := svc.Issue(ctx, "k")
	require.NoError(t, err)

	current = now.Add(2 * time.Hour)
	ok, err := svc.Verify(ctx, "k", vc.Code)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerificationCode_EmptyKey(t *testing.T) {
	svc := services.NewVerificationCodeService(10, time.Minute)

	_, err := svc.Issue(context.Background(), " ")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.Verify(context.Background(), "", "123456")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
