package services

import (
	"context"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
)

// VerificationCodeSvc issues and checks short-lived one-time codes
type VerificationCodeSvc interface {
	// Issue creates a code for key, replacing any live one.
	Issue(ctx context.Context, key string) (*domain.VerificationCode, error)

	// Verify consumes the code when it matches and has not expired.
	Verify(ctx context.Context, key, code string) (bool, error)
}
