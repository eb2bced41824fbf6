package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/utils"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const verificationCodeDigits = 6

type verificationCodeService struct {
	BaseService
	ttl   time.Duration
	codes *expirable.LRU[string, domain.VerificationCode]
}

// NewVerificationCodeService creates an in-memory one-time code store holding
// at most capacity live codes, each valid for ttl.
func NewVerificationCodeService(capacity int, ttl time.Duration, opts ...ServiceOption) portssvc.VerificationCodeSvc {
	svc := &verificationCodeService{
		ttl:   ttl,
		codes: expirable.NewLRU[string, domain.VerificationCode](capacity, nil, ttl),
	}
	svc.apply(opts)
	return svc
}

var _ portssvc.VerificationCodeSvc = (*verificationCodeService)(nil)

func (s *verificationCodeService) Issue(ctx context.Context, key string) (*domain.VerificationCode, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, fmt.Errorf("%w: verification key is required", apperrors.ErrValidation)
	}
	code, err := utils.SecureDigits(verificationCodeDigits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification code: %w", err)
	}
	vc := domain.VerificationCode{
		Key:       key,
		Code:      code,
		ExpiresAt: s.Now().Add(s.ttl),
	}
	s.codes.Add(key, vc)
	s.LogDebug(ctx, "Verification code issued", slog.String("key", key))
	return &vc, nil
}

func (s *verificationCodeService) Verify(ctx context.Context, key, code string) (bool, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return false, fmt.Errorf("%w: verification key is required", apperrors.ErrValidation)
	}
	vc, ok := s.codes.Get(key)
	if !ok {
		return false, nil
	}
	if !s.Now().Before(vc.ExpiresAt) {
		s.codes.Remove(key)
		return false, nil
	}
	if subtle.ConstantTimeCompare([]byte(vc.Code), []byte(code)) != 1 {
		s.LogDebug(ctx, "Verification code mismatch", slog.String("key", key))
		return false, nil
	}
	s.codes.Remove(key)
	return true, nil
}
