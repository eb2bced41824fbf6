package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	clock    func() time.Time
	location *time.Location
}

// ServiceOption configures the shared part of a service.
type ServiceOption func(*BaseService)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.clock = now
	}
}

// WithLocation sets the business time zone used for dates in identifiers and year bounds.
func WithLocation(loc *time.Location) ServiceOption {
	return func(s *BaseService) {
		s.location = loc
	}
}

func (s *BaseService) apply(opts []ServiceOption) {
	for _, opt := range opts {
		opt(s)
	}
}

// Location returns the business time zone, UTC when unset.
func (s *BaseService) Location() *time.Location {
	if s.location == nil {
		return time.UTC
	}
	return s.location
}

// Now returns the current time in the business time zone.
func (s *BaseService) Now() time.Time {
	now := time.Now
	if s.clock != nil {
		now = s.clock
	}
	return now().In(s.Location())
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}
