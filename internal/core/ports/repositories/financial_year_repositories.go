package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
)

// FinancialYearReader defines read operations for financial years
type FinancialYearReader interface {
	FindFinancialYearByID(ctx context.Context, id int64) (*domain.FinancialYear, error)
	ListFinancialYears(ctx context.Context) ([]domain.FinancialYear, error)
	// FindClosedFinancialYearCovering returns a closed year containing t, or nil when none does.
	// Inside a transaction every year containing t stays share-locked until commit,
	// so a concurrent close waits for the caller.
	FindClosedFinancialYearCovering(ctx context.Context, t time.Time) (*domain.FinancialYear, error)
}

// FinancialYearWriter defines write operations for financial years
type FinancialYearWriter interface {
	// CreateFinancialYear inserts a new year; a taken name yields apperrors.ErrDuplicate.
	CreateFinancialYear(ctx context.Context, fy *domain.FinancialYear) error
	// EnsureFinancialYear inserts fy unless a year with the same name exists and
	// returns the stored row either way.
	EnsureFinancialYear(ctx context.Context, fy domain.FinancialYear) (*domain.FinancialYear, error)
	FindFinancialYearByIDForUpdate(ctx context.Context, id int64) (*domain.FinancialYear, error)
	// MarkFinancialYearClosed closes an open year, reporting false if it was already closed.
	// An open-ended year takes cutoff as its end date.
	MarkFinancialYearClosed(ctx context.Context, id int64, closedAt, cutoff time.Time, openingBalances map[domain.AccountCode]int64) (bool, error)
}

// FinancialYearRepositoryFacade combines all financial-year repository interfaces
type FinancialYearRepositoryFacade interface {
	FinancialYearReader
	FinancialYearWriter
}
