package services

import (
	"context"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
)

// FinancialYearReaderSvc defines read operations for financial years
type FinancialYearReaderSvc interface {
	GetFinancialYear(ctx context.Context, id int64) (*domain.FinancialYear, error)
	ListFinancialYears(ctx context.Context) ([]domain.FinancialYear, error)
}

// FinancialYearWriterSvc defines financial year creation and closing
type FinancialYearWriterSvc interface {
	// GetOrCreateCurrent returns the year containing now in the given calendar,
	// creating it on first use. Safe to call repeatedly and concurrently.
	GetOrCreateCurrent(ctx context.Context, calendarName string) (*domain.FinancialYear, error)

	CreateFinancialYear(ctx context.Context, req dto.CreateFinancialYearRequest) (*domain.FinancialYear, error)

	// CloseFinancialYear zeroes every account into RetainedEarnings and freezes
	// the year. Closing a closed year returns it unchanged.
	CloseFinancialYear(ctx context.Context, id int64) (*domain.FinancialYear, error)
}

// FinancialYearSvcFacade combines all financial-year service interfaces
type FinancialYearSvcFacade interface {
	FinancialYearReaderSvc
	FinancialYearWriterSvc
}
