package services

import (
	"context"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
)

// LedgerPosterSvc records postings
type LedgerPosterSvc interface {
	// Post validates and appends one entry. It joins the caller's transaction when there is one.
	Post(ctx context.Context, posting domain.LedgerPosting) (*domain.LedgerEntry, error)
}

// LedgerReaderSvc computes balances and lists entries
type LedgerReaderSvc interface {
	// Balance is debits minus credits of account over entries dated at or before asOf (nil: all).
	Balance(ctx context.Context, account domain.AccountCode, asOf *time.Time) (int64, error)

	// Balances returns the non-zero balance of every account over entries dated at or before asOf.
	Balances(ctx context.Context, asOf *time.Time) (map[domain.AccountCode]int64, error)

	ListEntries(ctx context.Context, params dto.ListLedgerEntriesParams) ([]domain.LedgerEntry, *string, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerPosterSvc
	LedgerReaderSvc
}
