package repositories

import (
	"context"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
)

// ReportingRepository defines aggregate queries over the ledger
type ReportingRepository interface {
	// AccountTotals returns the debit/credit turnover of every account touched
	// by entries inside the period.
	AccountTotals(ctx context.Context, period domain.PeriodFilter) ([]domain.AccountTotal, error)
	// PartyTotals sums the ledger amounts posted for partyID inside the period,
	// per reference type.
	PartyTotals(ctx context.Context, partyID string, period domain.PeriodFilter) (map[domain.RefType]int64, error)
}
