package repositories

import (
	"context"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
)

// LedgerReader defines read operations for ledger entries
type LedgerReader interface {
	// ListEntries returns entries in insertion order after the cursor, plus the
	// cursor of the next page when there is one.
	ListEntries(ctx context.Context, filter domain.LedgerEntryFilter, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)
}

// LedgerWriter defines write operations for ledger entries. Entries are append-only.
type LedgerWriter interface {
	AppendEntry(ctx context.Context, entry *domain.LedgerEntry) error
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
