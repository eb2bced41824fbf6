package repositories

import (
	"context"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
)

// AuditReader defines read operations over audit chains
type AuditReader interface {
	// ListAuditEntries returns the whole chain of an entity in sequence order.
	ListAuditEntries(ctx context.Context, entityType, entityID string) ([]domain.AuditEntry, error)
	// FindLatestAuditEntry returns the head of the chain or nil for an empty chain.
	FindLatestAuditEntry(ctx context.Context, entityType, entityID string) (*domain.AuditEntry, error)
}

// AuditWriter defines write operations over audit chains
type AuditWriter interface {
	// LockChain serialises appends to one entity chain until the transaction ends.
	LockChain(ctx context.Context, entityType, entityID string) error
	// AppendAuditEntry inserts a new chain link. A second link claiming the same
	// sequence yields apperrors.ErrDuplicate.
	AppendAuditEntry(ctx context.Context, entry *domain.AuditEntry) error
}

// AuditRepositoryFacade combines all audit-chain repository interfaces
type AuditRepositoryFacade interface {
	AuditReader
	AuditWriter
}
