package services

import (
	"context"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
)

// AuditChainSvc maintains per-entity hash chains
type AuditChainSvc interface {
	// Append adds a link for (entityType, entityID). It joins the caller's transaction when there is one.
	Append(ctx context.Context, entityType, entityID, action string, snapshot map[string]any) (*domain.AuditEntry, error)

	// VerifyChain walks the chain and reports the first broken link. It never repairs.
	VerifyChain(ctx context.Context, entityType, entityID string) (*domain.ChainVerification, error)

	// ExportProof returns the hashes and chain position of one entry.
	ExportProof(ctx context.Context, entityType, entityID string, entryID int64) (*domain.AuditProof, error)
}
