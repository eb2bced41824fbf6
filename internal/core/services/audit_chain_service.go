package services

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/middleware"
)

const (
	msgChainEmpty        = "No entries to verify"
	msgChainSingle       = "Single entry chain is valid"
	msgGenesisLinked     = "First entry should not have previous_hash"
	msgChainVerified     = "Chain integrity verified"
	msgPrevHashMismatch  = "previous_hash mismatch"
	msgDataHashMismatch  = "data_hash mismatch"
	msgChainHashMismatch = "chain_hash mismatch"
)

type auditChainService struct {
	BaseService
	tx        portsrepo.Transactor
	auditRepo portsrepo.AuditRepositoryFacade
}

// NewAuditChainService creates the per-entity hash chain service.
func NewAuditChainService(tx portsrepo.Transactor, auditRepo portsrepo.AuditRepositoryFacade, opts ...ServiceOption) portssvc.AuditChainSvc {
	svc := &auditChainService{tx: tx, auditRepo: auditRepo}
	svc.apply(opts)
	return svc
}

var _ portssvc.AuditChainSvc = (*auditChainService)(nil)

// canonicalJSON renders v with sorted object keys and without HTML escaping.
func canonicalJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func hashHex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// linkHash binds an entry's data hash to the chain hash of its predecessor.
func linkHash(prevChainHash, dataHash string) string {
	return hashHex(prevChainHash + dataHash)
}

func (s *auditChainService) Append(ctx context.Context, entityType, entityID, action string, snapshot map[string]any) (*domain.AuditEntry, error) {
	if strings.TrimSpace(entityType) == "" || strings.TrimSpace(entityID) == "" || strings.TrimSpace(action) == "" {
		return nil, fmt.Errorf("%w: entity type, entity id and action are required", apperrors.ErrValidation)
	}
	if snapshot == nil {
		snapshot = map[string]any{}
	}
	canonical, err := canonicalJSON(snapshot)
	if err != nil {
		return nil, fmt.Errorf("%w: snapshot is not serialisable: %v", apperrors.ErrValidation, err)
	}

	var entry *domain.AuditEntry
	err = s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		if err := s.auditRepo.LockChain(txCtx, entityType, entityID); err != nil {
			return fmt.Errorf("failed to lock audit chain: %w", err)
		}
		head, err := s.auditRepo.FindLatestAuditEntry(txCtx, entityType, entityID)
		if err != nil {
			return fmt.Errorf("failed to load audit chain head: %w", err)
		}

		dataHash := hashHex(canonical)
		entry = &domain.AuditEntry{
			EntityType: entityType,
			EntityID:   entityID,
			Action:     action,
			Sequence:   1,
			DataHash:   dataHash,
			ChainHash:  linkHash("", dataHash),
			Snapshot:   canonical,
			Timestamp:  s.Now(),
		}
		if head != nil {
			prev := head.DataHash
			entry.Sequence = head.Sequence + 1
			entry.PreviousHash = &prev
			entry.ChainHash = linkHash(head.ChainHash, dataHash)
		}
		if userID, ok := middleware.GetUserIDFromCtx(ctx); ok {
			entry.UserID = &userID
		}
		return s.auditRepo.AppendAuditEntry(txCtx, entry)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to append audit entry",
			slog.String("entity_type", entityType),
			slog.String("entity_id", entityID),
			slog.String("action", action))
		return nil, err
	}

	s.LogDebug(ctx, "Audit entry appended",
		slog.String("entity_type", entityType),
		slog.String("entity_id", entityID),
		slog.Int64("sequence", entry.Sequence))
	return entry, nil
}

func (s *auditChainService) VerifyChain(ctx context.Context, entityType, entityID string) (*domain.ChainVerification, error) {
	entries, err := s.auditRepo.ListAuditEntries(ctx, entityType, entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to load audit chain: %w", err)
	}
	result := verifyEntries(entries)
	if !result.Valid {
		s.GetLogger(ctx).Warn("Audit chain verification failed",
			slog.String("entity_type", entityType),
			slog.String("entity_id", entityID),
			slog.String("message", result.Message))
	}
	return &result, nil
}

// verifyEntries walks a chain in sequence order. A chain of two or more
// entries has the genesis hashes checked first; every later entry is checked
// for linkage, then the stored data hash against the snapshot, then the chain
// hash. It stops at the first failure.
func verifyEntries(entries []domain.AuditEntry) domain.ChainVerification {
	if len(entries) == 0 {
		return domain.ChainVerification{Valid: true, Message: msgChainEmpty, BrokenAt: -1}
	}

	first := entries[0]
	if first.PreviousHash != nil && *first.PreviousHash != "" {
		return domain.ChainVerification{Message: msgGenesisLinked, BrokenAt: 0, EntriesChecked: 1}
	}
	if len(entries) == 1 {
		return domain.ChainVerification{Valid: true, Message: msgChainSingle, BrokenAt: -1, EntriesChecked: 1}
	}

	broken := func(i int, reason string) domain.ChainVerification {
		return domain.ChainVerification{
			Message:        fmt.Sprintf("Chain broken at entry %d: %s", i, reason),
			BrokenAt:       i,
			EntriesChecked: i + 1,
		}
	}

	if hashHex(first.Snapshot) != first.DataHash {
		return broken(0, msgDataHashMismatch)
	}
	if linkHash("", first.DataHash) != first.ChainHash {
		return broken(0, msgChainHashMismatch)
	}

	for i := 1; i < len(entries); i++ {
		prev, cur := entries[i-1], entries[i]
		if cur.PreviousHash == nil || *cur.PreviousHash != prev.DataHash {
			return broken(i, msgPrevHashMismatch)
		}
		if hashHex(cur.Snapshot) != cur.DataHash {
			return broken(i, msgDataHashMismatch)
		}
		if linkHash(prev.ChainHash, cur.DataHash) != cur.ChainHash {
			return broken(i, msgChainHashMismatch)
		}
	}
	return domain.ChainVerification{Valid: true, Message: msgChainVerified, BrokenAt: -1, EntriesChecked: len(entries)}
}

func (s *auditChainService) ExportProof(ctx context.Context, entityType, entityID string, entryID int64) (*domain.AuditProof, error) {
	entries, err := s.auditRepo.ListAuditEntries(ctx, entityType, entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to load audit chain: %w", err)
	}

	position := -1
	for i, e := range entries {
		if e.ID == entryID {
			position = i
			break
		}
	}
	if position < 0 {
		return nil, fmt.Errorf("%w: audit entry %d is not part of chain %s/%s", apperrors.ErrNotFound, entryID, entityType, entityID)
	}

	verification := verifyEntries(entries)
	entry := entries[position]
	return &domain.AuditProof{
		EntityType:          entry.EntityType,
		EntityID:            entry.EntityID,
		EntryID:             entry.ID,
		DataHash:            entry.DataHash,
		PreviousHash:        entry.PreviousHash,
		ChainHash:           entry.ChainHash,
		Timestamp:           entry.Timestamp,
		Action:              entry.Action,
		ChainIsValid:        verification.Valid,
		ChainMessage:        verification.Message,
		TotalEntriesInChain: len(entries),
		EntryPosition:       position + 1,
	}, nil
}
