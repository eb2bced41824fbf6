package sqlite

import (
	"context"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_core/internal/models"
	"github.com/SscSPs/bookkeeping_core/internal/utils/mapping"
)

type GormAuditRepository struct {
	BaseRepository
}

var _ portsrepo.AuditRepositoryFacade = (*GormAuditRepository)(nil)

func (r *GormAuditRepository) ListAuditEntries(ctx context.Context, entityType, entityID string) ([]domain.AuditEntry, error) {
	var ms []models.AuditEntry
	err := r.db(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("sequence").
		Find(&ms).Error
	if err != nil {
		return nil, mapError(err, "query audit entries")
	}
	return mapping.ToDomainAuditEntrySlice(ms), nil
}

func (r *GormAuditRepository) FindLatestAuditEntry(ctx context.Context, entityType, entityID string) (*domain.AuditEntry, error) {
	var ms []models.AuditEntry
	err := r.db(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("sequence DESC").
		Limit(1).
		Find(&ms).Error
	if err != nil {
		return nil, mapError(err, "latest audit entry")
	}
	if len(ms) == 0 {
		return nil, nil
	}
	entry := mapping.ToDomainAuditEntry(ms[0])
	return &entry, nil
}

// LockChain is a no-op here: the single connection serialises writers and the
// unique sequence index rejects a second claim on the same slot.
func (r *GormAuditRepository) LockChain(ctx context.Context, entityType, entityID string) error {
	return nil
}

func (r *GormAuditRepository) AppendAuditEntry(ctx context.Context, entry *domain.AuditEntry) error {
	m := mapping.ToModelAuditEntry(*entry)
	m.Timestamp = utc(m.Timestamp)
	if err := r.db(ctx).Create(&m).Error; err != nil {
		return mapError(err, "append audit entry")
	}
	entry.ID = m.ID
	return nil
}
