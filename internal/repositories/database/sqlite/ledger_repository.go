package sqlite

import (
	"context"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_core/internal/models"
	"github.com/SscSPs/bookkeeping_core/internal/utils/mapping"
	"github.com/SscSPs/bookkeeping_core/internal/utils/pagination"
	"gorm.io/gorm/clause"
)

type GormLedgerRepository struct {
	BaseRepository
}

var _ portsrepo.LedgerRepositoryFacade = (*GormLedgerRepository)(nil)

func (r *GormLedgerRepository) AppendEntry(ctx context.Context, entry *domain.LedgerEntry) error {
	m := mapping.ToModelLedgerEntry(*entry)
	m.EntryDate = utc(m.EntryDate)
	m.CreatedAt = utc(m.CreatedAt)

	// The chart rows are seeded; never upsert them through the belongs-to links.
	if err := r.db(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return mapError(err, "insert ledger entry")
	}
	entry.ID = m.ID
	return nil
}

func (r *GormLedgerRepository) ListEntries(ctx context.Context, filter domain.LedgerEntryFilter, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	if limit <= 0 {
		limit = 50
	}
	afterID, err := pagination.DecodeCursor(nextToken)
	if err != nil {
		return nil, nil, err
	}

	q := r.db(ctx).Model(&models.LedgerEntry{}).Where("id > ?", afterID)
	if filter.RefType != nil {
		q = q.Where("ref_type = ?", string(*filter.RefType))
	}
	if filter.RefID != nil {
		q = q.Where("ref_id = ?", *filter.RefID)
	}
	if filter.TrackingCode != nil {
		q = q.Where("tracking_code = ?", *filter.TrackingCode)
	}
	if filter.Account != nil {
		q = q.Where("(debit_account = ? OR credit_account = ?)", string(*filter.Account), string(*filter.Account))
	}
	if filter.PartyID != nil {
		q = q.Where("party_id = ?", *filter.PartyID)
	}

	var ms []models.LedgerEntry
	if err := q.Order("id").Limit(limit).Find(&ms).Error; err != nil {
		return nil, nil, mapError(err, "query ledger entries")
	}

	ids := make([]int64, len(ms))
	for i, m := range ms {
		ids[i] = m.ID
	}
	return mapping.ToDomainLedgerEntrySlice(ms), pagination.NextToken(ids, limit), nil
}
