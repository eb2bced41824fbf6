package mapping

import (
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/SscSPs/bookkeeping_core/internal/models"
)

// ToModelOpeningBalances converts balances keyed by account code to their stored form.
func ToModelOpeningBalances(d map[domain.AccountCode]int64) map[string]int64 {
	if d == nil {
		return nil
	}
	m := make(map[string]int64, len(d))
	for k, v := range d {
		m[string(k)] = v
	}
	return m
}

func toDomainOpeningBalances(m map[string]int64) map[domain.AccountCode]int64 {
	if m == nil {
		return nil
	}
	d := make(map[domain.AccountCode]int64, len(m))
	for k, v := range m {
		d[domain.AccountCode(k)] = v
	}
	return d
}

// ToModelFinancialYear converts a domain FinancialYear to a model FinancialYear
func ToModelFinancialYear(d domain.FinancialYear) models.FinancialYear {
	return models.FinancialYear{
		ID:              d.ID,
		Name:            d.Name,
		StartDate:       d.StartDate,
		EndDate:         d.EndDate,
		IsClosed:        d.IsClosed,
		ClosedAt:        d.ClosedAt,
		OpeningBalances: ToModelOpeningBalances(d.OpeningBalances),
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainFinancialYear converts a model FinancialYear to a domain FinancialYear
func ToDomainFinancialYear(m models.FinancialYear) domain.FinancialYear {
	return domain.FinancialYear{
		ID:              m.ID,
		Name:            m.Name,
		StartDate:       m.StartDate,
		EndDate:         m.EndDate,
		IsClosed:        m.IsClosed,
		ClosedAt:        m.ClosedAt,
		OpeningBalances: toDomainOpeningBalances(m.OpeningBalances),
		CreatedAt:       m.CreatedAt,
	}
}

// ToDomainFinancialYearSlice converts a slice of model FinancialYears
func ToDomainFinancialYearSlice(ms []models.FinancialYear) []domain.FinancialYear {
	ds := make([]domain.FinancialYear, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFinancialYear(m)
	}
	return ds
}

// ToModelAuditEntry converts a domain AuditEntry to a model AuditEntry
func ToModelAuditEntry(d domain.AuditEntry) models.AuditEntry {
	return models.AuditEntry{
		ID:           d.ID,
		EntityType:   d.EntityType,
		EntityID:     d.EntityID,
		Sequence:     d.Sequence,
		Action:       d.Action,
		DataHash:     d.DataHash,
		PreviousHash: d.PreviousHash,
		ChainHash:    d.ChainHash,
		Snapshot:     d.Snapshot,
		UserID:       d.UserID,
		Timestamp:    d.Timestamp,
	}
}

// ToDomainAuditEntry converts a model AuditEntry to a domain AuditEntry
func ToDomainAuditEntry(m models.AuditEntry) domain.AuditEntry {
	return domain.AuditEntry{
		ID:           m.ID,
		EntityType:   m.EntityType,
		EntityID:     m.EntityID,
		Action:       m.Action,
		Sequence:     m.Sequence,
		DataHash:     m.DataHash,
		PreviousHash: m.PreviousHash,
		ChainHash:    m.ChainHash,
		Snapshot:     m.Snapshot,
		UserID:       m.UserID,
		Timestamp:    m.Timestamp,
	}
}

// ToDomainAuditEntrySlice converts a slice of model AuditEntries
func ToDomainAuditEntrySlice(ms []models.AuditEntry) []domain.AuditEntry {
	ds := make([]domain.AuditEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAuditEntry(m)
	}
	return ds
}
