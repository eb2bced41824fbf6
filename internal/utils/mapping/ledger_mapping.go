package mapping

import (
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/SscSPs/bookkeeping_core/internal/models"
)

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		ID:            d.ID,
		RefType:       string(d.RefType),
		RefID:         d.RefID,
		EntryDate:     d.EntryDate,
		DebitAccount:  string(d.DebitAccount),
		CreditAccount: string(d.CreditAccount),
		Amount:        d.Amount,
		PartyID:       d.PartyID,
		PartyName:     d.PartyName,
		Description:   d.Description,
		TrackingCode:  d.TrackingCode,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		ID:            m.ID,
		RefType:       domain.RefType(m.RefType),
		RefID:         m.RefID,
		EntryDate:     m.EntryDate,
		DebitAccount:  domain.AccountCode(m.DebitAccount),
		CreditAccount: domain.AccountCode(m.CreditAccount),
		Amount:        m.Amount,
		PartyID:       m.PartyID,
		PartyName:     m.PartyName,
		Description:   m.Description,
		TrackingCode:  m.TrackingCode,
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainLedgerEntrySlice converts a slice of model LedgerEntries to domain LedgerEntries
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}

// ToDomainAccountTotals converts aggregate rows to domain AccountTotals
func ToDomainAccountTotals(ms []models.AccountTotal) []domain.AccountTotal {
	ds := make([]domain.AccountTotal, len(ms))
	for i, m := range ms {
		ds[i] = domain.AccountTotal{
			Account: domain.AccountCode(m.Account),
			Debit:   m.Debit,
			Credit:  m.Credit,
		}
	}
	return ds
}

// ChartAccountModels returns the registered chart of accounts as rows for seeding.
func ChartAccountModels() []models.ChartAccount {
	chart := domain.ChartOfAccounts()
	out := make([]models.ChartAccount, len(chart))
	for i, a := range chart {
		out[i] = models.ChartAccount{
			Code:        string(a.Code),
			Name:        a.Name,
			AccountType: string(a.AccountType),
		}
	}
	return out
}
