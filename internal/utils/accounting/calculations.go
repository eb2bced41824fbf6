package accounting

import "github.com/SscSPs/bookkeeping_core/internal/core/domain"

// NaturalAmount nets debit and credit totals on the normal side of an account type.
// DEBIT-normal: ASSET, EXPENSE -> debit - credit
// CREDIT-normal: LIABILITY, EQUITY, INCOME -> credit - debit
func NaturalAmount(accountType domain.AccountType, debit, credit int64) int64 {
	switch accountType {
	case domain.Asset, domain.Expense:
		return debit - credit
	default:
		return credit - debit
	}
}

// IsDebitNormal reports whether balances of accountType grow with debits.
func IsDebitNormal(accountType domain.AccountType) bool {
	return accountType == domain.Asset || accountType == domain.Expense
}
