package accounting_test

import (
	"testing"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/SscSPs/bookkeeping_core/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
)

func TestNaturalAmount(t *testing.T) {
	cases := []struct {
		accountType domain.AccountType
		debit       int64
		credit      int64
		want        int64
	}{
		{domain.Asset, 2500, 500, 2000},
		{domain.Expense, 100, 0, 100},
		{domain.Liability, 0, 700, 700},
		{domain.Equity, 300, 100, -200},
		{domain.Income, 0, 2500, 2500},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, accounting.NaturalAmount(tc.accountType, tc.debit, tc.credit), tc.accountType)
	}
}

func TestIsDebitNormal(t *testing.T) {
	assert.True(t, accounting.IsDebitNormal(domain.Asset))
	assert.True(t, accounting.IsDebitNormal(domain.Expense))
	assert.False(t, accounting.IsDebitNormal(domain.Income))
}
