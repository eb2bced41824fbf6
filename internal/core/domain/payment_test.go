package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestParsePaymentMethod(t *testing.T) {
	cases := map[string]domain.PaymentMethod{
		"":              domain.MethodCash,
		"Cash":          domain.MethodCash,
		"bank":          domain.MethodBank,
		"bank_transfer": domain.MethodBank,
		"POS":           domain.MethodPOS,
		"card":          domain.MethodPOS,
	}
	for raw, want := range cases {
		got, ok := domain.ParsePaymentMethod(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, want, got, raw)
	}

	_, ok := domain.ParsePaymentMethod("cheque")
	assert.False(t, ok)
}

func TestPaymentLedgerAccounts(t *testing.T) {
	in := domain.Payment{Direction: domain.PaymentIn, Method: domain.MethodBank}
	debit, credit := in.LedgerAccounts()
	assert.Equal(t, domain.AccountBank, debit)
	assert.Equal(t, domain.AccountReceivable, credit)

	out := domain.Payment{Direction: domain.PaymentOut, Method: domain.MethodCash}
	debit, credit = out.LedgerAccounts()
	assert.Equal(t, domain.AccountExpenses, debit)
	assert.Equal(t, domain.AccountCash, credit)
}

func TestInventoryDelta(t *testing.T) {
	item := domain.InvoiceItem{Quantity: 3}
	assert.Equal(t, int64(-3), item.InventoryDelta(domain.InvoiceSale))
	assert.Equal(t, int64(3), item.InventoryDelta(domain.InvoicePurchase))
}

func TestFinancialYearCovers(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)
	fy := domain.FinancialYear{StartDate: start, EndDate: &end}

	assert.True(t, fy.Covers(start))
	assert.True(t, fy.Covers(end))
	assert.False(t, fy.Covers(end.Add(time.Second)))
	assert.False(t, fy.Covers(start.Add(-time.Second)))

	open := domain.FinancialYear{StartDate: start}
	assert.True(t, open.Covers(start.AddDate(5, 0, 0)))
}
