package domain

import "time"

// RefType names the kind of business event a ledger entry points back to.
type RefType string

const (
	RefInvoice RefType = "invoice"
	RefPayment RefType = "payment"
	RefClosing RefType = "closing"
	RefManual  RefType = "manual"
)

// Valid reports whether r is a known reference type.
func (r RefType) Valid() bool {
	switch r {
	case RefInvoice, RefPayment, RefClosing, RefManual:
		return true
	}
	return false
}

// LedgerEntry is one immutable double-entry posting.
type LedgerEntry struct {
	ID            int64       `json:"id"`
	RefType       RefType     `json:"refType"`
	RefID         int64       `json:"refID"`
	EntryDate     time.Time   `json:"entryDate"`
	DebitAccount  AccountCode `json:"debitAccount"`
	CreditAccount AccountCode `json:"creditAccount"`
	Amount        int64       `json:"amount"`
	PartyID       *string     `json:"partyID,omitempty"`
	PartyName     *string     `json:"partyName,omitempty"`
	Description   *string     `json:"description,omitempty"`
	TrackingCode  *string     `json:"trackingCode,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// LedgerPosting is the input of a single ledger post. A zero EntryDate means now.
type LedgerPosting struct {
	DebitAccount  AccountCode
	CreditAccount AccountCode
	Amount        int64
	RefType       RefType
	RefID         int64
	PartyID       *string
	PartyName     *string
	Description   *string
	TrackingCode  *string
	EntryDate     time.Time
}

// LedgerEntryFilter narrows ledger listings. Empty fields do not filter.
type LedgerEntryFilter struct {
	RefType      *RefType
	RefID        *int64
	TrackingCode *string
	Account      *AccountCode
	PartyID      *string
}

// PeriodFilter bounds aggregate queries over entry_date, both ends inclusive.
type PeriodFilter struct {
	From           *time.Time
	To             *time.Time
	ExcludeClosing bool
}

// AccountTotal is the debit and credit turnover of one account.
type AccountTotal struct {
	Account AccountCode
	Debit   int64
	Credit  int64
}

// Balance is debits minus credits.
func (t AccountTotal) Balance() int64 {
	return t.Debit - t.Credit
}
