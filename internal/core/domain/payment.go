package domain

import (
	"strings"
	"time"
)

// PaymentDirection tells whether money comes in (receipt) or goes out.
type PaymentDirection string

const (
	PaymentIn  PaymentDirection = "in"
	PaymentOut PaymentDirection = "out"
)

// NumberPrefix is the letter used in the payment number.
func (d PaymentDirection) NumberPrefix() string {
	if d == PaymentOut {
		return "P"
	}
	return "R"
}

// Valid reports whether d is a known direction.
func (d PaymentDirection) Valid() bool {
	return d == PaymentIn || d == PaymentOut
}

// PaymentMethod is the channel the money moved through.
type PaymentMethod string

const (
	MethodCash PaymentMethod = "cash"
	MethodBank PaymentMethod = "bank"
	MethodPOS  PaymentMethod = "pos"
)

// ParsePaymentMethod normalises user input. Empty input means cash and any
// value mentioning "bank" (e.g. "bank_transfer") means bank.
func ParsePaymentMethod(raw string) (PaymentMethod, bool) {
	m := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case m == "" || m == string(MethodCash):
		return MethodCash, true
	case strings.Contains(m, string(MethodBank)):
		return MethodBank, true
	case m == string(MethodPOS) || m == "card":
		return MethodPOS, true
	}
	return "", false
}

// AssetAccount is the account the money lands in or leaves from.
func (m PaymentMethod) AssetAccount() AccountCode {
	switch m {
	case MethodBank:
		return AccountBank
	case MethodPOS:
		return AccountPOS
	default:
		return AccountCash
	}
}

// PaymentStatus is the lifecycle state of a payment.
type PaymentStatus string

const (
	PaymentDraft  PaymentStatus = "draft"
	PaymentPosted PaymentStatus = "posted"
)

// Payment is a receipt or disbursement, optionally linked to an invoice.
type Payment struct {
	ID            int64            `json:"id"`
	PaymentNumber string           `json:"paymentNumber"`
	Direction     PaymentDirection `json:"direction"`
	Method        PaymentMethod    `json:"method"`
	Amount        int64            `json:"amount"`
	PartyID       *string          `json:"partyID,omitempty"`
	PartyName     *string          `json:"partyName,omitempty"`
	Reference     *string          `json:"reference,omitempty"`
	InvoiceID     *int64           `json:"invoiceID,omitempty"`
	DueDate       *time.Time       `json:"dueDate,omitempty"`
	Note          *string          `json:"note,omitempty"`
	Status        PaymentStatus    `json:"status"`
	TrackingCode  string           `json:"trackingCode"`
	Calendar      Calendar         `json:"calendar"`
	PostedAt      *time.Time       `json:"postedAt,omitempty"`
	DocumentTimes
}

// LedgerAccounts returns the debit and credit side of the posting this payment causes.
func (p Payment) LedgerAccounts() (debit AccountCode, credit AccountCode) {
	asset := p.Method.AssetAccount()
	if p.Direction == PaymentOut {
		return AccountExpenses, asset
	}
	return asset, AccountReceivable
}
