package domain

import "time"

// InvoiceType distinguishes sales from purchases.
type InvoiceType string

const (
	InvoiceSale     InvoiceType = "sale"
	InvoicePurchase InvoiceType = "purchase"
)

// NumberPrefix is the letter used in the invoice number.
func (t InvoiceType) NumberPrefix() string {
	if t == InvoicePurchase {
		return "P"
	}
	return "S"
}

// Valid reports whether t is a known invoice type.
func (t InvoiceType) Valid() bool {
	return t == InvoiceSale || t == InvoicePurchase
}

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft InvoiceStatus = "draft"
	InvoiceFinal InvoiceStatus = "final"
)

// Invoice is a sale or purchase document. Amounts are minor currency units.
type Invoice struct {
	ID            int64         `json:"id"`
	InvoiceNumber string        `json:"invoiceNumber"`
	InvoiceType   InvoiceType   `json:"invoiceType"`
	PartyID       *string       `json:"partyID,omitempty"`
	PartyName     *string       `json:"partyName,omitempty"`
	Status        InvoiceStatus `json:"status"`
	Items         []InvoiceItem `json:"items"`
	Subtotal      int64         `json:"subtotal"`
	Tax           int64         `json:"tax"`
	Total         int64         `json:"total"`
	TrackingCode  string        `json:"trackingCode"`
	Note          *string       `json:"note,omitempty"`
	Calendar      Calendar      `json:"calendar"`
	FinalizedAt   *time.Time    `json:"finalizedAt,omitempty"`
	DocumentTimes
}

// InvoiceItem is one line of an invoice.
type InvoiceItem struct {
	ID          int64   `json:"id"`
	InvoiceID   int64   `json:"invoiceID"`
	ProductID   *string `json:"productID,omitempty"`
	Description string  `json:"description"`
	Quantity    int64   `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   int64   `json:"unitPrice"`
	Total       int64   `json:"total"`
}

// InventoryDelta is the signed stock movement the item causes when its invoice
// is finalized: sales take stock out, purchases bring it in.
func (it InvoiceItem) InventoryDelta(t InvoiceType) int64 {
	if t == InvoicePurchase {
		return it.Quantity
	}
	return -it.Quantity
}

// LedgerAccounts returns the debit and credit side of the posting a final invoice causes.
func (t InvoiceType) LedgerAccounts() (debit AccountCode, credit AccountCode) {
	if t == InvoicePurchase {
		return AccountInventory, AccountPayable
	}
	return AccountReceivable, AccountSales
}
