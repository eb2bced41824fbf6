package domain

import (
	"strings"
	"time"
)

// Person is a customer, supplier or any other counterparty documents can name.
type Person struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Kind        *string   `json:"kind,omitempty"`
	Mobile      *string   `json:"mobile,omitempty"`
	Description *string   `json:"description,omitempty"`
	Code        *string   `json:"code,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NormalizePersonName folds a name for case and whitespace insensitive search.
func NormalizePersonName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// PartyTurnover sums the finalized business one party did in a period.
type PartyTurnover struct {
	PartyID       string `json:"partyID"`
	PartyName     string `json:"partyName"`
	InvoicesTotal int64  `json:"invoicesTotal"`
	PaymentsTotal int64  `json:"paymentsTotal"`
}
