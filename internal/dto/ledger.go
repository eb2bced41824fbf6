package dto

import (
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/SscSPs/bookkeeping_core/internal/utils"
	"github.com/shopspring/decimal"
)

// ListLedgerEntriesParams defines the query parameters for listing ledger entries.
type ListLedgerEntriesParams struct {
	RefType      string  `form:"refType" binding:"omitempty,oneof=invoice payment closing manual"`
	RefID        *int64  `form:"refID" binding:"omitempty,gt=0"`
	TrackingCode string  `form:"trackingCode"`
	Account      string  `form:"account"`
	PartyID      string  `form:"partyID" binding:"max=64"`
	Limit        int     `form:"limit" binding:"omitempty,min=1,max=500"`
	NextToken    *string `form:"nextToken"`
}

// LedgerEntryResponse defines the data returned for a ledger entry.
type LedgerEntryResponse struct {
	ID            int64           `json:"id"`
	RefType       string          `json:"refType"`
	RefID         int64           `json:"refID"`
	EntryDate     time.Time       `json:"entryDate"`
	DebitAccount  string          `json:"debitAccount"`
	CreditAccount string          `json:"creditAccount"`
	Amount        int64           `json:"amount"`
	AmountValue   decimal.Decimal `json:"amountValue"`
	PartyID       *string         `json:"partyID,omitempty"`
	PartyName     *string         `json:"partyName,omitempty"`
	Description   *string         `json:"description,omitempty"`
	TrackingCode  *string         `json:"trackingCode,omitempty"`
}

// ListLedgerEntriesResponse is one page of ledger entries.
type ListLedgerEntriesResponse struct {
	Entries   []LedgerEntryResponse `json:"entries"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// AccountBalanceResponse reports the signed balance of one account.
type AccountBalanceResponse struct {
	Account      string          `json:"account"`
	AsOf         *time.Time      `json:"asOf,omitempty"`
	Balance      int64           `json:"balance"`
	BalanceValue decimal.Decimal `json:"balanceValue"`
}

// ToLedgerEntryResponses converts ledger entries to their response DTOs.
func ToLedgerEntryResponses(entries []domain.LedgerEntry, decimals int32) []LedgerEntryResponse {
	out := make([]LedgerEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = LedgerEntryResponse{
			ID:            e.ID,
			RefType:       string(e.RefType),
			RefID:         e.RefID,
			EntryDate:     e.EntryDate,
			DebitAccount:  string(e.DebitAccount),
			CreditAccount: string(e.CreditAccount),
			Amount:        e.Amount,
			AmountValue:   utils.MinorToMajor(e.Amount, decimals),
			PartyID:       e.PartyID,
			PartyName:     e.PartyName,
			Description:   e.Description,
			TrackingCode:  e.TrackingCode,
		}
	}
	return out
}
