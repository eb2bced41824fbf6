package dto

import (
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/SscSPs/bookkeeping_core/internal/utils"
	"github.com/shopspring/decimal"
)

// CreatePersonRequest defines the data needed to register a person.
type CreatePersonRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Kind        *string `json:"kind" binding:"omitempty,max=32"`
	Mobile      *string `json:"mobile" binding:"omitempty,max=32"`
	Description *string `json:"description"`
	Code        *string `json:"code" binding:"omitempty,max=64"`
}

// ListPersonsParams defines the query parameters for searching persons.
type ListPersonsParams struct {
	Query string `form:"q" binding:"max=255"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=500"`
}

// PersonResponse defines the data returned for a person.
type PersonResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Kind        *string   `json:"kind,omitempty"`
	Mobile      *string   `json:"mobile,omitempty"`
	Description *string   `json:"description,omitempty"`
	Code        *string   `json:"code,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToPersonResponse converts a domain.Person to PersonResponse DTO.
func ToPersonResponse(p *domain.Person) PersonResponse {
	return PersonResponse{
		ID:          p.ID,
		Name:        p.Name,
		Kind:        p.Kind,
		Mobile:      p.Mobile,
		Description: p.Description,
		Code:        p.Code,
		CreatedAt:   p.CreatedAt,
	}
}

// ToListPersonsResponse converts a slice of domain.Person to DTOs.
func ToListPersonsResponse(persons []domain.Person) []PersonResponse {
	out := make([]PersonResponse, len(persons))
	for i := range persons {
		out[i] = ToPersonResponse(&persons[i])
	}
	return out
}

// PartyTurnoverResponse represents the turnover report of one party.
type PartyTurnoverResponse struct {
	PartyID       string          `json:"partyID"`
	PartyName     string          `json:"partyName"`
	FromDate      *string         `json:"fromDate,omitempty"`
	ToDate        *string         `json:"toDate,omitempty"`
	InvoicesTotal decimal.Decimal `json:"invoicesTotal"`
	PaymentsTotal decimal.Decimal `json:"paymentsTotal"`
}

// ToPartyTurnoverResponse converts a domain.PartyTurnover to its DTO.
func ToPartyTurnoverResponse(t *domain.PartyTurnover, from, to *time.Time, decimals int32) PartyTurnoverResponse {
	resp := PartyTurnoverResponse{
		PartyID:       t.PartyID,
		PartyName:     t.PartyName,
		InvoicesTotal: utils.MinorToMajor(t.InvoicesTotal, decimals),
		PaymentsTotal: utils.MinorToMajor(t.PaymentsTotal, decimals),
	}
	if from != nil {
		s := from.Format("2006-01-02")
		resp.FromDate = &s
	}
	if to != nil {
		s := to.Format("2006-01-02")
		resp.ToDate = &s
	}
	return resp
}
