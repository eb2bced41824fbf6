package dto

import (
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/SscSPs/bookkeeping_core/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateFinancialYearRequest defines an explicitly bounded financial year.
type CreateFinancialYearRequest struct {
	Name      string     `json:"name" binding:"required,max=100"`
	StartDate time.Time  `json:"startDate" binding:"required"`
	EndDate   *time.Time `json:"endDate"`
}

// CurrentFinancialYearRequest selects the calendar whose current year is wanted.
type CurrentFinancialYearRequest struct {
	Calendar string `json:"calendar" binding:"omitempty,oneof=gregorian jalali"`
}

// FinancialYearResponse defines the data returned for a financial year.
type FinancialYearResponse struct {
	ID              int64                      `json:"id"`
	Name            string                     `json:"name"`
	StartDate       time.Time                  `json:"startDate"`
	EndDate         *time.Time                 `json:"endDate,omitempty"`
	IsClosed        bool                       `json:"isClosed"`
	ClosedAt        *time.Time                 `json:"closedAt,omitempty"`
	OpeningBalances map[string]decimal.Decimal `json:"openingBalances,omitempty"`
	CreatedAt       time.Time                  `json:"createdAt"`
}

// ToFinancialYearResponse converts a domain.FinancialYear to its response DTO.
func ToFinancialYearResponse(fy *domain.FinancialYear, decimals int32) FinancialYearResponse {
	var balances map[string]decimal.Decimal
	if len(fy.OpeningBalances) > 0 {
		balances = make(map[string]decimal.Decimal, len(fy.OpeningBalances))
		for code, amount := range fy.OpeningBalances {
			balances[string(code)] = utils.MinorToMajor(amount, decimals)
		}
	}
	return FinancialYearResponse{
		ID:              fy.ID,
		Name:            fy.Name,
		StartDate:       fy.StartDate,
		EndDate:         fy.EndDate,
		IsClosed:        fy.IsClosed,
		ClosedAt:        fy.ClosedAt,
		OpeningBalances: balances,
		CreatedAt:       fy.CreatedAt,
	}
}

// ToFinancialYearResponses converts a slice of financial years.
func ToFinancialYearResponses(years []domain.FinancialYear, decimals int32) []FinancialYearResponse {
	out := make([]FinancialYearResponse, len(years))
	for i := range years {
		out[i] = ToFinancialYearResponse(&years[i], decimals)
	}
	return out
}
