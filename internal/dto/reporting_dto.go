package dto

import (
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/SscSPs/bookkeeping_core/internal/utils"
	"github.com/shopspring/decimal"
)

// TrialBalanceRowResponse represents a row in the trial balance report response
type TrialBalanceRowResponse struct {
	Account     string          `json:"account"`
	AccountName string          `json:"accountName"`
	AccountType string          `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	AsOf   string                    `json:"asOf"`
	Rows   []TrialBalanceRowResponse `json:"rows"`
	Totals struct {
		Debit  decimal.Decimal `json:"debit"`
		Credit decimal.Decimal `json:"credit"`
	} `json:"totals"`
}

// AccountAmountResponse represents an account with its amount in a financial report
type AccountAmountResponse struct {
	Account string          `json:"account"`
	Name    string          `json:"name"`
	Amount  decimal.Decimal `json:"amount"`
}

// ProfitAndLossResponse represents the profit and loss report response
type ProfitAndLossResponse struct {
	FromDate string                  `json:"fromDate"`
	ToDate   string                  `json:"toDate"`
	Revenue  []AccountAmountResponse `json:"revenue"`
	Expenses []AccountAmountResponse `json:"expenses"`
	Summary  struct {
		TotalRevenue  decimal.Decimal `json:"totalRevenue"`
		TotalExpenses decimal.Decimal `json:"totalExpenses"`
		NetProfit     decimal.Decimal `json:"netProfit"`
	} `json:"summary"`
}

// BalanceSheetResponse represents the balance sheet report response
type BalanceSheetResponse struct {
	AsOf        string                  `json:"asOf"`
	Assets      []AccountAmountResponse `json:"assets"`
	Liabilities []AccountAmountResponse `json:"liabilities"`
	Equity      []AccountAmountResponse `json:"equity"`
	Summary     struct {
		TotalAssets      decimal.Decimal `json:"totalAssets"`
		TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
		TotalEquity      decimal.Decimal `json:"totalEquity"`
	} `json:"summary"`
}

// ToTrialBalanceResponse converts domain trial balance rows to a DTO response
func ToTrialBalanceResponse(rows []domain.TrialBalanceRow, asOf time.Time, decimals int32) TrialBalanceResponse {
	response := TrialBalanceResponse{
		AsOf: asOf.Format("2006-01-02"),
		Rows: make([]TrialBalanceRowResponse, len(rows)),
	}

	var totalDebit, totalCredit int64
	for i, row := range rows {
		response.Rows[i] = TrialBalanceRowResponse{
			Account:     string(row.Account),
			AccountName: row.AccountName,
			AccountType: string(row.AccountType),
			Debit:       utils.MinorToMajor(row.Debit, decimals),
			Credit:      utils.MinorToMajor(row.Credit, decimals),
			Balance:     utils.MinorToMajor(row.Balance, decimals),
		}
		totalDebit += row.Debit
		totalCredit += row.Credit
	}

	response.Totals.Debit = utils.MinorToMajor(totalDebit, decimals)
	response.Totals.Credit = utils.MinorToMajor(totalCredit, decimals)
	return response
}

func toAccountAmountResponses(amounts []domain.AccountAmount, decimals int32) ([]AccountAmountResponse, int64) {
	out := make([]AccountAmountResponse, len(amounts))
	var total int64
	for i, a := range amounts {
		out[i] = AccountAmountResponse{
			Account: string(a.Account),
			Name:    a.Name,
			Amount:  utils.MinorToMajor(a.NetAmount, decimals),
		}
		total += a.NetAmount
	}
	return out, total
}

// ToProfitAndLossResponse converts a domain P&L report to a DTO response
func ToProfitAndLossResponse(report *domain.PAndLReport, from, to time.Time, decimals int32) ProfitAndLossResponse {
	response := ProfitAndLossResponse{
		FromDate: from.Format("2006-01-02"),
		ToDate:   to.Format("2006-01-02"),
	}

	var totalRevenue, totalExpenses int64
	response.Revenue, totalRevenue = toAccountAmountResponses(report.Revenue, decimals)
	response.Expenses, totalExpenses = toAccountAmountResponses(report.Expenses, decimals)

	response.Summary.TotalRevenue = utils.MinorToMajor(totalRevenue, decimals)
	response.Summary.TotalExpenses = utils.MinorToMajor(totalExpenses, decimals)
	response.Summary.NetProfit = utils.MinorToMajor(report.NetProfit, decimals)
	return response
}

// ToBalanceSheetResponse converts a domain balance sheet report to a DTO response
func ToBalanceSheetResponse(report *domain.BalanceSheetReport, asOf time.Time, decimals int32) BalanceSheetResponse {
	response := BalanceSheetResponse{
		AsOf: asOf.Format("2006-01-02"),
	}
	response.Assets, _ = toAccountAmountResponses(report.Assets, decimals)
	response.Liabilities, _ = toAccountAmountResponses(report.Liabilities, decimals)
	response.Equity, _ = toAccountAmountResponses(report.Equity, decimals)

	response.Summary.TotalAssets = utils.MinorToMajor(report.TotalAssets, decimals)
	response.Summary.TotalLiabilities = utils.MinorToMajor(report.TotalLiabilities, decimals)
	response.Summary.TotalEquity = utils.MinorToMajor(report.TotalEquity, decimals)
	return response
}
