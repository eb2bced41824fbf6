package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/utils/accounting"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	personRepo    portsrepo.PersonReader
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repo portsrepo.ReportingRepository, personRepo portsrepo.PersonReader, opts ...ServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		reportingRepo: repo,
		personRepo:    personRepo,
	}
	svc.apply(opts)
	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

func indexTotals(totals []domain.AccountTotal) map[domain.AccountCode]domain.AccountTotal {
	idx := make(map[domain.AccountCode]domain.AccountTotal, len(totals))
	for _, t := range totals {
		idx[t.Account] = t
	}
	return idx
}

// TrialBalance generates a trial balance report as of a specific date
func (s *reportingService) TrialBalance(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	totals, err := s.reportingRepo.AccountTotals(ctx, domain.PeriodFilter{To: &asOf})
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve trial balance data",
			slog.String("asOf", asOf.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to retrieve trial balance data: %w", err)
	}

	idx := indexTotals(totals)
	rows := make([]domain.TrialBalanceRow, 0, len(totals))
	for _, account := range domain.ChartOfAccounts() {
		t, ok := idx[account.Code]
		if !ok || (t.Debit == 0 && t.Credit == 0) {
			continue
		}
		rows = append(rows, domain.TrialBalanceRow{
			Account:     account.Code,
			AccountName: account.Name,
			AccountType: account.AccountType,
			Debit:       t.Debit,
			Credit:      t.Credit,
			Balance:     t.Balance(),
		})
	}

	s.LogInfo(ctx, "Trial balance report generated successfully",
		slog.String("asOf", asOf.Format(time.RFC3339)),
		slog.Int("row_count", len(rows)))
	return rows, nil
}

// ProfitAndLoss generates a profit and loss report for a specific period
func (s *reportingService) ProfitAndLoss(ctx context.Context, from, to time.Time) (*domain.PAndLReport, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: report end is before its start", apperrors.ErrValidation)
	}

	totals, err := s.reportingRepo.AccountTotals(ctx, domain.PeriodFilter{From: &from, To: &to, ExcludeClosing: true})
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve profit and loss data",
			slog.String("from", from.Format(time.RFC3339)),
			slog.String("to", to.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to retrieve profit and loss data: %w", err)
	}

	idx := indexTotals(totals)
	report := &domain.PAndLReport{
		Revenue:  []domain.AccountAmount{},
		Expenses: []domain.AccountAmount{},
	}
	var totalRevenue, totalExpenses int64
	for _, account := range domain.ChartOfAccounts() {
		t, ok := idx[account.Code]
		if !ok {
			continue
		}
		switch account.AccountType {
		case domain.Income:
			net := accounting.NaturalAmount(account.AccountType, t.Debit, t.Credit)
			report.Revenue = append(report.Revenue, domain.AccountAmount{Account: account.Code, Name: account.Name, NetAmount: net})
			totalRevenue += net
		case domain.Expense:
			net := accounting.NaturalAmount(account.AccountType, t.Debit, t.Credit)
			report.Expenses = append(report.Expenses, domain.AccountAmount{Account: account.Code, Name: account.Name, NetAmount: net})
			totalExpenses += net
		}
	}
	report.NetProfit = totalRevenue - totalExpenses

	s.LogInfo(ctx, "Profit and loss report generated successfully",
		slog.String("from", from.Format(time.RFC3339)),
		slog.String("to", to.Format(time.RFC3339)),
		slog.Int64("net_profit", report.NetProfit))
	return report, nil
}

// BalanceSheet generates a balance sheet report as of a specific date
func (s *reportingService) BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheetReport, error) {
	totals, err := s.reportingRepo.AccountTotals(ctx, domain.PeriodFilter{To: &asOf})
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve balance sheet data",
			slog.String("asOf", asOf.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to retrieve balance sheet data: %w", err)
	}

	idx := indexTotals(totals)
	report := &domain.BalanceSheetReport{
		Assets:      []domain.AccountAmount{},
		Liabilities: []domain.AccountAmount{},
		Equity:      []domain.AccountAmount{},
	}
	var currentEarnings int64
	for _, account := range domain.ChartOfAccounts() {
		t, ok := idx[account.Code]
		if !ok {
			continue
		}
		switch account.AccountType {
		case domain.Asset:
			net := accounting.NaturalAmount(account.AccountType, t.Debit, t.Credit)
			report.Assets = append(report.Assets, domain.AccountAmount{Account: account.Code, Name: account.Name, NetAmount: net})
			report.TotalAssets += net
		case domain.Liability:
			net := accounting.NaturalAmount(account.AccountType, t.Debit, t.Credit)
			report.Liabilities = append(report.Liabilities, domain.AccountAmount{Account: account.Code, Name: account.Name, NetAmount: net})
			report.TotalLiabilities += net
		case domain.Equity:
			net := accounting.NaturalAmount(account.AccountType, t.Debit, t.Credit)
			report.Equity = append(report.Equity, domain.AccountAmount{Account: account.Code, Name: account.Name, NetAmount: net})
			report.TotalEquity += net
		case domain.Income:
			currentEarnings += accounting.NaturalAmount(account.AccountType, t.Debit, t.Credit)
		case domain.Expense:
			currentEarnings -= accounting.NaturalAmount(account.AccountType, t.Debit, t.Credit)
		}
	}

	// Unclosed income and expense belong to equity until the year is closed.
	if currentEarnings != 0 {
		report.Equity = append(report.Equity, domain.AccountAmount{Name: "Current Period Earnings", NetAmount: currentEarnings})
		report.TotalEquity += currentEarnings
	}

	s.LogInfo(ctx, "Balance sheet report generated successfully",
		slog.String("asOf", asOf.Format(time.RFC3339)),
		slog.Int64("total_assets", report.TotalAssets))
	return report, nil
}

// PartyTurnover sums the finalized invoices and posted payments of one
// registered party. Nil bounds are open.
func (s *reportingService) PartyTurnover(ctx context.Context, partyID string, from, to *time.Time) (*domain.PartyTurnover, error) {
	if from != nil && to != nil && from.After(*to) {
		return nil, fmt.Errorf("%w: from date is after to date", apperrors.ErrValidation)
	}
	person, err := s.personRepo.FindPersonByID(ctx, partyID)
	if err != nil {
		return nil, err
	}

	totals, err := s.reportingRepo.PartyTotals(ctx, partyID, domain.PeriodFilter{From: from, To: to})
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve party turnover", slog.String("party_id", partyID))
		return nil, fmt.Errorf("failed to retrieve party turnover: %w", err)
	}
	return &domain.PartyTurnover{
		PartyID:       person.ID,
		PartyName:     person.Name,
		InvoicesTotal: totals[domain.RefInvoice],
		PaymentsTotal: totals[domain.RefPayment],
	}, nil
}
