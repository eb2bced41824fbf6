package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo   *MockReportingRepository
	mockPerson *MockPersonRepository
	service    portssvc.ReportingService
	totals     []domain.AccountTotal
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.mockPerson = new(MockPersonRepository)
	suite.service = services.NewReportingService(suite.mockRepo, suite.mockPerson)
	// Sale of 2500 on credit, 1000 collected in cash, 400 paid out in expenses.
	suite.totals = []domain.AccountTotal{
		{Account: domain.AccountSales, Credit: 2500},
		{Account: domain.AccountReceivable, Debit: 2500, Credit: 1000},
		{Account: domain.AccountCash, Debit: 1000, Credit: 400},
		{Account: domain.AccountExpenses, Debit: 400},
	}
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_ChartOrder() {
	ctx := context.Background()
	asOf := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	suite.mockRepo.On("AccountTotals", ctx, domain.PeriodFilter{To: &asOf}).Return(suite.totals, nil).Once()

	rows, err := suite.service.TrialBalance(ctx, asOf)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 4)
	suite.Equal(domain.AccountCash, rows[0].Account)
	suite.Equal(int64(600), rows[0].Balance)
	suite.Equal(domain.AccountReceivable, rows[1].Account)
	suite.Equal(domain.AccountSales, rows[2].Account)
	suite.Equal(int64(-2500), rows[2].Balance)
	suite.Equal(domain.Income, rows[2].AccountType)
	suite.Equal(domain.AccountExpenses, rows[3].Account)

	var debit, credit int64
	for _, r := range rows {
		debit += r.Debit
		credit += r.Credit
	}
	suite.Equal(debit, credit)
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss_ExcludesClosing() {
	ctx := context.Background()
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	suite.mockRepo.On("AccountTotals", ctx, domain.PeriodFilter{From: &from, To: &to, ExcludeClosing: true}).Return(suite.totals, nil).Once()

	report, err := suite.service.ProfitAndLoss(ctx, from, to)

	suite.Require().NoError(err)
	suite.Require().Len(report.Revenue, 1)
	suite.Equal(int64(2500), report.Revenue[0].NetAmount)
	suite.Require().Len(report.Expenses, 1)
	suite.Equal(int64(400), report.Expenses[0].NetAmount)
	suite.Equal(int64(2100), report.NetProfit)
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss_InvertedPeriod() {
	from := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	_, err := suite.service.ProfitAndLoss(context.Background(), from, from.AddDate(0, 0, -1))
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_IncludesCurrentEarnings() {
	ctx := context.Background()
	asOf := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	suite.mockRepo.On("AccountTotals", ctx, domain.PeriodFilter{To: &asOf}).Return(suite.totals, nil).Once()

	report, err := suite.service.BalanceSheet(ctx, asOf)

	suite.Require().NoError(err)
	suite.Equal(int64(2100), report.TotalAssets)
	suite.Zero(report.TotalLiabilities)
	suite.Equal(int64(2100), report.TotalEquity)
	suite.Require().Len(report.Equity, 1)
	suite.Equal("Current Period Earnings", report.Equity[0].Name)
	suite.Equal(report.TotalAssets, report.TotalLiabilities+report.TotalEquity)
}

func (suite *ReportingServiceTestSuite) TestPartyTurnover() {
	ctx := context.Background()
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)
	suite.mockPerson.On("FindPersonByID", ctx, "cust-1").Return(&domain.Person{ID: "cust-1", Name: "Acme"}, nil).Once()
	suite.mockRepo.On("PartyTotals", ctx, "cust-1", domain.PeriodFilter{From: &from, To: &to}).
		Return(map[domain.RefType]int64{domain.RefInvoice: 4200, domain.RefPayment: 1500, domain.RefManual: 7}, nil).Once()

	report, err := suite.service.PartyTurnover(ctx, "cust-1", &from, &to)

	suite.Require().NoError(err)
	suite.Equal(domain.PartyTurnover{PartyID: "cust-1", PartyName: "Acme", InvoicesTotal: 4200, PaymentsTotal: 1500}, *report)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestPartyTurnover_UnknownParty() {
	ctx := context.Background()
	suite.mockPerson.On("FindPersonByID", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.PartyTurnover(ctx, "ghost", nil, nil)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "PartyTotals", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestPartyTurnover_InvertedRange() {
	from := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := suite.service.PartyTurnover(context.Background(), "cust-1", &from, &to)

	suite.ErrorIs(err, apperrors.ErrValidation)
}
