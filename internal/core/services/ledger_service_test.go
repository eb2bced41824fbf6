package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/core/services"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo    *MockLedgerRepository
	mockReportingRepo *MockReportingRepository
	mockFYRepo        *MockFinancialYearRepository
	service           portssvc.LedgerSvcFacade
	now               time.Time
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.mockFYRepo = new(MockFinancialYearRepository)
	suite.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	suite.service = services.NewLedgerService(
		suite.mockLedgerRepo,
		suite.mockReportingRepo,
		suite.mockFYRepo,
		services.WithClock(fixedClock(suite.now)),
	)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (suite *LedgerServiceTestSuite) validPosting() domain.LedgerPosting {
	return domain.LedgerPosting{
		DebitAccount:  domain.AccountReceivable,
		CreditAccount: domain.AccountSales,
		Amount:        2500,
		RefType:       domain.RefInvoice,
		RefID:         1,
		TrackingCode:  strPtr("TRC-1-abcdef"),
		EntryDate:     time.Date(2025, 5, 30, 0, 0, 0, 0, time.UTC),
	}
}

func (suite *LedgerServiceTestSuite) TestPost_Success() {
	ctx := context.Background()
	posting := suite.validPosting()

	suite.mockFYRepo.On("FindClosedFinancialYearCovering", ctx, posting.EntryDate).Return(nil, nil).Once()
	suite.mockLedgerRepo.On("AppendEntry", ctx, mock.AnythingOfType("*domain.LedgerEntry")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.LedgerEntry).ID = 99
		}).Return(nil).Once()

	entry, err := suite.service.Post(ctx, posting)

	suite.Require().NoError(err)
	suite.Equal(int64(99), entry.ID)
	suite.Equal(domain.AccountReceivable, entry.DebitAccount)
	suite.Equal(domain.AccountSales, entry.CreditAccount)
	suite.Equal(int64(2500), entry.Amount)
	suite.Equal(posting.EntryDate, entry.EntryDate)
	suite.Equal(suite.now, entry.CreatedAt)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
	suite.mockFYRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestPost_ZeroDateMeansNow() {
	ctx := context.Background()
	posting := suite.validPosting()
	posting.EntryDate = time.Time{}

	suite.mockFYRepo.On("FindClosedFinancialYearCovering", ctx, mock.AnythingOfType("time.Time")).Return(nil, nil).Once()
	suite.mockLedgerRepo.On("AppendEntry", ctx, mock.AnythingOfType("*domain.LedgerEntry")).Return(nil).Once()

	entry, err := suite.service.Post(ctx, posting)

	suite.Require().NoError(err)
	suite.True(entry.EntryDate.Equal(suite.now))
}

func (suite *LedgerServiceTestSuite) TestPost_RejectsInvalidPostings() {
	ctx := context.Background()
	cases := map[string]func(p *domain.LedgerPosting){
		"zero amount":     func(p *domain.LedgerPosting) { p.Amount = 0 },
		"negative amount": func(p *domain.LedgerPosting) { p.Amount = -5 },
		"unknown debit":   func(p *domain.LedgerPosting) { p.DebitAccount = "Petty Cash" },
		"unknown credit":  func(p *domain.LedgerPosting) { p.CreditAccount = "" },
		"same account":    func(p *domain.LedgerPosting) { p.CreditAccount = p.DebitAccount },
		"bad ref type":    func(p *domain.LedgerPosting) { p.RefType = "journal" },
		"missing ref id":  func(p *domain.LedgerPosting) { p.RefID = 0 },
	}
	for name, mutate := range cases {
		posting := suite.validPosting()
		mutate(&posting)
		_, err := suite.service.Post(ctx, posting)
		suite.ErrorIs(err, apperrors.ErrValidation, name)
	}
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "AppendEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestPost_UnknownAccountIsTyped() {
	posting := suite.validPosting()
	posting.DebitAccount = "Goodwill"

	_, err := suite.service.Post(context.Background(), posting)

	suite.ErrorIs(err, services.ErrUnknownAccount)
}

func (suite *LedgerServiceTestSuite) TestPost_ClosedPeriod() {
	ctx := context.Background()
	posting := suite.validPosting()
	closed := &domain.FinancialYear{ID: 3, Name: "Gregorian FY 2025", IsClosed: true}

	suite.mockFYRepo.On("FindClosedFinancialYearCovering", ctx, posting.EntryDate).Return(closed, nil).Once()

	_, err := suite.service.Post(ctx, posting)

	suite.ErrorIs(err, services.ErrPeriodClosed)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "AppendEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestPost_RepositoryFailure() {
	ctx := context.Background()
	posting := suite.validPosting()
	dbErr := errors.New("connection reset")

	suite.mockFYRepo.On("FindClosedFinancialYearCovering", ctx, posting.EntryDate).Return(nil, nil).Once()
	suite.mockLedgerRepo.On("AppendEntry", ctx, mock.Anything).Return(dbErr).Once()

	_, err := suite.service.Post(ctx, posting)

	suite.ErrorIs(err, dbErr)
}

func (suite *LedgerServiceTestSuite) TestBalanceAndBalances() {
	ctx := context.Background()
	asOf := suite.now
	totals := []domain.AccountTotal{
		{Account: domain.AccountReceivable, Debit: 2500, Credit: 1000},
		{Account: domain.AccountSales, Debit: 0, Credit: 2500},
		{Account: domain.AccountCash, Debit: 1000, Credit: 1000},
	}
	suite.mockReportingRepo.On("AccountTotals", ctx, domain.PeriodFilter{To: &asOf}).Return(totals, nil)

	bal, err := suite.service.Balance(ctx, domain.AccountReceivable, &asOf)
	suite.Require().NoError(err)
	suite.Equal(int64(1500), bal)

	bal, err = suite.service.Balance(ctx, domain.AccountBank, &asOf)
	suite.Require().NoError(err)
	suite.Zero(bal)

	balances, err := suite.service.Balances(ctx, &asOf)
	suite.Require().NoError(err)
	suite.Equal(map[domain.AccountCode]int64{
		domain.AccountReceivable: 1500,
		domain.AccountSales:      -2500,
	}, balances)
}

func (suite *LedgerServiceTestSuite) TestBalance_UnknownAccount() {
	_, err := suite.service.Balance(context.Background(), "Nope", nil)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestListEntries_BuildsFilter() {
	ctx := context.Background()
	account := domain.AccountCash
	refType := domain.RefPayment
	expected := domain.LedgerEntryFilter{RefType: &refType, Account: &account}
	entries := []domain.LedgerEntry{{ID: 1}, {ID: 2}}

	suite.mockLedgerRepo.On("ListEntries", ctx, expected, 50, (*string)(nil)).Return(entries, "next", nil).Once()

	got, next, err := suite.service.ListEntries(ctx, dto.ListLedgerEntriesParams{RefType: "payment", Account: "Cash"})

	suite.Require().NoError(err)
	suite.Len(got, 2)
	suite.Require().NotNil(next)
	suite.Equal("next", *next)
}

func (suite *LedgerServiceTestSuite) TestListEntries_FiltersByParty() {
	ctx := context.Background()
	party := "person-1"
	expected := domain.LedgerEntryFilter{PartyID: &party}

	suite.mockLedgerRepo.On("ListEntries", ctx, expected, 20, (*string)(nil)).Return([]domain.LedgerEntry{{ID: 3, PartyID: &party}}, nil, nil).Once()

	got, next, err := suite.service.ListEntries(ctx, dto.ListLedgerEntriesParams{PartyID: party, Limit: 20})

	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.Nil(next)
}

func (suite *LedgerServiceTestSuite) TestListEntries_UnknownAccount() {
	_, _, err := suite.service.ListEntries(context.Background(), dto.ListLedgerEntriesParams{Account: "Vault"})
	suite.ErrorIs(err, apperrors.ErrValidation)
}
