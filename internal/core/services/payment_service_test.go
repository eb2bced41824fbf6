package services_test

import (
	"context"
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

type PaymentServiceTestSuite struct {
	suite.Suite
	tx              *fakeTransactor
	mockPaymentRepo *MockPaymentRepository
	mockInvoiceRepo *MockInvoiceRepository
	mockPersonRepo  *MockPersonRepository
	mockLedger      *MockLedgerService
	mockAudit       *MockAuditChainService
	service         portssvc.PaymentSvcFacade
	now             time.Time
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.tx = &fakeTransactor{}
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockPersonRepo = new(MockPersonRepository)
	suite.mockLedger = new(MockLedgerService)
	suite.mockAudit = new(MockAuditChainService)
	suite.now = time.Date(2025, 4, 11, 15, 0, 0, 0, time.UTC)

	clock := services.WithClock(fixedClock(suite.now))
	suite.service = services.NewPaymentService(
		suite.tx,
		suite.mockPaymentRepo,
		suite.mockInvoiceRepo,
		suite.mockPersonRepo,
		services.NewIdentifierService(domain.CalendarGregorian, clock),
		suite.mockLedger,
		suite.mockAudit,
		clock,
	)
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}

func (suite *PaymentServiceTestSuite) expectCreate(ctx context.Context, id int64, number string) {
	suite.mockPaymentRepo.On("CreatePayment", ctx, mock.AnythingOfType("*domain.Payment")).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.Payment).ID = id }).Return(nil).Once()
	suite.mockPaymentRepo.On("SetPaymentNumber", ctx, id, number).Return(nil).Once()
	suite.mockAudit.On("Append", ctx, domain.EntityPayment, mock.Anything, domain.ActionCreate, mock.Anything).Return(&domain.AuditEntry{}, nil).Once()
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_InheritsFromInvoice() {
	ctx := context.Background()
	invoice := &domain.Invoice{ID: 12, InvoiceNumber: "S-20250410-000012", TrackingCode: "TRC-1-abcdef"}
	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, int64(12)).Return(invoice, nil).Once()
	suite.expectCreate(ctx, 3, "R-20250411-000003")

	payment, err := suite.service.CreatePayment(ctx, dto.CreatePaymentRequest{
		Direction: "in",
		Method:    "bank_transfer",
		Amount:    2500,
		InvoiceID: int64Ptr(12),
	})

	suite.Require().NoError(err)
	suite.Equal("R-20250411-000003", payment.PaymentNumber)
	suite.Equal(domain.MethodBank, payment.Method)
	suite.Equal(domain.PaymentDraft, payment.Status)
	suite.Require().NotNil(payment.Reference)
	suite.Equal("S-20250410-000012", *payment.Reference)
	suite.Equal("TRC-1-abcdef", payment.TrackingCode)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_ExplicitValuesWin() {
	ctx := context.Background()
	invoice := &domain.Invoice{ID: 12, InvoiceNumber: "S-20250410-000012", TrackingCode: "TRC-1-abcdef"}
	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, int64(12)).Return(invoice, nil).Once()
	suite.expectCreate(ctx, 4, "R-20250411-000004")

	payment, err := suite.service.CreatePayment(ctx, dto.CreatePaymentRequest{
		Direction:    "in",
		Amount:       100,
		InvoiceID:    int64Ptr(12),
		Reference:    strPtr("cheque 991"),
		TrackingCode: strPtr("TRC-mine"),
	})

	suite.Require().NoError(err)
	suite.Equal(domain.MethodCash, payment.Method)
	suite.Equal("cheque 991", *payment.Reference)
	suite.Equal("TRC-mine", payment.TrackingCode)
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_StandaloneGetsFreshTrackingCode() {
	ctx := context.Background()
	suite.expectCreate(ctx, 5, "P-20250411-000005")

	payment, err := suite.service.CreatePayment(ctx, dto.CreatePaymentRequest{Direction: "out", Method: "card", Amount: 700})

	suite.Require().NoError(err)
	suite.Equal(domain.MethodPOS, payment.Method)
	suite.Nil(payment.Reference)
	suite.Regexp(`^TRC-\d+-[0-9a-f]{6}$`, payment.TrackingCode)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "FindInvoiceByID", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_ExplicitPartyNameIsKept() {
	ctx := context.Background()
	suite.mockPersonRepo.On("FindPersonByID", ctx, "supp-1").Return(&domain.Person{ID: "supp-1", Name: "Registered Name"}, nil).Once()
	suite.expectCreate(ctx, 6, "P-20250411-000006")

	payment, err := suite.service.CreatePayment(ctx, dto.CreatePaymentRequest{
		Direction: "out",
		Amount:    900,
		PartyID:   strPtr("supp-1"),
		PartyName: strPtr("Trading Name"),
	})

	suite.Require().NoError(err)
	suite.Equal("Trading Name", *payment.PartyName)
	suite.mockPersonRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_UnknownParty() {
	ctx := context.Background()
	suite.mockPersonRepo.On("FindPersonByID", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreatePayment(ctx, dto.CreatePaymentRequest{Direction: "in", Amount: 1, PartyID: strPtr("ghost")})

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "CreatePayment", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_UnknownInvoice() {
	ctx := context.Background()
	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, int64(77)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreatePayment(ctx, dto.CreatePaymentRequest{Direction: "in", Amount: 1, InvoiceID: int64Ptr(77)})

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "CreatePayment", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_Validation() {
	ctx := context.Background()
	reqs := map[string]dto.CreatePaymentRequest{
		"bad method":    {Direction: "in", Method: "crypto", Amount: 1},
		"zero amount":   {Direction: "in", Amount: 0},
		"bad direction": {Direction: "sideways", Amount: 1},
	}
	for name, req := range reqs {
		_, err := suite.service.CreatePayment(ctx, req)
		suite.ErrorIs(err, apperrors.ErrValidation, name)
	}
}

func (suite *PaymentServiceTestSuite) finalizeWith(p *domain.Payment, debit, credit domain.AccountCode) {
	ctx := context.Background()
	suite.mockPaymentRepo.On("FindPaymentByIDForUpdate", ctx, p.ID).Return(p, nil).Once()
	suite.mockPaymentRepo.On("MarkPaymentPosted", ctx, p.ID, suite.now, (*time.Time)(nil)).Return(true, nil).Once()
	suite.mockLedger.On("Post", ctx, mock.MatchedBy(func(posting domain.LedgerPosting) bool {
		return posting.DebitAccount == debit &&
			posting.CreditAccount == credit &&
			posting.Amount == p.Amount &&
			posting.RefType == domain.RefPayment &&
			posting.RefID == p.ID
	})).Return(&domain.LedgerEntry{}, nil).Once()
	suite.mockAudit.On("Append", ctx, domain.EntityPayment, mock.Anything, domain.ActionFinalize, mock.Anything).Return(&domain.AuditEntry{}, nil).Once()

	posted, err := suite.service.FinalizePayment(ctx, p.ID, dto.FinalizeRequest{})

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentPosted, posted.Status)
	suite.Require().NotNil(posted.PostedAt)
	suite.mockLedger.AssertExpectations(suite.T())
	suite.mockAudit.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestFinalizePayment_InboundBank() {
	suite.finalizeWith(&domain.Payment{
		ID: 3, Direction: domain.PaymentIn, Method: domain.MethodBank, Amount: 2500, Status: domain.PaymentDraft,
	}, domain.AccountBank, domain.AccountReceivable)
}

func (suite *PaymentServiceTestSuite) TestFinalizePayment_OutboundCash() {
	suite.finalizeWith(&domain.Payment{
		ID: 4, Direction: domain.PaymentOut, Method: domain.MethodCash, Amount: 800, Status: domain.PaymentDraft,
	}, domain.AccountExpenses, domain.AccountCash)
}

func (suite *PaymentServiceTestSuite) TestFinalizePayment_AlreadyPostedIsNoop() {
	ctx := context.Background()
	posted := &domain.Payment{ID: 3, Status: domain.PaymentPosted, Amount: 10}
	suite.mockPaymentRepo.On("FindPaymentByIDForUpdate", ctx, int64(3)).Return(posted, nil).Once()

	result, err := suite.service.FinalizePayment(ctx, 3, dto.FinalizeRequest{})

	suite.Require().NoError(err)
	suite.Same(posted, result)
	suite.mockLedger.AssertNotCalled(suite.T(), "Post", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestFinalizePayment_AuditFailureIsIntegrityError() {
	ctx := context.Background()
	p := &domain.Payment{ID: 9, Direction: domain.PaymentIn, Method: domain.MethodCash, Amount: 50, Status: domain.PaymentDraft}
	suite.mockPaymentRepo.On("FindPaymentByIDForUpdate", ctx, int64(9)).Return(p, nil).Once()
	suite.mockPaymentRepo.On("MarkPaymentPosted", ctx, int64(9), suite.now, (*time.Time)(nil)).Return(true, nil).Once()
	suite.mockLedger.On("Post", ctx, mock.Anything).Return(&domain.LedgerEntry{}, nil).Once()
	suite.mockAudit.On("Append", ctx, domain.EntityPayment, "9", domain.ActionFinalize, mock.Anything).Return(nil, apperrors.ErrDuplicate).Once()

	_, err := suite.service.FinalizePayment(ctx, 9, dto.FinalizeRequest{})

	suite.ErrorIs(err, apperrors.ErrIntegrity)
}
