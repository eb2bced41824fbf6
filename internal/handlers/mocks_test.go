package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) GetInvoice(ctx context.Context, invoiceID int64) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) FinalizeInvoice(ctx context.Context, invoiceID int64, req dto.FinalizeRequest) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

var _ portssvc.InvoiceSvcFacade = (*MockInvoiceService)(nil)

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) GetPayment(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentService) FinalizePayment(ctx context.Context, paymentID int64, req dto.FinalizeRequest) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

// --- Mock ProductService ---
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductService) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

var _ portssvc.ProductSvc = (*MockProductService)(nil)

// --- Mock PersonService ---
type MockPersonService struct {
	mock.Mock
}

func (m *MockPersonService) CreatePerson(ctx context.Context, req dto.CreatePersonRequest) (*domain.Person, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}
func (m *MockPersonService) GetPerson(ctx context.Context, personID string) (*domain.Person, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}
func (m *MockPersonService) ListPersons(ctx context.Context, params dto.ListPersonsParams) ([]domain.Person, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Person), args.Error(1)
}

var _ portssvc.PersonSvc = (*MockPersonService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) Post(ctx context.Context, posting domain.LedgerPosting) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, posting)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}
func (m *MockLedgerService) Balance(ctx context.Context, account domain.AccountCode, asOf *time.Time) (int64, error) {
	args := m.Called(ctx, account, asOf)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockLedgerService) Balances(ctx context.Context, asOf *time.Time) (map[domain.AccountCode]int64, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.AccountCode]int64), args.Error(1)
}
func (m *MockLedgerService) ListEntries(ctx context.Context, params dto.ListLedgerEntriesParams) ([]domain.LedgerEntry, *string, error) {
	args := m.Called(ctx, params)
	var next *string
	if n := args.Get(1); n != nil {
		next = n.(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.LedgerEntry), next, args.Error(2)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock FinancialYearService ---
type MockFinancialYearService struct {
	mock.Mock
}

func (m *MockFinancialYearService) fy(args mock.Arguments) (*domain.FinancialYear, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialYear), args.Error(1)
}
func (m *MockFinancialYearService) GetFinancialYear(ctx context.Context, id int64) (*domain.FinancialYear, error) {
	return m.fy(m.Called(ctx, id))
}
func (m *MockFinancialYearService) ListFinancialYears(ctx context.Context) ([]domain.FinancialYear, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialYear), args.Error(1)
}
func (m *MockFinancialYearService) GetOrCreateCurrent(ctx context.Context, calendarName string) (*domain.FinancialYear, error) {
	return m.fy(m.Called(ctx, calendarName))
}
func (m *MockFinancialYearService) CreateFinancialYear(ctx context.Context, req dto.CreateFinancialYearRequest) (*domain.FinancialYear, error) {
	return m.fy(m.Called(ctx, req))
}
func (m *MockFinancialYearService) CloseFinancialYear(ctx context.Context, id int64) (*domain.FinancialYear, error) {
	return m.fy(m.Called(ctx, id))
}

var _ portssvc.FinancialYearSvcFacade = (*MockFinancialYearService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) TrialBalance(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrialBalanceRow), args.Error(1)
}
func (m *MockReportingService) ProfitAndLoss(ctx context.Context, from, to time.Time) (*domain.PAndLReport, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PAndLReport), args.Error(1)
}
func (m *MockReportingService) BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheetReport, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheetReport), args.Error(1)
}

func (m *MockReportingService) PartyTurnover(ctx context.Context, partyID string, from, to *time.Time) (*domain.PartyTurnover, error) {
	args := m.Called(ctx, partyID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PartyTurnover), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

// --- Mock AuditChainService ---
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Append(ctx context.Context, entityType, entityID, action string, snapshot map[string]any) (*domain.AuditEntry, error) {
	args := m.Called(ctx, entityType, entityID, action, snapshot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuditEntry), args.Error(1)
}
func (m *MockAuditService) VerifyChain(ctx context.Context, entityType, entityID string) (*domain.ChainVerification, error) {
	args := m.Called(ctx, entityType, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChainVerification), args.Error(1)
}
func (m *MockAuditService) ExportProof(ctx context.Context, entityType, entityID string, entryID int64) (*domain.AuditProof, error) {
	args := m.Called(ctx, entityType, entityID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuditProof), args.Error(1)
}

var _ portssvc.AuditChainSvc = (*MockAuditService)(nil)

// --- Mock VerificationCodeService ---
type MockVerificationService struct {
	mock.Mock
}

func (m *MockVerificationService) Issue(ctx context.Context, key string) (*domain.VerificationCode, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VerificationCode), args.Error(1)
}
func (m *MockVerificationService) Verify(ctx context.Context, key, code string) (bool, error) {
	args := m.Called(ctx, key, code)
	return args.Bool(0), args.Error(1)
}

var _ portssvc.VerificationCodeSvc = (*MockVerificationService)(nil)
