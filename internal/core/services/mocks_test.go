package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Passthrough Transactor ---
// Runs fn on the caller's context and records how many units of work were opened.
type fakeTransactor struct {
	calls int
}

var _ portsrepo.Transactor = (*fakeTransactor)(nil)

func (f *fakeTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

var _ portsrepo.InvoiceRepositoryFacade = (*MockInvoiceRepository)(nil)

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID int64) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) CreateInvoice(ctx context.Context, invoice *domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) SetInvoiceNumber(ctx context.Context, invoiceID int64, number string) error {
	args := m.Called(ctx, invoiceID, number)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FindInvoiceByIDForUpdate(ctx context.Context, invoiceID int64) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) MarkInvoiceFinal(ctx context.Context, invoiceID int64, finalizedAt time.Time, clientTime *time.Time) (bool, error) {
	args := m.Called(ctx, invoiceID, finalizedAt, clientTime)
	return args.Bool(0), args.Error(1)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

var _ portsrepo.PaymentRepositoryFacade = (*MockPaymentRepository)(nil)

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) CreatePayment(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) SetPaymentNumber(ctx context.Context, paymentID int64, number string) error {
	args := m.Called(ctx, paymentID, number)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindPaymentByIDForUpdate(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) MarkPaymentPosted(ctx context.Context, paymentID int64, postedAt time.Time, clientTime *time.Time) (bool, error) {
	args := m.Called(ctx, paymentID, postedAt, clientTime)
	return args.Bool(0), args.Error(1)
}

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

var _ portsrepo.ProductRepositoryFacade = (*MockProductRepository)(nil)

func (m *MockProductRepository) CreateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) AdjustInventory(ctx context.Context, productID string, delta int64) error {
	args := m.Called(ctx, productID, delta)
	return args.Error(0)
}

// --- Mock PersonRepository ---
type MockPersonRepository struct {
	mock.Mock
}

var _ portsrepo.PersonRepositoryFacade = (*MockPersonRepository)(nil)

func (m *MockPersonRepository) CreatePerson(ctx context.Context, person domain.Person) error {
	args := m.Called(ctx, person)
	return args.Error(0)
}

func (m *MockPersonRepository) FindPersonByID(ctx context.Context, personID string) (*domain.Person, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}

func (m *MockPersonRepository) ListPersons(ctx context.Context, nameQuery string, limit int) ([]domain.Person, error) {
	args := m.Called(ctx, nameQuery, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Person), args.Error(1)
}

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) ListEntries(ctx context.Context, filter domain.LedgerEntryFilter, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var next *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		next = &tokenVal
	}
	return args.Get(0).([]domain.LedgerEntry), next, args.Error(2)
}

func (m *MockLedgerRepository) AppendEntry(ctx context.Context, entry *domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) AccountTotals(ctx context.Context, period domain.PeriodFilter) ([]domain.AccountTotal, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountTotal), args.Error(1)
}

func (m *MockReportingRepository) PartyTotals(ctx context.Context, partyID string, period domain.PeriodFilter) (map[domain.RefType]int64, error) {
	args := m.Called(ctx, partyID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.RefType]int64), args.Error(1)
}

// --- Mock FinancialYearRepository ---
type MockFinancialYearRepository struct {
	mock.Mock
}

var _ portsrepo.FinancialYearRepositoryFacade = (*MockFinancialYearRepository)(nil)

func (m *MockFinancialYearRepository) FindFinancialYearByID(ctx context.Context, id int64) (*domain.FinancialYear, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialYear), args.Error(1)
}

func (m *MockFinancialYearRepository) ListFinancialYears(ctx context.Context) ([]domain.FinancialYear, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialYear), args.Error(1)
}

func (m *MockFinancialYearRepository) FindClosedFinancialYearCovering(ctx context.Context, t time.Time) (*domain.FinancialYear, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialYear), args.Error(1)
}

func (m *MockFinancialYearRepository) CreateFinancialYear(ctx context.Context, fy *domain.FinancialYear) error {
	args := m.Called(ctx, fy)
	return args.Error(0)
}

func (m *MockFinancialYearRepository) EnsureFinancialYear(ctx context.Context, fy domain.FinancialYear) (*domain.FinancialYear, error) {
	args := m.Called(ctx, fy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialYear), args.Error(1)
}

func (m *MockFinancialYearRepository) FindFinancialYearByIDForUpdate(ctx context.Context, id int64) (*domain.FinancialYear, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialYear), args.Error(1)
}

func (m *MockFinancialYearRepository) MarkFinancialYearClosed(ctx context.Context, id int64, closedAt, cutoff time.Time, openingBalances map[domain.AccountCode]int64) (bool, error) {
	args := m.Called(ctx, id, closedAt, cutoff, openingBalances)
	return args.Bool(0), args.Error(1)
}

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

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
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.LedgerEntry), nil, args.Error(2)
}

// --- Mock AuditChainService ---
type MockAuditChainService struct {
	mock.Mock
}

var _ portssvc.AuditChainSvc = (*MockAuditChainService)(nil)

func (m *MockAuditChainService) Append(ctx context.Context, entityType, entityID, action string, snapshot map[string]any) (*domain.AuditEntry, error) {
	args := m.Called(ctx, entityType, entityID, action, snapshot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuditEntry), args.Error(1)
}

func (m *MockAuditChainService) VerifyChain(ctx context.Context, entityType, entityID string) (*domain.ChainVerification, error) {
	args := m.Called(ctx, entityType, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChainVerification), args.Error(1)
}

func (m *MockAuditChainService) ExportProof(ctx context.Context, entityType, entityID string, entryID int64) (*domain.AuditProof, error) {
	args := m.Called(ctx, entityType, entityID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuditProof), args.Error(1)
}

// fixedClock returns a clock frozen at t.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }
