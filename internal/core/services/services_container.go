package services

import (
	"log"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/platform/config"
	"github.com/SscSPs/bookkeeping_core/internal/utils/calendar"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, opts ...ServiceOption) *portssvc.ServiceContainer {
	if cfg.Location != nil {
		opts = append([]ServiceOption{WithLocation(cfg.Location)}, opts...)
	}

	defaultCalendar, err := calendar.Resolve(cfg.DefaultCalendar, domain.CalendarGregorian)
	if err != nil {
		log.Printf("Warning: unknown DEFAULT_CALENDAR %q. Defaulting to %s.\n", cfg.DefaultCalendar, domain.CalendarGregorian)
		defaultCalendar = domain.CalendarGregorian
	}

	container := &portssvc.ServiceContainer{}

	// Leaf services first; the document services post through them.
	container.Identifier = NewIdentifierService(defaultCalendar, opts...)
	container.Ledger = NewLedgerService(repos.LedgerRepo, repos.ReportingRepo, repos.FinancialYearRepo, opts...)
	container.Audit = NewAuditChainService(repos.Transactor, repos.AuditRepo, opts...)
	container.Product = NewProductService(repos.ProductRepo, opts...)
	container.Person = NewPersonService(repos.PersonRepo, opts...)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.PersonRepo, opts...)
	container.Verification = NewVerificationCodeService(cfg.VerificationCodeCapacity, cfg.VerificationCodeTTL, opts...)

	container.Invoice = NewInvoiceService(
		repos.Transactor,
		repos.InvoiceRepo,
		repos.ProductRepo,
		repos.PersonRepo,
		container.Identifier,
		container.Ledger,
		container.Audit,
		opts...,
	)
	container.Payment = NewPaymentService(
		repos.Transactor,
		repos.PaymentRepo,
		repos.InvoiceRepo,
		repos.PersonRepo,
		container.Identifier,
		container.Ledger,
		container.Audit,
		opts...,
	)
	container.FinancialYear = NewFinancialYearService(
		repos.Transactor,
		repos.FinancialYearRepo,
		container.Identifier,
		container.Ledger,
		container.Audit,
		opts...,
	)

	return container
}
