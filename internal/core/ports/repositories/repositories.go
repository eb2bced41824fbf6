package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	Transactor        Transactor
	InvoiceRepo       InvoiceRepositoryFacade
	PaymentRepo       PaymentRepositoryFacade
	ProductRepo       ProductRepositoryFacade
	PersonRepo        PersonRepositoryFacade
	LedgerRepo        LedgerRepositoryFacade
	ReportingRepo     ReportingRepository
	FinancialYearRepo FinancialYearRepositoryFacade
	AuditRepo         AuditRepositoryFacade
}
