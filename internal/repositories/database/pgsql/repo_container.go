package pgsql

import (
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		Transactor:        newPgxTransactor(dbPool),
		InvoiceRepo:       newPgxInvoiceRepository(dbPool),
		PaymentRepo:       newPgxPaymentRepository(dbPool),
		ProductRepo:       newPgxProductRepository(dbPool),
		PersonRepo:        newPgxPersonRepository(dbPool),
		LedgerRepo:        newPgxLedgerRepository(dbPool),
		ReportingRepo:     newReportingRepository(dbPool),
		FinancialYearRepo: newPgxFinancialYearRepository(dbPool),
		AuditRepo:         newPgxAuditRepository(dbPool),
	}
}
