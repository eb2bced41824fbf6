package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
)

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// FindInvoiceByID returns the invoice with its items or apperrors.ErrNotFound.
	FindInvoiceByID(ctx context.Context, invoiceID int64) (*domain.Invoice, error)
}

// InvoiceWriter defines write operations for invoice data
type InvoiceWriter interface {
	// CreateInvoice inserts the invoice and its items, filling in the generated IDs.
	CreateInvoice(ctx context.Context, invoice *domain.Invoice) error
	SetInvoiceNumber(ctx context.Context, invoiceID int64, number string) error
	// FindInvoiceByIDForUpdate loads the invoice and locks its row until the transaction ends.
	FindInvoiceByIDForUpdate(ctx context.Context, invoiceID int64) (*domain.Invoice, error)
	// MarkInvoiceFinal moves a draft invoice to final. It reports false when the
	// invoice was no longer a draft, in which case nothing was written.
	MarkInvoiceFinal(ctx context.Context, invoiceID int64, finalizedAt time.Time, clientTime *time.Time) (bool, error)
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
