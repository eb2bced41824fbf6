package services

import (
	"context"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoices
type InvoiceReaderSvc interface {
	GetInvoice(ctx context.Context, invoiceID int64) (*domain.Invoice, error)
}

// InvoiceWriterSvc defines the invoice lifecycle transitions
type InvoiceWriterSvc interface {
	// CreateInvoice persists a draft invoice with its items and assigns its number.
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error)

	// FinalizeInvoice moves a draft to final, moving stock, posting to the ledger
	// and appending to the audit chain in one transaction. Finalizing an invoice
	// that is already final returns it unchanged.
	FinalizeInvoice(ctx context.Context, invoiceID int64, req dto.FinalizeRequest) (*domain.Invoice, error)
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}
