package services

import (
	"context"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
)

// PaymentReaderSvc defines read operations for payments
type PaymentReaderSvc interface {
	GetPayment(ctx context.Context, paymentID int64) (*domain.Payment, error)
}

// PaymentWriterSvc defines the payment lifecycle transitions
type PaymentWriterSvc interface {
	// CreatePayment persists a draft payment, inheriting reference and tracking
	// code from a linked invoice when they are not given.
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error)

	// FinalizePayment moves a draft to posted with its ledger entry and audit record.
	// Posting an already posted payment returns it unchanged.
	FinalizePayment(ctx context.Context, paymentID int64, req dto.FinalizeRequest) (*domain.Payment, error)
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
