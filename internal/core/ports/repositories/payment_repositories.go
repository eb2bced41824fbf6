package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
)

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	FindPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error)
}

// PaymentWriter defines write operations for payment data
type PaymentWriter interface {
	CreatePayment(ctx context.Context, payment *domain.Payment) error
	SetPaymentNumber(ctx context.Context, paymentID int64, number string) error
	FindPaymentByIDForUpdate(ctx context.Context, paymentID int64) (*domain.Payment, error)
	// MarkPaymentPosted moves a draft payment to posted, reporting false if it was not a draft.
	MarkPaymentPosted(ctx context.Context, paymentID int64, postedAt time.Time, clientTime *time.Time) (bool, error)
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
