package services

import (
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
)

// IdentifierService generates business identifiers for documents.
type IdentifierService interface {
	// ResolveCalendar maps a requested calendar name to a calendar, applying the default for "".
	ResolveCalendar(name string) (domain.Calendar, error)

	// InvoiceNumber formats {S|P}-{YYYYMMDD}-{id:06d}; the date is rendered in cal.
	InvoiceNumber(invoiceType domain.InvoiceType, id int64, effectiveDate time.Time, cal domain.Calendar) string

	// PaymentNumber formats {R|P}-{YYYYMMDD}-{id:06d}; the date is rendered in cal.
	PaymentNumber(direction domain.PaymentDirection, id int64, effectiveDate time.Time, cal domain.Calendar) string

	// TrackingCode returns TRC-{unix seconds}-{6 hex chars}.
	TrackingCode() (string, error)
}
