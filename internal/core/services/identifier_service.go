package services

import (
	"fmt"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/utils"
	"github.com/SscSPs/bookkeeping_core/internal/utils/calendar"
)

// trackingCodeRandomBytes yields the 6 hex characters of a tracking code.
const trackingCodeRandomBytes = 3

type identifierService struct {
	BaseService
	defaultCalendar domain.Calendar
}

// NewIdentifierService creates the identifier service. Requests that do not name
// a calendar use defaultCalendar.
func NewIdentifierService(defaultCalendar domain.Calendar, opts ...ServiceOption) portssvc.IdentifierService {
	if defaultCalendar == "" {
		defaultCalendar = domain.CalendarGregorian
	}
	svc := &identifierService{defaultCalendar: defaultCalendar}
	svc.apply(opts)
	return svc
}

var _ portssvc.IdentifierService = (*identifierService)(nil)

func (s *identifierService) ResolveCalendar(name string) (domain.Calendar, error) {
	return calendar.Resolve(name, s.defaultCalendar)
}

func (s *identifierService) InvoiceNumber(invoiceType domain.InvoiceType, id int64, effectiveDate time.Time, cal domain.Calendar) string {
	return s.documentNumber(invoiceType.NumberPrefix(), id, effectiveDate, cal)
}

func (s *identifierService) PaymentNumber(direction domain.PaymentDirection, id int64, effectiveDate time.Time, cal domain.Calendar) string {
	return s.documentNumber(direction.NumberPrefix(), id, effectiveDate, cal)
}

func (s *identifierService) documentNumber(prefix string, id int64, effectiveDate time.Time, cal domain.Calendar) string {
	stamp := calendar.DateStamp(cal, effectiveDate.In(s.Location()))
	return fmt.Sprintf("%s-%s-%06d", prefix, stamp, id)
}

func (s *identifierService) TrackingCode() (string, error) {
	suffix, err := utils.SecureHex(trackingCodeRandomBytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate tracking code: %w", err)
	}
	return fmt.Sprintf("TRC-%d-%s", s.Now().Unix(), suffix), nil
}
