package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_core/internal/models"
	"github.com/SscSPs/bookkeeping_core/internal/utils/mapping"
	"gorm.io/gorm"
)

type GormInvoiceRepository struct {
	BaseRepository
}

var _ portsrepo.InvoiceRepositoryFacade = (*GormInvoiceRepository)(nil)

func (r *GormInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID int64) (*domain.Invoice, error) {
	var m models.Invoice
	err := r.db(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&m, invoiceID).Error
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("invoice %d", invoiceID))
	}
	invoice := mapping.ToDomainInvoice(m)
	return &invoice, nil
}

// FindInvoiceByIDForUpdate needs no row lock: the single connection already
// serialises transactions.
func (r *GormInvoiceRepository) FindInvoiceByIDForUpdate(ctx context.Context, invoiceID int64) (*domain.Invoice, error) {
	return r.FindInvoiceByID(ctx, invoiceID)
}

func (r *GormInvoiceRepository) CreateInvoice(ctx context.Context, invoice *domain.Invoice) error {
	m := mapping.ToModelInvoice(*invoice)
	m.ServerTime = utc(m.ServerTime)
	m.ClientTime = utcPtr(m.ClientTime)
	m.FinalizedAt = utcPtr(m.FinalizedAt)

	// Items are inserted through the has-many association.
	if err := r.db(ctx).Create(&m).Error; err != nil {
		return mapError(err, "insert invoice")
	}
	invoice.ID = m.ID
	for i := range invoice.Items {
		invoice.Items[i].ID = m.Items[i].ID
		invoice.Items[i].InvoiceID = m.ID
	}
	return nil
}

func (r *GormInvoiceRepository) SetInvoiceNumber(ctx context.Context, invoiceID int64, number string) error {
	res := r.db(ctx).Model(&models.Invoice{}).Where("id = ?", invoiceID).Update("invoice_number", number)
	if res.Error != nil {
		return mapError(res.Error, "set invoice number")
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: invoice %d", apperrors.ErrNotFound, invoiceID)
	}
	return nil
}

func (r *GormInvoiceRepository) MarkInvoiceFinal(ctx context.Context, invoiceID int64, finalizedAt time.Time, clientTime *time.Time) (bool, error) {
	updates := map[string]any{
		"status":       string(domain.InvoiceFinal),
		"finalized_at": utc(finalizedAt),
	}
	if clientTime != nil {
		updates["client_time"] = utc(*clientTime)
	}
	res := r.db(ctx).Model(&models.Invoice{}).
		Where("id = ? AND status = ?", invoiceID, string(domain.InvoiceDraft)).
		Updates(updates)
	if res.Error != nil {
		return false, mapError(res.Error, "finalize invoice")
	}
	return res.RowsAffected == 1, nil
}
