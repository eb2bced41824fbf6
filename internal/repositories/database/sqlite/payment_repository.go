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
	"gorm.io/gorm/clause"
)

type GormPaymentRepository struct {
	BaseRepository
}

var _ portsrepo.PaymentRepositoryFacade = (*GormPaymentRepository)(nil)

func (r *GormPaymentRepository) FindPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	var m models.Payment
	if err := r.db(ctx).First(&m, paymentID).Error; err != nil {
		return nil, mapError(err, fmt.Sprintf("payment %d", paymentID))
	}
	payment := mapping.ToDomainPayment(m)
	return &payment, nil
}

func (r *GormPaymentRepository) FindPaymentByIDForUpdate(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	return r.FindPaymentByID(ctx, paymentID)
}

func (r *GormPaymentRepository) CreatePayment(ctx context.Context, payment *domain.Payment) error {
	m := mapping.ToModelPayment(*payment)
	m.ServerTime = utc(m.ServerTime)
	m.ClientTime = utcPtr(m.ClientTime)
	m.DueDate = utcPtr(m.DueDate)
	m.PostedAt = utcPtr(m.PostedAt)

	if err := r.db(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return mapError(err, "insert payment")
	}
	payment.ID = m.ID
	return nil
}

func (r *GormPaymentRepository) SetPaymentNumber(ctx context.Context, paymentID int64, number string) error {
	res := r.db(ctx).Model(&models.Payment{}).Where("id = ?", paymentID).Update("payment_number", number)
	if res.Error != nil {
		return mapError(res.Error, "set payment number")
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: payment %d", apperrors.ErrNotFound, paymentID)
	}
	return nil
}

func (r *GormPaymentRepository) MarkPaymentPosted(ctx context.Context, paymentID int64, postedAt time.Time, clientTime *time.Time) (bool, error) {
	updates := map[string]any{
		"status":    string(domain.PaymentPosted),
		"posted_at": utc(postedAt),
	}
	if clientTime != nil {
		updates["client_time"] = utc(*clientTime)
	}
	res := r.db(ctx).Model(&models.Payment{}).
		Where("id = ? AND status = ?", paymentID, string(domain.PaymentDraft)).
		Updates(updates)
	if res.Error != nil {
		return false, mapError(res.Error, "post payment")
	}
	return res.RowsAffected == 1, nil
}
