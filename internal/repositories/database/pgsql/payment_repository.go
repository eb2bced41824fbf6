package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_core/internal/models"
	"github.com/SscSPs/bookkeeping_core/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

const paymentColumns = `id, payment_number, direction, method, amount, party_id, party_name,
	reference, invoice_id, due_date, note, status, tracking_code, calendar, client_time, server_time, posted_at`

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

func (r *PgxPaymentRepository) findPayment(ctx context.Context, paymentID int64, forUpdate bool) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var m models.Payment
	err := r.db(ctx).QueryRow(ctx, query, paymentID).Scan(
		&m.ID, &m.PaymentNumber, &m.Direction, &m.Method, &m.Amount, &m.PartyID, &m.PartyName,
		&m.Reference, &m.InvoiceID, &m.DueDate, &m.Note, &m.Status, &m.TrackingCode, &m.Calendar,
		&m.ClientTime, &m.ServerTime, &m.PostedAt,
	)
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("payment %d", paymentID))
	}
	payment := mapping.ToDomainPayment(m)
	return &payment, nil
}

func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	return r.findPayment(ctx, paymentID, false)
}

func (r *PgxPaymentRepository) FindPaymentByIDForUpdate(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	return r.findPayment(ctx, paymentID, true)
}

func (r *PgxPaymentRepository) CreatePayment(ctx context.Context, payment *domain.Payment) error {
	m := mapping.ToModelPayment(*payment)
	err := r.db(ctx).QueryRow(ctx, `
		INSERT INTO payments (
			payment_number, direction, method, amount, party_id, party_name, reference,
			invoice_id, due_date, note, status, tracking_code, calendar, client_time, server_time
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`,
		m.PaymentNumber, m.Direction, m.Method, m.Amount, m.PartyID, m.PartyName, m.Reference,
		m.InvoiceID, m.DueDate, m.Note, m.Status, m.TrackingCode, m.Calendar, m.ClientTime, m.ServerTime,
	).Scan(&payment.ID)
	if err != nil {
		return mapError(err, "insert payment")
	}
	return nil
}

func (r *PgxPaymentRepository) SetPaymentNumber(ctx context.Context, paymentID int64, number string) error {
	tag, err := r.db(ctx).Exec(ctx, `UPDATE payments SET payment_number = $2 WHERE id = $1`, paymentID, number)
	if err != nil {
		return mapError(err, "set payment number")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: payment %d", apperrors.ErrNotFound, paymentID)
	}
	return nil
}

func (r *PgxPaymentRepository) MarkPaymentPosted(ctx context.Context, paymentID int64, postedAt time.Time, clientTime *time.Time) (bool, error) {
	tag, err := r.db(ctx).Exec(ctx, `
		UPDATE payments
		SET status = 'posted', posted_at = $2, client_time = COALESCE($3, client_time)
		WHERE id = $1 AND status = 'draft'`,
		paymentID, postedAt, clientTime)
	if err != nil {
		return false, mapError(err, "post payment")
	}
	return tag.RowsAffected() == 1, nil
}
