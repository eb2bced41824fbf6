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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const invoiceColumns = `id, invoice_number, invoice_type, party_id, party_name, status,
	subtotal, tax, total, tracking_code, note, calendar, client_time, server_time, finalized_at`

type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.ID, &m.InvoiceNumber, &m.InvoiceType, &m.PartyID, &m.PartyName, &m.Status,
		&m.Subtotal, &m.Tax, &m.Total, &m.TrackingCode, &m.Note, &m.Calendar,
		&m.ClientTime, &m.ServerTime, &m.FinalizedAt,
	)
	return m, err
}

func (r *PgxInvoiceRepository) findInvoice(ctx context.Context, invoiceID int64, forUpdate bool) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	m, err := scanInvoice(r.db(ctx).QueryRow(ctx, query, invoiceID))
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("invoice %d", invoiceID))
	}

	rows, err := r.db(ctx).Query(ctx, `
		SELECT id, invoice_id, product_id, description, quantity, unit, unit_price, total
		FROM invoice_items WHERE invoice_id = $1 ORDER BY id`, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("error querying invoice items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it models.InvoiceItem
		if err := rows.Scan(&it.ID, &it.InvoiceID, &it.ProductID, &it.Description, &it.Quantity, &it.Unit, &it.UnitPrice, &it.Total); err != nil {
			return nil, fmt.Errorf("error scanning invoice item: %w", err)
		}
		m.Items = append(m.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice items: %w", err)
	}

	invoice := mapping.ToDomainInvoice(m)
	return &invoice, nil
}

// FindInvoiceByID retrieves an invoice with its items.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID int64) (*domain.Invoice, error) {
	return r.findInvoice(ctx, invoiceID, false)
}

// FindInvoiceByIDForUpdate retrieves an invoice and locks its row for the rest of the transaction.
func (r *PgxInvoiceRepository) FindInvoiceByIDForUpdate(ctx context.Context, invoiceID int64) (*domain.Invoice, error) {
	return r.findInvoice(ctx, invoiceID, true)
}

// CreateInvoice inserts the invoice header and its items.
func (r *PgxInvoiceRepository) CreateInvoice(ctx context.Context, invoice *domain.Invoice) error {
	m := mapping.ToModelInvoice(*invoice)
	q := r.db(ctx)

	err := q.QueryRow(ctx, `
		INSERT INTO invoices (
			invoice_number, invoice_type, party_id, party_name, status,
			subtotal, tax, total, tracking_code, note, calendar, client_time, server_time
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`,
		m.InvoiceNumber, m.InvoiceType, m.PartyID, m.PartyName, m.Status,
		m.Subtotal, m.Tax, m.Total, m.TrackingCode, m.Note, m.Calendar, m.ClientTime, m.ServerTime,
	).Scan(&invoice.ID)
	if err != nil {
		return mapError(err, "insert invoice")
	}

	if len(m.Items) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	itemQuery := `
		INSERT INTO invoice_items (invoice_id, product_id, description, quantity, unit, unit_price, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	for _, it := range m.Items {
		batch.Queue(itemQuery, invoice.ID, it.ProductID, it.Description, it.Quantity, it.Unit, it.UnitPrice, it.Total)
	}
	br := q.SendBatch(ctx, batch)
	defer br.Close()
	for i := range invoice.Items {
		if err := br.QueryRow().Scan(&invoice.Items[i].ID); err != nil {
			return mapError(err, fmt.Sprintf("insert invoice item %d", i))
		}
		invoice.Items[i].InvoiceID = invoice.ID
	}
	return br.Close()
}

// SetInvoiceNumber stores the number derived from the row id.
func (r *PgxInvoiceRepository) SetInvoiceNumber(ctx context.Context, invoiceID int64, number string) error {
	tag, err := r.db(ctx).Exec(ctx, `UPDATE invoices SET invoice_number = $2 WHERE id = $1`, invoiceID, number)
	if err != nil {
		return mapError(err, "set invoice number")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: invoice %d", apperrors.ErrNotFound, invoiceID)
	}
	return nil
}

// MarkInvoiceFinal flips a draft to final; it reports false when the row was not a draft.
func (r *PgxInvoiceRepository) MarkInvoiceFinal(ctx context.Context, invoiceID int64, finalizedAt time.Time, clientTime *time.Time) (bool, error) {
	tag, err := r.db(ctx).Exec(ctx, `
		UPDATE invoices
		SET status = 'final', finalized_at = $2, client_time = COALESCE($3, client_time)
		WHERE id = $1 AND status = 'draft'`,
		invoiceID, finalizedAt, clientTime)
	if err != nil {
		return false, mapError(err, "finalize invoice")
	}
	return tag.RowsAffected() == 1, nil
}
