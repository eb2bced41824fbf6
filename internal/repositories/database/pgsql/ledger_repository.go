package pgsql

import (
	"context"
	"strconv"
	"strings"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_core/internal/models"
	"github.com/SscSPs/bookkeeping_core/internal/utils/mapping"
	"github.com/SscSPs/bookkeeping_core/internal/utils/pagination"
	"github.com/jackc/pgx/v5/pgxpool"
)

const ledgerColumns = `id, ref_type, ref_id, entry_date, debit_account, credit_account, amount,
	party_id, party_name, description, tracking_code, created_at`

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a repository over the append-only ledger_entries table.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// AppendEntry inserts one posting and fills in its ID.
func (r *PgxLedgerRepository) AppendEntry(ctx context.Context, entry *domain.LedgerEntry) error {
	m := mapping.ToModelLedgerEntry(*entry)
	err := r.db(ctx).QueryRow(ctx, `
		INSERT INTO ledger_entries (
			ref_type, ref_id, entry_date, debit_account, credit_account, amount,
			party_id, party_name, description, tracking_code, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`,
		m.RefType, m.RefID, m.EntryDate, m.DebitAccount, m.CreditAccount, m.Amount,
		m.PartyID, m.PartyName, m.Description, m.TrackingCode, m.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		return mapError(err, "insert ledger entry")
	}
	return nil
}

// ListEntries pages through entries in id order. The token carries the last id served.
func (r *PgxLedgerRepository) ListEntries(ctx context.Context, filter domain.LedgerEntryFilter, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	if limit <= 0 {
		limit = 50
	}
	afterID, err := pagination.DecodeCursor(nextToken)
	if err != nil {
		return nil, nil, err
	}

	args := []any{afterID}
	where := []string{"id > $1"}
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}
	if filter.RefType != nil {
		where = append(where, "ref_type = "+arg(string(*filter.RefType)))
	}
	if filter.RefID != nil {
		where = append(where, "ref_id = "+arg(*filter.RefID))
	}
	if filter.TrackingCode != nil {
		where = append(where, "tracking_code = "+arg(*filter.TrackingCode))
	}
	if filter.Account != nil {
		p := arg(string(*filter.Account))
		where = append(where, "(debit_account = "+p+" OR credit_account = "+p+")")
	}
	if filter.PartyID != nil {
		where = append(where, "party_id = "+arg(*filter.PartyID))
	}

	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE ` +
		strings.Join(where, " AND ") + ` ORDER BY id LIMIT ` + arg(limit)

	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, nil, mapError(err, "query ledger entries")
	}
	defer rows.Close()

	var entries []models.LedgerEntry
	var ids []int64
	for rows.Next() {
		var m models.LedgerEntry
		if err := rows.Scan(
			&m.ID, &m.RefType, &m.RefID, &m.EntryDate, &m.DebitAccount, &m.CreditAccount, &m.Amount,
			&m.PartyID, &m.PartyName, &m.Description, &m.TrackingCode, &m.CreatedAt,
		); err != nil {
			return nil, nil, mapError(err, "scan ledger entry")
		}
		entries = append(entries, m)
		ids = append(ids, m.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, mapError(err, "iterate ledger entries")
	}

	return mapping.ToDomainLedgerEntrySlice(entries), pagination.NextToken(ids, limit), nil
}
