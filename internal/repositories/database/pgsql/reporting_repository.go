package pgsql

import (
	"context"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_core/internal/models"
	"github.com/SscSPs/bookkeeping_core/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// AccountTotals sums both sides of every posting per account. Nil period bounds are open.
func (r *reportingRepository) AccountTotals(ctx context.Context, period domain.PeriodFilter) ([]domain.AccountTotal, error) {
	query := `
		WITH scoped AS (
			SELECT debit_account, credit_account, amount
			FROM ledger_entries
			WHERE ($1::timestamptz IS NULL OR entry_date >= $1)
				AND ($2::timestamptz IS NULL OR entry_date <= $2)
				AND (NOT $3 OR ref_type <> 'closing')
		)
		SELECT account, SUM(debit)::bigint AS debit, SUM(credit)::bigint AS credit
		FROM (
			SELECT debit_account AS account, amount AS debit, 0::bigint AS credit FROM scoped
			UNION ALL
			SELECT credit_account AS account, 0::bigint AS debit, amount AS credit FROM scoped
		) sides
		GROUP BY account
		ORDER BY account
	`
	rows, err := r.db(ctx).Query(ctx, query, period.From, period.To, period.ExcludeClosing)
	if err != nil {
		return nil, mapError(err, "query account totals")
	}
	defer rows.Close()

	var totals []models.AccountTotal
	for rows.Next() {
		var t models.AccountTotal
		if err := rows.Scan(&t.Account, &t.Debit, &t.Credit); err != nil {
			return nil, mapError(err, "scan account total")
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "iterate account totals")
	}
	return mapping.ToDomainAccountTotals(totals), nil
}

// PartyTotals sums the amounts posted for one party per ref type. Closing
// entries never carry a party.
func (r *reportingRepository) PartyTotals(ctx context.Context, partyID string, period domain.PeriodFilter) (map[domain.RefType]int64, error) {
	rows, err := r.db(ctx).Query(ctx, `
		SELECT ref_type, SUM(amount)::bigint AS total
		FROM ledger_entries
		WHERE party_id = $1
			AND ($2::timestamptz IS NULL OR entry_date >= $2)
			AND ($3::timestamptz IS NULL OR entry_date <= $3)
		GROUP BY ref_type
		ORDER BY ref_type`, partyID, period.From, period.To)
	if err != nil {
		return nil, mapError(err, "query party totals")
	}
	defer rows.Close()

	var totals []models.PartyRefTotal
	for rows.Next() {
		var t models.PartyRefTotal
		if err := rows.Scan(&t.RefType, &t.Total); err != nil {
			return nil, mapError(err, "scan party total")
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "iterate party totals")
	}
	return mapping.ToPartyRefTotals(totals), nil
}
