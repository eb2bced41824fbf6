package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_core/internal/models"
	"github.com/SscSPs/bookkeeping_core/internal/utils/mapping"
)

type reportingRepository struct {
	BaseRepository
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

func (r *reportingRepository) AccountTotals(ctx context.Context, period domain.PeriodFilter) ([]domain.AccountTotal, error) {
	conds := []string{"1 = 1"}
	var args []any
	if period.From != nil {
		conds = append(conds, "entry_date >= ?")
		args = append(args, utc(*period.From))
	}
	if period.To != nil {
		conds = append(conds, "entry_date <= ?")
		args = append(args, utc(*period.To))
	}
	if period.ExcludeClosing {
		conds = append(conds, "ref_type <> ?")
		args = append(args, string(domain.RefClosing))
	}
	where := strings.Join(conds, " AND ")

	query := fmt.Sprintf(`
		SELECT account, SUM(debit) AS debit, SUM(credit) AS credit
		FROM (
			SELECT debit_account AS account, amount AS debit, 0 AS credit FROM ledger_entries WHERE %[1]s
			UNION ALL
			SELECT credit_account AS account, 0 AS debit, amount AS credit FROM ledger_entries WHERE %[1]s
		) AS sides
		GROUP BY account
		ORDER BY account`, where)

	var totals []models.AccountTotal
	if err := r.db(ctx).Raw(query, append(args, args...)...).Scan(&totals).Error; err != nil {
		return nil, mapError(err, "query account totals")
	}
	return mapping.ToDomainAccountTotals(totals), nil
}

func (r *reportingRepository) PartyTotals(ctx context.Context, partyID string, period domain.PeriodFilter) (map[domain.RefType]int64, error) {
	q := r.db(ctx).Model(&models.LedgerEntry{}).
		Select("ref_type, SUM(amount) AS total").
		Where("party_id = ?", partyID)
	if period.From != nil {
		q = q.Where("entry_date >= ?", utc(*period.From))
	}
	if period.To != nil {
		q = q.Where("entry_date <= ?", utc(*period.To))
	}

	var totals []models.PartyRefTotal
	if err := q.Group("ref_type").Order("ref_type").Scan(&totals).Error; err != nil {
		return nil, mapError(err, "query party totals")
	}
	return mapping.ToPartyRefTotals(totals), nil
}
