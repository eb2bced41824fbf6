package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_core/internal/models"
	"github.com/SscSPs/bookkeeping_core/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const financialYearColumns = `id, name, start_date, end_date, is_closed, closed_at, opening_balances, created_at`

type PgxFinancialYearRepository struct {
	BaseRepository
}

func newPgxFinancialYearRepository(pool *pgxpool.Pool) portsrepo.FinancialYearRepositoryFacade {
	return &PgxFinancialYearRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.FinancialYearRepositoryFacade = (*PgxFinancialYearRepository)(nil)

func scanFinancialYear(row pgx.Row) (models.FinancialYear, error) {
	var m models.FinancialYear
	err := row.Scan(&m.ID, &m.Name, &m.StartDate, &m.EndDate, &m.IsClosed, &m.ClosedAt, &m.OpeningBalances, &m.CreatedAt)
	return m, err
}

func (r *PgxFinancialYearRepository) findOne(ctx context.Context, what, where string, args ...any) (*domain.FinancialYear, error) {
	m, err := scanFinancialYear(r.db(ctx).QueryRow(ctx, `SELECT `+financialYearColumns+` FROM financial_years `+where, args...))
	if err != nil {
		return nil, mapError(err, what)
	}
	fy := mapping.ToDomainFinancialYear(m)
	return &fy, nil
}

func (r *PgxFinancialYearRepository) FindFinancialYearByID(ctx context.Context, id int64) (*domain.FinancialYear, error) {
	return r.findOne(ctx, fmt.Sprintf("financial year %d", id), `WHERE id = $1`, id)
}

func (r *PgxFinancialYearRepository) FindFinancialYearByIDForUpdate(ctx context.Context, id int64) (*domain.FinancialYear, error) {
	return r.findOne(ctx, fmt.Sprintf("financial year %d", id), `WHERE id = $1 FOR UPDATE`, id)
}

func (r *PgxFinancialYearRepository) ListFinancialYears(ctx context.Context) ([]domain.FinancialYear, error) {
	rows, err := r.db(ctx).Query(ctx, `SELECT `+financialYearColumns+` FROM financial_years ORDER BY start_date, id`)
	if err != nil {
		return nil, mapError(err, "query financial years")
	}
	defer rows.Close()

	var years []models.FinancialYear
	for rows.Next() {
		m, err := scanFinancialYear(rows)
		if err != nil {
			return nil, mapError(err, "scan financial year")
		}
		years = append(years, m)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "iterate financial years")
	}
	return mapping.ToDomainFinancialYearSlice(years), nil
}

// FindClosedFinancialYearCovering returns nil, nil when t is outside every closed year.
// The open years covering t are locked FOR SHARE as well: a close holding
// FOR UPDATE makes this wait and the re-read row then shows is_closed.
func (r *PgxFinancialYearRepository) FindClosedFinancialYearCovering(ctx context.Context, t time.Time) (*domain.FinancialYear, error) {
	rows, err := r.db(ctx).Query(ctx, `
		SELECT `+financialYearColumns+`
		FROM financial_years
		WHERE start_date <= $1 AND (end_date IS NULL OR end_date >= $1)
		ORDER BY start_date DESC, id
		FOR SHARE`, t)
	if err != nil {
		return nil, mapError(err, "closed financial year lookup")
	}
	defer rows.Close()

	var closed *models.FinancialYear
	for rows.Next() {
		m, err := scanFinancialYear(rows)
		if err != nil {
			return nil, mapError(err, "scan financial year")
		}
		if m.IsClosed && closed == nil {
			closed = &m
		}
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "closed financial year lookup")
	}
	if closed == nil {
		return nil, nil
	}
	fy := mapping.ToDomainFinancialYear(*closed)
	return &fy, nil
}

func (r *PgxFinancialYearRepository) CreateFinancialYear(ctx context.Context, fy *domain.FinancialYear) error {
	m := mapping.ToModelFinancialYear(*fy)
	err := r.db(ctx).QueryRow(ctx, `
		INSERT INTO financial_years (name, start_date, end_date, is_closed, created_at)
		VALUES ($1, $2, $3, false, $4)
		RETURNING id`,
		m.Name, m.StartDate, m.EndDate, m.CreatedAt,
	).Scan(&fy.ID)
	if err != nil {
		return mapError(err, "insert financial year "+m.Name)
	}
	return nil
}

// EnsureFinancialYear is safe to race: the loser of the insert reads the winner's row.
func (r *PgxFinancialYearRepository) EnsureFinancialYear(ctx context.Context, fy domain.FinancialYear) (*domain.FinancialYear, error) {
	m := mapping.ToModelFinancialYear(fy)
	_, err := r.db(ctx).Exec(ctx, `
		INSERT INTO financial_years (name, start_date, end_date, is_closed, created_at)
		VALUES ($1, $2, $3, false, $4)
		ON CONFLICT (name) DO NOTHING`,
		m.Name, m.StartDate, m.EndDate, m.CreatedAt)
	if err != nil {
		return nil, mapError(err, "ensure financial year "+m.Name)
	}
	return r.findOne(ctx, "financial year "+m.Name, `WHERE name = $1`, m.Name)
}

func (r *PgxFinancialYearRepository) MarkFinancialYearClosed(ctx context.Context, id int64, closedAt, cutoff time.Time, openingBalances map[domain.AccountCode]int64) (bool, error) {
	tag, err := r.db(ctx).Exec(ctx, `
		UPDATE financial_years
		SET is_closed = true, closed_at = $2, opening_balances = $3, end_date = COALESCE(end_date, $4)
		WHERE id = $1 AND NOT is_closed`,
		id, closedAt, mapping.ToModelOpeningBalances(openingBalances), cutoff)
	if err != nil {
		return false, mapError(err, fmt.Sprintf("close financial year %d", id))
	}
	return tag.RowsAffected() == 1, nil
}
