package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_core/internal/models"
	"github.com/SscSPs/bookkeeping_core/internal/utils/mapping"
	"gorm.io/gorm/clause"
)

type GormFinancialYearRepository struct {
	BaseRepository
}

var _ portsrepo.FinancialYearRepositoryFacade = (*GormFinancialYearRepository)(nil)

func toStoredFinancialYear(fy domain.FinancialYear) models.FinancialYear {
	m := mapping.ToModelFinancialYear(fy)
	m.StartDate = utc(m.StartDate)
	m.EndDate = utcPtr(m.EndDate)
	m.ClosedAt = utcPtr(m.ClosedAt)
	m.CreatedAt = utc(m.CreatedAt)
	return m
}

func (r *GormFinancialYearRepository) FindFinancialYearByID(ctx context.Context, id int64) (*domain.FinancialYear, error) {
	var m models.FinancialYear
	if err := r.db(ctx).First(&m, id).Error; err != nil {
		return nil, mapError(err, fmt.Sprintf("financial year %d", id))
	}
	fy := mapping.ToDomainFinancialYear(m)
	return &fy, nil
}

func (r *GormFinancialYearRepository) FindFinancialYearByIDForUpdate(ctx context.Context, id int64) (*domain.FinancialYear, error) {
	return r.FindFinancialYearByID(ctx, id)
}

func (r *GormFinancialYearRepository) ListFinancialYears(ctx context.Context) ([]domain.FinancialYear, error) {
	var ms []models.FinancialYear
	if err := r.db(ctx).Order("start_date, id").Find(&ms).Error; err != nil {
		return nil, mapError(err, "query financial years")
	}
	return mapping.ToDomainFinancialYearSlice(ms), nil
}

func (r *GormFinancialYearRepository) FindClosedFinancialYearCovering(ctx context.Context, t time.Time) (*domain.FinancialYear, error) {
	at := utc(t)
	var ms []models.FinancialYear
	err := r.db(ctx).
		Where("is_closed = ? AND start_date <= ? AND (end_date IS NULL OR end_date >= ?)", true, at, at).
		Order("start_date DESC").
		Limit(1).
		Find(&ms).Error
	if err != nil {
		return nil, mapError(err, "closed financial year lookup")
	}
	if len(ms) == 0 {
		return nil, nil
	}
	fy := mapping.ToDomainFinancialYear(ms[0])
	return &fy, nil
}

func (r *GormFinancialYearRepository) CreateFinancialYear(ctx context.Context, fy *domain.FinancialYear) error {
	m := toStoredFinancialYear(*fy)
	if err := r.db(ctx).Create(&m).Error; err != nil {
		return mapError(err, "insert financial year "+m.Name)
	}
	fy.ID = m.ID
	return nil
}

func (r *GormFinancialYearRepository) EnsureFinancialYear(ctx context.Context, fy domain.FinancialYear) (*domain.FinancialYear, error) {
	m := toStoredFinancialYear(fy)
	err := r.db(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&m).Error
	if err != nil {
		return nil, mapError(err, "ensure financial year "+m.Name)
	}

	var stored models.FinancialYear
	if err := r.db(ctx).Where("name = ?", m.Name).First(&stored).Error; err != nil {
		return nil, mapError(err, "financial year "+m.Name)
	}
	out := mapping.ToDomainFinancialYear(stored)
	return &out, nil
}

func (r *GormFinancialYearRepository) MarkFinancialYearClosed(ctx context.Context, id int64, closedAt, cutoff time.Time, openingBalances map[domain.AccountCode]int64) (bool, error) {
	closed := utc(closedAt)
	// A struct update so the json serializer of opening_balances applies.
	res := r.db(ctx).Model(&models.FinancialYear{}).
		Where("id = ? AND is_closed = ?", id, false).
		Select("is_closed", "closed_at", "opening_balances").
		Updates(models.FinancialYear{
			IsClosed:        true,
			ClosedAt:        &closed,
			OpeningBalances: mapping.ToModelOpeningBalances(openingBalances),
		})
	if res.Error != nil {
		return false, mapError(res.Error, fmt.Sprintf("close financial year %d", id))
	}
	if res.RowsAffected != 1 {
		return false, nil
	}

	end := utc(cutoff)
	err := r.db(ctx).Model(&models.FinancialYear{}).
		Where("id = ? AND end_date IS NULL", id).
		Update("end_date", end).Error
	if err != nil {
		return false, mapError(err, fmt.Sprintf("set end date of financial year %d", id))
	}
	return true, nil
}
