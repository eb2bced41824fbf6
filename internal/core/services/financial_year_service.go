package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
	"github.com/SscSPs/bookkeeping_core/internal/utils/calendar"
)

type financialYearService struct {
	BaseService
	tx         portsrepo.Transactor
	fyRepo     portsrepo.FinancialYearRepositoryFacade
	identifier portssvc.IdentifierService
	ledger     portssvc.LedgerSvcFacade
	audit      portssvc.AuditChainSvc
}

// NewFinancialYearService creates the financial year closer.
func NewFinancialYearService(
	tx portsrepo.Transactor,
	fyRepo portsrepo.FinancialYearRepositoryFacade,
	identifier portssvc.IdentifierService,
	ledger portssvc.LedgerSvcFacade,
	audit portssvc.AuditChainSvc,
	opts ...ServiceOption,
) portssvc.FinancialYearSvcFacade {
	svc := &financialYearService{
		tx:         tx,
		fyRepo:     fyRepo,
		identifier: identifier,
		ledger:     ledger,
		audit:      audit,
	}
	svc.apply(opts)
	return svc
}

var _ portssvc.FinancialYearSvcFacade = (*financialYearService)(nil)

func (s *financialYearService) GetFinancialYear(ctx context.Context, id int64) (*domain.FinancialYear, error) {
	return s.fyRepo.FindFinancialYearByID(ctx, id)
}

func (s *financialYearService) ListFinancialYears(ctx context.Context) ([]domain.FinancialYear, error) {
	return s.fyRepo.ListFinancialYears(ctx)
}

func (s *financialYearService) GetOrCreateCurrent(ctx context.Context, calendarName string) (*domain.FinancialYear, error) {
	cal, err := s.identifier.ResolveCalendar(calendarName)
	if err != nil {
		return nil, err
	}
	now := s.Now()
	year := calendar.YearOf(cal, now)
	start, end := calendar.YearBounds(cal, year, s.Location())

	fy, err := s.fyRepo.EnsureFinancialYear(ctx, domain.FinancialYear{
		Name:      fmt.Sprintf("%s FY %d", cal.Label(), year),
		StartDate: start,
		EndDate:   &end,
		CreatedAt: now,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to ensure current financial year", slog.String("calendar", string(cal)))
		return nil, fmt.Errorf("failed to ensure current financial year: %w", err)
	}
	return fy, nil
}

func (s *financialYearService) CreateFinancialYear(ctx context.Context, req dto.CreateFinancialYearRequest) (*domain.FinancialYear, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("%w: end date is before start date", apperrors.ErrValidation)
	}

	fy := &domain.FinancialYear{
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		CreatedAt: s.Now(),
	}
	if err := s.fyRepo.CreateFinancialYear(ctx, fy); err != nil {
		s.LogError(ctx, err, "Failed to create financial year", slog.String("name", req.Name))
		return nil, err
	}
	s.LogInfo(ctx, "Financial year created", slog.Int64("financial_year_id", fy.ID), slog.String("name", fy.Name))
	return fy, nil
}

// closingPostings turns pre-close balances into the entries that move every
// account other than RetainedEarnings to zero, in chart order.
func closingPostings(fy *domain.FinancialYear, balances map[domain.AccountCode]int64, cutoff time.Time) []domain.LedgerPosting {
	description := "Closing " + fy.Name
	var postings []domain.LedgerPosting
	for _, account := range domain.ChartOfAccounts() {
		if account.Code == domain.AccountRetainedEarnings {
			continue
		}
		bal := balances[account.Code]
		if bal == 0 {
			continue
		}
		posting := domain.LedgerPosting{
			RefType:     domain.RefClosing,
			RefID:       fy.ID,
			Description: &description,
			EntryDate:   cutoff,
		}
		if bal > 0 {
			posting.DebitAccount, posting.CreditAccount, posting.Amount = domain.AccountRetainedEarnings, account.Code, bal
		} else {
			posting.DebitAccount, posting.CreditAccount, posting.Amount = account.Code, domain.AccountRetainedEarnings, -bal
		}
		postings = append(postings, posting)
	}
	return postings
}

func (s *financialYearService) CloseFinancialYear(ctx context.Context, id int64) (*domain.FinancialYear, error) {
	var (
		result        *domain.FinancialYear
		alreadyClosed bool
	)

	err := s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		fy, err := s.fyRepo.FindFinancialYearByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if fy.IsClosed {
			result, alreadyClosed = fy, true
			return nil
		}

		now := s.Now()
		cutoff := now
		if fy.EndDate != nil {
			cutoff = *fy.EndDate
		}

		balances, err := s.ledger.Balances(txCtx, &cutoff)
		if err != nil {
			return fmt.Errorf("failed to compute balances for closing: %w", err)
		}

		for _, posting := range closingPostings(fy, balances, cutoff) {
			if _, err := s.ledger.Post(txCtx, posting); err != nil {
				return fmt.Errorf("%w: closing entry for %s in financial year %d: %w", apperrors.ErrIntegrity, posting.CreditAccount, fy.ID, err)
			}
		}

		swapped, err := s.fyRepo.MarkFinancialYearClosed(txCtx, fy.ID, now, cutoff, balances)
		if err != nil {
			return fmt.Errorf("failed to mark financial year closed: %w", err)
		}
		if !swapped {
			return fmt.Errorf("%w: financial year %d was closed concurrently", apperrors.ErrInvalidState, fy.ID)
		}
		fy.IsClosed = true
		fy.ClosedAt = &now
		fy.EndDate = &cutoff
		fy.OpeningBalances = balances

		snapshot := map[string]any{
			"id":               fy.ID,
			"name":             fy.Name,
			"cutoff":           cutoff.UTC().Format(time.RFC3339Nano),
			"opening_balances": balances,
		}
		if _, err := s.audit.Append(txCtx, domain.EntityFinancialYear, strconv.FormatInt(fy.ID, 10), domain.ActionClose, snapshot); err != nil {
			return fmt.Errorf("%w: audit append for financial year %d: %w", apperrors.ErrIntegrity, fy.ID, err)
		}
		result = fy
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to close financial year", slog.Int64("financial_year_id", id))
		return nil, err
	}

	if alreadyClosed {
		s.LogInfo(ctx, "Financial year already closed, nothing to do", slog.Int64("financial_year_id", id))
	} else {
		s.LogInfo(ctx, "Financial year closed",
			slog.Int64("financial_year_id", id),
			slog.Int("accounts_closed", len(result.OpeningBalances)))
	}
	return result, nil
}
