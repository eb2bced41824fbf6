package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
)

const defaultLedgerPageSize = 50

var (
	ErrUnknownAccount   = fmt.Errorf("%w: account is not in the chart of accounts", apperrors.ErrValidation)
	ErrNonPositiveEntry = fmt.Errorf("%w: ledger amount must be positive", apperrors.ErrValidation)
	ErrPeriodClosed     = fmt.Errorf("%w: entry date falls in a closed financial year", apperrors.ErrInvalidState)
	// ErrAmountOverflow is returned when a line or document total does not fit in int64 minor units.
	ErrAmountOverflow = fmt.Errorf("%w: amount exceeds the supported range", apperrors.ErrValidation)
)

type ledgerService struct {
	BaseService
	ledgerRepo    portsrepo.LedgerRepositoryFacade
	reportingRepo portsrepo.ReportingRepository
	fyRepo        portsrepo.FinancialYearReader
}

// NewLedgerService creates the ledger engine.
func NewLedgerService(
	ledgerRepo portsrepo.LedgerRepositoryFacade,
	reportingRepo portsrepo.ReportingRepository,
	fyRepo portsrepo.FinancialYearReader,
	opts ...ServiceOption,
) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		ledgerRepo:    ledgerRepo,
		reportingRepo: reportingRepo,
		fyRepo:        fyRepo,
	}
	svc.apply(opts)
	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func validatePosting(p domain.LedgerPosting) error {
	if p.Amount <= 0 {
		return fmt.Errorf("%w: got %d", ErrNonPositiveEntry, p.Amount)
	}
	if _, ok := domain.LookupAccount(p.DebitAccount); !ok {
		return fmt.Errorf("%w: debit %q", ErrUnknownAccount, p.DebitAccount)
	}
	if _, ok := domain.LookupAccount(p.CreditAccount); !ok {
		return fmt.Errorf("%w: credit %q", ErrUnknownAccount, p.CreditAccount)
	}
	if p.DebitAccount == p.CreditAccount {
		return fmt.Errorf("%w: debit and credit account are both %q", apperrors.ErrValidation, p.DebitAccount)
	}
	if !p.RefType.Valid() {
		return fmt.Errorf("%w: unknown ref type %q", apperrors.ErrValidation, p.RefType)
	}
	if p.RefID <= 0 {
		return fmt.Errorf("%w: ref id must be positive", apperrors.ErrValidation)
	}
	return nil
}

// Post validates and appends one ledger entry.
func (s *ledgerService) Post(ctx context.Context, posting domain.LedgerPosting) (*domain.LedgerEntry, error) {
	if err := validatePosting(posting); err != nil {
		s.LogError(ctx, err, "Rejected ledger posting",
			slog.String("ref_type", string(posting.RefType)),
			slog.Int64("ref_id", posting.RefID))
		return nil, err
	}

	now := s.Now()
	entryDate := posting.EntryDate
	if entryDate.IsZero() {
		entryDate = now
	}

	closed, err := s.fyRepo.FindClosedFinancialYearCovering(ctx, entryDate)
	if err != nil {
		return nil, fmt.Errorf("failed to check financial year of entry date: %w", err)
	}
	if closed != nil {
		return nil, fmt.Errorf("%w: %s", ErrPeriodClosed, closed.Name)
	}

	entry := &domain.LedgerEntry{
		RefType:       posting.RefType,
		RefID:         posting.RefID,
		EntryDate:     entryDate,
		DebitAccount:  posting.DebitAccount,
		CreditAccount: posting.CreditAccount,
		Amount:        posting.Amount,
		PartyID:       posting.PartyID,
		PartyName:     posting.PartyName,
		Description:   posting.Description,
		TrackingCode:  posting.TrackingCode,
		CreatedAt:     now,
	}
	if err := s.ledgerRepo.AppendEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to append ledger entry",
			slog.String("ref_type", string(posting.RefType)),
			slog.Int64("ref_id", posting.RefID))
		return nil, fmt.Errorf("failed to append ledger entry: %w", err)
	}

	s.LogInfo(ctx, "Ledger entry posted",
		slog.Int64("entry_id", entry.ID),
		slog.String("debit", string(entry.DebitAccount)),
		slog.String("credit", string(entry.CreditAccount)),
		slog.Int64("amount", entry.Amount))
	return entry, nil
}

func (s *ledgerService) Balance(ctx context.Context, account domain.AccountCode, asOf *time.Time) (int64, error) {
	if _, ok := domain.LookupAccount(account); !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownAccount, account)
	}
	totals, err := s.reportingRepo.AccountTotals(ctx, domain.PeriodFilter{To: asOf})
	if err != nil {
		return 0, fmt.Errorf("failed to compute balance of %s: %w", account, err)
	}
	for _, t := range totals {
		if t.Account == account {
			return t.Balance(), nil
		}
	}
	return 0, nil
}

func (s *ledgerService) Balances(ctx context.Context, asOf *time.Time) (map[domain.AccountCode]int64, error) {
	totals, err := s.reportingRepo.AccountTotals(ctx, domain.PeriodFilter{To: asOf})
	if err != nil {
		return nil, fmt.Errorf("failed to compute account balances: %w", err)
	}
	balances := make(map[domain.AccountCode]int64, len(totals))
	for _, t := range totals {
		if b := t.Balance(); b != 0 {
			balances[t.Account] = b
		}
	}
	return balances, nil
}

func (s *ledgerService) ListEntries(ctx context.Context, params dto.ListLedgerEntriesParams) ([]domain.LedgerEntry, *string, error) {
	if err := dto.Validate(params); err != nil {
		return nil, nil, err
	}

	filter := domain.LedgerEntryFilter{RefID: params.RefID}
	if params.RefType != "" {
		refType := domain.RefType(params.RefType)
		filter.RefType = &refType
	}
	if params.TrackingCode != "" {
		filter.TrackingCode = &params.TrackingCode
	}
	if params.Account != "" {
		account := domain.AccountCode(params.Account)
		if _, ok := domain.LookupAccount(account); !ok {
			return nil, nil, fmt.Errorf("%w: %q", ErrUnknownAccount, params.Account)
		}
		filter.Account = &account
	}
	if params.PartyID != "" {
		filter.PartyID = &params.PartyID
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultLedgerPageSize
	}

	entries, next, err := s.ledgerRepo.ListEntries(ctx, filter, limit, params.NextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	return entries, next, nil
}
