package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/robfig/cron/v3"
)

// jobTimeout bounds a single run of a scheduled job.
const jobTimeout = time.Minute

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron     *cron.Cron
	fy       portssvc.FinancialYearWriterSvc
	calendar string
	logger   *slog.Logger
}

// NewScheduler registers the financial year job on spec, evaluated in loc.
func NewScheduler(fy portssvc.FinancialYearWriterSvc, calendar, spec string, loc *time.Location, logger *slog.Logger) (*Scheduler, error) {
	if loc == nil {
		loc = time.UTC
	}
	s := &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		fy:       fy,
		calendar: calendar,
		logger:   logger,
	}
	if _, err := s.cron.AddFunc(spec, s.EnsureCurrentFinancialYear); err != nil {
		return nil, fmt.Errorf("failed to register financial year job: %w", err)
	}
	return s, nil
}

// EnsureCurrentFinancialYear makes sure a financial year exists for today so
// the first posting of a new year does not pay for its creation.
func (s *Scheduler) EnsureCurrentFinancialYear() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	fy, err := s.fy.GetOrCreateCurrent(ctx, s.calendar)
	if err != nil {
		s.logger.Error("Failed to ensure current financial year", slog.String("error", err.Error()))
		return
	}
	s.logger.Info("Current financial year ensured",
		slog.Int64("financial_year_id", fy.ID),
		slog.String("name", fy.Name))
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	s.logger.Info("Starting cron scheduler...", slog.Int("jobs", len(s.cron.Entries())))
	s.cron.Start()
}

// Stop waits for running jobs and stops the scheduler.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Cron scheduler stopped")
}
