package pgsql_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_core/internal/repositories/database/pgsql"
	"github.com/SscSPs/bookkeeping_core/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
)

const testDatabaseURLEnv = "BOOKKEEPING_TEST_DATABASE_URL"

// blockedFor is how long a waiting transaction must stay blocked before the
// lock holder is released.
const blockedFor = 300 * time.Millisecond

type FinancialYearLockTestSuite struct {
	suite.Suite
	pool  *pgxpool.Pool
	repos portsrepo.RepositoryProvider
	ctx   context.Context
	fy    *domain.FinancialYear
}

func TestFinancialYearLockTestSuite(t *testing.T) {
	suite.Run(t, new(FinancialYearLockTestSuite))
}

func (suite *FinancialYearLockTestSuite) SetupSuite() {
	url := os.Getenv(testDatabaseURLEnv)
	if url == "" {
		suite.T().Skipf("Skipping PostgreSQL tests: %s is not set", testDatabaseURLEnv)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.Require().NoError(database.RunMigrations(url, "file://../../../../migrations", logger))

	suite.ctx = context.Background()
	pool, err := database.NewPgxPool(suite.ctx, url, true)
	suite.Require().NoError(err)
	suite.pool = pool
	suite.repos = pgsql.NewRepositoryProvider(pool)
}

func (suite *FinancialYearLockTestSuite) TearDownSuite() {
	if suite.pool != nil {
		database.ClosePgxPool(suite.pool)
	}
}

// SetupTest creates a year far away from any other data so the lookups below
// only ever see it.
func (suite *FinancialYearLockTestSuite) SetupTest() {
	end := time.Date(1990, 12, 31, 23, 59, 59, 0, time.UTC)
	suite.fy = &domain.FinancialYear{
		Name:      fmt.Sprintf("Lock test %d", time.Now().UnixNano()),
		StartDate: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   &end,
		CreatedAt: time.Now(),
	}
	suite.Require().NoError(suite.repos.FinancialYearRepo.CreateFinancialYear(suite.ctx, suite.fy))
}

func (suite *FinancialYearLockTestSuite) TearDownTest() {
	_, err := suite.pool.Exec(suite.ctx, `DELETE FROM financial_years WHERE id = $1`, suite.fy.ID)
	suite.NoError(err)
}

func (suite *FinancialYearLockTestSuite) entryDate() time.Time {
	return time.Date(1990, 6, 1, 12, 0, 0, 0, time.UTC)
}

func (suite *FinancialYearLockTestSuite) TestPostingWaitsForCloseAndSeesItClosed() {
	fyRepo := suite.repos.FinancialYearRepo
	locked := make(chan struct{})
	release := make(chan struct{})
	closeDone := make(chan error, 1)

	go func() {
		closeDone <- suite.repos.Transactor.WithinTx(suite.ctx, func(txCtx context.Context) error {
			if _, err := fyRepo.FindFinancialYearByIDForUpdate(txCtx, suite.fy.ID); err != nil {
				return err
			}
			close(locked)
			<-release
			_, err := fyRepo.MarkFinancialYearClosed(txCtx, suite.fy.ID, time.Now(), *suite.fy.EndDate, map[domain.AccountCode]int64{})
			return err
		})
	}()
	<-locked

	type lookup struct {
		fy  *domain.FinancialYear
		err error
	}
	postDone := make(chan lookup, 1)
	go func() {
		var res lookup
		res.err = suite.repos.Transactor.WithinTx(suite.ctx, func(txCtx context.Context) error {
			var err error
			res.fy, err = fyRepo.FindClosedFinancialYearCovering(txCtx, suite.entryDate())
			return err
		})
		postDone <- res
	}()

	select {
	case <-postDone:
		suite.FailNow("closed-period check did not wait for the close")
	case <-time.After(blockedFor):
	}

	close(release)
	suite.Require().NoError(<-closeDone)
	res := <-postDone
	suite.Require().NoError(res.err)
	suite.Require().NotNil(res.fy)
	suite.Equal(suite.fy.ID, res.fy.ID)
	suite.True(res.fy.IsClosed)
}

func (suite *FinancialYearLockTestSuite) TestCloseWaitsForInFlightPosting() {
	fyRepo := suite.repos.FinancialYearRepo
	checked := make(chan struct{})
	release := make(chan struct{})
	postDone := make(chan error, 1)

	go func() {
		postDone <- suite.repos.Transactor.WithinTx(suite.ctx, func(txCtx context.Context) error {
			closed, err := fyRepo.FindClosedFinancialYearCovering(txCtx, suite.entryDate())
			if err != nil {
				return err
			}
			if closed != nil {
				return fmt.Errorf("year unexpectedly closed: %s", closed.Name)
			}
			close(checked)
			<-release
			return nil
		})
	}()
	<-checked

	closeDone := make(chan error, 1)
	go func() {
		closeDone <- suite.repos.Transactor.WithinTx(suite.ctx, func(txCtx context.Context) error {
			_, err := fyRepo.FindFinancialYearByIDForUpdate(txCtx, suite.fy.ID)
			return err
		})
	}()

	select {
	case <-closeDone:
		suite.FailNow("close acquired the year while a posting held it")
	case <-time.After(blockedFor):
	}

	close(release)
	suite.Require().NoError(<-postDone)
	suite.Require().NoError(<-closeDone)
}

func (suite *FinancialYearLockTestSuite) TestCloseOfOpenEndedYearStoresCutoff() {
	open := &domain.FinancialYear{
		Name:      fmt.Sprintf("Open lock test %d", time.Now().UnixNano()),
		StartDate: time.Date(1991, 1, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Now(),
	}
	suite.Require().NoError(suite.repos.FinancialYearRepo.CreateFinancialYear(suite.ctx, open))
	defer func() {
		_, err := suite.pool.Exec(suite.ctx, `DELETE FROM financial_years WHERE id = $1`, open.ID)
		suite.NoError(err)
	}()

	cutoff := time.Date(1991, 3, 10, 12, 0, 0, 0, time.UTC)
	swapped, err := suite.repos.FinancialYearRepo.MarkFinancialYearClosed(suite.ctx, open.ID, cutoff, cutoff, map[domain.AccountCode]int64{})
	suite.Require().NoError(err)
	suite.True(swapped)

	stored, err := suite.repos.FinancialYearRepo.FindFinancialYearByID(suite.ctx, open.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(stored.EndDate)
	suite.True(stored.EndDate.Equal(cutoff))

	after, err := suite.repos.FinancialYearRepo.FindClosedFinancialYearCovering(suite.ctx, cutoff.Add(time.Hour))
	suite.Require().NoError(err)
	suite.Nil(after)
}
