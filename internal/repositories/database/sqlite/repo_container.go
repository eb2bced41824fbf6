package sqlite

import (
	"fmt"

	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_core/internal/models"
	"github.com/SscSPs/bookkeeping_core/internal/utils/mapping"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NewRepositoryProvider wires every repository port onto one gorm database.
func NewRepositoryProvider(db *gorm.DB) portsrepo.RepositoryProvider {
	base := BaseRepository{DB: db}
	return portsrepo.RepositoryProvider{
		Transactor:        &gormTransactor{BaseRepository: base},
		InvoiceRepo:       &GormInvoiceRepository{BaseRepository: base},
		PaymentRepo:       &GormPaymentRepository{BaseRepository: base},
		ProductRepo:       &GormProductRepository{BaseRepository: base},
		PersonRepo:        &GormPersonRepository{BaseRepository: base},
		LedgerRepo:        &GormLedgerRepository{BaseRepository: base},
		ReportingRepo:     &reportingRepository{BaseRepository: base},
		FinancialYearRepo: &GormFinancialYearRepository{BaseRepository: base},
		AuditRepo:         &GormAuditRepository{BaseRepository: base},
	}
}

// Migrate creates the schema from the models and seeds the chart of accounts.
func Migrate(db *gorm.DB) error {
	modelsToMigrate := []any{
		&models.ChartAccount{}, &models.Product{}, &models.Person{}, &models.Invoice{}, &models.InvoiceItem{},
		&models.Payment{}, &models.LedgerEntry{}, &models.FinancialYear{}, &models.AuditEntry{},
	}
	for _, m := range modelsToMigrate {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("automigrate %T: %w", m, err)
		}
	}

	chart := mapping.ChartAccountModels()
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&chart).Error; err != nil {
		return fmt.Errorf("seed chart of accounts: %w", err)
	}
	return nil
}
