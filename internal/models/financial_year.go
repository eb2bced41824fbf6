package models

import "time"

// FinancialYear is a row of the financial_years table.
type FinancialYear struct {
	ID              int64            `db:"id" gorm:"primaryKey;autoIncrement"`
	Name            string           `db:"name" gorm:"uniqueIndex;not null;size:100"`
	StartDate       time.Time        `db:"start_date" gorm:"not null"`
	EndDate         *time.Time       `db:"end_date"`
	IsClosed        bool             `db:"is_closed" gorm:"not null;default:false"`
	ClosedAt        *time.Time       `db:"closed_at"`
	OpeningBalances map[string]int64 `db:"opening_balances" gorm:"serializer:json"`
	CreatedAt       time.Time        `db:"created_at" gorm:"not null"`
}

func (FinancialYear) TableName() string { return "financial_years" }
