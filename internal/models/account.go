package models

// ChartAccount is a row of the chart_of_accounts table. Ledger entries reference it by code.
type ChartAccount struct {
	Code        string `db:"code" gorm:"primaryKey;size:64"`
	Name        string `db:"name" gorm:"not null"`
	AccountType string `db:"account_type" gorm:"not null;size:16"`
}

func (ChartAccount) TableName() string { return "chart_of_accounts" }
