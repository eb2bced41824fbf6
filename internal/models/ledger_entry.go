package models

import "time"

// LedgerEntry is a row of the append-only ledger_entries table.
type LedgerEntry struct {
	ID            int64        `db:"id" gorm:"primaryKey;autoIncrement"`
	RefType       string       `db:"ref_type" gorm:"not null;size:16;index:idx_ledger_ref,priority:1"`
	RefID         int64        `db:"ref_id" gorm:"not null;index:idx_ledger_ref,priority:2"`
	EntryDate     time.Time    `db:"entry_date" gorm:"not null;index"`
	DebitAccount  string       `db:"debit_account" gorm:"not null;size:64;index"`
	CreditAccount string       `db:"credit_account" gorm:"not null;size:64;index"`
	Debit         ChartAccount `db:"-" gorm:"foreignKey:DebitAccount;references:Code"`
	Credit        ChartAccount `db:"-" gorm:"foreignKey:CreditAccount;references:Code"`
	Amount        int64        `db:"amount" gorm:"not null;check:chk_ledger_amount_positive,amount > 0"`
	PartyID       *string      `db:"party_id" gorm:"size:128"`
	PartyName     *string      `db:"party_name"`
	Description   *string      `db:"description"`
	TrackingCode  *string      `db:"tracking_code" gorm:"index;size:64"`
	CreatedAt     time.Time    `db:"created_at" gorm:"not null"`
}

func (LedgerEntry) TableName() string { return "ledger_entries" }

// AccountTotal is the aggregate row returned by turnover queries.
type AccountTotal struct {
	Account string `db:"account"`
	Debit   int64  `db:"debit"`
	Credit  int64  `db:"credit"`
}
