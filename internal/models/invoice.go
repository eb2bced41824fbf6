package models

import "time"

// Invoice is a row of the invoices table. InvoiceNumber is NULL until the row id is known.
type Invoice struct {
	ID            int64         `db:"id" gorm:"primaryKey;autoIncrement"`
	InvoiceNumber *string       `db:"invoice_number" gorm:"uniqueIndex;size:64"`
	InvoiceType   string        `db:"invoice_type" gorm:"not null;size:16"`
	PartyID       *string       `db:"party_id" gorm:"index;size:128"`
	PartyName     *string       `db:"party_name"`
	Status        string        `db:"status" gorm:"not null;size:16;default:draft"`
	Subtotal      int64         `db:"subtotal" gorm:"not null"`
	Tax           int64         `db:"tax" gorm:"not null"`
	Total         int64         `db:"total" gorm:"not null"`
	TrackingCode  string        `db:"tracking_code" gorm:"index;size:64"`
	Note          *string       `db:"note"`
	Calendar      string        `db:"calendar" gorm:"not null;size:16"`
	ClientTime    *time.Time    `db:"client_time"`
	ServerTime    time.Time     `db:"server_time" gorm:"not null"`
	FinalizedAt   *time.Time    `db:"finalized_at"`
	Items         []InvoiceItem `db:"-" gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
}

func (Invoice) TableName() string { return "invoices" }

// InvoiceItem is a row of the invoice_items table.
type InvoiceItem struct {
	ID          int64   `db:"id" gorm:"primaryKey;autoIncrement"`
	InvoiceID   int64   `db:"invoice_id" gorm:"index;not null"`
	ProductID   *string `db:"product_id" gorm:"index;size:36"`
	Description string  `db:"description" gorm:"not null"`
	Quantity    int64   `db:"quantity" gorm:"not null"`
	Unit        string  `db:"unit" gorm:"size:32"`
	UnitPrice   int64   `db:"unit_price" gorm:"not null"`
	Total       int64   `db:"total" gorm:"not null"`
}

func (InvoiceItem) TableName() string { return "invoice_items" }
