package models

import "time"

// Payment is a row of the payments table.
type Payment struct {
	ID            int64      `db:"id" gorm:"primaryKey;autoIncrement"`
	PaymentNumber *string    `db:"payment_number" gorm:"uniqueIndex;size:64"`
	Direction     string     `db:"direction" gorm:"not null;size:8"`
	Method        string     `db:"method" gorm:"not null;size:16"`
	Amount        int64      `db:"amount" gorm:"not null"`
	PartyID       *string    `db:"party_id" gorm:"index;size:128"`
	PartyName     *string    `db:"party_name"`
	Reference     *string    `db:"reference" gorm:"size:128"`
	InvoiceID     *int64     `db:"invoice_id" gorm:"index"`
	Invoice       *Invoice   `db:"-" gorm:"foreignKey:InvoiceID;constraint:OnDelete:SET NULL"`
	DueDate       *time.Time `db:"due_date"`
	Note          *string    `db:"note"`
	Status        string     `db:"status" gorm:"not null;size:16;default:draft"`
	TrackingCode  string     `db:"tracking_code" gorm:"index;size:64"`
	Calendar      string     `db:"calendar" gorm:"not null;size:16"`
	ClientTime    *time.Time `db:"client_time"`
	ServerTime    time.Time  `db:"server_time" gorm:"not null"`
	PostedAt      *time.Time `db:"posted_at"`
}

func (Payment) TableName() string { return "payments" }
