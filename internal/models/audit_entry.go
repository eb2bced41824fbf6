package models

import "time"

// AuditEntry is a row of the audit_entries table. (entity_type, entity_id,
// sequence) is unique so two appends can never claim the same chain slot.
type AuditEntry struct {
	ID           int64     `db:"id" gorm:"primaryKey;autoIncrement"`
	EntityType   string    `db:"entity_type" gorm:"not null;size:64;uniqueIndex:uq_audit_chain_sequence,priority:1"`
	EntityID     string    `db:"entity_id" gorm:"not null;size:128;uniqueIndex:uq_audit_chain_sequence,priority:2"`
	Sequence     int64     `db:"sequence" gorm:"not null;uniqueIndex:uq_audit_chain_sequence,priority:3"`
	Action       string    `db:"action" gorm:"not null;size:64"`
	DataHash     string    `db:"data_hash" gorm:"not null;size:64;index"`
	PreviousHash *string   `db:"previous_hash" gorm:"size:64"`
	ChainHash    string    `db:"chain_hash" gorm:"not null;size:64"`
	Snapshot     string    `db:"snapshot" gorm:"not null"`
	UserID       *string   `db:"user_id" gorm:"size:128"`
	Timestamp    time.Time `db:"timestamp" gorm:"not null"`
}

func (AuditEntry) TableName() string { return "audit_entries" }
