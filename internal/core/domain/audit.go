package domain

import "time"

// Entity types recorded in the audit chain by the bookkeeping core.
const (
	EntityInvoice       = "invoice"
	EntityPayment       = "payment"
	EntityFinancialYear = "financial_year"
)

// Audit actions recorded by the bookkeeping core.
const (
	ActionCreate   = "create"
	ActionFinalize = "finalize"
	ActionClose    = "close"
)

// AuditEntry is one link of a per-entity hash chain.
type AuditEntry struct {
	ID           int64     `json:"id"`
	EntityType   string    `json:"entityType"`
	EntityID     string    `json:"entityID"`
	Action       string    `json:"action"`
	Sequence     int64     `json:"sequence"`
	DataHash     string    `json:"dataHash"`
	PreviousHash *string   `json:"previousHash,omitempty"`
	ChainHash    string    `json:"chainHash"`
	Snapshot     string    `json:"snapshot"`
	UserID       *string   `json:"userID,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// ChainVerification is the outcome of walking one entity chain.
// BrokenAt is the zero-based index of the first bad entry, or -1.
type ChainVerification struct {
	Valid          bool   `json:"valid"`
	Message        string `json:"message"`
	BrokenAt       int    `json:"brokenAt"`
	EntriesChecked int    `json:"entriesChecked"`
}

// AuditProof is a notarization export for one entry.
type AuditProof struct {
	EntityType          string    `json:"entity_type"`
	EntityID            string    `json:"entity_id"`
	EntryID             int64     `json:"entry_id"`
	DataHash            string    `json:"data_hash"`
	PreviousHash        *string   `json:"previous_hash"`
	ChainHash           string    `json:"chain_hash"`
	Timestamp           time.Time `json:"timestamp"`
	Action              string    `json:"action"`
	ChainIsValid        bool      `json:"chain_is_valid"`
	ChainMessage        string    `json:"chain_message"`
	TotalEntriesInChain int       `json:"total_entries_in_chain"`
	EntryPosition       int       `json:"entry_position"`
}
