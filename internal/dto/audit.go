package dto

import (
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
)

// AppendAuditEntryRequest records an action on an arbitrary tracked entity.
type AppendAuditEntryRequest struct {
	EntityType string         `json:"entityType" binding:"required,max=64"`
	EntityID   string         `json:"entityID" binding:"required,max=128"`
	Action     string         `json:"action" binding:"required,max=64"`
	Snapshot   map[string]any `json:"snapshot" binding:"required"`
}

// AuditEntryResponse defines the data returned for one chain link.
type AuditEntryResponse struct {
	ID           int64     `json:"id"`
	EntityType   string    `json:"entityType"`
	EntityID     string    `json:"entityID"`
	Action       string    `json:"action"`
	Sequence     int64     `json:"sequence"`
	DataHash     string    `json:"dataHash"`
	PreviousHash *string   `json:"previousHash,omitempty"`
	ChainHash    string    `json:"chainHash"`
	UserID       *string   `json:"userID,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// ToAuditEntryResponse converts a domain.AuditEntry to its response DTO.
func ToAuditEntryResponse(e *domain.AuditEntry) AuditEntryResponse {
	return AuditEntryResponse{
		ID:           e.ID,
		EntityType:   e.EntityType,
		EntityID:     e.EntityID,
		Action:       e.Action,
		Sequence:     e.Sequence,
		DataHash:     e.DataHash,
		PreviousHash: e.PreviousHash,
		ChainHash:    e.ChainHash,
		UserID:       e.UserID,
		Timestamp:    e.Timestamp,
	}
}

// VerifyChainResponse reports the result of a chain walk.
type VerifyChainResponse struct {
	EntityType     string `json:"entityType"`
	EntityID       string `json:"entityID"`
	Valid          bool   `json:"valid"`
	Message        string `json:"message"`
	BrokenAt       *int   `json:"brokenAt,omitempty"`
	EntriesChecked int    `json:"entriesChecked"`
}

// ToVerifyChainResponse converts a chain verification; BrokenAt is omitted for valid chains.
func ToVerifyChainResponse(entityType, entityID string, v *domain.ChainVerification) VerifyChainResponse {
	resp := VerifyChainResponse{
		EntityType:     entityType,
		EntityID:       entityID,
		Valid:          v.Valid,
		Message:        v.Message,
		EntriesChecked: v.EntriesChecked,
	}
	if v.BrokenAt >= 0 {
		brokenAt := v.BrokenAt
		resp.BrokenAt = &brokenAt
	}
	return resp
}
