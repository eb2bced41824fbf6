package dto

import (
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/SscSPs/bookkeeping_core/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateInvoiceItemRequest is one line of a new invoice. Prices are minor units.
type CreateInvoiceItemRequest struct {
	ProductID   *string `json:"productID" binding:"omitempty,min=1"`
	Description string  `json:"description" binding:"required"`
	Quantity    int64   `json:"quantity" binding:"gt=0"`
	Unit        string  `json:"unit"`
	UnitPrice   int64   `json:"unitPrice" binding:"gte=0"`
}

// CreateInvoiceRequest defines the data needed to create a draft invoice.
type CreateInvoiceRequest struct {
	InvoiceType  string                     `json:"invoiceType" binding:"required,oneof=sale purchase"`
	PartyID      *string                    `json:"partyID"`
	PartyName    *string                    `json:"partyName"`
	Items        []CreateInvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
	TrackingCode *string                    `json:"trackingCode" binding:"omitempty,max=64"`
	Note         *string                    `json:"note"`
	ClientTime   *time.Time                 `json:"clientTime"`
	Calendar     string                     `json:"calendar" binding:"omitempty,oneof=gregorian jalali"`
}

// FinalizeRequest carries the optional client-side timestamp of a finalize action.
type FinalizeRequest struct {
	ClientTime *time.Time `json:"clientTime"`
}

// InvoiceItemResponse defines the data returned for an invoice line.
type InvoiceItemResponse struct {
	ID          int64           `json:"id"`
	ProductID   *string         `json:"productID,omitempty"`
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity"`
	Unit        string          `json:"unit"`
	UnitPrice   int64           `json:"unitPrice"`
	Total       int64           `json:"total"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	ID            int64                 `json:"id"`
	InvoiceNumber string                `json:"invoiceNumber"`
	InvoiceType   string                `json:"invoiceType"`
	PartyID       *string               `json:"partyID,omitempty"`
	PartyName     *string               `json:"partyName,omitempty"`
	Status        string                `json:"status"`
	Items         []InvoiceItemResponse `json:"items"`
	Subtotal      int64                 `json:"subtotal"`
	Tax           int64                 `json:"tax"`
	Total         int64                 `json:"total"`
	TotalAmount   decimal.Decimal       `json:"totalAmount"`
	TrackingCode  string                `json:"trackingCode"`
	Note          *string               `json:"note,omitempty"`
	Calendar      string                `json:"calendar"`
	ClientTime    *time.Time            `json:"clientTime,omitempty"`
	ServerTime    time.Time             `json:"serverTime"`
	FinalizedAt   *time.Time            `json:"finalizedAt,omitempty"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO.
func ToInvoiceResponse(inv *domain.Invoice, decimals int32) InvoiceResponse {
	items := make([]InvoiceItemResponse, len(inv.Items))
	for i, it := range inv.Items {
		items[i] = InvoiceItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			Description: it.Description,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
			TotalAmount: utils.MinorToMajor(it.Total, decimals),
		}
	}
	return InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		InvoiceType:   string(inv.InvoiceType),
		PartyID:       inv.PartyID,
		PartyName:     inv.PartyName,
		Status:        string(inv.Status),
		Items:         items,
		Subtotal:      inv.Subtotal,
		Tax:           inv.Tax,
		Total:         inv.Total,
		TotalAmount:   utils.MinorToMajor(inv.Total, decimals),
		TrackingCode:  inv.TrackingCode,
		Note:          inv.Note,
		Calendar:      string(inv.Calendar),
		ClientTime:    inv.ClientTime,
		ServerTime:    inv.ServerTime,
		FinalizedAt:   inv.FinalizedAt,
	}
}
