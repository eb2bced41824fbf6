package dto

import (
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/SscSPs/bookkeeping_core/internal/utils"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest defines the data needed to create a draft payment.
type CreatePaymentRequest struct {
	Direction    string     `json:"direction" binding:"required,oneof=in out"`
	Method       string     `json:"method" binding:"max=32"`
	Amount       int64      `json:"amount" binding:"gt=0"`
	PartyID      *string    `json:"partyID"`
	PartyName    *string    `json:"partyName"`
	InvoiceID    *int64     `json:"invoiceID" binding:"omitempty,gt=0"`
	Reference    *string    `json:"reference"`
	TrackingCode *string    `json:"trackingCode" binding:"omitempty,max=64"`
	DueDate      *time.Time `json:"dueDate"`
	Note         *string    `json:"note"`
	ClientTime   *time.Time `json:"clientTime"`
	Calendar     string     `json:"calendar" binding:"omitempty,oneof=gregorian jalali"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	ID            int64           `json:"id"`
	PaymentNumber string          `json:"paymentNumber"`
	Direction     string          `json:"direction"`
	Method        string          `json:"method"`
	Amount        int64           `json:"amount"`
	AmountValue   decimal.Decimal `json:"amountValue"`
	PartyID       *string         `json:"partyID,omitempty"`
	PartyName     *string         `json:"partyName,omitempty"`
	Reference     *string         `json:"reference,omitempty"`
	InvoiceID     *int64          `json:"invoiceID,omitempty"`
	DueDate       *time.Time      `json:"dueDate,omitempty"`
	Note          *string         `json:"note,omitempty"`
	Status        string          `json:"status"`
	TrackingCode  string          `json:"trackingCode"`
	Calendar      string          `json:"calendar"`
	ClientTime    *time.Time      `json:"clientTime,omitempty"`
	ServerTime    time.Time       `json:"serverTime"`
	PostedAt      *time.Time      `json:"postedAt,omitempty"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO.
func ToPaymentResponse(p *domain.Payment, decimals int32) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		PaymentNumber: p.PaymentNumber,
		Direction:     string(p.Direction),
		Method:        string(p.Method),
		Amount:        p.Amount,
		AmountValue:   utils.MinorToMajor(p.Amount, decimals),
		PartyID:       p.PartyID,
		PartyName:     p.PartyName,
		Reference:     p.Reference,
		InvoiceID:     p.InvoiceID,
		DueDate:       p.DueDate,
		Note:          p.Note,
		Status:        string(p.Status),
		TrackingCode:  p.TrackingCode,
		Calendar:      string(p.Calendar),
		ClientTime:    p.ClientTime,
		ServerTime:    p.ServerTime,
		PostedAt:      p.PostedAt,
	}
}
