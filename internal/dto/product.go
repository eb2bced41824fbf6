package dto

import (
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
)

// CreateProductRequest defines the data needed to register a product.
type CreateProductRequest struct {
	Name      string  `json:"name" binding:"required,max=255"`
	Code      *string `json:"code" binding:"omitempty,max=64"`
	Unit      string  `json:"unit" binding:"max=32"`
	Inventory int64   `json:"inventory"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      *string   `json:"code,omitempty"`
	Unit      string    `json:"unit"`
	Inventory int64     `json:"inventory"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Code:      p.Code,
		Unit:      p.Unit,
		Inventory: p.Inventory,
		CreatedAt: p.CreatedAt,
	}
}
