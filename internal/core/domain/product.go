package domain

import "time"

// Product is stock-keeping master data. Inventory moves when invoices finalize.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      *string   `json:"code,omitempty"`
	Unit      string    `json:"unit"`
	Inventory int64     `json:"inventory"`
	CreatedAt time.Time `json:"createdAt"`
}
