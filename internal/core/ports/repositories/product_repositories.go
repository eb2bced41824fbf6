package repositories

import (
	"context"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
)

// ProductRepositoryFacade defines persistence operations for products.
type ProductRepositoryFacade interface {
	CreateProduct(ctx context.Context, product domain.Product) error
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)
	// AdjustInventory adds delta to the product's stock counter. Unknown products
	// yield apperrors.ErrNotFound.
	AdjustInventory(ctx context.Context, productID string, delta int64) error
}
