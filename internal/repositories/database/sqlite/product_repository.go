package sqlite

import (
	"context"
	"fmt"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_core/internal/models"
	"github.com/SscSPs/bookkeeping_core/internal/utils/mapping"
	"gorm.io/gorm"
)

type GormProductRepository struct {
	BaseRepository
}

var _ portsrepo.ProductRepositoryFacade = (*GormProductRepository)(nil)

func (r *GormProductRepository) CreateProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	m.CreatedAt = utc(m.CreatedAt)
	if err := r.db(ctx).Create(&m).Error; err != nil {
		return mapError(err, "insert product "+m.ID)
	}
	return nil
}

func (r *GormProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	var m models.Product
	if err := r.db(ctx).Where("id = ?", productID).First(&m).Error; err != nil {
		return nil, mapError(err, "product "+productID)
	}
	product := mapping.ToDomainProduct(m)
	return &product, nil
}

func (r *GormProductRepository) AdjustInventory(ctx context.Context, productID string, delta int64) error {
	res := r.db(ctx).Model(&models.Product{}).
		Where("id = ?", productID).
		Update("inventory", gorm.Expr("inventory + ?", delta))
	if res.Error != nil {
		return mapError(res.Error, "adjust inventory of "+productID)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
	}
	return nil
}
