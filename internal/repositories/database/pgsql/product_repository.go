package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_core/internal/models"
	"github.com/SscSPs/bookkeeping_core/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProductRepository struct {
	BaseRepository
}

func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

// CreateProduct persists a new product.
func (r *PgxProductRepository) CreateProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	_, err := r.db(ctx).Exec(ctx, `
		INSERT INTO products (id, name, code, unit, inventory, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		m.ID, m.Name, m.Code, m.Unit, m.Inventory, m.CreatedAt)
	if err != nil {
		return mapError(err, "insert product "+m.ID)
	}
	return nil
}

// FindProductByID retrieves a product by its ID.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	var m models.Product
	err := r.db(ctx).QueryRow(ctx, `
		SELECT id, name, code, unit, inventory, created_at
		FROM products WHERE id = $1`, productID,
	).Scan(&m.ID, &m.Name, &m.Code, &m.Unit, &m.Inventory, &m.CreatedAt)
	if err != nil {
		return nil, mapError(err, "product "+productID)
	}
	product := mapping.ToDomainProduct(m)
	return &product, nil
}

// AdjustInventory applies delta in a single statement so concurrent finalizations add up.
func (r *PgxProductRepository) AdjustInventory(ctx context.Context, productID string, delta int64) error {
	tag, err := r.db(ctx).Exec(ctx, `UPDATE products SET inventory = inventory + $2 WHERE id = $1`, productID, delta)
	if err != nil {
		return mapError(err, "adjust inventory of "+productID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
	}
	return nil
}
