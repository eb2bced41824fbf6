package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
	"github.com/google/uuid"
)

type productService struct {
	BaseService
	productRepo portsrepo.ProductRepositoryFacade
}

// NewProductService creates the product master-data service.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade, opts ...ServiceOption) portssvc.ProductSvc {
	svc := &productService{productRepo: productRepo}
	svc.apply(opts)
	return svc
}

var _ portssvc.ProductSvc = (*productService)(nil)

func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	product := domain.Product{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Code:      req.Code,
		Unit:      req.Unit,
		Inventory: req.Inventory,
		CreatedAt: s.Now(),
	}
	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to create product", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	s.LogInfo(ctx, "Product created", slog.String("product_id", product.ID))
	return &product, nil
}

func (s *productService) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	return s.productRepo.FindProductByID(ctx, productID)
}
