package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/SscSPs/bookkeeping_core/internal/core/services"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductService_CreateProduct(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProductRepository)
	svc := services.NewProductService(repo)

	repo.On("CreateProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.ID != "" && p.Name == "Widget" && p.Inventory == 5
	})).Return(nil).Once()

	product, err := svc.CreateProduct(ctx, dto.CreateProductRequest{Name: "Widget", Unit: "pcs", Inventory: 5})

	require.NoError(t, err)
	assert.Len(t, product.ID, 36)
	repo.AssertExpectations(t)
}

func TestProductService_CreateProductValidation(t *testing.T) {
	svc := services.NewProductService(new(MockProductRepository))

	_, err := svc.CreateProduct(context.Background(), dto.CreateProductRequest{})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestProductService_GetProductNotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProductRepository)
	svc := services.NewProductService(repo)
	repo.On("FindProductByID", ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	_, err := svc.GetProduct(ctx, "nope")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
