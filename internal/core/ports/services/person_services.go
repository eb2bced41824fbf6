package services

import (
	"context"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
)

// PersonSvc defines person master-data operations
type PersonSvc interface {
	CreatePerson(ctx context.Context, req dto.CreatePersonRequest) (*domain.Person, error)
	GetPerson(ctx context.Context, personID string) (*domain.Person, error)
	ListPersons(ctx context.Context, params dto.ListPersonsParams) ([]domain.Person, error)
}
