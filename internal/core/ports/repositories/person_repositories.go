package repositories

import (
	"context"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
)

// PersonReader defines read operations for persons
type PersonReader interface {
	FindPersonByID(ctx context.Context, personID string) (*domain.Person, error)
	// ListPersons returns up to limit persons, in name order, whose normalised
	// name contains nameQuery. An empty query matches everyone.
	ListPersons(ctx context.Context, nameQuery string, limit int) ([]domain.Person, error)
}

// PersonRepositoryFacade defines persistence operations for persons.
type PersonRepositoryFacade interface {
	PersonReader
	// CreatePerson inserts a person; a taken code yields apperrors.ErrDuplicate.
	CreatePerson(ctx context.Context, person domain.Person) error
}
