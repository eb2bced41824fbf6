package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
	"github.com/google/uuid"
)

const defaultPersonListLimit = 50

type personService struct {
	BaseService
	personRepo portsrepo.PersonRepositoryFacade
}

// NewPersonService creates the person master-data service.
func NewPersonService(personRepo portsrepo.PersonRepositoryFacade, opts ...ServiceOption) portssvc.PersonSvc {
	svc := &personService{personRepo: personRepo}
	svc.apply(opts)
	return svc
}

var _ portssvc.PersonSvc = (*personService)(nil)

func (s *personService) CreatePerson(ctx context.Context, req dto.CreatePersonRequest) (*domain.Person, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: person name is blank", apperrors.ErrValidation)
	}
	person := domain.Person{
		ID:          uuid.NewString(),
		Name:        name,
		Kind:        req.Kind,
		Mobile:      req.Mobile,
		Description: req.Description,
		Code:        req.Code,
		CreatedAt:   s.Now(),
	}
	if err := s.personRepo.CreatePerson(ctx, person); err != nil {
		s.LogError(ctx, err, "Failed to create person", slog.String("name", name))
		return nil, fmt.Errorf("failed to create person: %w", err)
	}
	s.LogInfo(ctx, "Person created", slog.String("person_id", person.ID))
	return &person, nil
}

func (s *personService) GetPerson(ctx context.Context, personID string) (*domain.Person, error) {
	return s.personRepo.FindPersonByID(ctx, personID)
}

func (s *personService) ListPersons(ctx context.Context, params dto.ListPersonsParams) ([]domain.Person, error) {
	if err := dto.Validate(params); err != nil {
		return nil, err
	}
	limit := params.Limit
	if limit <= 0 {
		limit = defaultPersonListLimit
	}
	persons, err := s.personRepo.ListPersons(ctx, params.Query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}
	return persons, nil
}

// resolveParty checks partyID against the persons registry and returns the
// name the document should carry: the given one, or the registered one.
func resolveParty(ctx context.Context, persons portsrepo.PersonReader, partyID, partyName *string) (*string, error) {
	if partyID == nil || *partyID == "" {
		return partyName, nil
	}
	person, err := persons.FindPersonByID(ctx, *partyID)
	if err != nil {
		return nil, fmt.Errorf("party %s: %w", *partyID, err)
	}
	if partyName != nil && *partyName != "" {
		return partyName, nil
	}
	name := person.Name
	return &name, nil
}
