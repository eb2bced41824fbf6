package sqlite

import (
	"context"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_core/internal/models"
	"github.com/SscSPs/bookkeeping_core/internal/utils/mapping"
)

type GormPersonRepository struct {
	BaseRepository
}

var _ portsrepo.PersonRepositoryFacade = (*GormPersonRepository)(nil)

func (r *GormPersonRepository) CreatePerson(ctx context.Context, person domain.Person) error {
	m := mapping.ToModelPerson(person)
	m.CreatedAt = utc(m.CreatedAt)
	if err := r.db(ctx).Create(&m).Error; err != nil {
		return mapError(err, "insert person "+m.ID)
	}
	return nil
}

func (r *GormPersonRepository) FindPersonByID(ctx context.Context, personID string) (*domain.Person, error) {
	var m models.Person
	if err := r.db(ctx).Where("id = ?", personID).First(&m).Error; err != nil {
		return nil, mapError(err, "person "+personID)
	}
	person := mapping.ToDomainPerson(m)
	return &person, nil
}

func (r *GormPersonRepository) ListPersons(ctx context.Context, nameQuery string, limit int) ([]domain.Person, error) {
	q := r.db(ctx).Model(&models.Person{})
	if norm := domain.NormalizePersonName(nameQuery); norm != "" {
		q = q.Where("instr(name_norm, ?) > 0", norm)
	}
	var ms []models.Person
	if err := q.Order("name_norm, id").Limit(limit).Find(&ms).Error; err != nil {
		return nil, mapError(err, "query persons")
	}
	return mapping.ToDomainPersonSlice(ms), nil
}
