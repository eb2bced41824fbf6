package pgsql

import (
	"context"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_core/internal/models"
	"github.com/SscSPs/bookkeeping_core/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const personColumns = `id, name, name_norm, kind, mobile, description, code, created_at`

type PgxPersonRepository struct {
	BaseRepository
}

func newPgxPersonRepository(pool *pgxpool.Pool) portsrepo.PersonRepositoryFacade {
	return &PgxPersonRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PersonRepositoryFacade = (*PgxPersonRepository)(nil)

func scanPerson(row pgx.Row) (models.Person, error) {
	var m models.Person
	err := row.Scan(&m.ID, &m.Name, &m.NameNorm, &m.Kind, &m.Mobile, &m.Description, &m.Code, &m.CreatedAt)
	return m, err
}

// CreatePerson persists a new person.
func (r *PgxPersonRepository) CreatePerson(ctx context.Context, person domain.Person) error {
	m := mapping.ToModelPerson(person)
	_, err := r.db(ctx).Exec(ctx, `
		INSERT INTO persons (`+personColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		m.ID, m.Name, m.NameNorm, m.Kind, m.Mobile, m.Description, m.Code, m.CreatedAt)
	if err != nil {
		return mapError(err, "insert person "+m.ID)
	}
	return nil
}

// FindPersonByID retrieves a person by its ID.
func (r *PgxPersonRepository) FindPersonByID(ctx context.Context, personID string) (*domain.Person, error) {
	m, err := scanPerson(r.db(ctx).QueryRow(ctx, `SELECT `+personColumns+` FROM persons WHERE id = $1`, personID))
	if err != nil {
		return nil, mapError(err, "person "+personID)
	}
	person := mapping.ToDomainPerson(m)
	return &person, nil
}

func (r *PgxPersonRepository) ListPersons(ctx context.Context, nameQuery string, limit int) ([]domain.Person, error) {
	rows, err := r.db(ctx).Query(ctx, `
		SELECT `+personColumns+`
		FROM persons
		WHERE $1 = '' OR strpos(name_norm, $1) > 0
		ORDER BY name_norm, id
		LIMIT $2`,
		domain.NormalizePersonName(nameQuery), limit)
	if err != nil {
		return nil, mapError(err, "query persons")
	}
	defer rows.Close()

	var persons []models.Person
	for rows.Next() {
		m, err := scanPerson(rows)
		if err != nil {
			return nil, mapError(err, "scan person")
		}
		persons = append(persons, m)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "iterate persons")
	}
	return mapping.ToDomainPersonSlice(persons), nil
}
