package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_core/internal/models"
	"github.com/SscSPs/bookkeeping_core/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const auditColumns = `id, entity_type, entity_id, sequence, action, data_hash, previous_hash,
	chain_hash, snapshot, user_id, timestamp`

type PgxAuditRepository struct {
	BaseRepository
}

func newPgxAuditRepository(pool *pgxpool.Pool) portsrepo.AuditRepositoryFacade {
	return &PgxAuditRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AuditRepositoryFacade = (*PgxAuditRepository)(nil)

func scanAuditEntry(row pgx.Row) (models.AuditEntry, error) {
	var m models.AuditEntry
	err := row.Scan(&m.ID, &m.EntityType, &m.EntityID, &m.Sequence, &m.Action, &m.DataHash,
		&m.PreviousHash, &m.ChainHash, &m.Snapshot, &m.UserID, &m.Timestamp)
	return m, err
}

func (r *PgxAuditRepository) ListAuditEntries(ctx context.Context, entityType, entityID string) ([]domain.AuditEntry, error) {
	rows, err := r.db(ctx).Query(ctx, `
		SELECT `+auditColumns+`
		FROM audit_entries
		WHERE entity_type = $1 AND entity_id = $2
		ORDER BY sequence`, entityType, entityID)
	if err != nil {
		return nil, mapError(err, "query audit entries")
	}
	defer rows.Close()

	var entries []models.AuditEntry
	for rows.Next() {
		m, err := scanAuditEntry(rows)
		if err != nil {
			return nil, mapError(err, "scan audit entry")
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "iterate audit entries")
	}
	return mapping.ToDomainAuditEntrySlice(entries), nil
}

func (r *PgxAuditRepository) FindLatestAuditEntry(ctx context.Context, entityType, entityID string) (*domain.AuditEntry, error) {
	m, err := scanAuditEntry(r.db(ctx).QueryRow(ctx, `
		SELECT `+auditColumns+`
		FROM audit_entries
		WHERE entity_type = $1 AND entity_id = $2
		ORDER BY sequence DESC
		LIMIT 1`, entityType, entityID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError(err, "latest audit entry")
	}
	entry := mapping.ToDomainAuditEntry(m)
	return &entry, nil
}

// LockChain takes a transaction-scoped advisory lock keyed by the chain identity.
// Outside a transaction the lock is released as soon as the statement ends.
func (r *PgxAuditRepository) LockChain(ctx context.Context, entityType, entityID string) error {
	_, err := r.db(ctx).Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, entityType+":"+entityID)
	if err != nil {
		return mapError(err, "lock audit chain")
	}
	return nil
}

func (r *PgxAuditRepository) AppendAuditEntry(ctx context.Context, entry *domain.AuditEntry) error {
	m := mapping.ToModelAuditEntry(*entry)
	err := r.db(ctx).QueryRow(ctx, `
		INSERT INTO audit_entries (
			entity_type, entity_id, sequence, action, data_hash, previous_hash,
			chain_hash, snapshot, user_id, timestamp
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		m.EntityType, m.EntityID, m.Sequence, m.Action, m.DataHash, m.PreviousHash,
		m.ChainHash, m.Snapshot, m.UserID, m.Timestamp,
	).Scan(&entry.ID)
	if err != nil {
		return mapError(err, "append audit entry")
	}
	return nil
}
