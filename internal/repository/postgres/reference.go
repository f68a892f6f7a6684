package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/condor-cl/users-api/internal/model"
)

var _ model.ReferenceStore = (*ReferenceRepository)(nil)

// ReferenceRepository persists one reference table. The three tables
// share the same shape, so the table and id column are fixed per
// constructor instead of duplicating the repository three times.
type ReferenceRepository struct {
	db       *Connection
	table    string
	idColumn string
}

func NewRoleRepository(db *Connection) *ReferenceRepository {
	return &ReferenceRepository{db: db, table: "rol", idColumn: "id_rol"}
}

func NewRegionRepository(db *Connection) *ReferenceRepository {
	return &ReferenceRepository{db: db, table: "region", idColumn: "id_region"}
}

func NewStatusRepository(db *Connection) *ReferenceRepository {
	return &ReferenceRepository{db: db, table: "estado", idColumn: "id_estado"}
}

func (r *ReferenceRepository) Exists(ctx context.Context, id int32) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, r.table, r.idColumn)

	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check %s existence: %w", r.table, err)
	}

	return exists, nil
}

func (r *ReferenceRepository) GetByID(ctx context.Context, id int32) (model.Reference, error) {
	query := fmt.Sprintf(`SELECT %s, nombre FROM %s WHERE %s = $1`, r.idColumn, r.table, r.idColumn)

	var ref model.Reference
	err := r.db.QueryRow(ctx, query, id).Scan(&ref.ID, &ref.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Reference{}, model.ErrNotFound
		}
		return model.Reference{}, fmt.Errorf("failed to get %s by id: %w", r.table, err)
	}

	return ref, nil
}

func (r *ReferenceRepository) List(ctx context.Context) ([]model.Reference, error) {
	query := fmt.Sprintf(`SELECT %s, nombre FROM %s ORDER BY %s`, r.idColumn, r.table, r.idColumn)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.table, err)
	}
	defer rows.Close()

	refs := make([]model.Reference, 0)
	for rows.Next() {
		var ref model.Reference
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", r.table, err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", r.table, err)
	}

	return refs, nil
}

func (r *ReferenceRepository) Create(ctx context.Context, ref model.Reference) (model.Reference, error) {
	query := fmt.Sprintf(`INSERT INTO %s (nombre) VALUES ($1) RETURNING %s, nombre`, r.table, r.idColumn)

	var saved model.Reference
	err := r.db.QueryRow(ctx, query, ref.Name).Scan(&saved.ID, &saved.Name)
	if err != nil {
		return model.Reference{}, fmt.Errorf("failed to create %s: %w", r.table, err)
	}

	return saved, nil
}
