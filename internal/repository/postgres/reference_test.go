package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReferenceRepositoryConstructors(t *testing.T) {
	db := &Connection{}

	tests := []struct {
		name     string
		repo     *ReferenceRepository
		table    string
		idColumn string
	}{
		{"role", NewRoleRepository(db), "rol", "id_rol"},
		{"region", NewRegionRepository(db), "region", "id_region"},
		{"status", NewStatusRepository(db), "estado", "id_estado"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, db, tt.repo.db)
			assert.Equal(t, tt.table, tt.repo.table)
			assert.Equal(t, tt.idColumn, tt.repo.idColumn)
		})
	}
}
